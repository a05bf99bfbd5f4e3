// Package core: read accessors for the Graph container.
//
// Every accessor takes the read lock, so a constructed Graph can be shared
// across goroutines. Slices returned to callers are fresh copies in a
// deterministic (sorted) order; mutating them does not affect the Graph.
package core

import (
	"sort"
)

// Name returns the graph name assigned at construction.
// Complexity: O(1).
func (g *Graph) Name() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.name
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.weights)
}

// HasVertex reports whether id is in the vertex set.
// Complexity: O(1).
func (g *Graph) HasVertex(id int64) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// HasEdge reports whether the unordered pair {u,v} is an edge.
// Order of u and v does not matter; invalid pairs report false.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int64) bool {
	p, err := NewPair(u, v)
	if err != nil {
		return false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.weights[p]

	return ok
}

// Weight returns the weight of edge {u,v}.
// Returns ErrEdgeNotFound when the pair is absent, and the pair
// validation error (ErrSelfLoop/ErrBadVertexID) when it is malformed.
// Complexity: O(1).
func (g *Graph) Weight(u, v int64) (int64, error) {
	p, err := NewPair(u, v)
	if err != nil {
		return 0, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	w, ok := g.weights[p]
	if !ok {
		return 0, ErrEdgeNotFound
	}

	return w, nil
}

// Vertices returns all vertex IDs in ascending order.
// Complexity: O(V log V) time, O(V) space.
func (g *Graph) Vertices() []int64 {
	g.mu.RLock()
	ids := make([]int64, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.mu.RUnlock()

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// Edges returns all edges as canonical (U,V,Weight) triples, sorted by
// (U, V). Complexity: O(E log E) time, O(E) space.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	es := make([]Edge, 0, len(g.weights))
	for p, w := range g.weights {
		es = append(es, Edge{U: p.U, V: p.V, Weight: w})
	}
	g.mu.RUnlock()

	sort.Slice(es, func(i, j int) bool {
		if es[i].U != es[j].U {
			return es[i].U < es[j].U
		}

		return es[i].V < es[j].V
	})

	return es
}

// NeighborIDs returns the neighbors of id in ascending order.
// Returns ErrVertexNotFound when id is absent.
// Complexity: O(deg log deg) time, O(deg) space.
func (g *Graph) NeighborIDs(id int64) ([]int64, error) {
	g.mu.RLock()
	if _, ok := g.vertices[id]; !ok {
		g.mu.RUnlock()

		return nil, ErrVertexNotFound
	}
	ns := make([]int64, 0, len(g.adjacency[id]))
	for n := range g.adjacency[id] {
		ns = append(ns, n)
	}
	g.mu.RUnlock()

	sort.Slice(ns, func(i, j int) bool { return ns[i] < ns[j] })

	return ns, nil
}

// Degree returns the number of edges incident to id.
// Returns ErrVertexNotFound when id is absent.
// Complexity: O(1).
func (g *Graph) Degree(id int64) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}

	return len(g.adjacency[id]), nil
}
