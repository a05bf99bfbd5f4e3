// SPDX-License-Identifier: MIT
// Package: selfsim/core
//
// construct.go — the two construction paths of the container contract.
//
// Design contract (strict):
//   - NewGraph consumes an explicit vertex set plus a canonical-pair
//     weight mapping (the generator path). Both inputs are copied; the
//     caller keeps ownership of its arguments.
//   - NewGraphFromSource consumes a streamed (u, v) pair source with an
//     explicit constant default weight (the dataset path). Endpoints are
//     added to the vertex set implicitly; duplicate pairs keep the first
//     inserted weight.
//   - Validation fails before any partial state escapes: constructors
//     return (nil, err) and never a half-built Graph.
//   - Determinism: equal inputs produce equal graphs (identity mapping).

package core

import (
	"errors"
	"fmt"
	"io"
)

// PairSource streams unordered (u, v) vertex pairs, one per call.
// Next returns io.EOF after the last pair; any other error aborts
// construction. Implementations need not canonicalize: NewGraphFromSource
// does.
type PairSource interface {
	Next() (u, v int64, err error)
}

// NewGraph builds a Graph from a name, a vertex set and a canonical-pair
// weight mapping.
//
// Validation (in order, before any storage is retained):
//   - name must be non-empty (ErrEmptyGraphName);
//   - every vertex ID must be positive (ErrBadVertexID);
//   - every weight must be positive (ErrBadWeight);
//   - every pair must be canonical and loop-free (ErrSelfLoop,
//     ErrBadVertexID via pair inspection);
//   - both endpoints of every pair must be in the vertex set
//     (ErrUnknownEndpoint).
//
// Duplicate vertex IDs in the slice are tolerated (set semantics).
// Complexity: O(|vertices| + |weights|) time and space.
func NewGraph(name string, vertices []int64, weights map[Pair]int64) (*Graph, error) {
	// Reject anonymous graphs: the name is part of the determinism contract.
	if name == "" {
		return nil, ErrEmptyGraphName
	}

	// Copy the vertex set, validating IDs as we go.
	vs := make(map[int64]struct{}, len(vertices))
	for _, id := range vertices {
		if id < 1 {
			return nil, fmt.Errorf("vertex %d: %w", id, ErrBadVertexID)
		}
		vs[id] = struct{}{}
	}

	// Copy the weight mapping, validating pairs, weights and endpoints.
	ws := make(map[Pair]int64, len(weights))
	adj := make(map[int64]map[int64]struct{}, len(vs))
	for p, w := range weights {
		// Re-canonicalize to catch hand-built pairs that bypass NewPair.
		cp, err := NewPair(p.U, p.V)
		if err != nil {
			return nil, fmt.Errorf("pair {%d,%d}: %w", p.U, p.V, err)
		}
		if cp != p {
			return nil, fmt.Errorf("pair {%d,%d}: not canonical: %w", p.U, p.V, ErrBadVertexID)
		}
		if w < 1 {
			return nil, fmt.Errorf("pair {%d,%d}: weight %d: %w", p.U, p.V, w, ErrBadWeight)
		}
		if _, ok := vs[p.U]; !ok {
			return nil, fmt.Errorf("pair {%d,%d}: endpoint %d: %w", p.U, p.V, p.U, ErrUnknownEndpoint)
		}
		if _, ok := vs[p.V]; !ok {
			return nil, fmt.Errorf("pair {%d,%d}: endpoint %d: %w", p.U, p.V, p.V, ErrUnknownEndpoint)
		}
		ws[p] = w
		mirror(adj, p)
	}

	return &Graph{name: name, vertices: vs, weights: ws, adjacency: adj}, nil
}

// NewGraphFromSource builds a Graph by draining a PairSource, assigning
// defaultWeight to every edge. Endpoints join the vertex set implicitly.
// A pair repeated by the source is kept once; a reversed duplicate
// collapses onto the same canonical pair. Self-pairs from the source are
// rejected (ErrSelfLoop) rather than skipped, so malformed datasets
// surface instead of shrinking silently.
//
// Errors: ErrEmptyGraphName, ErrNilSource, ErrBadWeight, plus any pair
// validation error or source error wrapped with its ordinal position.
// Complexity: O(P) time and space for P streamed pairs.
func NewGraphFromSource(name string, src PairSource, defaultWeight int64) (*Graph, error) {
	if name == "" {
		return nil, ErrEmptyGraphName
	}
	if src == nil {
		return nil, ErrNilSource
	}
	// The default weight is an explicit argument, not a closure: it must
	// satisfy the same positivity contract as every stored weight.
	if defaultWeight < 1 {
		return nil, fmt.Errorf("default weight %d: %w", defaultWeight, ErrBadWeight)
	}

	vs := make(map[int64]struct{})
	ws := make(map[Pair]int64)
	adj := make(map[int64]map[int64]struct{})

	// Drain the source until io.EOF; n counts pairs for error context.
	for n := 1; ; n++ {
		u, v, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("pair %d: %w", n, err)
		}

		p, err := NewPair(u, v)
		if err != nil {
			return nil, fmt.Errorf("pair %d (%d,%d): %w", n, u, v, err)
		}

		vs[p.U] = struct{}{}
		vs[p.V] = struct{}{}
		// First insertion wins; duplicates do not overwrite.
		if _, seen := ws[p]; !seen {
			ws[p] = defaultWeight
			mirror(adj, p)
		}
	}

	return &Graph{name: name, vertices: vs, weights: ws, adjacency: adj}, nil
}

// mirror records the pair in both adjacency directions.
func mirror(adj map[int64]map[int64]struct{}, p Pair) {
	if adj[p.U] == nil {
		adj[p.U] = make(map[int64]struct{})
	}
	if adj[p.V] == nil {
		adj[p.V] = make(map[int64]struct{})
	}
	adj[p.U][p.V] = struct{}{}
	adj[p.V][p.U] = struct{}{}
}
