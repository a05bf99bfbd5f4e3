// SPDX-License-Identifier: MIT
// Package: selfsim/generate
//
// impl_corona.go — edge-corona clique network generator.
//
// Contract:
//   • Parameters: clique order q ≥ 0, generation g ≥ 0 (ErrInvalidParameter).
//   • Base case (g = 0): the complete graph K_{q+2} on vertices 1..q+2.
//   • Per round: EVERY edge accumulated so far gains a fresh q-clique —
//     q new vertices, pairwise connected, each also joined to both edge
//     endpoints. As in the pseudofractal family, the cumulative edge set
//     (old and new) is the next round's expansion base.
//   • Closed forms: with M = (q+1)(q+2)/2, E = M^{g+1} and
//     V = (q+2) + qM(M^g − 1)/(M − 1) for q ≥ 1; q = 0 stays at K_2.
//   • q = 1 reduces exactly to the restricted pseudofractal family
//     (a 1-clique is a single pendant vertex and the base K_3 is the
//     pseudofractal triangle).
//
// Determinism:
//   • Edges are visited in first-insertion order; clique vertices are
//     allocated ascending per edge.
//
// Complexity:
//   • Time and space O(E(g)) — dominated by clique emission, the heaviest
//     per-edge rule in the package.

package generate

import "github.com/katalvlaran/selfsim/core"

// EdgeCorona builds the edge-corona clique network for clique order q and
// generation index g.
// Errors: ErrInvalidParameter, ErrOverflow.
func EdgeCorona(q, g int) (*core.Graph, error) {
	// Counts gate: validates (q, g) and rejects overflow before allocation.
	wantV, wantE, err := EdgeCoronaCounts(q, g)
	if err != nil {
		return nil, err
	}

	s := newScaffold(wantE)

	// Base case: complete graph on q+2 vertices.
	base := make([]int64, q+2)
	for i := range base {
		base[i] = s.allocVertex()
	}
	for i := 0; i < len(base); i++ {
		for j := i + 1; j < len(base); j++ {
			s.addEdge(base[i], base[j])
		}
	}

	// Each round coronates every edge present at the round's start.
	fresh := make([]int64, q)
	expand(g, func(int) {
		for _, p := range s.edgeSnapshot() {
			// Allocate the q clique vertices for this edge.
			for k := range fresh {
				fresh[k] = s.allocVertex()
			}
			for k, w := range fresh {
				// Join the clique vertex to both edge endpoints...
				s.addEdge(p.U, w)
				s.addEdge(p.V, w)
				// ...and to its clique successors (each pair once).
				for l := k + 1; l < q; l++ {
					s.addEdge(w, fresh[l])
				}
			}
		}
	})

	return s.graph(MethodEdgeCorona, namePG(TagEdgeCorona, "q", q, g), wantV, wantE)
}
