// SPDX-License-Identifier: MIT
// Package: selfsim/generate
//
// impl_pseudofractal.go — extended pseudofractal network generator.
//
// Contract:
//   • Parameters: branching m ≥ 1, generation g ≥ 0 (ErrInvalidParameter).
//   • Base case (g = 0): the triangle on vertices {1,2,3}.
//   • Per round: EVERY edge accumulated so far — old and new alike — gains
//     m fresh vertices, each joined to both endpoints, forming m new
//     triangles over that edge. The cumulative edge set is the next
//     round's expansion base.
//   • Closed forms: V = 3((2m+1)^g + 1)/2, E = 3(2m+1)^g.
//   • Self-similarity: the first V(g−1) vertices of generation g induce
//     exactly the generation g−1 graph.
//
// Determinism:
//   • Edges are visited in first-insertion order; fresh vertices are
//     numbered monotonically, so equal parameters give identical graphs.
//
// Complexity:
//   • Time and space O(E(g)) = O((2m+1)^g).

package generate

import "github.com/katalvlaran/selfsim/core"

// Pseudofractal builds the extended pseudofractal network for branching
// parameter m and generation index g.
// Errors: ErrInvalidParameter, ErrOverflow.
func Pseudofractal(m, g int) (*core.Graph, error) {
	return buildPseudofractal(MethodPseudofractal, m, g)
}

// RestrictedPseudofractal builds the restricted pseudofractal network,
// the m = 1 special case of Pseudofractal: one fresh vertex per edge per
// round. Closed forms reduce to V = (3^{g+1} + 3)/2, E = 3^{g+1}.
// Errors: ErrInvalidParameter, ErrOverflow.
func RestrictedPseudofractal(g int) (*core.Graph, error) {
	// Validate under this entry point's tag before delegating.
	if err := validateGeneration(MethodRestrictedPseudofractal, g); err != nil {
		return nil, err
	}

	return buildPseudofractal(MethodRestrictedPseudofractal, MinBranching, g)
}

// buildPseudofractal is the shared construction behind both entry points.
func buildPseudofractal(method string, m, g int) (*core.Graph, error) {
	// Counts gate: validates (m, g) and rejects overflow before allocation.
	wantV, wantE, err := PseudofractalCounts(m, g)
	if err != nil {
		return nil, err
	}

	s := newScaffold(wantE)

	// Base case: triangle on {1,2,3}.
	a, b, c := s.allocVertex(), s.allocVertex(), s.allocVertex()
	s.addEdge(a, b)
	s.addEdge(a, c)
	s.addEdge(b, c)

	// Each round expands every edge present at the round's start.
	expand(g, func(int) {
		for _, p := range s.edgeSnapshot() {
			for k := 0; k < m; k++ {
				w := s.allocVertex()
				s.addEdge(p.U, w)
				s.addEdge(p.V, w)
			}
		}
	})

	return s.graph(method, namePG(TagPseudofractal, "m", m, g), wantV, wantE)
}
