// SPDX-License-Identifier: MIT
// Package: selfsim/generate
//
// impl_apollonian.go — Apollonian network generator.
//
// Contract:
//   • Parameter: generation g ≥ 0 (ErrInvalidParameter).
//   • Base case (g = 0): the complete graph K_4 on vertices {1,2,3,4},
//     decomposed into its four triangular faces.
//   • Per round: every FRONTIER triangle gains one fresh vertex joined to
//     its three corners and is replaced in the frontier by its three
//     child triangles; the subdivided triangle's edges stay in the
//     permanent edge set. Unlike Koch, discarded triangles are never
//     re-expanded — the frontier is exactly the current face set.
//   • Closed forms: V = 2·3^g + 2, E = 6·3^g.
//   • Self-similarity: the first V(g−1) vertices of generation g induce
//     exactly the generation g−1 graph.
//
// Determinism:
//   • Faces are visited in creation order; one fresh vertex per face.
//
// Complexity:
//   • Time and space O(3^g).

package generate

import "github.com/katalvlaran/selfsim/core"

// Apollonian builds the Apollonian network for generation index g.
// Errors: ErrInvalidParameter, ErrOverflow.
func Apollonian(g int) (*core.Graph, error) {
	// Counts gate: validates g and rejects overflow before allocation.
	wantV, wantE, err := ApollonianCounts(g)
	if err != nil {
		return nil, err
	}

	s := newScaffold(wantE)

	// Base case: K_4 and its four faces.
	base := [apollonianBaseOrder]int64{
		s.allocVertex(), s.allocVertex(), s.allocVertex(), s.allocVertex(),
	}
	for i := 0; i < apollonianBaseOrder; i++ {
		for j := i + 1; j < apollonianBaseOrder; j++ {
			s.addEdge(base[i], base[j])
		}
	}
	frontier := []triangle{
		{base[0], base[1], base[2]},
		{base[0], base[1], base[3]},
		{base[0], base[2], base[3]},
		{base[1], base[2], base[3]},
	}

	expand(g, func(int) {
		next := make([]triangle, 0, len(frontier)*3)
		for _, t := range frontier {
			// One fresh vertex subdivides the face into three children.
			w := s.allocVertex()
			s.addEdge(t.a, w)
			s.addEdge(t.b, w)
			s.addEdge(t.c, w)
			next = append(next,
				triangle{t.a, t.b, w},
				triangle{t.a, t.c, w},
				triangle{t.b, t.c, w},
			)
		}
		frontier = next
	})

	return s.graph(MethodApollonian, nameG(TagApollonian, g), wantV, wantE)
}
