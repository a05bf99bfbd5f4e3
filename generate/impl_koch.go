// SPDX-License-Identifier: MIT
// Package: selfsim/generate
//
// impl_koch.go — Koch network generator.
//
// Contract:
//   • Parameter: generation g ≥ 0 (ErrInvalidParameter).
//   • Base case (g = 0): the triangle on vertices {1,2,3}.
//   • Per round: every triangle produced so far — the base triangle and
//     every spawned one — sprouts, at EACH of its three vertices, a new
//     triangle made of that vertex plus two fresh vertices. The cumulative
//     triangle list is the next round's expansion base; that is what the
//     closed forms V = 2·4^g + 1, E = 3·4^g require (triangle totals
//     quadruple per round: T(g) = 4^g).
//   • The edge set is derived once, after the last round, from every
//     triangle ever produced; triangles meet only at vertices, so the
//     canonical-pair map stays collision-free by construction.
//
// Determinism:
//   • Triangles are visited in creation order; the two fresh vertices of a
//     spawned triangle are allocated consecutively.
//
// Complexity:
//   • Time and space O(4^g).

package generate

import "github.com/katalvlaran/selfsim/core"

// Koch builds the Koch network for generation index g.
// Errors: ErrInvalidParameter, ErrOverflow.
func Koch(g int) (*core.Graph, error) {
	// Counts gate: validates g and rejects overflow before allocation.
	wantV, wantE, err := KochCounts(g)
	if err != nil {
		return nil, err
	}

	s := newScaffold(wantE)

	// Base case: one triangle; the triangle list is the frontier AND the
	// permanent record the edge set is later derived from.
	tris := make([]triangle, 0, clampHint(wantE/3))
	tris = append(tris, triangle{s.allocVertex(), s.allocVertex(), s.allocVertex()})

	expand(g, func(int) {
		// Snapshot: triangles appended below must not expand this round.
		snap := tris[:len(tris):len(tris)]
		for _, t := range snap {
			for _, x := range [3]int64{t.a, t.b, t.c} {
				tris = append(tris, triangle{x, s.allocVertex(), s.allocVertex()})
			}
		}
	})

	// Derive the edge set once from every triangle ever produced.
	for _, t := range tris {
		s.addEdge(t.a, t.b)
		s.addEdge(t.a, t.c)
		s.addEdge(t.b, t.c)
	}

	return s.graph(MethodKoch, nameG(TagKoch, g), wantV, wantE)
}
