// SPDX-License-Identifier: MIT
// Package: selfsim/generate
//
// impl_cayley.go — b-ary Cayley tree generator.
//
// Contract:
//   • Parameters: degree b ≥ 2, generation g ≥ 0 (ErrInvalidParameter).
//   • Base case (g = 0): the lone root, vertex 1, no edges — the count
//     formulas evaluated at g = 0 give V = 1, E = 0.
//   • Round 1 attaches b children to the root; rounds 2..g attach b − 1
//     fresh children to every current leaf, and the fresh children become
//     the next round's leaf set (leaves, not edges, are the frontier —
//     interior vertices are never re-expanded).
//   • Every interior vertex ends with degree b (the root by round 1, each
//     later vertex by its parent edge plus b − 1 children); final-round
//     leaves keep degree 1.
//   • Closed forms: V = 1 + b((b−1)^g − 1)/(b − 2) for b ≥ 3, V = 1 + 2g
//     for b = 2; E = V − 1.
//
// Determinism:
//   • Leaves are visited in creation order; children are allocated
//     consecutively per leaf.
//
// Complexity:
//   • Time and space O(V(g)).

package generate

import "github.com/katalvlaran/selfsim/core"

// CayleyTree builds the b-ary Cayley tree for degree b and generation
// index g.
// Errors: ErrInvalidParameter, ErrOverflow.
func CayleyTree(b, g int) (*core.Graph, error) {
	return buildCayleyTree(MethodCayleyTree, b, g)
}

// TernaryCayleyTree builds the fixed b = 3 instantiation of CayleyTree,
// with closed forms V = 3·2^g − 2, E = 3·2^g − 3.
// Errors: ErrInvalidParameter, ErrOverflow.
func TernaryCayleyTree(g int) (*core.Graph, error) {
	// Validate under this entry point's tag before delegating.
	if err := validateGeneration(MethodTernaryCayleyTree, g); err != nil {
		return nil, err
	}

	return buildCayleyTree(MethodTernaryCayleyTree, 3, g)
}

// buildCayleyTree is the shared construction behind both entry points.
func buildCayleyTree(method string, b, g int) (*core.Graph, error) {
	// Counts gate: validates (b, g) and rejects overflow before allocation.
	wantV, wantE, err := CayleyTreeCounts(b, g)
	if err != nil {
		return nil, err
	}

	s := newScaffold(wantE)

	// Base case: the root alone.
	root := s.allocVertex()

	// The frontier is the current leaf set.
	leaves := []int64{root}
	expand(g, func(i int) {
		// Round 1 branches b ways from the root; later rounds branch
		// b − 1 ways from each leaf (the parent edge uses the b-th slot).
		fanout := b - 1
		if i == 1 {
			fanout = b
		}

		next := make([]int64, 0, len(leaves)*fanout)
		for _, leaf := range leaves {
			for k := 0; k < fanout; k++ {
				child := s.allocVertex()
				s.addEdge(leaf, child)
				next = append(next, child)
			}
		}
		leaves = next
	})

	return s.graph(method, namePG(TagCayleyTree, "b", b, g), wantV, wantE)
}
