// SPDX-License-Identifier: MIT
// Package: selfsim/generate
//
// impl_hanoi.go — extended Hanoi graph generator.
//
// Contract:
//   • Parameter: generation g ≥ 0 (ErrInvalidParameter).
//   • Base case (g ∈ {0, 1}): the triangle on vertices {1,2,3}; no round
//     applies below generation 2.
//   • Intermediate rounds i = 2..g−1: the whole structure is duplicated
//     twice with vertex offsets inc and 2·inc, where inc = 3^{i−1} is the
//     structure order at the round's start (inc triples each round). Then
//     exactly 3 bridge edges are added: for each x ∈ {0,1,2} with
//     y = (x+1) mod 3, the vertices addressed x·y^{i−1} and y·x^{i−1}
//     (base-3 digit sequences of width i, most significant digit first,
//     +1 after conversion) are joined.
//   • Final round g: the structure is tripled — three shifted copies at
//     offsets inc, 2·inc and 3·inc — then bridged by the same width-g
//     rule as above PLUS 3 corner bridges joining each all-x address x^g
//     to the fourth-copy corner addressed 1·0·x^{g−1}.
//   • Resulting counts: V = 4·3^{g−1}, E = 2·3^g for g ≥ 2; the graph is
//     3-regular.
//
// Determinism:
//   • Copies are emitted in offset order over the insertion-ordered edge
//     snapshot; bridges follow in x order, corner bridges last.
//
// Complexity:
//   • Time and space O(3^g).

package generate

import "github.com/katalvlaran/selfsim/core"

// Hanoi addressing digit constants: every bridge pairs a digit x with its
// cyclic successor y = (x+1) mod 3.
const (
	hanoiCopies      = 2 // shifted copies per intermediate round
	hanoiFinalCopies = 3 // shifted copies in the final round
	firstHanoiRound  = 2 // rounds below this index leave the base triangle
)

// ExtendedHanoi builds the extended Hanoi graph for generation index g.
// Errors: ErrInvalidParameter, ErrOverflow.
func ExtendedHanoi(g int) (*core.Graph, error) {
	// Counts gate: validates g and rejects overflow before allocation.
	wantV, wantE, err := ExtendedHanoiCounts(g)
	if err != nil {
		return nil, err
	}

	s := newScaffold(wantE)

	// Base case: triangle on {1,2,3}, the width-1 address space.
	a, b, c := s.allocVertex(), s.allocVertex(), s.allocVertex()
	s.addEdge(a, b)
	s.addEdge(a, c)
	s.addEdge(b, c)

	for i := firstHanoiRound; i <= g; i++ {
		// inc is the structure order (3^{i−1}) at the round's start; the
		// final round lays down three copies, intermediate rounds two.
		inc := s.vertexCount
		copies := hanoiCopies
		if i == g {
			copies = hanoiFinalCopies
		}

		// Duplicate every existing edge into each shifted copy.
		snap := s.edgeSnapshot()
		s.allocSpan(inc * int64(copies))
		for _, p := range snap {
			for k := 1; k <= copies; k++ {
				off := inc * int64(k)
				s.addEdge(p.U+off, p.V+off)
			}
		}

		// Bridge the first three copies by the tower move rule: the
		// corner x·y^{i−1} of copy x meets the corner y·x^{i−1} of copy
		// y, width i. Only the three all-x corners stay at degree 2.
		var x trit
		for x = 0; x < tritBase; x++ {
			y := (x + 1) % tritBase
			head := tritSeq{x}.then(tritRepeat(y, i-1))
			tail := tritSeq{y}.then(tritRepeat(x, i-1))
			s.addEdge(head.value()+1, tail.value()+1)
		}

		// Final round only: tie each corner x^g of the tripled structure
		// to the matching corner 1·0·x^{g−1} of the fourth copy.
		if i == g {
			for x = 0; x < tritBase; x++ {
				corner := tritRepeat(x, g)
				fourth := tritSeq{1, 0}.then(tritRepeat(x, g-1))
				s.addEdge(corner.value()+1, fourth.value()+1)
			}
		}
	}

	return s.graph(MethodExtendedHanoi, nameG(TagExtendedHanoi, g), wantV, wantE)
}
