// SPDX-License-Identifier: MIT
// Package: selfsim/generate
//
// api.go - the shared expansion skeleton and deterministic graph naming.
//
// Design contract (strict):
//   - All public entry points are implemented in impl_*.go and follow one
//     shape: validate → closed-form counts (overflow gate) → base case →
//     expand rounds → scaffold handoff with a count cross-check.
//   - expand is the single round driver: families differ only in what one
//     round does to the frontier, never in how rounds are sequenced.
//   - Graph names embed the family tag and every parameter, so calls with
//     identical parameters are indistinguishable in naming as well as in
//     structure.
//
// Entry points (declarations; see impl_*.go for contracts):
//
//	Pseudofractal(m, g)        — impl_pseudofractal.go
//	RestrictedPseudofractal(g) — impl_pseudofractal.go
//	EdgeCorona(q, g)           — impl_corona.go
//	Koch(g)                    — impl_koch.go
//	CayleyTree(b, g)           — impl_cayley.go
//	TernaryCayleyTree(g)       — impl_cayley.go
//	ExtendedHanoi(g)           — impl_hanoi.go
//	Apollonian(g)              — impl_apollonian.go

package generate

import "fmt"

// expand runs rounds 1..g of an expansion in order. The round callback
// owns the family's replacement rule; round numbers let rules that treat
// the first or last round specially stay explicit about it.
// Complexity: O(g) calls; the cost lives in the callback.
func expand(g int, round func(i int)) {
	for i := 1; i <= g; i++ {
		round(i)
	}
}

// nameG formats a deterministic graph name for single-parameter families,
// e.g. "koch(g=2)".
func nameG(tag string, g int) string {
	return fmt.Sprintf("%s(g=%d)", tag, g)
}

// namePG formats a deterministic graph name for families with one
// branching parameter, e.g. "pseudofractal(m=2,g=3)".
func namePG(tag, param string, p, g int) string {
	return fmt.Sprintf("%s(%s=%d,g=%d)", tag, param, p, g)
}
