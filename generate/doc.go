// SPDX-License-Identifier: MIT
// Package: selfsim/generate
//
// Package generate constructs the deterministic self-similar network
// families used to validate spectral and Markov-chain metrics against
// closed-form predictions.
//
// Families (one public entry point each, implemented in impl_*.go):
//
//	Pseudofractal(m, g)           — extended pseudofractal network
//	RestrictedPseudofractal(g)    — the m = 1 special case
//	EdgeCorona(q, g)              — edge-corona clique network
//	Koch(g)                       — Koch network
//	CayleyTree(b, g)              — b-ary Cayley tree
//	TernaryCayleyTree(g)          — the b = 3 instantiation
//	ExtendedHanoi(g)              — extended Hanoi graph
//	Apollonian(g)                 — Apollonian network
//
// Every family shares one expansion skeleton: start from the base case,
// run g rounds that replace a frontier of structural units (edges,
// triangles or tree leaves) with a larger frontier plus freshly allocated
// vertices, then hand the accumulated vertex set and edge-weight map to
// the core container exactly once. Vertex IDs are allocated monotonically
// from 1, so generation g always contains generation g−1 as the induced
// subgraph on its first V(g−1) vertices (pseudofractal, Koch, Cayley and
// Apollonian families).
//
// Correctness is falsifiable by formula: the exported XxxCounts functions
// return the published closed-form vertex/edge counts, and each entry
// point verifies its construction against them before returning.
//
// Contract (strict, per entry point):
//   - Parameters are validated before any allocation: generation index
//     g ≥ 0, branching m ≥ 1, clique order q ≥ 0, tree degree b ≥ 2
//     (ErrInvalidParameter).
//   - Projected counts are computed in checked int64 arithmetic before
//     construction; a count that would wrap returns ErrOverflow with
//     nothing allocated. Growth is exponential (bases 2m+1,
//     (q+1)(q+2)/2, 4, b−1, 3, 3), so even modest g can be infeasible.
//   - g = 0 yields exactly the documented base case.
//   - Construction is pure: no state survives a call, identical
//     parameters produce identity-identical graphs, and all weights are 1.
//   - Single-threaded by design; no goroutines, no locks, no I/O.
package generate
