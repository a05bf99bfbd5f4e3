// Package selfsim builds deterministic self-similar networks whose
// structural properties are known in closed form — fixtures for validating
// spectral and Markov-chain metrics against analytic predictions.
//
// 🚀 What is selfsim?
//
//	A small, deterministic library that brings together:
//		• Core container: weighted undirected graphs over dense integer IDs
//		• Generators: extended pseudofractal, edge-corona clique, Koch,
//		  b-ary Cayley tree, extended Hanoi, Apollonian (plus the
//		  restricted pseudofractal variant)
//		• Spectral checks: random-walk Kemeny constant via gonum
//		• Datasets: KONECT/SNAP edge-list fetching into the same container
//
// ✨ Why choose selfsim?
//
//   - Falsifiable by formula – every family ships its vertex/edge-count
//     closed forms, and construction is rejected up front on overflow
//   - Deterministic – identical parameters yield identical graphs, down to
//     the vertex numbering
//   - Rock-solid guarantees – sentinel errors, no panics in algorithms,
//     no shared state between constructions
//
// Under the hood, everything is organized under four subpackages:
//
//	core/     — Graph container, canonical edge pairs, stream construction
//	generate/ — the seven recursive family generators and count formulas
//	spectral/ — Kemeny constant of the random walk on a generated graph
//	dataset/  — real-world edge-list retrieval (KONECT .tar.bz2, SNAP .gz)
//
// Quick ASCII example (pseudofractal, one round, m=1):
//
//	    1───2          each edge of the base triangle {1,2,3}
//	     \ /     ⇒     gains one fresh vertex tied to both of
//	      3            its endpoints: 4~{1,2}, 5~{1,3}, 6~{2,3}
//
// Growth is exponential in the generation index: moderate indices (above
// ~20 for base-3/base-4 families) are computationally infeasible and are
// rejected by the closed-form overflow gate rather than attempted.
//
//	go get github.com/katalvlaran/selfsim
package selfsim
