// Package spectral computes random-walk spectral invariants of a core
// graph, primarily the Kemeny constant — the family generators exist to
// validate exactly this kind of metric against closed-form predictions,
// and this package closes the loop numerically.
//
// The Kemeny constant of the random walk on a connected weighted
// undirected graph is
//
//	K = Σ_{i≥2} 1/(1 − λ_i)
//
// where λ_1 = 1 > λ_2 ≥ … ≥ λ_n are the eigenvalues of the transition
// matrix P = D⁻¹A. The implementation diagonalizes the similar symmetric
// matrix S = D^{−1/2} A D^{−1/2} (same spectrum, numerically stable) with
// gonum's dense symmetric eigensolver, so it holds an n×n matrix in
// memory: orders above MaxKemenyOrder are rejected rather than attempted.
//
// Errors:
//
//	ErrNilGraph       - nil graph.
//	ErrEmptyGraph     - graph with no vertices.
//	ErrTooLarge       - order exceeds MaxKemenyOrder.
//	ErrIsolatedVertex - a vertex with no incident edge (no walk exists).
//	ErrDisconnected   - eigenvalue 1 has multiplicity ≥ 2.
//	ErrEigenFailed    - the eigensolver did not converge.
package spectral
