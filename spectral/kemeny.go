// SPDX-License-Identifier: MIT
// Package: selfsim/spectral
//
// kemeny.go — the Kemeny constant of the random walk on a core graph.
//
// Contract:
//   • Input is read-only; the graph is never mutated.
//   • Deterministic for a fixed graph (vertex order is the sorted ID
//     order, and LAPACK symmetric eigendecomposition is deterministic).
//   • Only sentinel errors are returned; callers branch with errors.Is.

package spectral

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/selfsim/core"
)

// Sentinel errors for spectral computations.
var (
	// ErrNilGraph indicates a nil graph argument.
	ErrNilGraph = errors.New("spectral: nil graph")

	// ErrEmptyGraph indicates a graph with no vertices.
	ErrEmptyGraph = errors.New("spectral: empty graph")

	// ErrTooLarge indicates an order above MaxKemenyOrder; the dense
	// symmetric eigenproblem would not fit a sensible memory budget.
	ErrTooLarge = errors.New("spectral: graph order too large for dense eigensolve")

	// ErrIsolatedVertex indicates a vertex with no incident edge; the
	// random walk is undefined there.
	ErrIsolatedVertex = errors.New("spectral: isolated vertex")

	// ErrDisconnected indicates more than one connected component
	// (eigenvalue 1 of the transition matrix has multiplicity ≥ 2).
	ErrDisconnected = errors.New("spectral: graph is disconnected")

	// ErrEigenFailed indicates the symmetric eigensolver did not converge.
	ErrEigenFailed = errors.New("spectral: eigendecomposition failed")
)

// MaxKemenyOrder bounds the graph order accepted by Kemeny. The solver is
// dense: an n×n float64 symmetric matrix plus workspace, so 4096 keeps the
// footprint near a hundred megabytes.
const MaxKemenyOrder = 4096

// unitEigTol decides when a computed eigenvalue counts as 1, i.e. as an
// extra connected component.
const unitEigTol = 1e-8

// Kemeny returns the Kemeny constant of the random walk on g.
//
// The walk moves from a vertex along an incident edge with probability
// proportional to the edge weight. K is independent of the starting
// distribution; for the generator families it has published closed forms,
// which makes this function the numerical side of their validation story.
//
// Errors: ErrNilGraph, ErrEmptyGraph, ErrTooLarge, ErrIsolatedVertex,
// ErrDisconnected, ErrEigenFailed.
// Complexity: O(n³) time, O(n²) space for n = |V|.
func Kemeny(g *core.Graph) (float64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}

	n := g.VertexCount()
	if n == 0 {
		return 0, ErrEmptyGraph
	}
	if n > MaxKemenyOrder {
		return 0, fmt.Errorf("order %d > %d: %w", n, MaxKemenyOrder, ErrTooLarge)
	}

	// Index vertices by their sorted-ID position for a deterministic
	// matrix layout.
	ids := g.Vertices()
	index := make(map[int64]int, n)
	for i, id := range ids {
		index[id] = i
	}

	// Weighted degrees first: needed to scale every adjacency entry.
	edges := g.Edges()
	deg := make([]float64, n)
	for _, e := range edges {
		w := float64(e.Weight)
		deg[index[e.U]] += w
		deg[index[e.V]] += w
	}
	for i, d := range deg {
		if d == 0 {
			return 0, fmt.Errorf("vertex %d: %w", ids[i], ErrIsolatedVertex)
		}
	}

	// S = D^{−1/2} A D^{−1/2}: symmetric, same spectrum as P = D⁻¹A.
	s := mat.NewSymDense(n, nil)
	for _, e := range edges {
		i, j := index[e.U], index[e.V]
		s.SetSym(i, j, float64(e.Weight)/math.Sqrt(deg[i]*deg[j]))
	}

	var eig mat.EigenSym
	if !eig.Factorize(s, false) {
		return 0, ErrEigenFailed
	}
	vals := eig.Values(nil)
	sort.Sort(sort.Reverse(sort.Float64Slice(vals)))

	// vals[0] ≈ 1 is the stationary eigenvalue. A second eigenvalue at 1
	// means a second component, where the Kemeny constant diverges.
	if n > 1 && vals[1] > 1-unitEigTol {
		return 0, ErrDisconnected
	}

	var k float64
	for i := 1; i < n; i++ {
		k += 1 / (1 - vals[i])
	}

	return k, nil
}
