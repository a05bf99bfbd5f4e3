// File: kemeny_test.go
// Package spectral_test checks the Kemeny computation against graphs
// whose constant is known exactly: complete graphs (K = (n−1)²/n) and
// stars (K = b − 1/2), plus every error path.
package spectral_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/selfsim/core"
	"github.com/katalvlaran/selfsim/generate"
	"github.com/katalvlaran/selfsim/spectral"
)

// kemenyTol absorbs LAPACK rounding on tiny matrices.
const kemenyTol = 1e-9

// buildGraph assembles a core graph from explicit weighted pairs.
func buildGraph(t *testing.T, name string, vertices []int64, pairs map[[2]int64]int64) *core.Graph {
	t.Helper()

	ws := make(map[core.Pair]int64, len(pairs))
	for uv, w := range pairs {
		p, err := core.NewPair(uv[0], uv[1])
		require.NoError(t, err)
		ws[p] = w
	}
	g, err := core.NewGraph(name, vertices, ws)
	require.NoError(t, err)

	return g
}

// TestKemeny_CompleteGraphs: the generation-0 families are complete
// graphs, where K = (n−1)²/n.
func TestKemeny_CompleteGraphs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		build func() (*core.Graph, error)
		want  float64
	}{
		{"K2", func() (*core.Graph, error) { return generate.EdgeCorona(0, 0) }, 0.5},
		{"K3", func() (*core.Graph, error) { return generate.Koch(0) }, 4.0 / 3.0},
		{"K4", func() (*core.Graph, error) { return generate.Apollonian(0) }, 2.25},
		{"K5", func() (*core.Graph, error) { return generate.EdgeCorona(3, 0) }, 3.2},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			g, err := tc.build()
			require.NoError(t, err)
			k, err := spectral.Kemeny(g)
			require.NoError(t, err)
			require.InDelta(t, tc.want, k, kemenyTol)
		})
	}
}

// TestKemeny_Stars: a depth-1 Cayley tree is the star K_{1,b}, whose
// transition spectrum is {1, 0^{b−1}, −1}, so K = (b−1) + 1/2.
func TestKemeny_Stars(t *testing.T) {
	t.Parallel()

	for b := 2; b <= 5; b++ {
		g, err := generate.CayleyTree(b, 1)
		require.NoError(t, err)
		k, err := spectral.Kemeny(g)
		require.NoError(t, err)
		require.InDelta(t, float64(b)-0.5, k, kemenyTol, "star with %d leaves", b)
	}
}

// TestKemeny_WeightScaleInvariance: uniform weights cancel out of the
// transition matrix, so the constant matches the unweighted value.
func TestKemeny_WeightScaleInvariance(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	g := buildGraph(t, "heavy-triangle", []int64{1, 2, 3}, map[[2]int64]int64{
		{1, 2}: 7, {1, 3}: 7, {2, 3}: 7,
	})
	k, err := spectral.Kemeny(g)
	require.NoError(err)
	require.InDelta(4.0/3.0, k, kemenyTol)
}

func TestKemeny_Disconnected(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	g := buildGraph(t, "two-triangles", []int64{1, 2, 3, 4, 5, 6}, map[[2]int64]int64{
		{1, 2}: 1, {1, 3}: 1, {2, 3}: 1,
		{4, 5}: 1, {4, 6}: 1, {5, 6}: 1,
	})
	_, err := spectral.Kemeny(g)
	require.ErrorIs(err, spectral.ErrDisconnected)
}

func TestKemeny_Errors(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	_, err := spectral.Kemeny(nil)
	require.ErrorIs(err, spectral.ErrNilGraph)

	empty, err := core.NewGraph("empty", nil, nil)
	require.NoError(err)
	_, err = spectral.Kemeny(empty)
	require.ErrorIs(err, spectral.ErrEmptyGraph)

	isolated := buildGraph(t, "isolated", []int64{1, 2, 3}, map[[2]int64]int64{{1, 2}: 1})
	_, err = spectral.Kemeny(isolated)
	require.ErrorIs(err, spectral.ErrIsolatedVertex)

	// A depth-11 ternary tree has 6142 vertices, past the dense solver
	// bound.
	big, err := generate.TernaryCayleyTree(11)
	require.NoError(err)
	_, err = spectral.Kemeny(big)
	require.ErrorIs(err, spectral.ErrTooLarge)
}

// TestKemeny_FamilyMonotone: within one family the constant grows with
// the generation (the walk has more structure to traverse).
func TestKemeny_FamilyMonotone(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	var prev float64
	for g := 0; g <= 3; g++ {
		gr, err := generate.Apollonian(g)
		require.NoError(err)
		k, err := spectral.Kemeny(gr)
		require.NoError(err)
		require.Greater(k, prev, "g=%d", g)
		prev = k
	}
}
