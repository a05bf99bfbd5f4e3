// File: generate_test.go
// Package generate_test contains functional tests for the family
// generators: closed-form counts, structural invariants shared by every
// family, determinism, self-similarity and parameter validation.
package generate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/selfsim/core"
	"github.com/katalvlaran/selfsim/generate"
)

// requireConnected walks the graph from vertex 1 and asserts every vertex
// is reached.
func requireConnected(t *testing.T, g *core.Graph) {
	t.Helper()

	seen := map[int64]struct{}{1: {}}
	queue := []int64{1}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		ns, err := g.NeighborIDs(u)
		require.NoError(t, err)
		for _, n := range ns {
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			queue = append(queue, n)
		}
	}
	require.Equal(t, g.VertexCount(), len(seen), "graph must be connected")
}

// requireFamilyInvariants asserts the contract every generator output
// satisfies: vertices are exactly 1..V, every edge has weight 1 and the
// graph is connected.
func requireFamilyInvariants(t *testing.T, g *core.Graph) {
	t.Helper()

	ids := g.Vertices()
	require.Len(t, ids, g.VertexCount())
	for i, id := range ids {
		require.Equal(t, int64(i+1), id, "vertex IDs must be dense 1..V")
	}

	for _, e := range g.Edges() {
		require.Less(t, e.U, e.V, "edges must be canonical")
		require.Equal(t, int64(1), e.Weight, "generated edges carry weight 1")
	}

	requireConnected(t, g)
}

// familyCase binds one parameterized build to its expected closed-form
// counts and name.
type familyCase struct {
	name  string
	build func() (*core.Graph, error)
	wantV int64
	wantE int64
	gname string
}

// familyCases spans every entry point over small generations with counts
// computed by hand from the published formulas.
func familyCases() []familyCase {
	return []familyCase{
		{"Pseudofractal(1,0)", func() (*core.Graph, error) { return generate.Pseudofractal(1, 0) }, 3, 3, "pseudofractal(m=1,g=0)"},
		{"Pseudofractal(1,1)", func() (*core.Graph, error) { return generate.Pseudofractal(1, 1) }, 6, 9, "pseudofractal(m=1,g=1)"},
		{"Pseudofractal(1,2)", func() (*core.Graph, error) { return generate.Pseudofractal(1, 2) }, 15, 27, "pseudofractal(m=1,g=2)"},
		{"Pseudofractal(1,3)", func() (*core.Graph, error) { return generate.Pseudofractal(1, 3) }, 42, 81, "pseudofractal(m=1,g=3)"},
		{"Pseudofractal(2,1)", func() (*core.Graph, error) { return generate.Pseudofractal(2, 1) }, 9, 15, "pseudofractal(m=2,g=1)"},
		{"Pseudofractal(2,2)", func() (*core.Graph, error) { return generate.Pseudofractal(2, 2) }, 39, 75, "pseudofractal(m=2,g=2)"},
		{"Pseudofractal(3,2)", func() (*core.Graph, error) { return generate.Pseudofractal(3, 2) }, 75, 147, "pseudofractal(m=3,g=2)"},
		{"RestrictedPseudofractal(2)", func() (*core.Graph, error) { return generate.RestrictedPseudofractal(2) }, 15, 27, "pseudofractal(m=1,g=2)"},
		{"EdgeCorona(0,5)", func() (*core.Graph, error) { return generate.EdgeCorona(0, 5) }, 2, 1, "edge_corona(q=0,g=5)"},
		{"EdgeCorona(1,2)", func() (*core.Graph, error) { return generate.EdgeCorona(1, 2) }, 15, 27, "edge_corona(q=1,g=2)"},
		{"EdgeCorona(2,0)", func() (*core.Graph, error) { return generate.EdgeCorona(2, 0) }, 4, 6, "edge_corona(q=2,g=0)"},
		{"EdgeCorona(2,1)", func() (*core.Graph, error) { return generate.EdgeCorona(2, 1) }, 16, 36, "edge_corona(q=2,g=1)"},
		{"EdgeCorona(2,2)", func() (*core.Graph, error) { return generate.EdgeCorona(2, 2) }, 88, 216, "edge_corona(q=2,g=2)"},
		{"EdgeCorona(3,1)", func() (*core.Graph, error) { return generate.EdgeCorona(3, 1) }, 35, 100, "edge_corona(q=3,g=1)"},
		{"Koch(0)", func() (*core.Graph, error) { return generate.Koch(0) }, 3, 3, "koch(g=0)"},
		{"Koch(1)", func() (*core.Graph, error) { return generate.Koch(1) }, 9, 12, "koch(g=1)"},
		{"Koch(2)", func() (*core.Graph, error) { return generate.Koch(2) }, 33, 48, "koch(g=2)"},
		{"Koch(3)", func() (*core.Graph, error) { return generate.Koch(3) }, 129, 192, "koch(g=3)"},
		{"CayleyTree(2,3)", func() (*core.Graph, error) { return generate.CayleyTree(2, 3) }, 7, 6, "cayley_tree(b=2,g=3)"},
		{"CayleyTree(3,0)", func() (*core.Graph, error) { return generate.CayleyTree(3, 0) }, 1, 0, "cayley_tree(b=3,g=0)"},
		{"CayleyTree(3,1)", func() (*core.Graph, error) { return generate.CayleyTree(3, 1) }, 4, 3, "cayley_tree(b=3,g=1)"},
		{"CayleyTree(3,3)", func() (*core.Graph, error) { return generate.CayleyTree(3, 3) }, 22, 21, "cayley_tree(b=3,g=3)"},
		{"CayleyTree(4,2)", func() (*core.Graph, error) { return generate.CayleyTree(4, 2) }, 17, 16, "cayley_tree(b=4,g=2)"},
		{"TernaryCayleyTree(2)", func() (*core.Graph, error) { return generate.TernaryCayleyTree(2) }, 10, 9, "cayley_tree(b=3,g=2)"},
		{"ExtendedHanoi(0)", func() (*core.Graph, error) { return generate.ExtendedHanoi(0) }, 3, 3, "hanoi(g=0)"},
		{"ExtendedHanoi(1)", func() (*core.Graph, error) { return generate.ExtendedHanoi(1) }, 3, 3, "hanoi(g=1)"},
		{"ExtendedHanoi(2)", func() (*core.Graph, error) { return generate.ExtendedHanoi(2) }, 12, 18, "hanoi(g=2)"},
		{"ExtendedHanoi(3)", func() (*core.Graph, error) { return generate.ExtendedHanoi(3) }, 36, 54, "hanoi(g=3)"},
		{"ExtendedHanoi(4)", func() (*core.Graph, error) { return generate.ExtendedHanoi(4) }, 108, 162, "hanoi(g=4)"},
		{"Apollonian(0)", func() (*core.Graph, error) { return generate.Apollonian(0) }, 4, 6, "apollonian(g=0)"},
		{"Apollonian(1)", func() (*core.Graph, error) { return generate.Apollonian(1) }, 8, 18, "apollonian(g=1)"},
		{"Apollonian(2)", func() (*core.Graph, error) { return generate.Apollonian(2) }, 20, 54, "apollonian(g=2)"},
		{"Apollonian(3)", func() (*core.Graph, error) { return generate.Apollonian(3) }, 56, 162, "apollonian(g=3)"},
	}
}

// TestFamilies_ClosedFormCounts builds each case and checks the output
// against hand-evaluated formulas, the shared invariants and the
// deterministic name.
func TestFamilies_ClosedFormCounts(t *testing.T) {
	t.Parallel()

	for _, tc := range familyCases() {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			g, err := tc.build()
			require.NoError(t, err)
			require.Equal(t, tc.wantV, int64(g.VertexCount()), "vertex count")
			require.Equal(t, tc.wantE, int64(g.EdgeCount()), "edge count")
			require.Equal(t, tc.gname, g.Name())
			requireFamilyInvariants(t, g)
		})
	}
}

// TestCounts_MatchBuilds checks that the exported Counts functions agree
// with what the generators actually build across a parameter sweep wider
// than the hand-evaluated table.
func TestCounts_MatchBuilds(t *testing.T) {
	t.Parallel()

	for g := 0; g <= 4; g++ {
		for m := 1; m <= 3; m++ {
			v, e, err := generate.PseudofractalCounts(m, g)
			require.NoError(t, err)
			gr, err := generate.Pseudofractal(m, g)
			require.NoError(t, err)
			require.Equal(t, v, int64(gr.VertexCount()), "pseudofractal m=%d g=%d", m, g)
			require.Equal(t, e, int64(gr.EdgeCount()), "pseudofractal m=%d g=%d", m, g)
		}
		for q := 0; q <= 2; q++ {
			v, e, err := generate.EdgeCoronaCounts(q, g)
			require.NoError(t, err)
			gr, err := generate.EdgeCorona(q, g)
			require.NoError(t, err)
			require.Equal(t, v, int64(gr.VertexCount()), "corona q=%d g=%d", q, g)
			require.Equal(t, e, int64(gr.EdgeCount()), "corona q=%d g=%d", q, g)
		}
		for b := 2; b <= 5; b++ {
			v, e, err := generate.CayleyTreeCounts(b, g)
			require.NoError(t, err)
			require.Equal(t, v-1, e, "a tree has E = V - 1")
			gr, err := generate.CayleyTree(b, g)
			require.NoError(t, err)
			require.Equal(t, v, int64(gr.VertexCount()), "cayley b=%d g=%d", b, g)
		}
	}
}

// TestFamilies_Deterministic rebuilds a representative of each family and
// requires identical vertex and edge sequences.
func TestFamilies_Deterministic(t *testing.T) {
	t.Parallel()

	builds := map[string]func() (*core.Graph, error){
		"pseudofractal": func() (*core.Graph, error) { return generate.Pseudofractal(2, 3) },
		"corona":        func() (*core.Graph, error) { return generate.EdgeCorona(2, 2) },
		"koch":          func() (*core.Graph, error) { return generate.Koch(3) },
		"cayley":        func() (*core.Graph, error) { return generate.CayleyTree(4, 3) },
		"hanoi":         func() (*core.Graph, error) { return generate.ExtendedHanoi(4) },
		"apollonian":    func() (*core.Graph, error) { return generate.Apollonian(3) },
	}

	for name, build := range builds {
		name, build := name, build
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			first, err := build()
			require.NoError(t, err)
			second, err := build()
			require.NoError(t, err)

			require.Equal(t, first.Name(), second.Name())
			require.Equal(t, first.Vertices(), second.Vertices())
			require.Equal(t, first.Edges(), second.Edges())
		})
	}
}

// TestFamilies_SelfSimilarPrefix checks the vertex-prefix property of the
// cumulative families: the first V(g-1) vertices of generation g induce
// exactly the generation g-1 graph. The Hanoi family is excluded, its
// copies renumber old structure instead of extending it.
func TestFamilies_SelfSimilarPrefix(t *testing.T) {
	t.Parallel()

	pairsOf := func(build func(g int) (*core.Graph, error), g int) (small, big *core.Graph) {
		s, err := build(g - 1)
		require.NoError(t, err)
		b, err := build(g)
		require.NoError(t, err)

		return s, b
	}

	families := map[string]func(g int) (*core.Graph, error){
		"pseudofractal": func(g int) (*core.Graph, error) { return generate.Pseudofractal(2, g) },
		"corona":        func(g int) (*core.Graph, error) { return generate.EdgeCorona(2, g) },
		"koch":          generate.Koch,
		"cayley":        func(g int) (*core.Graph, error) { return generate.CayleyTree(3, g) },
		"apollonian":    generate.Apollonian,
	}

	for name, build := range families {
		name, build := name, build
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			for g := 1; g <= 3; g++ {
				small, big := pairsOf(build, g)
				limit := int64(small.VertexCount())

				// Every small edge survives into the big graph.
				for _, e := range small.Edges() {
					require.True(t, big.HasEdge(e.U, e.V),
						"g=%d: edge {%d,%d} lost in next generation", g, e.U, e.V)
				}

				// And no extra edge hides inside the vertex prefix.
				induced := 0
				for _, e := range big.Edges() {
					if e.U <= limit && e.V <= limit {
						induced++
					}
				}
				require.Equal(t, small.EdgeCount(), induced,
					"g=%d: induced prefix must equal the previous generation", g)
			}
		})
	}
}

// TestEdgeCorona_UnitCliqueIsRestrictedPseudofractal: attaching a
// 1-clique per edge over the K_3 base is the restricted pseudofractal
// construction, vertex for vertex and edge for edge.
func TestEdgeCorona_UnitCliqueIsRestrictedPseudofractal(t *testing.T) {
	t.Parallel()

	for g := 0; g <= 3; g++ {
		corona, err := generate.EdgeCorona(1, g)
		require.NoError(t, err)
		restricted, err := generate.RestrictedPseudofractal(g)
		require.NoError(t, err)

		require.Equal(t, restricted.Vertices(), corona.Vertices(), "g=%d", g)
		require.Equal(t, restricted.Edges(), corona.Edges(), "g=%d", g)
	}
}

// TestCayleyTree_Degrees: interior vertices reach degree b, final-round
// leaves stay at degree 1, b = 2 degenerates to a path.
func TestCayleyTree_Degrees(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	g, err := generate.CayleyTree(3, 3)
	require.NoError(err)

	var interior, leaves int
	for _, id := range g.Vertices() {
		d, err := g.Degree(id)
		require.NoError(err)
		switch d {
		case 3:
			interior++
		case 1:
			leaves++
		default:
			require.Failf("unexpected degree", "vertex %d has degree %d", id, d)
		}
	}
	// V = 22 at b = 3, g = 3; the last round added 12 leaves.
	require.Equal(10, interior)
	require.Equal(12, leaves)

	// b = 2: a path of 1 + 2g vertices with exactly two leaves.
	path, err := generate.CayleyTree(2, 4)
	require.NoError(err)
	require.Equal(9, path.VertexCount())
	leaves = 0
	for _, id := range path.Vertices() {
		d, err := path.Degree(id)
		require.NoError(err)
		require.LessOrEqual(d, 2)
		if d == 1 {
			leaves++
		}
	}
	require.Equal(2, leaves)
}

// TestFamilies_InvalidParameters: every entry point rejects out-of-domain
// parameters with ErrInvalidParameter before building anything.
func TestFamilies_InvalidParameters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		build func() (*core.Graph, error)
	}{
		{"Pseudofractal m=0", func() (*core.Graph, error) { return generate.Pseudofractal(0, 2) }},
		{"Pseudofractal g=-1", func() (*core.Graph, error) { return generate.Pseudofractal(1, -1) }},
		{"RestrictedPseudofractal g=-1", func() (*core.Graph, error) { return generate.RestrictedPseudofractal(-1) }},
		{"EdgeCorona q=-1", func() (*core.Graph, error) { return generate.EdgeCorona(-1, 2) }},
		{"EdgeCorona g=-1", func() (*core.Graph, error) { return generate.EdgeCorona(1, -1) }},
		{"Koch g=-1", func() (*core.Graph, error) { return generate.Koch(-1) }},
		{"CayleyTree b=1", func() (*core.Graph, error) { return generate.CayleyTree(1, 2) }},
		{"CayleyTree g=-1", func() (*core.Graph, error) { return generate.CayleyTree(3, -1) }},
		{"TernaryCayleyTree g=-1", func() (*core.Graph, error) { return generate.TernaryCayleyTree(-1) }},
		{"ExtendedHanoi g=-1", func() (*core.Graph, error) { return generate.ExtendedHanoi(-1) }},
		{"Apollonian g=-1", func() (*core.Graph, error) { return generate.Apollonian(-1) }},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := tc.build()
			require.Nil(t, g)
			require.ErrorIs(t, err, generate.ErrInvalidParameter)
		})
	}
}

// TestFamilies_OverflowGate: generations whose closed-form counts exceed
// int64 fail with ErrOverflow before any allocation happens.
func TestFamilies_OverflowGate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		build func() (*core.Graph, error)
	}{
		{"Pseudofractal", func() (*core.Graph, error) { return generate.Pseudofractal(1, 60) }},
		{"EdgeCorona", func() (*core.Graph, error) { return generate.EdgeCorona(9, 20) }},
		{"Koch", func() (*core.Graph, error) { return generate.Koch(40) }},
		{"CayleyTree", func() (*core.Graph, error) { return generate.CayleyTree(20, 30) }},
		{"ExtendedHanoi", func() (*core.Graph, error) { return generate.ExtendedHanoi(50) }},
		{"Apollonian", func() (*core.Graph, error) { return generate.Apollonian(45) }},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := tc.build()
			require.Nil(t, g)
			require.ErrorIs(t, err, generate.ErrOverflow)
		})
	}

	// The counts functions gate the same way, without a build.
	_, _, err := generate.KochCounts(40)
	require.ErrorIs(t, err, generate.ErrOverflow)
	_, _, err = generate.ApollonianCounts(45)
	require.ErrorIs(t, err, generate.ErrOverflow)
}
