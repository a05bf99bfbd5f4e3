// family.go — shared family-argument parsing for gen/render/kemeny.
package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/selfsim/core"
	"github.com/katalvlaran/selfsim/generate"
)

// familyParams collects the flags shared by the graph-producing commands.
type familyParams struct {
	g int // generation index, every family
	m int // pseudofractal branching
	q int // edge-corona clique order
	b int // Cayley tree degree
}

// addFamilyFlags registers the shared family flags on cmd.
func addFamilyFlags(cmd *cobra.Command, p *familyParams) {
	cmd.Flags().IntVarP(&p.g, "generation", "g", 2, "generation index (expansion rounds)")
	cmd.Flags().IntVarP(&p.m, "branching", "m", 1, "pseudofractal branching parameter")
	cmd.Flags().IntVarP(&p.q, "clique", "q", 1, "edge-corona clique order")
	cmd.Flags().IntVarP(&p.b, "degree", "b", 3, "Cayley tree degree")
}

// builders maps CLI family names onto the generate entry points.
var builders = map[string]func(p familyParams) (*core.Graph, error){
	"pseudofractal": func(p familyParams) (*core.Graph, error) { return generate.Pseudofractal(p.m, p.g) },
	"restricted":    func(p familyParams) (*core.Graph, error) { return generate.RestrictedPseudofractal(p.g) },
	"corona":        func(p familyParams) (*core.Graph, error) { return generate.EdgeCorona(p.q, p.g) },
	"koch":          func(p familyParams) (*core.Graph, error) { return generate.Koch(p.g) },
	"cayley":        func(p familyParams) (*core.Graph, error) { return generate.CayleyTree(p.b, p.g) },
	"cayley3":       func(p familyParams) (*core.Graph, error) { return generate.TernaryCayleyTree(p.g) },
	"hanoi":         func(p familyParams) (*core.Graph, error) { return generate.ExtendedHanoi(p.g) },
	"apollonian":    func(p familyParams) (*core.Graph, error) { return generate.Apollonian(p.g) },
}

// familyNames returns the accepted family arguments, sorted, for help and
// error text.
func familyNames() string {
	names := make([]string, 0, len(builders))
	for n := range builders {
		names = append(names, n)
	}
	sort.Strings(names)

	return strings.Join(names, "|")
}

// buildFamily constructs the requested family graph.
func buildFamily(family string, p familyParams) (*core.Graph, error) {
	build, ok := builders[family]
	if !ok {
		return nil, fmt.Errorf("unknown family %q (expected %s)", family, familyNames())
	}

	return build(p)
}
