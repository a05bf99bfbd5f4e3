// gen.go — the `selfsim gen` command: family graph → edge-list text.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/selfsim/core"
)

// newGenCmd builds a family graph and writes its edge list to stdout or
// to the --output file. The format is the same the dataset scanner reads:
// a comment header followed by "u v w" lines.
func newGenCmd() *cobra.Command {
	var (
		params familyParams
		output string
	)

	cmd := &cobra.Command{
		Use:   "gen <family>",
		Short: "Generate a family graph and emit its edge list",
		Long:  "Generate one of the self-similar families (" + familyNames() + ") and emit a %-commented whitespace-delimited edge list.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			g, err := buildFamily(args[0], params)
			if err != nil {
				return err
			}
			logger.Info("generated graph",
				"name", g.Name(), "vertices", g.VertexCount(), "edges", g.EdgeCount())

			out := io.Writer(os.Stdout)
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}

			return writeEdgeList(out, g)
		},
	}

	addFamilyFlags(cmd, &params)
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the edge list to a file instead of stdout")

	return cmd
}

// writeEdgeList emits the graph as commented edge-list text.
func writeEdgeList(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%% %s\n", g.Name())
	fmt.Fprintf(bw, "%% vertices=%d edges=%d\n", g.VertexCount(), g.EdgeCount())
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "%d %d %d\n", e.U, e.V, e.Weight)
	}

	return bw.Flush()
}
