// kemeny.go — the `selfsim kemeny` command: family graph → Kemeny constant.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/selfsim/spectral"
)

// newKemenyCmd builds a family graph and prints the Kemeny constant of
// its random walk — the quantity the families' closed-form literature
// predicts, computed numerically.
func newKemenyCmd() *cobra.Command {
	var params familyParams

	cmd := &cobra.Command{
		Use:   "kemeny <family>",
		Short: "Compute the random-walk Kemeny constant of a family graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			g, err := buildFamily(args[0], params)
			if err != nil {
				return err
			}
			logger.Debug("generated graph", "name", g.Name(),
				"vertices", g.VertexCount(), "edges", g.EdgeCount())

			k, err := spectral.Kemeny(g)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: V=%d E=%d kemeny=%.9f\n",
				g.Name(), g.VertexCount(), g.EdgeCount(), k)

			return nil
		},
	}

	addFamilyFlags(cmd, &params)

	return cmd
}
