// fetch.go — the `selfsim fetch` command: dataset download + load.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/selfsim/dataset"
)

// newFetchCmd downloads a registered dataset, materializes its edge list
// and loads it into the core container to report its size.
func newFetchCmd() *cobra.Command {
	var (
		registryPath string
		dir          string
	)

	cmd := &cobra.Command{
		Use:   "fetch <dataset>",
		Short: "Download a registered real-world dataset and load it",
		Long:  "Download a KONECT (.tar.bz2) or SNAP (.gz) dataset by registry name, materialize its edge list, and load it into the graph container. Use --registry to layer a TOML catalog over the built-in one.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			reg := dataset.BuiltinRegistry()
			if registryPath != "" {
				var err error
				if reg, err = dataset.LoadRegistry(registryPath); err != nil {
					return err
				}
			}

			src, err := reg.Lookup(args[0])
			if err != nil {
				return fmt.Errorf("%w (known: %v)", err, reg.Names())
			}

			path, err := dataset.Fetch(cmd.Context(), logger, src, dir)
			if err != nil {
				return err
			}

			g, err := dataset.Load(src.Name, path)
			if err != nil {
				return err
			}
			logger.Info("loaded dataset", "dataset", g.Name(),
				"vertices", g.VertexCount(), "edges", g.EdgeCount(), "path", path)

			return nil
		},
	}

	cmd.Flags().StringVar(&registryPath, "registry", "", "TOML dataset catalog layered over the built-in registry")
	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "directory for the materialized edge list")

	return cmd
}
