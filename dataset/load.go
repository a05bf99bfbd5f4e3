// Package dataset: edge-list file → core graph.
package dataset

import (
	"fmt"
	"os"

	"github.com/katalvlaran/selfsim/core"
)

// Load reads the whitespace-delimited edge-list file at path into a graph
// named name, assigning DefaultWeight to every edge. Endpoints join the
// vertex set implicitly; duplicate and reversed pairs collapse onto one
// canonical edge. Any malformed line or self-loop aborts construction —
// no partial graph is returned.
//
// Errors: file I/O errors, ErrMalformedLine, core pair validation errors.
// Complexity: O(file size) time, O(V + E) space.
func Load(name, path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	return core.NewGraphFromSource(name, NewScanner(f), DefaultWeight)
}
