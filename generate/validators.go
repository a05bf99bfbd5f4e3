// Package generate provides validation helpers that enforce parameter
// contracts in the family entry points.
//
// Each helper wraps ErrInvalidParameter with the entry-point method tag so
// callers can branch with errors.Is while logs stay self-describing.
package generate

import "fmt"

// validateGeneration ensures the generation index g is ≥ MinGeneration.
// Complexity: O(1) time and space.
func validateGeneration(method string, g int) error {
	if g < MinGeneration {
		return fmt.Errorf("%s: generation index must be ≥ %d, got %d: %w",
			method, MinGeneration, g, ErrInvalidParameter)
	}

	return nil
}

// validateMin ensures a named family parameter is ≥ min.
// Complexity: O(1) time and space.
func validateMin(method, param string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s must be ≥ %d, got %d: %w",
			method, param, min, got, ErrInvalidParameter)
	}

	return nil
}
