// SPDX-License-Identifier: MIT
// Package builder provides validation helpers to enforce parameter
// contracts in Constructor factories.
package builder

import "fmt"

// validateMin ensures that got ≥ min, reporting ErrTooFewNodes otherwise.
// Complexity: O(1).
func validateMin(method, param string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, got, min, ErrTooFewNodes)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
// NaN fails both comparisons and is rejected too.
// Complexity: O(1).
func validateProbability(method string, p float64) error {
	if !(p >= MinProbability && p <= MaxProbability) {
		return fmt.Errorf("%s: p=%g not in [%.1f,%.1f]: %w",
			method, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}

	return nil
}
