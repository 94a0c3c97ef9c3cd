// SPDX-License-Identifier: MIT

// Package matrix: central validators shared by the checked entry points.
// Validators return plain sentinels (optionally with positional context);
// callers add their operation tag via matrixErrorf.
package matrix

import "fmt"

// validateLen checks that a raw buffer carries exactly want elements.
// Complexity: O(1).
func validateLen(got, want int) error {
	if got != want {
		return fmt.Errorf("got %d elements, want %d: %w", got, want, ErrBadShape)
	}

	return nil
}

// validateFinite rejects the first NaN or ±Inf cell, reporting its flat index.
// Complexity: O(n).
func validateFinite(cells []float32) error {
	for i, v := range cells {
		if isNonFinite(float64(v)) {
			return fmt.Errorf("cell %d = %v: %w", i, v, ErrNaNInf)
		}
	}

	return nil
}

// IsFinite reports whether every cell of m is finite.
func (m Matrix4) IsFinite() bool {
	for _, v := range m.data {
		if isNonFinite(float64(v)) {
			return false
		}
	}

	return true
}
