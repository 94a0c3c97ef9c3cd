// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private kernels.
//
// Purpose:
//   - Expose the UNEXPORTED minor table to matrix_test ONLY, so the 12
//     sub-determinants can be checked independently of the determinant.
//   - Compiled only with the package tests (file name ends in _test.go).

// ExportedMinors exposes the float64 minor table of m for white-box tests.
func ExportedMinors(m *Matrix4) [12]float64 {
	d := m.widen()

	return minors(&d)
}
