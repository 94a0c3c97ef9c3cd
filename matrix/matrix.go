// SPDX-License-Identifier: MIT

// Package matrix: storage and construction of Matrix4 values.
//
// What & Why:
//
//	Constructors are the only way a Matrix4 acquires its 16 cells. Identity
//	and Zero never fail; New copies a fixed array verbatim; FromSlice is the
//	checked entry point for collaborators that hand over raw buffers (mesh
//	loaders, scene files) and enforces the shape and numeric policy.
//
// Complexity:
//
//	Every constructor is O(16) time and allocation-free.
package matrix

// Identity returns the identity matrix: 1.0 at flat cells {0, 5, 10, 15},
// 0.0 elsewhere.
func Identity() Matrix4 {
	var m Matrix4
	for i := 0; i < Dim; i++ {
		m.data[i+i*Dim] = 1
	}

	return m
}

// Zero returns the matrix with all 16 cells set to 0.0.
func Zero() Matrix4 {
	return Matrix4{}
}

// New returns a matrix holding cells in flat (column-major) order, exactly as
// supplied. No validation or normalization is applied.
func New(cells [Size]float32) Matrix4 {
	return Matrix4{data: cells}
}

// FromRows builds a matrix from four rows written in reading order. The rows
// are stored column-major, so FromRows(r0, r1, r2, r3).At(i, j) == ri[j].
func FromRows(r0, r1, r2, r3 [Dim]float32) Matrix4 {
	var m Matrix4
	rows := [Dim][Dim]float32{r0, r1, r2, r3}
	for row := 0; row < Dim; row++ {
		for col := 0; col < Dim; col++ {
			m.data[row+col*Dim] = rows[row][col]
		}
	}

	return m
}

// FromSlice returns a matrix holding cells in flat order.
// Implementation:
//   - Stage 1: resolve options (numeric policy).
//   - Stage 2: validate len(cells) == 16.
//   - Stage 3: validate finiteness unless WithNoValidateNaNInf was given.
//   - Stage 4: copy cells verbatim.
//
// Errors:
//   - ErrBadShape if len(cells) != 16.
//   - ErrNaNInf if a cell is NaN or ±Inf under the default policy.
//
// Notes:
//   - The input slice is copied; later writes to it do not affect the result.
func FromSlice(cells []float32, opts ...Option) (Matrix4, error) {
	o := gatherOptions(opts...)

	if err := validateLen(len(cells), Size); err != nil {
		return Matrix4{}, matrixErrorf(opFromSlice, err)
	}
	if o.validateNaNInf {
		if err := validateFinite(cells); err != nil {
			return Matrix4{}, matrixErrorf(opFromSlice, err)
		}
	}

	var m Matrix4
	copy(m.data[:], cells)

	return m, nil
}
