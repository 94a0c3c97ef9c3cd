// SPDX-License-Identifier: MIT

// Package matrix: the Matrix4 value type and its storage layout constants.
package matrix

// Storage layout constants.
const (
	// Dim is the number of rows (and columns) of a Matrix4.
	Dim = 4

	// Size is the number of cells in a Matrix4.
	Size = Dim * Dim

	// ByteSize is the length of the binary encoding: Size little-endian float32.
	ByteSize = Size * 4
)

// Matrix4 is a 4×4 single-precision matrix stored column-major in a fixed,
// inline buffer of 16 cells.
//
// Layout:
//
//	flat p = row + 4*col
//
//	| 0  4  8 12 |
//	| 1  5  9 13 |
//	| 2  6 10 14 |
//	| 3  7 11 15 |
//
// The flat order is the GPU uniform order (OpenGL/WebGL column-major), so
// Array and AppendBinary can be uploaded without transposition. Translation
// of an affine transform lives in cells 12, 13, 14.
//
// Matrix4 is a plain value: assignment copies all 16 cells and no Matrix4
// ever references another. The zero value is the zero matrix.
type Matrix4 struct {
	data [Size]float32 // column-major cells
}
