// SPDX-License-Identifier: MIT

// Package matrix: dual indexing over the dense 16-cell buffer.
//
// Purpose:
//   - Expose a flat accessor (Get/Set, p ∈ [0,16)) and a paired accessor
//     (At/SetAt, row,col ∈ [0,4)) over the SAME storage.
//   - Route both through a single offset helper so the equivalence
//     Get(row + 4*col) == At(row, col) holds by construction.
//
// Contract:
//   - Out-of-range access is a programming error and fails fast: the accessor
//     panics with an error value wrapping ErrOutOfRange, mirroring a Go array
//     bounds violation but matchable with errors.Is after recover.
package matrix

import (
	"fmt"
	"strings"
)

// flatIndex validates p and returns it unchanged.
// Complexity: O(1).
func flatIndex(p int) int {
	if p < 0 || p >= Size {
		panic(matrixErrorf(opGet, fmt.Errorf("flat index %d: %w", p, ErrOutOfRange)))
	}

	return p
}

// offset maps (row, col) to the flat column-major position row + 4*col.
// Every paired access goes through here.
// Complexity: O(1).
func offset(row, col int) int {
	if row < 0 || row >= Dim || col < 0 || col >= Dim {
		panic(matrixErrorf(opAt, fmt.Errorf("cell (%d,%d): %w", row, col, ErrOutOfRange)))
	}

	return row + col*Dim
}

// Get returns the cell at flat position p. Panics if p ∉ [0,16).
func (m Matrix4) Get(p int) float32 {
	return m.data[flatIndex(p)]
}

// Set assigns v to the cell at flat position p. Panics if p ∉ [0,16).
func (m *Matrix4) Set(p int, v float32) {
	m.data[flatIndex(p)] = v
}

// At returns the cell at (row, col). Panics if row or col ∉ [0,4).
func (m Matrix4) At(row, col int) float32 {
	return m.data[offset(row, col)]
}

// SetAt assigns v to the cell at (row, col). Panics if row or col ∉ [0,4).
func (m *Matrix4) SetAt(row, col int, v float32) {
	m.data[offset(row, col)] = v
}

// Row returns row i in column order.
func (m Matrix4) Row(i int) [Dim]float32 {
	var r [Dim]float32
	for j := 0; j < Dim; j++ {
		r[j] = m.data[offset(i, j)]
	}

	return r
}

// Col returns column j in row order. Columns are contiguous in storage.
func (m Matrix4) Col(j int) [Dim]float32 {
	base := offset(0, j)
	var c [Dim]float32
	copy(c[:], m.data[base:base+Dim])

	return c
}

// String implements fmt.Stringer for easy debugging. Rows are printed in
// reading order, one per line, regardless of the storage layout.
// Complexity: O(16).
func (m Matrix4) String() string {
	var sb strings.Builder
	for i := 0; i < Dim; i++ { // iterate over rows
		sb.WriteByte('[')
		for j := 0; j < Dim; j++ { // iterate over columns
			if j > 0 {
				sb.WriteString(", ") // separate values with comma
			}
			fmt.Fprintf(&sb, "%g", m.data[i+j*Dim])
		}
		sb.WriteString("]\n") // close row
	}

	return sb.String()
}
