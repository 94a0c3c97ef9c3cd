// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures (seeded RNG) for kernel tests.
//   - Provide an independent float64 cofactor-expansion determinant used as a
//     reference for the minor-table implementation.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mat4/matrix"
)

// seed keeps every randomized test reproducible.
const seed = 20240917

// randomMatrix fills all 16 cells uniformly from [-lim, lim).
func randomMatrix(rng *rand.Rand, lim float32) matrix.Matrix4 {
	var cells [matrix.Size]float32
	for i := range cells {
		cells[i] = (rng.Float32()*2 - 1) * lim
	}

	return matrix.New(cells)
}

// wellConditioned returns a strictly diagonally dominant matrix: off-diagonal
// cells in [-1, 1) and diagonal cells in [4, 6). Such matrices are always
// invertible and keep float32 round-off small.
func wellConditioned(rng *rand.Rand) matrix.Matrix4 {
	m := randomMatrix(rng, 1)
	for i := 0; i < matrix.Dim; i++ {
		m.SetAt(i, i, m.At(i, i)+5)
	}

	return m
}

// rows64 copies m into a [][]float64 in reading order.
func rows64(m matrix.Matrix4) [][]float64 {
	out := make([][]float64, matrix.Dim)
	for i := range out {
		out[i] = make([]float64, matrix.Dim)
		for j := range out[i] {
			out[i][j] = float64(m.At(i, j))
		}
	}

	return out
}

// without returns a with row r and column c removed.
func without(a [][]float64, r, c int) [][]float64 {
	out := make([][]float64, 0, len(a)-1)
	for i := range a {
		if i == r {
			continue
		}
		row := make([]float64, 0, len(a)-1)
		for j := range a[i] {
			if j != c {
				row = append(row, a[i][j])
			}
		}
		out = append(out, row)
	}

	return out
}

// laplace computes det(a) by cofactor expansion along row r.
func laplace(a [][]float64, r int) float64 {
	if len(a) == 1 {
		return a[0][0]
	}

	var sum float64
	for c := range a[r] {
		sign := 1.0
		if (r+c)%2 == 1 {
			sign = -1
		}
		sum += sign * a[r][c] * laplace(without(a, r, c), 0)
	}

	return sum
}

// requireApprox fails the test when any cell of got differs from want by more
// than margin, printing a cell-by-cell diff.
func requireApprox(t testing.TB, want, got matrix.Matrix4, margin float64) {
	t.Helper()
	if diff := cmp.Diff(want.Array(), got.Array(), cmpopts.EquateApprox(0, margin)); diff != "" {
		t.Fatalf("matrix mismatch (-want +got):\n%s", diff)
	}
}

// requireExact fails the test unless got equals want cell-for-cell.
func requireExact(t testing.TB, want, got matrix.Matrix4) {
	t.Helper()
	require.Truef(t, want.Equal(got), "want:\n%sgot:\n%s", want, got)
}

// recoverErr runs f and returns the error value it panicked with, if any.
func recoverErr(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	f()

	return nil
}
