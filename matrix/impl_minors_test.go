package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mat4/matrix"
)

// TestMinors_KnownTable checks every entry of the 2×2 minor table for the
// matrix whose flat cells are 1..16. The matrix has rank 2, so the Laplace
// combination of the table must vanish.
func TestMinors_KnownTable(t *testing.T) {
	var cells [matrix.Size]float32
	for i := range cells {
		cells[i] = float32(i + 1)
	}
	m := matrix.New(cells)

	want := [12]float64{-4, -8, -12, -4, -8, -4, -4, -8, -12, -4, -8, -4}
	require.Equal(t, want, matrix.ExportedMinors(&m))
	require.Equal(t, float32(0), m.Determinant())
}

func TestMinors_Identity(t *testing.T) {
	m := matrix.Identity()
	got := matrix.ExportedMinors(&m)
	for i, s := range got {
		want := 0.0
		if i == 0 || i == 11 {
			want = 1
		}
		require.Equalf(t, want, s, "s%d", i)
	}
}
