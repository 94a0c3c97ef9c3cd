package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mat4/matrix"
)

func TestIdentity(t *testing.T) {
	id := matrix.Identity()
	for p := 0; p < matrix.Size; p++ {
		want := float32(0)
		if p%5 == 0 {
			want = 1
		}
		require.Equalf(t, want, id.Get(p), "cell %d", p)
	}
}

func TestZero(t *testing.T) {
	z := matrix.Zero()
	for p := 0; p < matrix.Size; p++ {
		require.Equal(t, float32(0), z.Get(p))
	}
	// the zero value of the type is the zero matrix
	var m matrix.Matrix4
	require.True(t, m.Equal(z))
}

func TestNew_PreservesFlatOrder(t *testing.T) {
	var cells [matrix.Size]float32
	for i := range cells {
		cells[i] = float32(i) - 7.5
	}
	m := matrix.New(cells)
	require.Equal(t, cells, m.Array())
}

func TestFromRows_StoresColumnMajor(t *testing.T) {
	m := matrix.FromRows(
		[4]float32{1, 2, 3, 4},
		[4]float32{5, 6, 7, 8},
		[4]float32{9, 10, 11, 12},
		[4]float32{13, 14, 15, 16},
	)
	require.Equal(t, [matrix.Size]float32{
		1, 5, 9, 13,
		2, 6, 10, 14,
		3, 7, 11, 15,
		4, 8, 12, 16,
	}, m.Array())
	require.Equal(t, float32(7), m.At(1, 2))
	require.Equal(t, [4]float32{5, 6, 7, 8}, m.Row(1))
	require.Equal(t, [4]float32{3, 7, 11, 15}, m.Col(2))
}

func TestFromSlice(t *testing.T) {
	cells := make([]float32, matrix.Size)
	for i := range cells {
		cells[i] = float32(i * i)
	}

	m, err := matrix.FromSlice(cells)
	require.NoError(t, err)
	require.Equal(t, cells, m.Slice())

	// the input is copied, not aliased
	cells[0] = 42
	require.Equal(t, float32(0), m.Get(0))
}

func TestFromSlice_Errors(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(-1))

	tests := []struct {
		name  string
		cells []float32
		opts  []matrix.Option
		want  error
	}{
		{"nil", nil, nil, matrix.ErrBadShape},
		{"short", make([]float32, 15), nil, matrix.ErrBadShape},
		{"long", make([]float32, 17), nil, matrix.ErrBadShape},
		{"nan", withCell(3, nan), nil, matrix.ErrNaNInf},
		{"inf", withCell(15, inf), nil, matrix.ErrNaNInf},
		{"inf explicit validate", withCell(0, inf), []matrix.Option{matrix.WithValidateNaNInf()}, matrix.ErrNaNInf},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.FromSlice(tc.cells, tc.opts...)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestFromSlice_NoValidate(t *testing.T) {
	m, err := matrix.FromSlice(withCell(7, float32(math.Inf(1))), matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.True(t, math.IsInf(float64(m.Get(7)), 1))
	require.False(t, m.IsFinite())
	require.True(t, matrix.Identity().IsFinite())
}

func TestValueSemantics(t *testing.T) {
	a := matrix.Identity()
	b := a
	b.Set(0, 9)
	b.ScaleInPlace(2)
	require.Equal(t, float32(1), a.Get(0), "copy must not alias the original")
	require.Equal(t, float32(18), b.Get(0))
}

// withCell returns a 16-cell slice of zeros with cells[p] = v.
func withCell(p int, v float32) []float32 {
	cells := make([]float32, matrix.Size)
	cells[p] = v

	return cells
}
