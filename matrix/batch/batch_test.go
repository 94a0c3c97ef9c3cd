package batch_test

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mat4/matrix"
	"github.com/katalvlaran/mat4/matrix/batch"
)

// models returns n diagonally dominant (hence invertible) matrices.
func models(n int) []matrix.Matrix4 {
	rng := rand.New(rand.NewSource(77))
	out := make([]matrix.Matrix4, n)
	for i := range out {
		var cells [matrix.Size]float32
		for j := range cells {
			cells[j] = rng.Float32()*2 - 1
		}
		m := matrix.New(cells)
		for d := 0; d < matrix.Dim; d++ {
			m.SetAt(d, d, m.At(d, d)+5)
		}
		out[i] = m
	}

	return out
}

func TestInvert_MatchesSequential(t *testing.T) {
	in := models(1000)
	for _, workers := range []int{1, 3, 8, 2000} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			got, err := batch.Invert(context.Background(), in, batch.WithWorkers(workers))
			require.NoError(t, err)
			require.Len(t, got, len(in))
			for i, m := range in {
				want, err := m.Inverse()
				require.NoError(t, err)
				require.True(t, want.Equal(got[i]), "item %d", i)
			}
		})
	}
}

func TestInvert_ReportsSingularItems(t *testing.T) {
	in := models(50)
	in[7] = matrix.Zero()
	in[31] = matrix.Identity().MulScalar(0)

	got, err := batch.Invert(context.Background(), in, batch.WithWorkers(4))
	require.Error(t, err)
	require.ErrorIs(t, err, matrix.ErrSingular)

	var first *batch.ItemError
	require.True(t, errors.As(err, &first))
	require.Equal(t, 7, first.Index)

	joined, ok := err.(interface{ Unwrap() []error })
	require.True(t, ok, "item errors are joined")
	var idx []int
	for _, e := range joined.Unwrap() {
		var ie *batch.ItemError
		require.True(t, errors.As(e, &ie))
		idx = append(idx, ie.Index)
	}
	require.Equal(t, []int{7, 31}, idx)

	// healthy items are still inverted; failed slots hold the zero matrix
	want, _ := in[8].Inverse()
	require.True(t, want.Equal(got[8]))
	require.True(t, matrix.Zero().Equal(got[7]))
}

func TestInvert_EpsilonForwarded(t *testing.T) {
	in := []matrix.Matrix4{matrix.Identity().MulScalar(0.1), matrix.Identity()}

	_, err := batch.Invert(context.Background(), in)
	require.NoError(t, err)

	_, err = batch.Invert(context.Background(), in, batch.WithMatrixOptions(matrix.WithEpsilon(1e-3)))
	var ie *batch.ItemError
	require.True(t, errors.As(err, &ie))
	require.Equal(t, 0, ie.Index)
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestNormalMatrices(t *testing.T) {
	in := models(20)
	got, err := batch.NormalMatrices(context.Background(), in, batch.WithWorkers(3))
	require.NoError(t, err)
	for i, m := range in {
		want, err := m.NormalMatrix()
		require.NoError(t, err)
		require.True(t, want.Equal(got[i]))
	}
}

func TestPreMultiply(t *testing.T) {
	view := matrix.Identity()
	view.SetAt(2, 3, -10)
	in := models(33)

	got, err := batch.PreMultiply(context.Background(), view, in, batch.WithWorkers(5))
	require.NoError(t, err)
	for i, m := range in {
		require.True(t, view.Mul(m).Equal(got[i]), "item %d", i)
	}
}

func TestMap_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := batch.Invert(ctx, models(10))
	require.ErrorIs(t, err, context.Canceled)

	out, err := batch.Invert(ctx, nil)
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, out)
}

func TestMap_Empty(t *testing.T) {
	out, err := batch.Map(context.Background(), nil, func(int, matrix.Matrix4) (matrix.Matrix4, error) {
		t.Fatal("fn must not be called")
		return matrix.Matrix4{}, nil
	})
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestWithWorkers_Panics(t *testing.T) {
	require.PanicsWithValue(t, "batch: WithWorkers: n must be > 0", func() { batch.WithWorkers(0) })
}

func TestItemErrors(t *testing.T) {
	require.Nil(t, batch.ItemErrors(nil))
	require.Nil(t, batch.ItemErrors(context.Canceled))

	in := models(20)
	in[3], in[17] = matrix.Zero(), matrix.Zero()
	_, err := batch.Invert(context.Background(), in, batch.WithWorkers(3))

	items := batch.ItemErrors(err)
	require.Len(t, items, 2)
	require.Equal(t, 3, items[0].Index)
	require.Equal(t, 17, items[1].Index)
	require.ErrorIs(t, items[1], matrix.ErrSingular)

	single := &batch.ItemError{Index: 4, Err: errors.New("boom")}
	require.Equal(t, []*batch.ItemError{single}, batch.ItemErrors(single))
	require.Equal(t, "batch: item 4: boom", single.Error())
}
