// SPDX-License-Identifier: MIT

package batch

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mat4/matrix"
)

// ItemFunc computes the output for item i from its input. It must not touch
// any other index.
type ItemFunc func(i int, in matrix.Matrix4) (matrix.Matrix4, error)

// Map applies fn to every element of in and returns the outputs in input
// order. Failed items leave the zero matrix in their output slot and are
// reported as *ItemError, joined in index order.
// Implementation:
//   - Stage 1: resolve options; split [0,n) into one contiguous chunk per worker.
//   - Stage 2: run chunks on an errgroup bounded by the worker count; each
//     chunk collects its own item errors and checks ctx every chunkCheck items.
//   - Stage 3: on cancellation return ctx.Err(); else join item errors in order.
//
// Complexity:
//   - Time O(n) kernel calls spread over the workers, Space O(n).
func Map(ctx context.Context, in []matrix.Matrix4, fn ItemFunc, opts ...Option) ([]matrix.Matrix4, error) {
	o := gatherOptions(opts...)

	n := len(in)
	out := make([]matrix.Matrix4, n)
	if n == 0 {
		return out, ctx.Err()
	}

	workers := o.workers
	if workers > n {
		workers = n
	}
	size := (n + workers - 1) / workers
	chunkErrs := make([][]error, workers)

	var g errgroup.Group
	g.SetLimit(workers)
	for w := 0; w < workers; w++ {
		lo, hi := w*size, (w+1)*size
		if hi > n {
			hi = n
		}
		if lo >= hi {
			break
		}
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if (i-lo)%chunkCheck == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				m, err := fn(i, in[i])
				if err != nil {
					chunkErrs[w] = append(chunkErrs[w], &ItemError{Index: i, Err: err})
					continue
				}
				out[i] = m
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return out, err
	}
	if err := ctx.Err(); err != nil {
		return out, err
	}

	var errs []error
	for _, ce := range chunkErrs {
		errs = append(errs, ce...)
	}

	return out, errors.Join(errs...)
}

// Invert inverts every matrix. Singular items fail individually with an
// *ItemError wrapping matrix.ErrSingular.
func Invert(ctx context.Context, in []matrix.Matrix4, opts ...Option) ([]matrix.Matrix4, error) {
	mo := gatherOptions(opts...).matrixOpts

	return Map(ctx, in, func(_ int, m matrix.Matrix4) (matrix.Matrix4, error) {
		return m.Inverse(mo...)
	}, opts...)
}

// NormalMatrices derives the inverse-transpose of every matrix.
func NormalMatrices(ctx context.Context, in []matrix.Matrix4, opts ...Option) ([]matrix.Matrix4, error) {
	mo := gatherOptions(opts...).matrixOpts

	return Map(ctx, in, func(_ int, m matrix.Matrix4) (matrix.Matrix4, error) {
		return m.NormalMatrix(mo...)
	}, opts...)
}

// PreMultiply returns left·in[i] for every i, e.g. a view matrix applied to
// every model matrix. It never produces item errors.
func PreMultiply(ctx context.Context, left matrix.Matrix4, in []matrix.Matrix4, opts ...Option) ([]matrix.Matrix4, error) {
	return Map(ctx, in, func(_ int, m matrix.Matrix4) (matrix.Matrix4, error) {
		var out matrix.Matrix4
		matrix.MulTo(&out, &left, &m)

		return out, nil
	}, opts...)
}
