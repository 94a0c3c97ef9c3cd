// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors and the typed errors
// that wrap them. Callers match with errors.Is / errors.As. No exported
// operation panics on a data-dependent condition; panics are reserved for
// programmer errors (out-of-range indices, nonsensical options).

package matrix

import (
	"errors"
	"fmt"
)

// Messages carry the "matrix: " prefix. Operations add their own tag in front
// via matrixErrorf, e.g. "Inverse: matrix: singular matrix (det=0, eps=0)".

var (
	// ErrBadShape is returned when a raw buffer does not hold exactly 16 cells
	// (or 64 bytes for the binary encoding).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a flat index or a (row, col) pair is outside
	// valid bounds. Indexers panic with an error wrapping this sentinel.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (FromSlice, decoders).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrSingular is returned when inversion meets a determinant whose magnitude
	// does not exceed the configured epsilon.
	ErrSingular = errors.New("matrix: singular matrix")
)

// SingularError reports a failed inversion together with the determinant that
// caused it. It matches ErrSingular under errors.Is.
type SingularError struct {
	Det float32 // determinant of the rejected matrix
	Eps float64 // epsilon in effect when the matrix was rejected
}

// Error implements error.
func (e *SingularError) Error() string {
	return fmt.Sprintf("%s (det=%g, eps=%g)", ErrSingular.Error(), e.Det, e.Eps)
}

// Is reports whether target is ErrSingular.
func (e *SingularError) Is(target error) bool { return target == ErrSingular }

// operation tags
const (
	opFromSlice     = "FromSlice"
	opInverse       = "Inverse"
	opNormalMatrix  = "NormalMatrix"
	opUnmarshalBin  = "UnmarshalBinary"
	opUnmarshalYAML = "UnmarshalYAML"
	opGet           = "Get"
	opAt            = "At"
)

// matrixErrorf prefixes a non-nil err with an operation tag, keeping it
// matchable through %w.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
