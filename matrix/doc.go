// Package matrix implements Matrix4, the 4×4 single-precision homogeneous
// transform used for every object transform, camera view and projection in a
// 3D scene pipeline.
//
// The matrix package provides:
//
//   - Storage & construction: Identity, Zero, New, FromRows, FromSlice.
//   - Dual indexing over one buffer: Get/Set by flat position p ∈ [0,16) and
//     At/SetAt by (row, col), with p = row + 4*col (column-major).
//   - Operators: Equal, MulScalar, ScalarMul, ScaleInPlace, Mul, MulTo,
//     ComposeInPlace, Transpose, MulVec.
//   - Determinant & inversion via a 2×2 minor table: Determinant, Adjugate,
//     Inverse, NormalMatrix. Singular input yields ErrSingular, never a
//     fabricated matrix.
//   - Flat export for GPU upload and persistence: Array, Slice, binary and
//     YAML codecs.
//
// Matrix4 is a 64-byte value with no heap indirection. Copies are
// independent, nothing is shared, so concurrent use of distinct values needs
// no synchronization.
//
// See the examples in this package and matrix/batch for bulk usage.
package matrix
