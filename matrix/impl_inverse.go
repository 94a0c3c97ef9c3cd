// SPDX-License-Identifier: MIT

// Package matrix: determinant and inversion engine.
//
// Method:
//
//	The 16-cell buffer splits into two 2×4 blocks, cells 0..7 and 8..15.
//	For each block the six 2×2 minors over the index pairs
//	(0,1),(0,2),(0,3),(1,2),(1,3),(2,3) are tabulated: s0..s5 for the first
//	block, s6..s11 for the second. The determinant is the generalized Laplace
//	expansion along the first block against its complement:
//
//	    det = s0·s11 − s1·s10 + s2·s9 + s3·s8 − s4·s7 + s5·s6
//
//	and each adjugate cell mixes minors of one block with raw cells of the
//	other. With column-major storage the blocks are the first and last two
//	columns; the adjugate of the transpose is the transpose of the adjugate,
//	so the same flat formulas produce the inverse in either layout.
//
//	The table, the determinant and the adjugate are evaluated in float64 and
//	each result cell is rounded to float32 once. A determinant of a float32
//	matrix can exceed the float32 range (det(1e10·I) = 1e40) while its
//	inverse is perfectly representable, so nothing is rounded in between.
//
// Cost: 24 multiplies for the minor table, 6 more for det, 48 for the
// adjugate and 16 divisions. No allocation.
package matrix

import (
	"fmt"
	"math"
)

// widen copies the cells into float64.
func (m *Matrix4) widen() [Size]float64 {
	var d [Size]float64
	for i, v := range m.data {
		d[i] = float64(v)
	}

	return d
}

// minors tabulates the twelve 2×2 sub-determinants of the two 2×4 blocks.
func minors(d *[Size]float64) [12]float64 {
	return [12]float64{
		d[0]*d[5] - d[1]*d[4],
		d[0]*d[6] - d[2]*d[4],
		d[0]*d[7] - d[3]*d[4],
		d[1]*d[6] - d[2]*d[5],
		d[1]*d[7] - d[3]*d[5],
		d[2]*d[7] - d[3]*d[6],
		d[8]*d[13] - d[9]*d[12],
		d[8]*d[14] - d[10]*d[12],
		d[8]*d[15] - d[11]*d[12],
		d[9]*d[14] - d[10]*d[13],
		d[9]*d[15] - d[11]*d[13],
		d[10]*d[15] - d[11]*d[14],
	}
}

// detFromMinors combines complementary minor pairs with alternating signs.
func detFromMinors(s *[12]float64) float64 {
	return s[0]*s[11] - s[1]*s[10] + s[2]*s[9] + s[3]*s[8] - s[4]*s[7] + s[5]*s[6]
}

// adjugateFromMinors writes the 16 cofactor expressions of d into o.
func adjugateFromMinors(o, d *[Size]float64, s *[12]float64) {
	o[0] = d[5]*s[11] - d[6]*s[10] + d[7]*s[9]
	o[1] = -d[1]*s[11] + d[2]*s[10] - d[3]*s[9]
	o[2] = d[13]*s[5] - d[14]*s[4] + d[15]*s[3]
	o[3] = -d[9]*s[5] + d[10]*s[4] - d[11]*s[3]

	o[4] = -d[4]*s[11] + d[6]*s[8] - d[7]*s[7]
	o[5] = d[0]*s[11] - d[2]*s[8] + d[3]*s[7]
	o[6] = -d[12]*s[5] + d[14]*s[2] - d[15]*s[1]
	o[7] = d[8]*s[5] - d[10]*s[2] + d[11]*s[1]

	o[8] = d[4]*s[10] - d[5]*s[8] + d[7]*s[6]
	o[9] = -d[0]*s[10] + d[1]*s[8] - d[3]*s[6]
	o[10] = d[12]*s[4] - d[13]*s[2] + d[15]*s[0]
	o[11] = -d[8]*s[4] + d[9]*s[2] - d[11]*s[0]

	o[12] = -d[4]*s[9] + d[5]*s[7] - d[6]*s[6]
	o[13] = d[0]*s[9] - d[1]*s[7] + d[2]*s[6]
	o[14] = -d[12]*s[3] + d[13]*s[1] - d[14]*s[0]
	o[15] = d[8]*s[3] - d[9]*s[1] + d[10]*s[0]
}

// Determinant returns det(m) rounded to float32. It is ±Inf when the exact
// value exceeds the float32 range; Inverse does not depend on that rounding.
func (m Matrix4) Determinant() float32 {
	d := m.widen()
	s := minors(&d)

	return float32(detFromMinors(&s))
}

// Adjugate returns the adjugate (transposed cofactor matrix) of m, so that
// m·adj(m) == det(m)·I. Defined for every matrix, singular or not.
func (m Matrix4) Adjugate() Matrix4 {
	d := m.widen()
	s := minors(&d)
	var adj [Size]float64
	adjugateFromMinors(&adj, &d, &s)

	var out Matrix4
	for i, v := range adj {
		out.data[i] = float32(v)
	}

	return out
}

// Inverse returns m⁻¹ = adj(m) / det(m).
// Implementation:
//   - Stage 1: resolve options (singularity epsilon).
//   - Stage 2: tabulate the minor table once in float64; derive det from it.
//   - Stage 3: refuse |det| <= eps or NaN det with *SingularError, and an
//     infinite det (non-finite input) with ErrNaNInf.
//   - Stage 4: build the adjugate from the same table, divide by det and
//     round each cell to float32.
//   - Stage 5: refuse a result with a non-finite cell with ErrNaNInf.
//
// Errors:
//   - *SingularError (errors.Is(err, ErrSingular)) for a singular or, with
//     WithEpsilon, near-singular matrix.
//   - ErrNaNInf when m holds non-finite cells or when m⁻¹ does not fit in
//     float32 (e.g. a subnormal pivot).
//
// On error the zero matrix is returned and must not be used.
//
// Determinism:
//   - Fixed evaluation order; identical inputs give bit-identical outputs.
func (m Matrix4) Inverse(opts ...Option) (Matrix4, error) {
	o := gatherOptions(opts...)

	d := m.widen()
	s := minors(&d)
	det := detFromMinors(&s)
	if math.Abs(det) <= o.eps || math.IsNaN(det) {
		return Matrix4{}, matrixErrorf(opInverse, &SingularError{Det: float32(det), Eps: o.eps})
	}
	if math.IsInf(det, 0) {
		return Matrix4{}, matrixErrorf(opInverse, fmt.Errorf("determinant %v: %w", det, ErrNaNInf))
	}

	var adj [Size]float64
	adjugateFromMinors(&adj, &d, &s)
	var out Matrix4
	for i, v := range adj {
		out.data[i] = float32(v / det)
	}
	if err := validateFinite(out.data[:]); err != nil {
		return Matrix4{}, matrixErrorf(opInverse, err)
	}

	return out, nil
}

// MustInverse is like Inverse with default options but panics if the
// inverse fails. Use it only where invertibility was established upstream.
func (m Matrix4) MustInverse() Matrix4 {
	inv, err := m.Inverse()
	if err != nil {
		panic(err)
	}

	return inv
}

// NormalMatrix returns (m⁻¹)ᵀ, the matrix that maps surface normals when m
// maps positions. Options are forwarded to Inverse.
func (m Matrix4) NormalMatrix(opts ...Option) (Matrix4, error) {
	inv, err := m.Inverse(opts...)
	if err != nil {
		return Matrix4{}, matrixErrorf(opNormalMatrix, err)
	}

	return inv.Transpose(), nil
}
