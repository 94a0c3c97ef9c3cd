// SPDX-License-Identifier: MIT
// Package matrix provides the algebraic operators of Matrix4: exact and
// approximate equality, scalar multiplication, matrix multiplication and
// their compound-assignment forms, plus transpose.
//
// Purpose:
//   - Replace operator overloading (*, *=) with named operations whose
//     argument order matches the written expression: a*b is a.Mul(b).
//   - Keep exactly one kernel per operation. Compound forms compute the
//     binary result and then overwrite the receiver, so in-place and
//     out-of-place variants round identically.
//
// Notes:
//   - All operations are total: no errors, no panics (nil pointers aside).
//   - Multiplication follows the column-major convention of Matrix4:
//     C[r,c] = Σk A[r,k]·B[k,c], i.e. C[r+4c] = Σk A[r+4k]·B[k+4c].

package matrix

// ZeroSum is the initial value of every product accumulator.
const ZeroSum = 0.0

// Equal reports whether all 16 cells of m and n compare equal with exact
// floating-point equality (so 0 == -0 and NaN never equals anything).
func (m Matrix4) Equal(n Matrix4) bool {
	for i := 0; i < Size; i++ {
		if m.data[i] != n.data[i] {
			return false
		}
	}

	return true
}

// ApproxEqual reports whether every pair of corresponding cells differs by at
// most eps in absolute value.
func (m Matrix4) ApproxEqual(n Matrix4, eps float32) bool {
	var d float32
	for i := 0; i < Size; i++ {
		d = m.data[i] - n.data[i]
		if d > eps || d < -eps || d != d { // d != d catches NaN
			return false
		}
	}

	return true
}

// scaleKernel writes s·src into dst. dst may alias src.
// Complexity: O(16).
func scaleKernel(dst, src *Matrix4, s float32) {
	for i := 0; i < Size; i++ {
		dst.data[i] = src.data[i] * s
	}
}

// MulScalar returns m·s (every cell multiplied by s).
func (m Matrix4) MulScalar(s float32) Matrix4 {
	var out Matrix4
	scaleKernel(&out, &m, s)

	return out
}

// ScalarMul returns s·m. It is identical to m.MulScalar(s) and exists so the
// written order s*M has a direct counterpart.
func ScalarMul(s float32, m Matrix4) Matrix4 {
	return m.MulScalar(s)
}

// ScaleInPlace performs m *= s.
func (m *Matrix4) ScaleInPlace(s float32) {
	*m = m.MulScalar(s)
}

// mulKernel writes a·b into out. out must not alias a or b; the public
// wrappers guarantee that by multiplying into a fresh value.
// Complexity: O(64) multiply-adds, no allocation.
func mulKernel(out, a, b *Matrix4) {
	var (
		row, col, k int
		acc         float32
	)
	for col = 0; col < Dim; col++ {
		for row = 0; row < Dim; row++ {
			acc = ZeroSum
			for k = 0; k < Dim; k++ {
				acc += a.data[row+k*Dim] * b.data[k+col*Dim]
			}
			out.data[row+col*Dim] = acc
		}
	}
}

// Mul returns the matrix product m·n. Operands are taken by value.
// Not commutative: m.Mul(n) applies n first when transforming column vectors.
func (m Matrix4) Mul(n Matrix4) Matrix4 {
	var out Matrix4
	mulKernel(&out, &m, &n)

	return out
}

// MulTo stores a·b into dst without copying the operands. dst may alias a,
// b or both; the product is accumulated in a temporary and then written.
// Use it when folding long transform chains to avoid 64-byte copies per step.
func MulTo(dst, a, b *Matrix4) {
	var out Matrix4
	mulKernel(&out, a, b)
	*dst = out
}

// ComposeInPlace performs m *= n, i.e. m = m·n.
func (m *Matrix4) ComposeInPlace(n *Matrix4) {
	MulTo(m, m, n)
}

// Transpose returns mᵀ.
func (m Matrix4) Transpose() Matrix4 {
	var out Matrix4
	var row, col int
	for col = 0; col < Dim; col++ {
		for row = 0; row < Dim; row++ {
			out.data[col+row*Dim] = m.data[row+col*Dim]
		}
	}

	return out
}

// MulVec returns m·v for a column vector v (homogeneous coordinates).
func (m Matrix4) MulVec(v [Dim]float32) [Dim]float32 {
	var out [Dim]float32
	var acc float32
	for row := 0; row < Dim; row++ {
		acc = ZeroSum
		for k := 0; k < Dim; k++ {
			acc += m.data[row+k*Dim] * v[k]
		}
		out[row] = acc
	}

	return out
}
