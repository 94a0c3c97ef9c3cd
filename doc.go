// Package mat4 is a 4×4 homogeneous transform kernel for 3D scene pipelines.
//
// What is mat4?
//
//	A small, allocation-free library plus tooling around one value type:
//		• matrix/       Matrix4: construction, dual indexing, products,
//		                determinant, adjugate inverse, normal matrix, codecs
//		• matrix/batch  concurrent per-object inversion and composition
//		• store/        memory-mapped tables of Matrix4 records
//		• cmd/mat4      CLI over YAML matrix documents and store files
//
// Storage is column-major (flat p = row + 4*col), the order GPUs expect for
// uniform uploads, so every flat export can be handed over without
// transposition.
//
// Quick start:
//
//	world := matrix.Identity()
//	world.SetAt(0, 3, 2) // translate x by 2
//	local, err := world.Inverse()
//	if errors.Is(err, matrix.ErrSingular) {
//		// degenerate transform
//	}
//	_ = local.MulVec([4]float32{0, 0, 0, 1})
package mat4
