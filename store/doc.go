// Package store persists Matrix4 values in a memory-mapped file so transform
// tables can be shared between processes and uploaded without re-encoding.
//
// File layout (all integers little-endian):
//
//	offset  size  field
//	0       4     magic "MAT4"
//	4       4     format version (1)
//	8       4     record size (64)
//	12      4     length (records in use)
//	16      4     capacity (records allocated)
//	20      12    reserved, zero
//	32      64*capacity records, each 16 float32 cells in flat column-major order
//
// A record is exactly the binary encoding of matrix.Matrix4, so a mapped
// record range can be handed to a GPU uniform/storage buffer as is.
package store
