// Package matrix_test provides benchmarks for the Matrix4 kernel, using a
// deterministic random fill.
package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/mat4/matrix"
)

// sinks to defeat dead-code elimination
var (
	sinkM matrix.Matrix4
	sinkF float32
	sinkE error
)

func BenchmarkMul(b *testing.B) {
	rng := rand.New(rand.NewSource(1337))
	x, y := randomMatrix(rng, 1), randomMatrix(rng, 1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkM = x.Mul(y)
	}
}

func BenchmarkMulTo(b *testing.B) {
	rng := rand.New(rand.NewSource(1337))
	x, y := randomMatrix(rng, 1), randomMatrix(rng, 1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		matrix.MulTo(&sinkM, &x, &y)
	}
}

func BenchmarkDeterminant(b *testing.B) {
	rng := rand.New(rand.NewSource(4242))
	x := randomMatrix(rng, 1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkF = x.Determinant()
	}
}

func BenchmarkInverse(b *testing.B) {
	rng := rand.New(rand.NewSource(4242))
	x := wellConditioned(rng)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkM, sinkE = x.Inverse()
	}
}
