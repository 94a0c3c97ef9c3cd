// SPDX-License-Identifier: MIT

// Package matrix: numeric policy of the checked entry points (FromSlice,
// Inverse, NormalMatrix and the decoders). The arithmetic hot path takes no
// options.
//
// The singularity guard compares |det| <= eps. With the default eps=0 only an
// identically-zero determinant is rejected; raise eps to refuse
// near-degenerate transforms instead of amplifying float32 noise.
package matrix

import "math"

const (
	// DefaultEpsilon is the singularity threshold for Inverse. Zero means
	// "reject only an exactly-zero determinant".
	DefaultEpsilon = 0.0

	// DefaultValidateNaNInf toggles strict finite-value validation on checked
	// ingestion (FromSlice, UnmarshalBinary, UnmarshalYAML).
	DefaultValidateNaNInf = true
)

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
)

// Option adjusts the numeric policy of a single call. Later options win.
type Option func(*Options)

// Options is the resolved policy. Callers build it only through Option values.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
}

// WithEpsilon sets the singularity threshold used by Inverse and NormalMatrix.
// It panics if eps is negative, NaN or infinite.
//
// Notes:
//   - The determinant of a 4×4 matrix scales with the fourth power of the
//     cell magnitudes, so eps should be chosen relative to the expected scale
//     of the transforms (e.g. 1e-6 for unit-scale rigid transforms).
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables strict finite-value validation (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables finite-value validation on checked ingestion.
// Use it only when the producer is trusted and already sanitizes its data.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// defaultOptions returns Options populated from the Default* constants.
func defaultOptions() Options {
	return Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// gatherOptions applies opts over defaultOptions in order; later options win.
// Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// isNonFinite reports whether x is NaN or ±Inf.
func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
