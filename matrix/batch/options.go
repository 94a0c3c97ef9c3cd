// SPDX-License-Identifier: MIT

package batch

import (
	"runtime"

	"github.com/katalvlaran/mat4/matrix"
)

// DefaultWorkers selects runtime.GOMAXPROCS(0) workers.
const DefaultWorkers = 0

// chunkCheck is how many items a worker processes between context checks.
const chunkCheck = 1024

const panicWorkersInvalid = "batch: WithWorkers: n must be > 0"

// Option configures a batch run.
type Option func(*Options)

// Options holds the resolved batch configuration.
type Options struct {
	workers    int
	matrixOpts []matrix.Option
}

// WithWorkers bounds the number of concurrent workers. Panics if n <= 0.
func WithWorkers(n int) Option {
	if n <= 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithMatrixOptions forwards numeric policy options (e.g. matrix.WithEpsilon)
// to every per-item kernel call.
func WithMatrixOptions(opts ...matrix.Option) Option {
	return func(o *Options) { o.matrixOpts = append(o.matrixOpts, opts...) }
}

func gatherOptions(opts ...Option) Options {
	o := Options{workers: DefaultWorkers}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.workers == DefaultWorkers {
		o.workers = runtime.GOMAXPROCS(0)
	}

	return o
}
