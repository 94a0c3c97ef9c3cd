// SPDX-License-Identifier: MIT

package store

import (
	"io"
	"log/slog"
)

const panicLoggerNil = "store: WithLogger: logger must not be nil"

// Option configures Create and Open.
type Option func(*Options)

// Options holds the resolved store configuration.
type Options struct {
	logger   *slog.Logger
	readOnly bool
}

// WithLogger routes store diagnostics (open, flush, close) to logger.
// Panics on nil.
func WithLogger(logger *slog.Logger) Option {
	if logger == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = logger }
}

// WithReadOnly maps the file read-only. Put and Append then fail with
// ErrReadOnly. Ignored by Create.
func WithReadOnly() Option {
	return func(o *Options) { o.readOnly = true }
}

func gatherOptions(opts ...Option) Options {
	o := Options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
