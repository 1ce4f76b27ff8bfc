// SPDX-License-Identifier: MIT

// Package gf2: functional options for the elimination kernels.
//
// The only knob today is the diagnostics logger. Kernels never print; when a
// logger is supplied they report pivot swaps and row eliminations at debug
// level. The default is log.NoopLogger, which keeps the kernels pure.
package gf2

import "github.com/katalvlaran/boolgauss/log"

const panicNilLogger = "gf2: WithLogger: logger must be non-nil"

// Option mutates internal options. Safe to apply repeatedly.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options holds the effective configuration after applying Option setters.
// Fields are unexported; public kernels accept ...Option.
type Options struct {
	logger log.Logger
}

// WithLogger routes kernel diagnostics to l.
// Panics if l is nil.
func WithLogger(l log.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// defaultOptions returns the zero-configuration defaults.
func defaultOptions() Options {
	return Options{logger: log.NewNoopLogger()}
}

// gatherOptions applies opts over the defaults in order; later options win.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
