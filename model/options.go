// Package model: functional configuration for Expand.
// Same conventions as package equation: documented defaults, WithX panics
// only on programmer error, options struct stays unexported.

package model

import "github.com/katalvlaran/fluxion/equation"

// DefaultParallelism is the worker count used when WithParallelism is not
// given: 1, i.e. fully serial expansion.
const DefaultParallelism = 1

type options struct {
	parallelism int
	eqOpts      []equation.Option
}

// Option mutates the Expand configuration.
type Option func(*options)

// WithParallelism fans per-reaction parsing out over n workers. Output is
// byte-identical to serial expansion. Panics if n < 1 (programmer error).
func WithParallelism(n int) Option {
	if n < 1 {
		panic("model: WithParallelism requires n >= 1")
	}

	return func(o *options) { o.parallelism = n }
}

// WithEquationOptions forwards options (arrow pattern, term separator) to
// the equation splitter and tokenizer.
func WithEquationOptions(opts ...equation.Option) Option {
	return func(o *options) { o.eqOpts = append(o.eqOpts, opts...) }
}

func gatherOptions(opts []Option) options {
	o := options{parallelism: DefaultParallelism}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
