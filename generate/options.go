// SPDX-License-Identifier: MIT
// Package generate: functional options over Options.
//
// Design:
//   - NewOptions starts from DefaultOptions and applies options in-order
//     (later overrides earlier), the same last-wins semantics as the rest
//     of the module's configuration surfaces.
//   - Option constructors never validate; Generate validates the final
//     Options exactly once, so literal Options structs and NewOptions
//     products go through the same gate.

package generate

// Option mutates an Options value before generation.
type Option func(*Options)

// NewOptions builds Options from the documented defaults plus opts,
// applied in order.
//
// Complexity: O(len(opts)).
func NewOptions(opts ...Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLength sets the target output length.
func WithLength(n int) Option {
	return func(o *Options) { o.Length = n }
}

// WithNoRepeats forbids any repeated character in the output.
// Bounded by the alphabet size; longer requests fail up front.
func WithNoRepeats() Option {
	return func(o *Options) { o.NoRepeats = true }
}

// WithNoAdjacentRepeats forbids two equal consecutive characters.
func WithNoAdjacentRepeats() Option {
	return func(o *Options) { o.NoAdjacentRepeats = true }
}

// WithRetryFactor overrides the per-position retry budget scale.
func WithRetryFactor(k int) Option {
	return func(o *Options) { o.RetryFactor = k }
}
