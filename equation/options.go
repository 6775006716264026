// Package equation: functional configuration for Split and ParseSide.
//
// Design goals (mirrors the rest of the module):
//   - Deterministic behavior: no global state, defaults are named constants.
//   - Safe by construction: WithX panics only on nonsensical parameters
//     (programmer error); user input never panics.
//   - Public APIs consume ...Option; the options struct stays unexported.

package equation

import "regexp"

// DefaultArrowPattern recognizes one-or-more '-'/'=' runes, optionally
// fringed by '<' and/or '>', delimited by whitespace or the string boundary
// on both sides. The delimiter guards keep hyphens inside metabolite names
// (e.g. "D-glucose") from being mistaken for arrows, while still matching
// boundary-reaction equations that start or end with the arrow ("-> D").
const DefaultArrowPattern = `(^|\s)<?[-=]+>?(\s|$)`

// DefaultTermSeparator is the literal string that joins terms within one
// side of an equation.
const DefaultTermSeparator = " + "

// defaultArrowRE is the compiled form of DefaultArrowPattern, built once.
var defaultArrowRE = regexp.MustCompile(DefaultArrowPattern)

// options carries the resolved configuration for one call.
type options struct {
	arrow     *regexp.Regexp // arrow delimiter, must match exactly once
	separator string         // literal term separator within a side
}

// Option mutates the call configuration. Options are applied in order.
type Option func(*options)

// WithArrowPattern overrides the arrow regular expression.
// Panics if re is nil (programmer error).
func WithArrowPattern(re *regexp.Regexp) Option {
	if re == nil {
		panic("equation: WithArrowPattern(nil)")
	}

	return func(o *options) { o.arrow = re }
}

// WithTermSeparator overrides the literal term separator.
// Panics if sep is empty (programmer error: splitting on "" is meaningless).
func WithTermSeparator(sep string) Option {
	if sep == "" {
		panic("equation: WithTermSeparator(\"\")")
	}

	return func(o *options) { o.separator = sep }
}

// gatherOptions resolves defaults then applies caller overrides.
func gatherOptions(opts []Option) options {
	o := options{
		arrow:     defaultArrowRE,
		separator: DefaultTermSeparator,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
