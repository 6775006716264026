// Package equation: sentinel error set.
// All public operations return these sentinels (wrapped with context via
// fmt.Errorf("...: %w", ErrX)); tests and callers match with errors.Is.
// Panics are reserved for programmer errors in option constructors.

package equation

import "errors"

var (
	// ErrNoArrow indicates the arrow pattern matched the equation zero times.
	// A model with an arrowless equation is not meaningful; callers must fail
	// the whole batch.
	ErrNoArrow = errors.New("equation: no arrow match in equation")

	// ErrMultipleArrows indicates the arrow pattern matched two or more times
	// (e.g. "A -> B -> C"). The split would be ambiguous, so the equation is
	// rejected outright.
	ErrMultipleArrows = errors.New("equation: multiple arrow matches in equation")

	// ErrMalformedTerm indicates a non-empty term yielded an empty metabolite
	// identifier after coefficient stripping (dangling separator or a bare
	// coefficient such as "2 ").
	ErrMalformedTerm = errors.New("equation: term has no metabolite identifier")
)
