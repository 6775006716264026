// Package sparse: sentinel error set.
// All operations return these sentinels and tests check them via errors.Is.
// No operation panics on user-triggered conditions.

package sparse

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (negative
	// row or column count). Zero is legal: an empty model is a 0×0 system.
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside the
	// matrix bounds. Public indexers return this, they do not panic.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are
	// required. Stoichiometric coefficients are finite by definition.
	ErrNaNInf = errors.New("sparse: NaN or Inf encountered")
)
