// Package model: sentinel error set.
// Schema violations surface before any parsing work begins; parse failures
// are the equation package's sentinels wrapped with the owning abbreviation.
// Match with errors.Is in all cases.

package model

import "errors"

var (
	// ErrNoReactions indicates an empty (or nil) reaction table. An FBA
	// model without reactions has no columns and nothing to balance.
	ErrNoReactions = errors.New("model: reaction table is empty")

	// ErrEmptyAbbrev indicates a reaction row with an empty abbreviation.
	// Abbreviations key the stoichiometry table and the LP columns.
	ErrEmptyAbbrev = errors.New("model: empty reaction abbreviation")

	// ErrDuplicateAbbrev indicates two rows sharing one abbreviation.
	// Column identity would be ambiguous, so the batch fails up front.
	ErrDuplicateAbbrev = errors.New("model: duplicate reaction abbreviation")

	// ErrCompartmentPrefix indicates an equation starting with a bracketed
	// compartment tag (e.g. "[c] : glc -> g6p"). Compartment-prefixed
	// notation is documented as unsupported input, not a parsing goal.
	ErrCompartmentPrefix = errors.New("model: compartment-prefixed equation is unsupported")
)
