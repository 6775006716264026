// Package lp: sentinel error set. Match with errors.Is.

package lp

import "errors"

var (
	// ErrNilModel indicates a nil *model.Expanded was passed to Assemble.
	ErrNilModel = errors.New("lp: expanded model is nil")

	// ErrDuplicateReaction indicates two expanded reaction rows share an
	// abbreviation; column identity would be ambiguous.
	ErrDuplicateReaction = errors.New("lp: duplicate reaction abbreviation")

	// ErrUnknownReaction indicates a stoichiometry row referencing an
	// abbreviation absent from the reaction table — a data-integrity fault
	// that must fail rather than silently drop the row.
	ErrUnknownReaction = errors.New("lp: stoichiometry references unknown reaction")

	// ErrUnknownMetabolite indicates a stoichiometry row whose metabolite is
	// missing from the metabolite list.
	ErrUnknownMetabolite = errors.New("lp: stoichiometry references unknown metabolite")

	// ErrNilProblem indicates a nil *Problem was passed to an encoder.
	ErrNilProblem = errors.New("lp: problem is nil")
)
