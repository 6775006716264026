// Package equation — arrow splitting.
//
// Contract:
//   - the arrow pattern must match the equation exactly once;
//   - text left of the match is the substrate side, text right of it the
//     product side, both trimmed of surrounding whitespace;
//   - the matched arrow text decides reversibility ('<' present ⇒ reversible).
//
// Complexity: O(len(eq)) regexp scan plus O(1) slicing.

package equation

import (
	"fmt"
	"strings"
)

// maxArrowMatches caps the match scan: one match is legal, a second proves
// ambiguity, anything beyond changes nothing.
const maxArrowMatches = 2

// Split cuts eq at its arrow and reports the two sides plus reversibility.
//
// Errors: ErrNoArrow when the pattern never matches, ErrMultipleArrows when
// it matches more than once; both are wrapped with the offending equation.
func Split(eq string, opts ...Option) (Sides, error) {
	o := gatherOptions(opts)

	locs := o.arrow.FindAllStringIndex(eq, maxArrowMatches)
	switch len(locs) {
	case 0:
		return Sides{}, fmt.Errorf("Split: equation %q: %w", eq, ErrNoArrow)
	case 1:
		// exactly one arrow — fall through
	default:
		return Sides{}, fmt.Errorf("Split: equation %q: %w", eq, ErrMultipleArrows)
	}

	loc := locs[0]
	arrow := eq[loc[0]:loc[1]]

	return Sides{
		Substrates: strings.TrimSpace(eq[:loc[0]]),
		Products:   strings.TrimSpace(eq[loc[1]:]),
		Reversible: strings.ContainsRune(arrow, '<'),
	}, nil
}
