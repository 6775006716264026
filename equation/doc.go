// Package equation splits chemical reaction equations into substrate and
// product sides and tokenizes each side into stoichiometric terms.
//
// An equation is a single line of text such as
//
//	"glc + 2 atp -> g6p + 2 adp"
//	"A <=> B"
//	" -> biomass"            (exchange/boundary reaction: empty substrate side)
//
// Two operations cover the whole surface:
//
//   - Split   — cut the equation at its arrow into (substrates, products,
//     reversible). The arrow is a caller-configurable regular expression and
//     must match EXACTLY once; zero matches is ErrNoArrow, two or more is
//     ErrMultipleArrows. Reversibility is derived from the matched arrow
//     text: any '<' rune means the reaction may run backwards.
//
//   - ParseSide — split one side on the literal term separator (" + " by
//     default) and tokenize every non-empty term into a Term. A term is an
//     optional numeric coefficient followed by required whitespace and a
//     metabolite identifier. Coefficients default to 1.
//
// Coefficient grammar (explicit, tested — not regex coincidence):
//
//	A leading run of [0-9 . ( ) e -] followed by at least one whitespace
//	rune is TENTATIVELY a coefficient. Parentheses and whitespace are
//	stripped and the rest must parse as a finite float; if it does not, the
//	run belongs to the metabolite identifier and the coefficient is 1.
//	This keeps digit-led names ("3pg", "e coli") intact: "2 B" is
//	coefficient 2 of B, while "2B" is one unit of metabolite "2B".
//
// A non-empty term whose identifier is empty after coefficient stripping
// (a dangling separator such as "A + ") fails with ErrMalformedTerm — the
// package never silently drops input.
//
// Determinism: ParseSide preserves term order; Split preserves side order.
// Both are pure functions with no shared state.
package equation
