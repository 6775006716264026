// Package equation: domain types shared by Split and ParseSide.

package equation

// Term is one parsed stoichiometric term: an unsigned coefficient magnitude
// and the metabolite identifier it applies to. Direction (substrate vs
// product) is a caller concern; ParseSide never negates coefficients, it only
// reports what the text says (an explicit "-2 A" term parses as -2, though
// well-formed models do not contain negative magnitudes).
type Term struct {
	// Coefficient is the parsed numeric magnitude, 1 when the term carries no
	// leading coefficient.
	Coefficient float64

	// Metabolite is the trimmed identifier; never empty for a returned Term.
	Metabolite string
}

// Sides is the result of splitting an equation at its arrow. Substrates and
// Products are the raw side substrings, trimmed of surrounding whitespace and
// still un-tokenized; either may be empty (exchange/boundary reactions).
type Sides struct {
	// Substrates is the text left of the arrow.
	Substrates string

	// Products is the text right of the arrow.
	Products string

	// Reversible is true when the matched arrow contains a '<' rune
	// (e.g. "<=>", "<->", "<-"). Informational: bound adjustment for
	// reversible reactions is a caller responsibility.
	Reversible bool
}
