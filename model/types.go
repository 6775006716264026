// Package model: domain types for the wide (input) and long (expanded)
// representations. Values are plain data; Expand never mutates its input.

package model

// Reaction is one row of the caller-supplied wide table.
type Reaction struct {
	// Abbreviation uniquely identifies the reaction across the model.
	Abbreviation string

	// Equation is the raw chemical equation; consumed by expansion and
	// absent from the expanded output.
	Equation string

	// LowBnd and UppBnd are the flux bounds. LowBnd ≤ UppBnd is expected
	// but not enforced here; the LP solver surfaces infeasibility.
	LowBnd float64
	UppBnd float64

	// ObjCoef is this reaction's objective coefficient.
	ObjCoef float64

	// Extra holds additional caller columns, passed through untouched into
	// the expanded reaction table. May be nil.
	Extra map[string]string
}

// ReactionInfo is one row of the expanded reaction table: the input row
// minus Equation, plus the derived reversibility flag.
type ReactionInfo struct {
	Abbreviation string
	LowBnd       float64
	UppBnd       float64
	ObjCoef      float64

	// Reversible reports whether the equation's arrow pointed both ways.
	// Informational only: adjusting LowBnd for reversible reactions is a
	// caller responsibility.
	Reversible bool

	// Extra is the passthrough column map from the input row (same map,
	// not copied; treat as read-only).
	Extra map[string]string
}

// StoichEntry is one row of the long-format stoichiometry table: the signed
// coefficient of one metabolite in one reaction. Substrates carry negative
// coefficients, products positive. A metabolite appearing on both sides of
// one equation produces two entries; merging is the matrix assembler's job.
type StoichEntry struct {
	Abbreviation string
	Metabolite   string
	Coefficient  float64
}

// Expanded is the complete long-format model.
type Expanded struct {
	// Stoich holds one entry per metabolite occurrence per reaction,
	// substrates before products within a reaction, reactions in table
	// order.
	Stoich []StoichEntry

	// Reactions preserves the input table order.
	Reactions []ReactionInfo

	// Metabolites lists every distinct metabolite name, sorted
	// lexicographically — the row order of the assembled matrix.
	Metabolites []string
}
