// Package model expands a wide reaction table (one row per reaction, with a
// textual chemical equation) into the normalized long-format FBA model:
// stoichiometry triples, an equation-free reaction table, and the distinct
// metabolite list.
//
// The single entry point is Expand:
//
//	ex, err := model.Expand(rxns)
//
// Pipeline per reaction: split the equation at its arrow (package equation),
// tokenize both sides, then sign every coefficient by its side — substrates
// negative, products positive. Rows keep substrates-first-then-products
// order within a reaction, and reactions keep table order, so the stoich
// table is reproducible byte for byte.
//
// Precondition checks run BEFORE any parsing and fail the whole batch:
//
//   - abbreviations must be non-empty and unique (ErrEmptyAbbrev,
//     ErrDuplicateAbbrev)
//   - equations must not begin with a bracketed compartment tag like
//     "[c] : ..." — that syntax is explicitly unsupported
//     (ErrCompartmentPrefix)
//
// Equation and term failures likewise abort the batch, wrapped with the
// owning abbreviation; partial models are never returned.
//
// Reactions parse independently, so Expand optionally fans the per-reaction
// work out over a bounded worker pool (WithParallelism). Output is
// byte-identical to the serial path: workers write into order-indexed slots
// and concatenation follows table order.
package model
