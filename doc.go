// Package fluxion turns a tabular description of a metabolic reaction
// network into the numeric structures a linear-programming solver consumes —
// the model-construction half of Flux Balance Analysis (FBA).
//
// 🚀 What is fluxion?
//
//	A small, deterministic, pure-Go pipeline that takes one row per reaction
//	(abbreviation, chemical equation, flux bounds, objective coefficient) and
//	produces:
//	  • a normalized long-format model (stoichiometry triples, reaction
//	    table, metabolite list)
//	  • a sparse steady-state constraint system (S·v = 0) with objective,
//	    bounds and optimization sense, ready for any LP solver
//
// ✨ Why choose fluxion?
//
//   - Deterministic by contract – metabolites in lexicographic order,
//     reactions in input order, reproducible stoichiometry row order
//   - Honest errors – sentinel error sets matched with errors.Is; any bad
//     equation fails the whole batch with the offending abbreviation attached
//   - Pure Go – no cgo, no solver linkage; the LP descriptor is plain data
//
// Everything is organized under five subpackages:
//
//	equation/ — arrow splitting and term tokenizing for chemical equations
//	model/    — schema checks + expansion into the long-format model
//	sparse/   — coordinate sparse matrix with additive duplicate merging
//	lp/       — solver-ready problem assembly and MPS export
//	tabular/  — CSV boundary: reaction tables in, long-format tables out
//
// Quick example, end to end:
//
//	rxns := []model.Reaction{
//	  {Abbreviation: "R1", Equation: "A + 2 B -> C", LowBnd: 0, UppBnd: 1000},
//	}
//	ex, _ := model.Expand(rxns)
//	prob, _ := lp.Assemble(ex)
//	// prob.A is |metabolites| × |reactions|; prob.RHS is all zeros.
//
// Dive into each package's doc.go for contracts, grammar and edge cases.
package fluxion
