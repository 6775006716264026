// Package lp assembles the expanded long-format model into a solver-ready
// linear-programming problem and encodes it for external solvers.
//
// Assemble builds the steady-state constraint system of Flux Balance
// Analysis:
//
//	maximize   obj · v
//	subject to S · v = 0          (one equality row per metabolite)
//	           lb ≤ v ≤ ub        (one flux variable per reaction)
//
// S has one row per distinct metabolite (lexicographic order) and one column
// per reaction (table order). Duplicate (metabolite, reaction) contributions
// accumulate additively via package sparse — a metabolite listed twice in
// one equation nets out chemically, never overwrites.
//
// The Problem struct is solver-agnostic plain data: matrix, vectors, row
// senses and optimization direction. WriteMPS encodes it as an MPS file
// (OBJSENSE/ROWS/COLUMNS/RHS/BOUNDS) accepted by CLP, CBC, CPLEX, Gurobi
// and friends.
//
// Integrity over convenience: a stoichiometry row referencing an unknown
// reaction or metabolite is a data fault (ErrUnknownReaction,
// ErrUnknownMetabolite) — rows are never silently dropped.
package lp
