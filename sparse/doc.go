// Package sparse provides a minimal coordinate-format (COO) sparse matrix
// tailored to stoichiometric constraint systems: build with a Builder, then
// read through an immutable COO.
//
// Why coordinate format with additive merging?
//
//	A stoichiometric matrix is overwhelmingly zero, and one reaction may
//	legally mention the same metabolite twice (plain and parenthesized
//	terms, or the same species on both sides). Chemical correctness
//	requires those contributions to SUM at the shared (row, column)
//	position — a map-overwrite representation would silently lose mass.
//	Builder therefore accumulates raw triplets and Build merges duplicates
//	by addition, by construction rather than by caller discipline.
//
// Determinism: Build sorts entries column-major (column ascending, then row
// ascending). Entries() always iterates in that order, so downstream
// encoders and tests are reproducible.
//
// Entries whose merged value is exactly zero are dropped: a metabolite that
// cancels out of a reaction is structurally absent from it.
//
// All user-triggered failures return package sentinels (ErrBadShape,
// ErrOutOfRange, ErrNaNInf) and never panic.
package sparse
