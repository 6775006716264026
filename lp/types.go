// Package lp: the solver-agnostic problem descriptor.

package lp

import "github.com/katalvlaran/fluxion/sparse"

// Sense is a constraint-row relation.
type Sense int

const (
	// SenseEqual: row · v = rhs. Mass balance uses equality throughout.
	SenseEqual Sense = iota

	// SenseLessEqual: row · v ≤ rhs. Unused by Assemble; present so
	// callers editing the Problem (e.g. relaxations) stay in-vocabulary.
	SenseLessEqual

	// SenseGreaterEqual: row · v ≥ rhs.
	SenseGreaterEqual
)

// ModelSense is the optimization direction.
type ModelSense int

const (
	// Maximize the objective — FBA's default (growth/objective flux).
	Maximize ModelSense = iota

	// Minimize the objective.
	Minimize
)

// Problem is a complete linear program in semantic (not solver-schema)
// form. Slices are aligned: Obj/LB/UB index columns, RHS/Sense index rows.
type Problem struct {
	// A is the stoichiometric matrix: Rows()=len(RowNames),
	// Cols()=len(ColNames).
	A *sparse.COO

	// RowNames are metabolite names in lexicographic order.
	RowNames []string

	// ColNames are reaction abbreviations in reaction-table order.
	ColNames []string

	// Obj is the objective coefficient per column.
	Obj []float64

	// LB and UB are the flux bounds per column.
	LB []float64
	UB []float64

	// RHS is the right-hand side per row; all zeros for mass balance.
	RHS []float64

	// Sense is the relation per row; all SenseEqual for mass balance.
	Sense []Sense

	// ModelSense is the optimization direction; Maximize for FBA.
	ModelSense ModelSense
}
