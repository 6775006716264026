// Package lp — matrix assembly.
//
// Stage 1 (Validate): nil guard, column-index map with duplicate detection.
// Stage 2 (Execute):  pour stoichiometry rows into a sparse.Builder; every
//                     row must resolve to a known (metabolite, reaction).
// Stage 3 (Finalize): vectors in column/row order, equality senses, zeros.
//
// Complexity: O(s log s) for s stoichiometry rows (builder sort) plus
// O(m + n) vector fills.

package lp

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/fluxion/model"
	"github.com/katalvlaran/fluxion/sparse"
)

// Assemble packages an expanded model as a solver-ready Problem.
//
// Errors: ErrNilModel, ErrDuplicateReaction, ErrUnknownReaction,
// ErrUnknownMetabolite. No partial Problem is returned on failure.
func Assemble(ex *model.Expanded) (*Problem, error) {
	if ex == nil {
		return nil, fmt.Errorf("Assemble: %w", ErrNilModel)
	}

	// Column index: reaction-table order.
	colIndex := make(map[string]int, len(ex.Reactions))
	for i, r := range ex.Reactions {
		if _, dup := colIndex[r.Abbreviation]; dup {
			return nil, fmt.Errorf("Assemble: %q: %w", r.Abbreviation, ErrDuplicateReaction)
		}
		colIndex[r.Abbreviation] = i
	}

	// Row index: lexicographic metabolite order. Sorting a copy makes the
	// contract hold even for hand-built Expanded values.
	rows := make([]string, len(ex.Metabolites))
	copy(rows, ex.Metabolites)
	sort.Strings(rows)
	rowIndex := make(map[string]int, len(rows))
	for i, met := range rows {
		rowIndex[met] = i
	}

	b, err := sparse.NewBuilder(len(rows), len(ex.Reactions))
	if err != nil {
		return nil, fmt.Errorf("Assemble: %w", err)
	}
	for _, s := range ex.Stoich {
		i, ok := rowIndex[s.Metabolite]
		if !ok {
			return nil, fmt.Errorf("Assemble: metabolite %q (reaction %q): %w",
				s.Metabolite, s.Abbreviation, ErrUnknownMetabolite)
		}
		j, ok := colIndex[s.Abbreviation]
		if !ok {
			return nil, fmt.Errorf("Assemble: reaction %q: %w", s.Abbreviation, ErrUnknownReaction)
		}
		if err = b.Add(i, j, s.Coefficient); err != nil {
			return nil, fmt.Errorf("Assemble: %w", err)
		}
	}

	p := &Problem{
		A:          b.Build(),
		RowNames:   rows,
		ColNames:   make([]string, len(ex.Reactions)),
		Obj:        make([]float64, len(ex.Reactions)),
		LB:         make([]float64, len(ex.Reactions)),
		UB:         make([]float64, len(ex.Reactions)),
		RHS:        make([]float64, len(rows)),
		Sense:      make([]Sense, len(rows)),
		ModelSense: Maximize,
	}
	for j, r := range ex.Reactions {
		p.ColNames[j] = r.Abbreviation
		p.Obj[j] = r.ObjCoef
		p.LB[j] = r.LowBnd
		p.UB[j] = r.UppBnd
	}
	// RHS stays zero and Sense stays SenseEqual: steady-state mass balance.

	return p, nil
}
