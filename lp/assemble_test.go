package lp_test

import (
	"testing"

	"github.com/katalvlaran/fluxion/lp"
	"github.com/katalvlaran/fluxion/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// glycolysisFragment is a three-reaction toy model shared across tests.
func glycolysisFragment(t *testing.T) *model.Expanded {
	t.Helper()

	ex, err := model.Expand([]model.Reaction{
		{Abbreviation: "HEX", Equation: "glc + atp -> g6p + adp", LowBnd: 0, UppBnd: 1000, ObjCoef: 0},
		{Abbreviation: "PGI", Equation: "g6p <=> f6p", LowBnd: -1000, UppBnd: 1000, ObjCoef: 0},
		{Abbreviation: "OBJ", Equation: "f6p -> ", LowBnd: 0, UppBnd: 1000, ObjCoef: 1},
	})
	require.NoError(t, err)

	return ex
}

// TestAssemble_Dimensions: |metabolites| rows × |reactions| columns, with
// names in the contracted orders.
func TestAssemble_Dimensions(t *testing.T) {
	p, err := lp.Assemble(glycolysisFragment(t))
	require.NoError(t, err)

	assert.Equal(t, []string{"adp", "atp", "f6p", "g6p", "glc"}, p.RowNames)
	assert.Equal(t, []string{"HEX", "PGI", "OBJ"}, p.ColNames)
	assert.Equal(t, 5, p.A.Rows())
	assert.Equal(t, 3, p.A.Cols())
}

// TestAssemble_MatrixValues spot-checks signed coefficients at their
// (metabolite, reaction) positions.
func TestAssemble_MatrixValues(t *testing.T) {
	p, err := lp.Assemble(glycolysisFragment(t))
	require.NoError(t, err)

	// Row order: adp atp f6p g6p glc; column order: HEX PGI OBJ.
	want := [][]float64{
		{1, 0, 0},   // adp: produced by HEX
		{-1, 0, 0},  // atp: consumed by HEX
		{0, 1, -1},  // f6p: produced by PGI, drained by OBJ
		{1, -1, 0},  // g6p: produced by HEX, consumed by PGI
		{-1, 0, 0},  // glc: consumed by HEX
	}
	assert.Equal(t, want, p.A.Dense())
}

// TestAssemble_Vectors: objective, bounds, RHS and senses line up with the
// column/row orders; direction is maximize.
func TestAssemble_Vectors(t *testing.T) {
	p, err := lp.Assemble(glycolysisFragment(t))
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 0, 1}, p.Obj)
	assert.Equal(t, []float64{0, -1000, 0}, p.LB)
	assert.Equal(t, []float64{1000, 1000, 1000}, p.UB)
	assert.Equal(t, make([]float64, 5), p.RHS, "mass balance: rhs all zero")
	for i, s := range p.Sense {
		assert.Equal(t, lp.SenseEqual, s, "row %d", i)
	}
	assert.Equal(t, lp.Maximize, p.ModelSense)
}

// TestAssemble_ColumnNNZEqualsTermCount: absent duplicate metabolites, each
// column stores exactly its reaction's term count.
func TestAssemble_ColumnNNZEqualsTermCount(t *testing.T) {
	p, err := lp.Assemble(glycolysisFragment(t))
	require.NoError(t, err)

	perCol := make([]int, p.A.Cols())
	for _, e := range p.A.Entries() {
		perCol[e.Col]++
	}
	assert.Equal(t, []int{4, 2, 1}, perCol)
}

// TestAssemble_DuplicateMetaboliteAccumulates: "A + A -> B" nets -2 at
// (A, R) — additive merge, not overwrite.
func TestAssemble_DuplicateMetaboliteAccumulates(t *testing.T) {
	ex, err := model.Expand([]model.Reaction{{
		Abbreviation: "R", Equation: "A + A -> B",
	}})
	require.NoError(t, err)
	require.Len(t, ex.Stoich, 3, "both A occurrences kept in the long format")

	p, err := lp.Assemble(ex)
	require.NoError(t, err)

	v, err := p.A.At(0, 0) // row "A", column "R"
	require.NoError(t, err)
	assert.Equal(t, -2.0, v)
}

// TestAssemble_UnknownReaction: a stoich row pointing at a missing column
// is a data fault, never a silent drop.
func TestAssemble_UnknownReaction(t *testing.T) {
	ex := &model.Expanded{
		Stoich:      []model.StoichEntry{{Abbreviation: "GHOST", Metabolite: "A", Coefficient: 1}},
		Reactions:   []model.ReactionInfo{{Abbreviation: "R1"}},
		Metabolites: []string{"A"},
	}
	_, err := lp.Assemble(ex)
	assert.ErrorIs(t, err, lp.ErrUnknownReaction)
	assert.Contains(t, err.Error(), "GHOST")
}

// TestAssemble_UnknownMetabolite is the row-side integrity fault.
func TestAssemble_UnknownMetabolite(t *testing.T) {
	ex := &model.Expanded{
		Stoich:      []model.StoichEntry{{Abbreviation: "R1", Metabolite: "ghost", Coefficient: 1}},
		Reactions:   []model.ReactionInfo{{Abbreviation: "R1"}},
		Metabolites: []string{"A"},
	}
	_, err := lp.Assemble(ex)
	assert.ErrorIs(t, err, lp.ErrUnknownMetabolite)
}

// TestAssemble_DuplicateReaction guards hand-built Expanded values.
func TestAssemble_DuplicateReaction(t *testing.T) {
	ex := &model.Expanded{
		Reactions: []model.ReactionInfo{{Abbreviation: "R1"}, {Abbreviation: "R1"}},
	}
	_, err := lp.Assemble(ex)
	assert.ErrorIs(t, err, lp.ErrDuplicateReaction)
}

// TestAssemble_NilModel guards the nil pointer.
func TestAssemble_NilModel(t *testing.T) {
	_, err := lp.Assemble(nil)
	assert.ErrorIs(t, err, lp.ErrNilModel)
}

// TestAssemble_UnsortedMetabolitesNormalized: row order is lexicographic
// even when a hand-built Expanded lists metabolites out of order.
func TestAssemble_UnsortedMetabolitesNormalized(t *testing.T) {
	ex := &model.Expanded{
		Stoich: []model.StoichEntry{
			{Abbreviation: "R1", Metabolite: "z", Coefficient: 1},
			{Abbreviation: "R1", Metabolite: "a", Coefficient: -1},
		},
		Reactions:   []model.ReactionInfo{{Abbreviation: "R1"}},
		Metabolites: []string{"z", "a"},
	}
	p, err := lp.Assemble(ex)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "z"}, p.RowNames)
}
