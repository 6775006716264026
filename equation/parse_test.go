package equation_test

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/fluxion/equation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseSide_DefaultCoefficient: a term with no leading numeric run
// parses with coefficient 1.
func TestParseSide_DefaultCoefficient(t *testing.T) {
	terms, err := equation.ParseSide("A")
	require.NoError(t, err)
	require.Len(t, terms, 1)
	assert.Equal(t, equation.Term{Coefficient: 1, Metabolite: "A"}, terms[0])
}

// TestParseSide_ExplicitCoefficients covers plain, decimal, parenthesized,
// scientific-notation and negative coefficient spellings.
func TestParseSide_ExplicitCoefficients(t *testing.T) {
	cases := []struct {
		side string
		coef float64
		met  string
	}{
		{"2 B", 2, "B"},
		{"0.5 atp", 0.5, "atp"},
		{"(3) nadh", 3, "nadh"},
		{"1e-3 trace", 1e-3, "trace"},
		{"-2 weird", -2, "weird"},
		{"2.5 coa", 2.5, "coa"},
	}
	for _, tc := range cases {
		terms, err := equation.ParseSide(tc.side)
		require.NoError(t, err, "side %q", tc.side)
		require.Len(t, terms, 1, "side %q", tc.side)
		assert.Equal(t, tc.coef, terms[0].Coefficient, "side %q", tc.side)
		assert.Equal(t, tc.met, terms[0].Metabolite, "side %q", tc.side)
	}
}

// TestParseSide_DigitLedIdentifiers pins the grammar rule that separates
// coefficients from numeric-leading names: without trailing whitespace, or
// without a parseable float, the run belongs to the identifier.
func TestParseSide_DigitLedIdentifiers(t *testing.T) {
	cases := []struct {
		side string
		coef float64
		met  string
	}{
		{"2B", 1, "2B"},              // no whitespace after run
		{"3pg", 1, "3pg"},            // run closed by a letter, not space
		{"e coli", 1, "e coli"},      // run "e" is not a number
		{"-- odd", 1, "-- odd"},      // run "--" is not a number
		{"1.2.3 x", 1, "1.2.3 x"},    // run fails float parsing
		{"13dpg", 1, "13dpg"},        // classic digit-led metabolite
	}
	for _, tc := range cases {
		terms, err := equation.ParseSide(tc.side)
		require.NoError(t, err, "side %q", tc.side)
		require.Len(t, terms, 1, "side %q", tc.side)
		assert.Equal(t, tc.coef, terms[0].Coefficient, "side %q", tc.side)
		assert.Equal(t, tc.met, terms[0].Metabolite, "side %q", tc.side)
	}
}

// TestParseSide_MultipleTerms keeps term order and per-term coefficients.
func TestParseSide_MultipleTerms(t *testing.T) {
	terms, err := equation.ParseSide("A + 2 B + 0.5 C")
	require.NoError(t, err)
	require.Len(t, terms, 3)
	assert.Equal(t, "A", terms[0].Metabolite)
	assert.Equal(t, 2.0, terms[1].Coefficient)
	assert.Equal(t, "C", terms[2].Metabolite)
}

// TestParseSide_EmptySide: empty and all-whitespace sides yield zero terms
// without error (exchange reactions).
func TestParseSide_EmptySide(t *testing.T) {
	for _, side := range []string{"", "   ", "\t"} {
		terms, err := equation.ParseSide(side)
		require.NoError(t, err, "side %q", side)
		assert.Empty(t, terms, "side %q", side)
	}
}

// TestParseSide_DanglingCoefficient: a bare coefficient with no identifier
// must fail with ErrMalformedTerm rather than be dropped silently.
func TestParseSide_DanglingCoefficient(t *testing.T) {
	_, err := equation.ParseSide("A + 2")
	assert.ErrorIs(t, err, equation.ErrMalformedTerm)
}

// TestParseSide_CustomSeparator exercises WithTermSeparator.
func TestParseSide_CustomSeparator(t *testing.T) {
	terms, err := equation.ParseSide("A; 2 B", equation.WithTermSeparator("; "))
	require.NoError(t, err)
	require.Len(t, terms, 2)
	assert.Equal(t, "A", terms[0].Metabolite)
	assert.Equal(t, 2.0, terms[1].Coefficient)
	assert.Equal(t, "B", terms[1].Metabolite)
}

// TestParseSide_RoundTrip: rendering "coefficient SP metabolite" and
// reparsing preserves magnitude and identifier for every parsed term.
func TestParseSide_RoundTrip(t *testing.T) {
	terms, err := equation.ParseSide("A + 2 B + 0.5 C + 1e-3 D")
	require.NoError(t, err)

	rendered := make([]string, 0, len(terms))
	for _, term := range terms {
		rendered = append(rendered,
			fmt.Sprintf("%s %s", strconv.FormatFloat(term.Coefficient, 'g', -1, 64), term.Metabolite))
	}

	again, err := equation.ParseSide(strings.Join(rendered, " + "))
	require.NoError(t, err)
	assert.Equal(t, terms, again)
}

// BenchmarkParseSide measures the tokenizer on a realistic six-term side.
func BenchmarkParseSide(b *testing.B) {
	const side = "glc + 2 atp + 0.5 nad + 13dpg + (3) pi + 1e-2 h2o"
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := equation.ParseSide(side); err != nil {
			b.Fatal(err)
		}
	}
}
