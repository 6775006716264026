// Package equation — term tokenizer.
//
// One side of an equation is a list of terms joined by the literal separator
// (" + " by default). Each term is tokenized by an explicit three-class scan
// (coefficient run / required whitespace / identifier) rather than a single
// regular expression, so every boundary rule below is individually testable:
//
//	term        := [coefficient ws+] identifier
//	coefficient := maximal run of [0-9 . ( ) e -] that parses as a finite
//	               float after stripping '(' ')' and whitespace
//	identifier  := remaining text, whitespace-trimmed, non-empty
//
// A run that does not parse (e.g. "e" in "e coli") is NOT a coefficient; the
// whole term becomes the identifier with coefficient 1. A run with no
// trailing whitespace ("2B") is likewise part of the identifier.
//
// Complexity: O(len(side)) overall; the scan touches each byte once.

package equation

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// defaultCoefficient applies when a term carries no leading numeric run.
const defaultCoefficient = 1.0

// ParseSide splits side on the configured separator and tokenizes every
// non-empty term in order. An empty or all-whitespace side yields zero terms
// and no error (legal for exchange/boundary reactions).
//
// Errors: ErrMalformedTerm, wrapped with the offending raw term, when a
// non-empty term yields an empty identifier.
func ParseSide(side string, opts ...Option) ([]Term, error) {
	o := gatherOptions(opts)

	raw := strings.Split(side, o.separator)
	terms := make([]Term, 0, len(raw))
	for _, r := range raw {
		trimmed := strings.TrimSpace(r)
		if trimmed == "" {
			// Artifact of an empty side or doubled separator; not a term.
			continue
		}

		coef, met := scanTerm(trimmed)
		if met == "" {
			return nil, fmt.Errorf("ParseSide: term %q: %w", r, ErrMalformedTerm)
		}
		terms = append(terms, Term{Coefficient: coef, Metabolite: met})
	}

	return terms, nil
}

// scanTerm tokenizes one whitespace-trimmed, non-empty term into
// (coefficient, identifier). identifier is "" only for a bare coefficient
// (e.g. "2") — the caller turns that into ErrMalformedTerm.
func scanTerm(term string) (float64, string) {
	// Class 1: maximal leading run of coefficient runes.
	run := 0
	for run < len(term) && isCoefficientByte(term[run]) {
		run++
	}

	// Class 2: the run must exist and be closed by whitespace, otherwise the
	// whole term is an identifier ("2B", "NADH", ...).
	if run == 0 {
		return defaultCoefficient, term
	}
	if run == len(term) {
		// Bare numeric-ish term: "2" parses to a dangling coefficient with no
		// identifier; "e" or "---" is just a (strange) identifier.
		if _, ok := parseCoefficient(term); ok {
			return defaultCoefficient, ""
		}

		return defaultCoefficient, term
	}
	if !isSpaceByte(term[run]) {
		return defaultCoefficient, term
	}

	// Class 3: the run is a coefficient only if it parses as a finite float.
	coef, ok := parseCoefficient(term[:run])
	if !ok {
		return defaultCoefficient, term
	}

	return coef, strings.TrimSpace(term[run:])
}

// parseCoefficient strips '(' ')' and whitespace from a candidate run and
// parses the remainder as a float. Reports ok=false for empty, non-numeric
// or non-finite results.
func parseCoefficient(run string) (float64, bool) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '(', ')', ' ', '\t':
			return -1
		default:
			return r
		}
	}, run)
	if cleaned == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}

	return v, true
}

// isCoefficientByte reports membership in the coefficient character class:
// digits, decimal point, parentheses, scientific-notation 'e', minus sign.
func isCoefficientByte(b byte) bool {
	switch {
	case b >= '0' && b <= '9':
		return true
	case b == '.' || b == '(' || b == ')' || b == 'e' || b == '-':
		return true
	default:
		return false
	}
}

// isSpaceByte reports ASCII whitespace (terms are single-line ASCII-spaced
// text; the separator itself is literal).
func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t'
}
