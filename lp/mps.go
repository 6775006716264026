// Package lp — MPS encoding.
//
// WriteMPS emits free-form MPS with an OBJSENSE section (understood by CLP,
// CBC, CPLEX, Gurobi, HiGHS). Sections, in order:
//
//	NAME, OBJSENSE, ROWS (N objective + E/L/G constraints), COLUMNS,
//	RHS (only nonzero entries; absent entries default to 0), BOUNDS
//	(LO+UP per column, FX when lb == ub), ENDATA.
//
// MPS identifiers cannot contain whitespace, so row/column names are
// sanitized (runs of whitespace become '_'); colliding sanitized names get
// a numeric suffix to stay unique within their namespace.

package lp

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// objRowName is the MPS identifier of the objective row.
const objRowName = "OBJ"

// WriteMPS encodes p to w under the given model name.
// Returns ErrNilProblem for a nil problem; otherwise only I/O errors.
func WriteMPS(w io.Writer, name string, p *Problem) error {
	if p == nil {
		return fmt.Errorf("WriteMPS: %w", ErrNilProblem)
	}

	ew := &errWriter{w: w}

	ew.printf("NAME          %s\n", sanitizeName(name))
	ew.printf("OBJSENSE\n    %s\n", objSenseKeyword(p.ModelSense))

	// ROWS: the objective first, then one line per constraint row.
	rowIDs := uniqueIDs(p.RowNames)
	ew.printf("ROWS\n")
	ew.printf(" N  %s\n", objRowName)
	for i, id := range rowIDs {
		ew.printf(" %s  %s\n", senseKeyword(p.Sense[i]), id)
	}

	// COLUMNS: per column, objective entry (when nonzero) then matrix
	// entries. COO iteration is column-major, so one pass suffices.
	colIDs := uniqueIDs(p.ColNames)
	entries := p.A.Entries()
	ew.printf("COLUMNS\n")
	k := 0
	for j, id := range colIDs {
		if p.Obj[j] != 0 {
			ew.printf("    %s  %s  %s\n", id, objRowName, formatNum(p.Obj[j]))
		}
		for k < len(entries) && entries[k].Col == j {
			ew.printf("    %s  %s  %s\n", id, rowIDs[entries[k].Row], formatNum(entries[k].Val))
			k++
		}
	}

	// RHS: zeros are the MPS default, so only nonzero entries are written.
	ew.printf("RHS\n")
	for i, v := range p.RHS {
		if v != 0 {
			ew.printf("    RHS  %s  %s\n", rowIDs[i], formatNum(v))
		}
	}

	// BOUNDS: explicit lower and upper bound per flux variable.
	ew.printf("BOUNDS\n")
	for j, id := range colIDs {
		if p.LB[j] == p.UB[j] {
			ew.printf(" FX BND  %s  %s\n", id, formatNum(p.LB[j]))
			continue
		}
		ew.printf(" LO BND  %s  %s\n", id, formatNum(p.LB[j]))
		ew.printf(" UP BND  %s  %s\n", id, formatNum(p.UB[j]))
	}

	ew.printf("ENDATA\n")

	return ew.err
}

// objSenseKeyword maps ModelSense to the OBJSENSE section keyword.
func objSenseKeyword(s ModelSense) string {
	if s == Minimize {
		return "MIN"
	}

	return "MAX"
}

// senseKeyword maps a row Sense to its ROWS-section type code.
func senseKeyword(s Sense) string {
	switch s {
	case SenseLessEqual:
		return "L"
	case SenseGreaterEqual:
		return "G"
	default:
		return "E"
	}
}

// formatNum renders a float in the shortest round-trip form.
func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// sanitizeName collapses whitespace runs into '_' so the identifier is a
// single MPS token. Empty names become "_".
func sanitizeName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "_"
	}

	return strings.Join(fields, "_")
}

// uniqueIDs sanitizes every name and disambiguates collisions with a
// numeric suffix, preserving order.
func uniqueIDs(names []string) []string {
	out := make([]string, len(names))
	seen := make(map[string]int, len(names))
	for i, name := range names {
		id := sanitizeName(name)
		if n, dup := seen[id]; dup {
			seen[id] = n + 1
			id = id + "_" + strconv.Itoa(n+1)
		}
		if _, dup := seen[id]; !dup {
			seen[id] = 1
		}
		out[i] = id
	}

	return out
}

// errWriter makes the section writers linear: the first write error sticks
// and later writes become no-ops.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
