// Package tabular — reaction-table reader.
//
// encoding/csv enforces rectangular records (FieldsPerRecord), so per-row
// width checks come for free; this file only resolves the header schema and
// converts cells.

package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/fluxion/model"
)

// Required column names of the wide reaction table.
const (
	colAbbreviation = "abbreviation"
	colEquation     = "equation"
	colLowBnd       = "lowbnd"
	colUppBnd       = "uppbnd"
	colObjCoef      = "obj_coef"
)

// requiredColumns drives schema validation; order mirrors the docs.
var requiredColumns = []string{colAbbreviation, colEquation, colLowBnd, colUppBnd, colObjCoef}

// header maps the resolved column layout of one file.
type header struct {
	index map[string]int // column name → position
	names []string       // positions → column name (for extras)
}

// Read parses a CSV reaction table from r. The first record is the header;
// every later record becomes one model.Reaction, extra columns landing in
// Reaction.Extra. Zero data rows yield an empty, non-nil slice — whether an
// empty model is acceptable is model.Expand's call.
//
// Errors: ErrEmptyInput, ErrMissingColumn, ErrDuplicateColumn,
// ErrBadNumeric (wrapped with row and column), plus raw csv.Reader errors
// for structural faults (ragged rows, bad quoting).
func Read(r io.Reader) ([]model.Reaction, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	h, err := readHeader(cr)
	if err != nil {
		return nil, err
	}

	rxns := make([]model.Reaction, 0)
	row := 1 // header was row 1; data starts at 2
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return rxns, nil
		}
		if err != nil {
			return nil, fmt.Errorf("Read: %w", err)
		}
		row++

		rxn, err := h.reaction(record, row)
		if err != nil {
			return nil, err
		}
		rxns = append(rxns, rxn)
	}
}

// readHeader consumes and validates the header record.
func readHeader(cr *csv.Reader) (header, error) {
	record, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return header{}, fmt.Errorf("Read: %w", ErrEmptyInput)
	}
	if err != nil {
		return header{}, fmt.Errorf("Read: header: %w", err)
	}

	h := header{index: make(map[string]int, len(record)), names: record}
	for i, name := range record {
		if _, dup := h.index[name]; dup {
			return header{}, fmt.Errorf("Read: column %q: %w", name, ErrDuplicateColumn)
		}
		h.index[name] = i
	}

	for _, name := range requiredColumns {
		if _, ok := h.index[name]; !ok {
			return header{}, fmt.Errorf("Read: column %q: %w", name, ErrMissingColumn)
		}
	}

	return h, nil
}

// reaction converts one data record under this header.
func (h header) reaction(record []string, row int) (model.Reaction, error) {
	low, err := h.float(record, colLowBnd, row)
	if err != nil {
		return model.Reaction{}, err
	}
	upp, err := h.float(record, colUppBnd, row)
	if err != nil {
		return model.Reaction{}, err
	}
	obj, err := h.float(record, colObjCoef, row)
	if err != nil {
		return model.Reaction{}, err
	}

	rxn := model.Reaction{
		Abbreviation: record[h.index[colAbbreviation]],
		Equation:     record[h.index[colEquation]],
		LowBnd:       low,
		UppBnd:       upp,
		ObjCoef:      obj,
	}

	// Extra columns pass through untouched.
	for i, name := range h.names {
		switch name {
		case colAbbreviation, colEquation, colLowBnd, colUppBnd, colObjCoef:
			continue
		}
		if rxn.Extra == nil {
			rxn.Extra = make(map[string]string)
		}
		rxn.Extra[name] = record[i]
	}

	return rxn, nil
}

// float parses one numeric cell with row/column context on failure.
func (h header) float(record []string, col string, row int) (float64, error) {
	cell := record[h.index[col]]
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, fmt.Errorf("Read: row %d, column %q, cell %q: %w", row, col, cell, ErrBadNumeric)
	}

	return v, nil
}
