// Package tabular — long-format writers.

package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/fluxion/model"
)

// WriteStoich renders the stoichiometry table as CSV with a fixed header
// (abbreviation, metabolite, coefficient), rows in the expanded order.
func WriteStoich(w io.Writer, ex *model.Expanded) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"abbreviation", "metabolite", "coefficient"}); err != nil {
		return fmt.Errorf("WriteStoich: %w", err)
	}
	for _, s := range ex.Stoich {
		record := []string{
			s.Abbreviation,
			s.Metabolite,
			strconv.FormatFloat(s.Coefficient, 'g', -1, 64),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("WriteStoich: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("WriteStoich: %w", err)
	}

	return nil
}

// WriteReactions renders the equation-free reaction table as CSV
// (abbreviation, lowbnd, uppbnd, obj_coef, reversible), rows in table
// order. Extra columns are intentionally omitted: their set may vary per
// row, and the long-format export is a fixed-schema surface.
func WriteReactions(w io.Writer, ex *model.Expanded) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"abbreviation", "lowbnd", "uppbnd", "obj_coef", "reversible"}); err != nil {
		return fmt.Errorf("WriteReactions: %w", err)
	}
	for _, r := range ex.Reactions {
		record := []string{
			r.Abbreviation,
			strconv.FormatFloat(r.LowBnd, 'g', -1, 64),
			strconv.FormatFloat(r.UppBnd, 'g', -1, 64),
			strconv.FormatFloat(r.ObjCoef, 'g', -1, 64),
			strconv.FormatBool(r.Reversible),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("WriteReactions: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("WriteReactions: %w", err)
	}

	return nil
}
