// Package tabular: sentinel error set. Match with errors.Is.

package tabular

import "errors"

var (
	// ErrEmptyInput indicates the reader held no header row at all.
	ErrEmptyInput = errors.New("tabular: input has no header row")

	// ErrMissingColumn indicates a required column is absent from the
	// header. Reported before any data row is parsed.
	ErrMissingColumn = errors.New("tabular: required column missing")

	// ErrDuplicateColumn indicates the header names one column twice;
	// cell attribution would be ambiguous.
	ErrDuplicateColumn = errors.New("tabular: duplicate column in header")

	// ErrBadNumeric indicates a bounds/objective cell that does not parse
	// as a float.
	ErrBadNumeric = errors.New("tabular: numeric cell does not parse")
)
