// Package tabular is the CSV boundary of the pipeline: it reads wide
// reaction tables into []model.Reaction and writes long-format tables back
// out.
//
// Input schema (header row required, column order free):
//
//	abbreviation  — unique reaction identifier (string)
//	equation      — chemical equation text
//	lowbnd        — lower flux bound (float)
//	uppbnd        — upper flux bound (float)
//	obj_coef      — objective coefficient (float)
//
// Any additional column passes through untouched into Reaction.Extra.
// A missing required column fails with ErrMissingColumn before any row is
// read; an unparseable numeric cell fails with ErrBadNumeric carrying the
// row number and column name. Semantic validation (unique abbreviations,
// arrow grammar) is model.Expand's job — this package only checks shape.
package tabular
