// Package sparse — Builder (mutable accumulation) and COO (immutable view).
//
// Complexity:
//   - Builder.Add: O(1) amortized append.
//   - Builder.Build: O(t log t) sort + O(t) merge, t = raw triplet count.
//   - COO.At: O(log nnz) binary search.
//   - COO.Dense: O(rows·cols) allocation + O(nnz) fill.

package sparse

import (
	"fmt"
	"math"
	"sort"
)

// Entry is one nonzero matrix element at (Row, Col).
type Entry struct {
	Row int
	Col int
	Val float64
}

// Builder accumulates raw (row, col, value) triplets for a fixed shape.
// Duplicate coordinates are legal and merge additively at Build time.
// The zero Builder is not usable; construct via NewBuilder.
type Builder struct {
	rows    int
	cols    int
	entries []Entry
}

// NewBuilder returns a Builder for a rows×cols matrix.
// Returns ErrBadShape if either dimension is negative.
func NewBuilder(rows, cols int) (*Builder, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewBuilder: %d×%d: %w", rows, cols, ErrBadShape)
	}

	return &Builder{rows: rows, cols: cols}, nil
}

// Add records value v at (i, j). Zero values are accepted: they may still
// participate in duplicate merging (e.g. +1 and -1 summing away).
// Returns ErrOutOfRange for indices outside the shape, ErrNaNInf for
// non-finite values.
func (b *Builder) Add(i, j int, v float64) error {
	if i < 0 || i >= b.rows || j < 0 || j >= b.cols {
		return fmt.Errorf("Add: (%d,%d) outside %d×%d: %w", i, j, b.rows, b.cols, ErrOutOfRange)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("Add: (%d,%d): %w", i, j, ErrNaNInf)
	}

	b.entries = append(b.entries, Entry{Row: i, Col: j, Val: v})

	return nil
}

// Build merges the accumulated triplets into an immutable COO: entries are
// sorted column-major, duplicate coordinates summed, exact-zero results
// dropped. The Builder may be reused afterwards; Build copies.
func (b *Builder) Build() *COO {
	sorted := make([]Entry, len(b.entries))
	copy(sorted, b.entries)
	sort.SliceStable(sorted, func(x, y int) bool {
		if sorted[x].Col != sorted[y].Col {
			return sorted[x].Col < sorted[y].Col
		}

		return sorted[x].Row < sorted[y].Row
	})

	merged := make([]Entry, 0, len(sorted))
	for _, e := range sorted {
		n := len(merged)
		if n > 0 && merged[n-1].Col == e.Col && merged[n-1].Row == e.Row {
			merged[n-1].Val += e.Val
			continue
		}
		merged = append(merged, e)
	}

	// Drop coordinates that merged to exactly zero (net-cancelled terms).
	nonzero := merged[:0]
	for _, e := range merged {
		if e.Val != 0 {
			nonzero = append(nonzero, e)
		}
	}

	return &COO{rows: b.rows, cols: b.cols, entries: nonzero}
}

// COO is an immutable coordinate-format sparse matrix. Entries are unique
// per coordinate and sorted column-major.
type COO struct {
	rows    int
	cols    int
	entries []Entry
}

// Rows returns the row count. Complexity: O(1).
func (m *COO) Rows() int { return m.rows }

// Cols returns the column count. Complexity: O(1).
func (m *COO) Cols() int { return m.cols }

// NNZ returns the number of stored nonzero entries. Complexity: O(1).
func (m *COO) NNZ() int { return len(m.entries) }

// At returns the value at (i, j), zero when the coordinate is not stored.
// Returns ErrOutOfRange for indices outside the shape.
func (m *COO) At(i, j int) (float64, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, fmt.Errorf("At: (%d,%d) outside %d×%d: %w", i, j, m.rows, m.cols, ErrOutOfRange)
	}

	// Binary search in column-major order.
	k := sort.Search(len(m.entries), func(k int) bool {
		e := m.entries[k]
		if e.Col != j {
			return e.Col > j
		}

		return e.Row >= i
	})
	if k < len(m.entries) && m.entries[k].Col == j && m.entries[k].Row == i {
		return m.entries[k].Val, nil
	}

	return 0, nil
}

// Entries returns a copy of the stored entries in column-major order.
func (m *COO) Entries() []Entry {
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)

	return out
}

// Dense materializes the matrix as row slices; intended for tests and small
// models only.
func (m *COO) Dense() [][]float64 {
	out := make([][]float64, m.rows)
	for i := range out {
		out[i] = make([]float64, m.cols)
	}
	for _, e := range m.entries {
		out[e.Row][e.Col] = e.Val
	}

	return out
}
