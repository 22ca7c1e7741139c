// Package table provides an ordered, column-oriented table of named float64
// columns. Row order is significant and preserved by every operation; columns
// are appended, never reordered.
package table

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var (
	ErrColumnExists   = errors.New("column already exists")
	ErrUnknownColumn  = errors.New("unknown column")
	ErrLengthMismatch = errors.New("column length mismatch")
)

// Table holds named columns of equal length. The zero value is not usable;
// call New.
type Table struct {
	names []string
	cols  map[string][]float64
}

// New returns an empty table.
func New() *Table {
	return &Table{cols: map[string][]float64{}}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if len(t.names) == 0 {
		return 0
	}
	return len(t.cols[t.names[0]])
}

// Columns returns the column names in insertion order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Has reports whether the table contains the named column.
func (t *Table) Has(name string) bool {
	_, ok := t.cols[name]
	return ok
}

// Col returns the named column. The slice is the table's backing storage and
// must not be modified by the caller.
func (t *Table) Col(name string) ([]float64, bool) {
	c, ok := t.cols[name]
	return c, ok
}

// AddColumn appends a column. The first column fixes the row count; every
// later column must match it. The values are copied.
func (t *Table) AddColumn(name string, vals []float64) error {
	if _, ok := t.cols[name]; ok {
		return fmt.Errorf("%w: %q", ErrColumnExists, name)
	}
	if len(t.names) > 0 && len(vals) != t.Len() {
		return fmt.Errorf("%w: column %q has %d rows, table has %d",
			ErrLengthMismatch, name, len(vals), t.Len())
	}
	c := make([]float64, len(vals))
	copy(c, vals)
	t.names = append(t.names, name)
	t.cols[name] = c
	return nil
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	out := New()
	for _, name := range t.names {
		out.AddColumn(name, t.cols[name])
	}
	return out
}

// Slice returns a new table holding rows [i, j) of every column, in order.
func (t *Table) Slice(i, j int) (*Table, error) {
	if i < 0 || j < i || j > t.Len() {
		return nil, fmt.Errorf("slice bounds [%d, %d) out of range for %d rows", i, j, t.Len())
	}
	out := New()
	for _, name := range t.names {
		out.AddColumn(name, t.cols[name][i:j])
	}
	return out, nil
}

// Take returns a new table holding the given rows, in the given order.
// Indices may repeat.
func (t *Table) Take(rows []int) (*Table, error) {
	n := t.Len()
	for _, r := range rows {
		if r < 0 || r >= n {
			return nil, fmt.Errorf("row index %d out of range for %d rows", r, n)
		}
	}
	out := New()
	for _, name := range t.names {
		src := t.cols[name]
		c := make([]float64, len(rows))
		for i, r := range rows {
			c[i] = src[r]
		}
		out.AddColumn(name, c)
	}
	return out, nil
}

// Matrix returns the named columns as a dense row-major matrix, one table row
// per matrix row, columns in the given order.
func (t *Table) Matrix(names ...string) (*mat.Dense, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("no columns selected")
	}
	for _, name := range names {
		if !t.Has(name) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
		}
	}
	if t.Len() == 0 {
		return nil, fmt.Errorf("cannot build a matrix from an empty table")
	}
	m := mat.NewDense(t.Len(), len(names), nil)
	for j, name := range names {
		for i, v := range t.cols[name] {
			m.Set(i, j, v)
		}
	}
	return m, nil
}
