package dataprep

import (
	"fmt"

	"biasvar/pkg/table"
)

// Expand appends powers of the base column up to degree: for each k from 2
// to degree, a column named PowerColumn(k) holding x^k per row. Degree 1 is
// the base column itself, so Expand(t, 1) returns a copy with no new columns.
// Powers are computed by repeated multiplication; out-of-range inputs follow
// float64 overflow semantics (infinity, not an error).
func Expand(t *table.Table, degree int) (*table.Table, error) {
	if degree < 1 {
		return nil, fmt.Errorf("%w: degree must be a positive integer, got %d", ErrInvalidArgument, degree)
	}
	x, ok := t.Col(BaseColumn)
	if !ok {
		return nil, fmt.Errorf("%w: table has no %q column", ErrInvalidArgument, BaseColumn)
	}

	out := t.Clone()
	prev := x
	for k := 2; k <= degree; k++ {
		col := make([]float64, len(x))
		for i := range x {
			col[i] = prev[i] * x[i]
		}
		if err := out.AddColumn(PowerColumn(k), col); err != nil {
			return nil, err
		}
		prev = col
	}
	return out, nil
}

// Expander returns Expand with the degree bound, for use in a Chain.
func Expander(degree int) Transform {
	return func(t *table.Table) (*table.Table, error) {
		return Expand(t, degree)
	}
}
