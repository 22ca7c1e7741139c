// Package dataprep implements feature engineering for a single continuous
// predictor: polynomial expansion and equal-width binning with dummy
// encoding. Both transforms are stateless and pure: table in, wider table
// out, row count and row order unchanged, input never mutated.
package dataprep

import (
	"errors"
	"fmt"

	"biasvar/pkg/table"
)

// BaseColumn is the predictor every transform derives its columns from.
const BaseColumn = "x"

// TargetColumn is the response column, present once the data is labeled.
const TargetColumn = "y"

var (
	// ErrInvalidArgument reports malformed parameters or a missing base column.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrDegenerateInput reports data the transform cannot usefully proceed
	// on, such as a zero-width value range.
	ErrDegenerateInput = errors.New("degenerate input")
)

// Transform maps a table to a new table without mutating its input.
type Transform func(*table.Table) (*table.Table, error)

// Chain composes transforms left to right, stopping at the first error.
func Chain(steps ...Transform) Transform {
	return func(t *table.Table) (*table.Table, error) {
		var err error
		for _, step := range steps {
			t, err = step(t)
			if err != nil {
				return nil, err
			}
		}
		return t, nil
	}
}

// PowerColumn returns the name of the degree-k power column, e.g. "x2".
func PowerColumn(k int) string {
	return fmt.Sprintf("%s%d", BaseColumn, k)
}

// PowerColumns returns the feature columns of a degree-d expansion,
// starting with the base column itself: x, x2, ..., xd.
func PowerColumns(degree int) []string {
	cols := []string{BaseColumn}
	for k := 2; k <= degree; k++ {
		cols = append(cols, PowerColumn(k))
	}
	return cols
}

// IndicatorColumn returns the name of the bin-j indicator column, e.g. "bin_3".
func IndicatorColumn(j int) string {
	return fmt.Sprintf("bin_%d", j)
}

// IndicatorColumns returns the indicator columns a numBins binning retains:
// bin_1, ..., bin_<numBins-1>. Bin 0 is the dropped reference level.
func IndicatorColumns(numBins int) []string {
	var cols []string
	for j := 1; j < numBins; j++ {
		cols = append(cols, IndicatorColumn(j))
	}
	return cols
}
