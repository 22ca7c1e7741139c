package dataprep

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"biasvar/pkg/table"
)

// Bin partitions the base column's observed range into numBins equal-width
// intervals and appends one indicator column per interval, except bin 0: the
// minimum-value bin is the reference level and its column is dropped, so a
// downstream model with an intercept avoids the dummy variable trap. Exactly
// numBins-1 columns are appended, named IndicatorColumn(1..numBins-1).
//
// The interval boundaries come from the input table's own min and max, so
// binning a subset of the rows can shift every boundary relative to binning
// the full table.
func Bin(t *table.Table, numBins int) (*table.Table, error) {
	if numBins < 1 {
		return nil, fmt.Errorf("%w: numBins must be a positive integer, got %d", ErrInvalidArgument, numBins)
	}
	x, ok := t.Col(BaseColumn)
	if !ok {
		return nil, fmt.Errorf("%w: table has no %q column", ErrInvalidArgument, BaseColumn)
	}
	if len(x) == 0 {
		return nil, fmt.Errorf("%w: table has no rows", ErrDegenerateInput)
	}

	lo, hi := floats.Min(x), floats.Max(x)
	if hi == lo {
		return nil, fmt.Errorf("%w: zero-width %q range [%g, %g] over %d rows",
			ErrDegenerateInput, BaseColumn, lo, hi, len(x))
	}

	idx := make([]int, len(x))
	for i, v := range x {
		idx[i] = binIndex(v, lo, hi-lo, numBins)
	}

	out := t.Clone()
	for j := 1; j < numBins; j++ {
		col := make([]float64, len(x))
		for i, b := range idx {
			if b == j {
				col[i] = 1
			}
		}
		if err := out.AddColumn(IndicatorColumn(j), col); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// binIndex maps v to its bin given the observed range [lo, lo+width]. The
// raw index floor(numBins*(v-lo)/width) reaches numBins exactly when v sits
// on the upper boundary, so it is clamped back into [0, numBins-1].
func binIndex(v, lo, width float64, numBins int) int {
	j := int(math.Floor(float64(numBins) * (v - lo) / width))
	if j >= numBins {
		j = numBins - 1
	}
	return j
}

// Binner returns Bin with the bin count bound, for use in a Chain.
func Binner(numBins int) Transform {
	return func(t *table.Table) (*table.Table, error) {
		return Bin(t, numBins)
	}
}
