package dataprep

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBinFourBins(t *testing.T) {
	tbl := newTestTable(t, []float64{0, 0.25, 0.5, 0.75, 1})

	out, err := Bin(tbl, 4)
	require.NoError(t, err)
	require.Equal(t, tbl.Len(), out.Len())
	require.Equal(t, []string{"x", "bin_1", "bin_2", "bin_3"}, out.Columns())

	// Row 0 (x=0) belongs to the dropped reference bin: all indicators zero.
	for _, name := range []string{"bin_1", "bin_2", "bin_3"} {
		col, ok := out.Col(name)
		require.True(t, ok)
		require.Zero(t, col[0])
	}

	// Row 4 (x=1) sits on the upper boundary and is clamped into the last bin.
	bin3, _ := out.Col("bin_3")
	require.Equal(t, 1.0, bin3[4])

	bin1, _ := out.Col("bin_1")
	bin2, _ := out.Col("bin_2")
	require.Equal(t, 1.0, bin1[1]) // x=0.25
	require.Equal(t, 1.0, bin2[2]) // x=0.5
	require.Equal(t, 1.0, bin3[3]) // x=0.75
}

func TestBinIndicatorsExclusive(t *testing.T) {
	tbl := newTestTable(t, []float64{0.05, 0.31, 0.47, 0.52, 0.68, 0.94, 1.0, 0.0})

	const numBins = 5
	out, err := Bin(tbl, numBins)
	require.NoError(t, err)

	// Per row, at most one retained indicator is set; rows with none belong
	// to the dropped reference bin.
	for i := 0; i < out.Len(); i++ {
		sum := 0.0
		for _, name := range IndicatorColumns(numBins) {
			col, ok := out.Col(name)
			require.True(t, ok)
			require.Contains(t, []float64{0, 1}, col[i])
			sum += col[i]
		}
		require.LessOrEqual(t, sum, 1.0, "row %d set in more than one bin", i)
	}
}

func TestBinAddsBinsMinusOneColumns(t *testing.T) {
	// Heavily skewed data: most bins stay empty, but the column count is
	// still determined by numBins alone.
	tbl := newTestTable(t, []float64{0, 0.01, 0.02, 10})

	for _, numBins := range []int{2, 3, 8} {
		out, err := Bin(tbl, numBins)
		require.NoError(t, err)
		require.Len(t, out.Columns(), len(tbl.Columns())+numBins-1)
	}
}

func TestBinSingleBinIsNoOp(t *testing.T) {
	tbl := newTestTable(t, []float64{0.1, 0.9})

	out, err := Bin(tbl, 1)
	require.NoError(t, err)
	require.Equal(t, tbl.Columns(), out.Columns())
}

func TestBinInvalidCount(t *testing.T) {
	tbl := newTestTable(t, []float64{0.1, 0.9})

	for _, numBins := range []int{0, -3} {
		_, err := Bin(tbl, numBins)
		require.ErrorIs(t, err, ErrInvalidArgument)
	}
}

func TestBinDegenerateRange(t *testing.T) {
	tbl := newTestTable(t, []float64{5, 5, 5})

	_, err := Bin(tbl, 2)
	require.ErrorIs(t, err, ErrDegenerateInput)
	// The message carries the computed range for debugging.
	require.Contains(t, err.Error(), "[5, 5]")
}

func TestBinEmptyTable(t *testing.T) {
	tbl := newTestTable(t, nil)

	_, err := Bin(tbl, 3)
	require.ErrorIs(t, err, ErrDegenerateInput)
}

func TestBinDoesNotMutateInput(t *testing.T) {
	tbl := newTestTable(t, []float64{0.2, 0.8})

	_, err := Bin(tbl, 3)
	require.NoError(t, err)
	require.Equal(t, []string{"x"}, tbl.Columns())
}

func TestBinDeterministic(t *testing.T) {
	tbl := newTestTable(t, []float64{0.11, 0.42, 0.77, 0.98})

	a, err := Bin(tbl, 4)
	require.NoError(t, err)
	b, err := Bin(tbl, 4)
	require.NoError(t, err)

	require.Equal(t, a.Columns(), b.Columns())
	for _, name := range a.Columns() {
		av, _ := a.Col(name)
		bv, _ := b.Col(name)
		require.Equal(t, av, bv)
	}
}

// Bin boundaries come from the call's own rows, so the same value can land
// in a different bin when a subset is binned instead of the full table.
func TestBinBoundariesFollowSubset(t *testing.T) {
	full := newTestTable(t, []float64{0, 0.4, 0.5, 1})
	subset := newTestTable(t, []float64{0.4, 0.5, 1})

	outFull, err := Bin(full, 2)
	require.NoError(t, err)
	outSub, err := Bin(subset, 2)
	require.NoError(t, err)

	fullBin1, _ := outFull.Col("bin_1")
	subBin1, _ := outSub.Col("bin_1")

	// x=0.5 is in the upper half of [0,1] but below the midpoint 0.7 of
	// [0.4,1], so its bin flips between the two calls.
	require.Equal(t, 1.0, fullBin1[2])
	require.Equal(t, 0.0, subBin1[1])
}

func TestBinIndexClamp(t *testing.T) {
	// The raw index for the maximum value is numBins; the clamp pulls it
	// back into the last valid bin.
	require.Equal(t, 3, binIndex(1, 0, 1, 4))
	require.Equal(t, 0, binIndex(0, 0, 1, 4))
	require.Equal(t, 1, binIndex(0.25, 0, 1, 4))
}

func TestIndicatorColumns(t *testing.T) {
	require.Empty(t, IndicatorColumns(1))
	require.Equal(t, []string{"bin_1", "bin_2", "bin_3"}, IndicatorColumns(4))
}
