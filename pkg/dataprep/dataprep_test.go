package dataprep

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChain(t *testing.T) {
	tbl := newTestTable(t, []float64{0, 0.25, 0.5, 0.75, 1})

	out, err := Chain(Expander(3), Binner(2))(tbl)
	require.NoError(t, err)
	require.Equal(t, []string{"x", "x2", "x3", "bin_1"}, out.Columns())
	require.Equal(t, tbl.Len(), out.Len())
}

func TestChainStopsOnError(t *testing.T) {
	tbl := newTestTable(t, []float64{5, 5})

	_, err := Chain(Expander(2), Binner(4))(tbl)
	require.ErrorIs(t, err, ErrDegenerateInput)
}

func TestChainEmpty(t *testing.T) {
	tbl := newTestTable(t, []float64{0.1, 0.9})

	out, err := Chain()(tbl)
	require.NoError(t, err)
	require.Equal(t, tbl.Columns(), out.Columns())
}
