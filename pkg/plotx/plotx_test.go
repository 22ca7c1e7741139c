package plotx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPredictionsWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pred.png")

	x := []float64{0, 0.5, 1}
	actual := []float64{1, 2, 3}
	predicted := []float64{1.1, 1.9, 3.2}
	require.NoError(t, Predictions(path, "test", x, actual, predicted))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))
}

func TestPredictionsLengthMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pred.png")
	err := Predictions(path, "test", []float64{1, 2}, []float64{1}, []float64{1, 2})
	require.Error(t, err)
}

func TestTradeoffWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tradeoff.png")

	settings := []int{1, 2, 3}
	train := []float64{1.0, 0.5, 0.2}
	test := []float64{1.1, 0.6, 0.9}
	require.NoError(t, Tradeoff(path, "sweep", "degree", settings, train, test))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))
}

func TestTradeoffLengthMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tradeoff.png")
	err := Tradeoff(path, "sweep", "degree", []int{1, 2}, []float64{1}, []float64{1, 2})
	require.Error(t, err)
}
