package regress

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestFitRecoversLine(t *testing.T) {
	// y = 2x + 1, noise-free.
	x := mat.NewDense(4, 1, []float64{1, 2, 3, 4})
	y := []float64{3, 5, 7, 9}

	m := New()
	require.NoError(t, m.Fit(x, y))
	require.InDelta(t, 1.0, m.Intercept(), 1e-9)
	require.InDelta(t, 2.0, m.Coefficients()[0], 1e-9)

	pred, err := m.Predict(mat.NewDense(2, 1, []float64{5, 6}))
	require.NoError(t, err)
	require.InDelta(t, 11.0, pred[0], 1e-9)
	require.InDelta(t, 13.0, pred[1], 1e-9)
}

func TestFitWithoutIntercept(t *testing.T) {
	// y = 3x through the origin.
	x := mat.NewDense(3, 1, []float64{1, 2, 3})
	y := []float64{3, 6, 9}

	m := &LinearRegression{FitIntercept: false}
	require.NoError(t, m.Fit(x, y))
	require.Zero(t, m.Intercept())
	require.InDelta(t, 3.0, m.Coefficients()[0], 1e-9)
}

func TestFitTwoFeatures(t *testing.T) {
	// y = 1 + 2a - b over a grid that fixes the plane uniquely.
	x := mat.NewDense(4, 2, []float64{
		0, 0,
		1, 0,
		0, 1,
		1, 1,
	})
	y := []float64{1, 3, 0, 2}

	m := New()
	require.NoError(t, m.Fit(x, y))
	require.InDelta(t, 1.0, m.Intercept(), 1e-9)
	coefs := m.Coefficients()
	require.InDelta(t, 2.0, coefs[0], 1e-9)
	require.InDelta(t, -1.0, coefs[1], 1e-9)
}

func TestPredictBeforeFit(t *testing.T) {
	m := New()
	_, err := m.Predict(mat.NewDense(1, 1, []float64{1}))
	require.ErrorIs(t, err, ErrNotFitted)
}

func TestFitDimensionMismatch(t *testing.T) {
	x := mat.NewDense(3, 1, []float64{1, 2, 3})
	require.ErrorIs(t, New().Fit(x, []float64{1, 2}), ErrDimensionMismatch)
}

func TestPredictWrongWidth(t *testing.T) {
	x := mat.NewDense(3, 1, []float64{1, 2, 3})
	m := New()
	require.NoError(t, m.Fit(x, []float64{1, 2, 3}))

	_, err := m.Predict(mat.NewDense(1, 2, []float64{1, 2}))
	require.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestScorePerfectFit(t *testing.T) {
	x := mat.NewDense(4, 1, []float64{1, 2, 3, 4})
	y := []float64{2, 4, 6, 8}

	m := New()
	require.NoError(t, m.Fit(x, y))

	r2, err := m.Score(x, y)
	require.NoError(t, err)
	require.InDelta(t, 1.0, r2, 1e-9)
}
