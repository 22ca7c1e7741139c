// Package regress provides ordinary least-squares linear regression and the
// error metrics used to evaluate it.
package regress

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var (
	ErrNotFitted         = errors.New("model is not fitted")
	ErrDimensionMismatch = errors.New("dimension mismatch")
)

// LinearRegression fits y = intercept + w'x by QR least squares.
type LinearRegression struct {
	// FitIntercept controls whether a constant term is estimated. When
	// false the fit is forced through the origin.
	FitIntercept bool

	coefs     []float64
	intercept float64
	fitted    bool
}

// New returns an unfitted model that estimates an intercept.
func New() *LinearRegression {
	return &LinearRegression{FitIntercept: true}
}

// Fit solves the least-squares problem for the given design matrix and
// targets. X has one row per observation; y must have the same length.
func (m *LinearRegression) Fit(x mat.Matrix, y []float64) error {
	r, c := x.Dims()
	if r != len(y) {
		return fmt.Errorf("%w: %d rows of features, %d targets", ErrDimensionMismatch, r, len(y))
	}
	if r == 0 || c == 0 {
		return fmt.Errorf("%w: empty design matrix (%dx%d)", ErrDimensionMismatch, r, c)
	}

	cols := c
	if m.FitIntercept {
		cols++
	}
	if r < cols {
		return fmt.Errorf("%w: %d rows cannot determine %d parameters", ErrDimensionMismatch, r, cols)
	}
	a := mat.NewDense(r, cols, nil)
	for i := 0; i < r; i++ {
		j := 0
		if m.FitIntercept {
			a.Set(i, 0, 1)
			j = 1
		}
		for k := 0; k < c; k++ {
			a.Set(i, j+k, x.At(i, k))
		}
	}

	var qr mat.QR
	qr.Factorize(a)
	sol := mat.NewVecDense(cols, nil)
	if err := qr.SolveVecTo(sol, false, mat.NewVecDense(r, y)); err != nil {
		return fmt.Errorf("least squares solve: %w", err)
	}

	m.coefs = make([]float64, c)
	if m.FitIntercept {
		m.intercept = sol.AtVec(0)
		for k := 0; k < c; k++ {
			m.coefs[k] = sol.AtVec(k + 1)
		}
	} else {
		m.intercept = 0
		for k := 0; k < c; k++ {
			m.coefs[k] = sol.AtVec(k)
		}
	}
	m.fitted = true
	return nil
}

// Predict returns one prediction per row of x.
func (m *LinearRegression) Predict(x mat.Matrix) ([]float64, error) {
	if !m.fitted {
		return nil, ErrNotFitted
	}
	r, c := x.Dims()
	if c != len(m.coefs) {
		return nil, fmt.Errorf("%w: model has %d coefficients, input has %d columns",
			ErrDimensionMismatch, len(m.coefs), c)
	}
	out := make([]float64, r)
	for i := 0; i < r; i++ {
		sum := m.intercept
		for k := 0; k < c; k++ {
			sum += m.coefs[k] * x.At(i, k)
		}
		out[i] = sum
	}
	return out, nil
}

// Score returns the coefficient of determination R^2 on the given data.
func (m *LinearRegression) Score(x mat.Matrix, y []float64) (float64, error) {
	pred, err := m.Predict(x)
	if err != nil {
		return 0, err
	}
	if len(pred) != len(y) {
		return 0, fmt.Errorf("%w: %d predictions, %d targets", ErrDimensionMismatch, len(pred), len(y))
	}
	return RSquared(y, pred), nil
}

// Coefficients returns a copy of the fitted feature weights, excluding the
// intercept.
func (m *LinearRegression) Coefficients() []float64 {
	out := make([]float64, len(m.coefs))
	copy(out, m.coefs)
	return out
}

// Intercept returns the fitted constant term, zero when FitIntercept is false.
func (m *LinearRegression) Intercept() float64 {
	return m.intercept
}
