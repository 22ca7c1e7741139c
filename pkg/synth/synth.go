// Package synth generates labeled observations from a known
// polynomial-plus-noise model, for experiments where the true function is
// needed as a reference.
package synth

import (
	"fmt"
	"math/rand"

	"biasvar/pkg/dataprep"
	"biasvar/pkg/table"
)

// Eval evaluates the polynomial with the given coefficients at x, with
// coeffs[i] the coefficient of x^i.
func Eval(coeffs []float64, x float64) float64 {
	y := 0.0
	for i := len(coeffs) - 1; i >= 0; i-- {
		y = y*x + coeffs[i]
	}
	return y
}

// Polynomial draws n observations with x uniform on [0, 1) and
// y = Eval(coeffs, x) + e, e Gaussian with standard deviation noiseStd.
// The returned table has columns x and y in draw order. The same rng state
// yields the same table.
func Polynomial(n int, coeffs []float64, noiseStd float64, rng *rand.Rand) (*table.Table, error) {
	if n < 1 {
		return nil, fmt.Errorf("need at least one observation, got n=%d", n)
	}
	if len(coeffs) == 0 {
		return nil, fmt.Errorf("need at least one coefficient")
	}
	if noiseStd < 0 {
		return nil, fmt.Errorf("noise standard deviation must be non-negative, got %g", noiseStd)
	}
	if rng == nil {
		return nil, fmt.Errorf("nil random source")
	}

	x := make([]float64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = rng.Float64()
		y[i] = Eval(coeffs, x[i]) + rng.NormFloat64()*noiseStd
	}

	t := table.New()
	if err := t.AddColumn(dataprep.BaseColumn, x); err != nil {
		return nil, err
	}
	if err := t.AddColumn(dataprep.TargetColumn, y); err != nil {
		return nil, err
	}
	return t, nil
}

// Curve samples the noise-free polynomial at n evenly spaced points on
// [0, 1], for plotting the true function against fitted predictions.
// n must be at least 2.
func Curve(coeffs []float64, n int) (x, y []float64) {
	if n < 2 {
		n = 2
	}
	x = make([]float64, n)
	y = make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = float64(i) / float64(n-1)
		y[i] = Eval(coeffs, x[i])
	}
	return x, y
}
