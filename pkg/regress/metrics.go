package regress

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// SquaredErrors returns the per-row squared error. Both slices must have the
// same length.
func SquaredErrors(yTrue, yPred []float64) []float64 {
	out := make([]float64, len(yTrue))
	for i := range yTrue {
		d := yPred[i] - yTrue[i]
		out[i] = d * d
	}
	return out
}

// MSE returns the mean squared error.
func MSE(yTrue, yPred []float64) float64 {
	s := 0.0
	for i := range yTrue {
		d := yPred[i] - yTrue[i]
		s += d * d
	}
	return s / float64(len(yTrue))
}

// RMSE returns the root mean squared error.
func RMSE(yTrue, yPred []float64) float64 { return math.Sqrt(MSE(yTrue, yPred)) }

// RSquared returns the coefficient of determination. A constant yTrue gives 0.
func RSquared(yTrue, yPred []float64) float64 {
	m := stat.Mean(yTrue, nil)
	ssTot, ssRes := 0.0, 0.0
	for i := range yTrue {
		d := yTrue[i] - m
		ssTot += d * d
		r := yTrue[i] - yPred[i]
		ssRes += r * r
	}
	if ssTot == 0 {
		return 0
	}
	return 1 - ssRes/ssTot
}
