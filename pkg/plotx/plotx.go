// Package plotx renders experiment results with gonum/plot.
package plotx

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"biasvar/pkg/regress"
)

var (
	actualColor    = color.RGBA{B: 255, A: 255, R: 50, G: 50}
	predictedColor = color.RGBA{R: 255, A: 255}
	trainColor     = color.RGBA{B: 200, A: 255}
	testColor      = color.RGBA{R: 200, A: 255}
)

// plotToFile creates a plot with the given title and axis labels, fills it
// using draw, and saves it as a PNG at path.
func plotToFile(path, title, xLabel, yLabel string, draw func(*plot.Plot) error) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	if err := draw(p); err != nil {
		return fmt.Errorf("could not draw plot contents: %w", err)
	}
	if err := p.Save(15*vg.Centimeter, 15*vg.Centimeter, path); err != nil {
		return fmt.Errorf("could not save plot: %w", err)
	}
	return nil
}

// plotterXY pairs parallel x and y slices into plotter points.
func plotterXY(x, y []float64) plotter.XYs {
	xy := make(plotter.XYs, len(x))
	for i := range x {
		xy[i].X = x[i]
		xy[i].Y = y[i]
	}
	return xy
}

// Predictions renders actual and predicted responses against the predictor
// as two scatters, with the mean squared error in the title. The three
// slices must be parallel.
func Predictions(path, title string, x, actual, predicted []float64) error {
	if len(x) != len(actual) || len(x) != len(predicted) {
		return fmt.Errorf("mismatched series lengths: %d x, %d actual, %d predicted",
			len(x), len(actual), len(predicted))
	}
	full := fmt.Sprintf("%s (MSE=%.4f)", title, regress.MSE(actual, predicted))
	return plotToFile(path, full, "x", "y", func(p *plot.Plot) error {
		obs, err := plotter.NewScatter(plotterXY(x, actual))
		if err != nil {
			return err
		}
		obs.Color = actualColor
		p.Add(obs)
		p.Legend.Add("actual", obs)

		pred, err := plotter.NewScatter(plotterXY(x, predicted))
		if err != nil {
			return err
		}
		pred.Color = predictedColor
		p.Add(pred)
		p.Legend.Add("predicted", pred)
		return nil
	})
}

// Tradeoff renders train and test mean squared error against a model
// complexity setting (polynomial degree or bin count) as two lines.
func Tradeoff(path, title, xLabel string, settings []int, trainMSE, testMSE []float64) error {
	if len(settings) != len(trainMSE) || len(settings) != len(testMSE) {
		return fmt.Errorf("mismatched series lengths: %d settings, %d train, %d test",
			len(settings), len(trainMSE), len(testMSE))
	}
	xs := make([]float64, len(settings))
	for i, s := range settings {
		xs[i] = float64(s)
	}
	return plotToFile(path, title, xLabel, "MSE", func(p *plot.Plot) error {
		train, err := plotter.NewLine(plotterXY(xs, trainMSE))
		if err != nil {
			return err
		}
		train.Color = trainColor
		p.Add(train)
		p.Legend.Add("train", train)

		test, err := plotter.NewLine(plotterXY(xs, testMSE))
		if err != nil {
			return err
		}
		test.Color = testColor
		p.Add(test)
		p.Legend.Add("test", test)
		return nil
	})
}
