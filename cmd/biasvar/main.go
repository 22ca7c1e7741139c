// Command biasvar generates a polynomial-plus-noise dataset, sweeps
// polynomial expansion degrees and bin counts on a single predictor, fits a
// linear model per setting, and reports train versus test error to show the
// bias-variance tradeoff.
package main

import (
	"encoding/csv"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"biasvar/pkg/dataprep"
	"biasvar/pkg/plotx"
	"biasvar/pkg/regress"
	"biasvar/pkg/split"
	"biasvar/pkg/synth"
	"biasvar/pkg/table"
)

func main() {
	cfg := defaultConfig()
	var configPath string

	cmd := &cobra.Command{
		Use:   "biasvar",
		Short: "Illustrate the bias-variance tradeoff with polynomial and binned features",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				fileCfg := defaultConfig()
				if err := loadConfig(configPath, &fileCfg); err != nil {
					return err
				}
				applyUnchanged(cmd, &cfg, fileCfg)
			}
			if err := cfg.validate(); err != nil {
				return err
			}
			return run(cfg)
		},
	}

	f := cmd.Flags()
	f.StringVar(&configPath, "config", "", "yaml config file; explicit flags override it")
	f.IntVar(&cfg.Rows, "rows", cfg.Rows, "number of observations to generate")
	f.Float64SliceVar(&cfg.Coeffs, "coeffs", cfg.Coeffs, "true polynomial coefficients, lowest power first")
	f.Float64Var(&cfg.Noise, "noise", cfg.Noise, "standard deviation of the Gaussian noise")
	f.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed")
	f.Float64Var(&cfg.TestFrac, "test-frac", cfg.TestFrac, "fraction of rows held out for testing")
	f.IntSliceVar(&cfg.Degrees, "degrees", cfg.Degrees, "polynomial degrees to sweep")
	f.IntSliceVar(&cfg.Bins, "bins", cfg.Bins, "bin counts to sweep")
	f.StringVar(&cfg.OutDir, "out", cfg.OutDir, "directory for plots and results")
	f.BoolVar(&cfg.SaveData, "save-data", cfg.SaveData, "also write the generated dataset as CSV")

	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

// applyUnchanged copies file-config values into cfg for every setting the
// user did not set on the command line.
func applyUnchanged(cmd *cobra.Command, cfg *Config, file Config) {
	set := func(name string) bool { return cmd.Flags().Changed(name) }
	if !set("rows") {
		cfg.Rows = file.Rows
	}
	if !set("coeffs") {
		cfg.Coeffs = file.Coeffs
	}
	if !set("noise") {
		cfg.Noise = file.Noise
	}
	if !set("seed") {
		cfg.Seed = file.Seed
	}
	if !set("test-frac") {
		cfg.TestFrac = file.TestFrac
	}
	if !set("degrees") {
		cfg.Degrees = file.Degrees
	}
	if !set("bins") {
		cfg.Bins = file.Bins
	}
	if !set("out") {
		cfg.OutDir = file.OutDir
	}
	if !set("save-data") {
		cfg.SaveData = file.SaveData
	}
}

// result is one evaluated transform setting.
type result struct {
	transform string
	setting   int
	trainMSE  float64
	testMSE   float64
}

func run(cfg Config) error {
	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	data, err := synth.Polynomial(cfg.Rows, cfg.Coeffs, cfg.Noise, rng)
	if err != nil {
		return fmt.Errorf("generate data: %w", err)
	}
	log.Printf("generated %d observations, noise sd %g, seed %d", data.Len(), cfg.Noise, cfg.Seed)

	if cfg.SaveData {
		if err := writeTable(data, filepath.Join(cfg.OutDir, "dataset.csv")); err != nil {
			return err
		}
	}

	var results []result

	var degTrain, degTest []float64
	for _, d := range cfg.Degrees {
		expanded, err := dataprep.Expand(data, d)
		if err != nil {
			return fmt.Errorf("expand degree %d: %w", d, err)
		}
		name := fmt.Sprintf("degree %d", d)
		res, err := evaluate(cfg, expanded, dataprep.PowerColumns(d), "poly", d, name)
		if err != nil {
			return err
		}
		results = append(results, res)
		degTrain = append(degTrain, res.trainMSE)
		degTest = append(degTest, res.testMSE)
	}

	var binTrain, binTest []float64
	for _, k := range cfg.Bins {
		binned, err := dataprep.Bin(data, k)
		if err != nil {
			return fmt.Errorf("bin with %d bins: %w", k, err)
		}
		name := fmt.Sprintf("%d bins", k)
		res, err := evaluate(cfg, binned, dataprep.IndicatorColumns(k), "bin", k, name)
		if err != nil {
			return err
		}
		results = append(results, res)
		binTrain = append(binTrain, res.trainMSE)
		binTest = append(binTest, res.testMSE)
	}

	if len(cfg.Degrees) > 1 {
		path := filepath.Join(cfg.OutDir, "tradeoff-poly.png")
		if err := plotx.Tradeoff(path, "Polynomial expansion", "degree", cfg.Degrees, degTrain, degTest); err != nil {
			return err
		}
	}
	if len(cfg.Bins) > 1 {
		path := filepath.Join(cfg.OutDir, "tradeoff-bins.png")
		if err := plotx.Tradeoff(path, "Binned features", "bins", cfg.Bins, binTrain, binTest); err != nil {
			return err
		}
	}

	return writeResults(results, filepath.Join(cfg.OutDir, "results.csv"))
}

// evaluate fits a linear model on the named feature columns of t, using a
// positional train/test split, and plots the held-out predictions.
func evaluate(cfg Config, t *table.Table, features []string, kind string, setting int, name string) (result, error) {
	train, test, err := split.TrainTest(t, cfg.TestFrac)
	if err != nil {
		return result{}, err
	}

	xTrain, err := train.Matrix(features...)
	if err != nil {
		return result{}, err
	}
	xTest, err := test.Matrix(features...)
	if err != nil {
		return result{}, err
	}
	yTrain, _ := train.Col(dataprep.TargetColumn)
	yTest, _ := test.Col(dataprep.TargetColumn)

	model := regress.New()
	if err := model.Fit(xTrain, yTrain); err != nil {
		return result{}, fmt.Errorf("fit %s: %w", name, err)
	}
	predTrain, err := model.Predict(xTrain)
	if err != nil {
		return result{}, err
	}
	predTest, err := model.Predict(xTest)
	if err != nil {
		return result{}, err
	}

	res := result{
		transform: kind,
		setting:   setting,
		trainMSE:  regress.MSE(yTrain, predTrain),
		testMSE:   regress.MSE(yTest, predTest),
	}
	log.Printf("%-10s train MSE %.4f  test MSE %.4f", name, res.trainMSE, res.testMSE)

	baseTest, _ := test.Col(dataprep.BaseColumn)
	plotPath := filepath.Join(cfg.OutDir, fmt.Sprintf("%s-%d.png", kind, setting))
	if err := plotx.Predictions(plotPath, "Test predictions, "+name, baseTest, yTest, predTest); err != nil {
		return result{}, err
	}
	return res, nil
}

func writeTable(t *table.Table, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()
	if err := t.WriteCSV(file); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func writeResults(results []result, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write([]string{"transform", "setting", "train_mse", "test_mse"}); err != nil {
		return err
	}
	for _, r := range results {
		rec := []string{
			r.transform,
			strconv.Itoa(r.setting),
			strconv.FormatFloat(r.trainMSE, 'g', -1, 64),
			strconv.FormatFloat(r.testMSE, 'g', -1, 64),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	log.Printf("wrote %s", path)
	return nil
}
