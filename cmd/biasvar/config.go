package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the experiment settings. Fields left out of the yaml file
// keep their defaults; explicit command-line flags override both.
type Config struct {
	Rows     int       `yaml:"rows"`
	Coeffs   []float64 `yaml:"coeffs"`
	Noise    float64   `yaml:"noise"`
	Seed     int64     `yaml:"seed"`
	TestFrac float64   `yaml:"testFrac"`
	Degrees  []int     `yaml:"degrees"`
	Bins     []int     `yaml:"bins"`
	OutDir   string    `yaml:"outDir"`
	SaveData bool      `yaml:"saveData"`
}

// defaultConfig is a cubic with visible curvature on [0, 1] and moderate
// noise, swept over enough settings to show the tradeoff on both transforms.
func defaultConfig() Config {
	return Config{
		Rows:     200,
		Coeffs:   []float64{1, 2, -8, 8},
		Noise:    0.3,
		Seed:     42,
		TestFrac: 0.25,
		Degrees:  []int{1, 2, 3, 5, 8, 12},
		Bins:     []int{2, 4, 8, 16, 32},
		OutDir:   "out",
	}
}

func loadConfig(path string, cfg *Config) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) validate() error {
	if c.Rows < 4 {
		return fmt.Errorf("rows must be at least 4, got %d", c.Rows)
	}
	if len(c.Coeffs) == 0 {
		return fmt.Errorf("at least one polynomial coefficient is required")
	}
	if c.TestFrac <= 0 || c.TestFrac >= 1 {
		return fmt.Errorf("testFrac must be in (0, 1), got %g", c.TestFrac)
	}
	for _, d := range c.Degrees {
		if d < 1 {
			return fmt.Errorf("degrees must be positive, got %d", d)
		}
	}
	for _, b := range c.Bins {
		if b < 2 {
			return fmt.Errorf("bin counts must be at least 2, got %d", b)
		}
	}
	return nil
}
