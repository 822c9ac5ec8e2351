// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ssrothman/simon-mpl-util/dataset"
)

// Config is the optional YAML configuration:
//
//	labels:
//	  pt: "$p_T$ [GeV]"
//	radial: [r]
//	clip:
//	  pt: {low: 0, high: 500}
//	psd_tolerance: 1e-9
//
// A positive psd_tolerance enables the eigenvalue check on loaded
// covariance matrices.
type Config struct {
	Labels       map[string]string `yaml:"labels"`
	Radial       []string          `yaml:"radial"`
	Clip         map[string]Clip   `yaml:"clip"`
	PSDTolerance float64           `yaml:"psd_tolerance"`
}

// Clip bounds the infinite edges of an axis for density widths.
type Clip struct {
	Low  dataset.Edge `yaml:"low"`
	High dataset.Edge `yaml:"high"`
}

// LoadConfig reads and validates a config file. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if math.IsNaN(cfg.PSDTolerance) || math.IsInf(cfg.PSDTolerance, 0) || cfg.PSDTolerance < 0 {
		return Config{}, fmt.Errorf("config %s: psd_tolerance must be finite and non-negative", path)
	}
	for axis, c := range cfg.Clip {
		lo, hi := float64(c.Low), float64(c.High)
		if math.IsInf(lo, 0) || math.IsInf(hi, 0) || math.IsNaN(lo) || math.IsNaN(hi) || lo >= hi {
			return Config{}, fmt.Errorf("config %s: clip %q: bounds must be finite with low < high", path, axis)
		}
	}

	return cfg, nil
}

func (c Config) datasetOptions() []dataset.Option {
	if c.PSDTolerance > 0 {
		return []dataset.Option{dataset.WithPSDCheck(c.PSDTolerance)}
	}

	return nil
}
