// Package config loads the CLI configuration file.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds CLI settings. Flags override any value set here.
type Config struct {
	// NegativeClass and PositiveClass name the two classes on rendered
	// reports and the confusion-matrix axes.
	NegativeClass string `yaml:"negative_class"`
	PositiveClass string `yaml:"positive_class"`

	// OutputDir is where plot images are written.
	OutputDir string `yaml:"output_dir"`

	// PlotSize is the square plot edge in inches.
	PlotSize float64 `yaml:"plot_size"`

	// ModelPath points at the ONNX classifier for the infer command.
	ModelPath string `yaml:"model_path"`

	// PoolSize is the ONNX session pool size (0 means one per CPU).
	PoolSize int `yaml:"pool_size"`

	// NaNOnUndefined reports zero-denominator metrics as NaN instead of
	// failing the report.
	NaNOnUndefined bool `yaml:"nan_on_undefined"`
}

// defaultFile is searched when no explicit config path is given.
const defaultFile = "binclass.yaml"

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		NegativeClass: "Negative",
		PositiveClass: "Positive",
		OutputDir:     ".",
		PlotSize:      4,
	}
}

// Load reads configuration from path. An explicit path must exist; with an
// empty path the default file is tried and its absence is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = defaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.PlotSize <= 0 {
		return nil, fmt.Errorf("config %s: plot_size must be positive", path)
	}
	return cfg, nil
}
