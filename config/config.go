// SPDX-License-Identifier: MIT
// Package: confgraph/config
//
// config.go - Config model, defaults and YAML loading.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/confgraph/degree"
)

// ErrInvalidConfig indicates a configuration that failed validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the complete run configuration.
type Config struct {
	Graph   GraphConfig   `yaml:"graph"`
	Output  OutputConfig  `yaml:"output"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// GraphConfig holds the sampler and builder parameters.
type GraphConfig struct {
	Size      int     `yaml:"size" validate:"min=1"`
	MaxDegree int     `yaml:"max_degree" validate:"min=1"`
	Shape     float64 `yaml:"shape" validate:"gt=0"`
	Scale     float64 `yaml:"scale" validate:"gt=0"`
	// Seed 0 draws a clock-derived seed.
	Seed     uint64 `yaml:"seed"`
	IDScheme string `yaml:"id_scheme" validate:"omitempty,idscheme"`
}

// StdoutPath as output path writes YAML to standard output.
const StdoutPath = "-"

// OutputConfig selects where the edge-list document goes. An empty Path or
// StdoutPath writes YAML to standard output.
type OutputConfig struct {
	Path string `yaml:"path" validate:"omitempty,exportpath"`
}

// LogConfig configures the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// MetricsConfig configures the Prometheus textfile export; empty disables it.
type MetricsConfig struct {
	Textfile string `yaml:"textfile" validate:"omitempty,endswith=.prom"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Graph: GraphConfig{
			Size:      100,
			MaxDegree: 10,
			Shape:     degree.DefaultShape,
			Scale:     degree.DefaultScale,
		},
		Output: OutputConfig{Path: "graph.yaml"},
		Log:    LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads path over Default and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML over Default and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg, err := Decode(data)
	if err != nil {
		return nil, err
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Decode decodes YAML over Default without validating, for callers that
// apply further overrides first. Empty input yields the defaults.
func Decode(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("Decode: %w", err)
	}

	return cfg, nil
}
