// SPDX-License-Identifier: MIT
// Package: confgraph/internal/cli
//
// cli.go - flag parsing over the YAML configuration and ExitError.

package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/confgraph/config"
)

// Exit codes.
const (
	ExitFailure = 1
	ExitUsage   = 2
)

// ExitError is an error carrying a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns the merged, validated
// configuration, a boolean indicating the program should exit cleanly
// (help was requested), or an *ExitError.
func Parse(args []string, output io.Writer) (*config.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("confgraph", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
confgraph - random multigraphs from Gamma-distributed degree sequences.

Usage:
  confgraph [options]

Flags override values read from -config.

Options:
`)
		flagSet.PrintDefaults()
	}

	def := config.Default()
	configPath := flagSet.String("config", "", "Path to a YAML configuration file.")
	size := flagSet.Int("size", def.Graph.Size, "Number of nodes.")
	maxDegree := flagSet.Int("max-degree", def.Graph.MaxDegree, "Upper bound of sampled degrees (the last node may exceed it by one).")
	shape := flagSet.Float64("shape", def.Graph.Shape, "Gamma shape parameter.")
	scale := flagSet.Float64("scale", def.Graph.Scale, "Gamma scale parameter.")
	seed := flagSet.Uint64("seed", def.Graph.Seed, "Replay seed. 0 derives one from the clock.")
	idScheme := flagSet.String("id-scheme", def.Graph.IDScheme, "Vertex IDs: decimal, hex, base36, excel or prefix:<p>.")
	out := flagSet.String("out", def.Output.Path, "Output file (.yaml, .yml, .json, optional .sz). '-' writes YAML to stdout.")
	logLevel := flagSet.String("log-level", def.Log.Level, "Logging level: 'debug', 'info', 'warn', 'error'.")
	logFormat := flagSet.String("log-format", def.Log.Format, "Log output format: 'text' or 'json'.")
	textfile := flagSet.String("metrics-textfile", def.Metrics.Textfile, "Write Prometheus metrics to this .prom file.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: ExitUsage, Message: fmt.Sprintf("unexpected argument %q", flagSet.Arg(0))}
	}
	slog.Debug("Arguments parsed successfully.")

	cfg := def
	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
		}
		if cfg, err = config.Decode(data); err != nil {
			return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
		}
		slog.Debug("Configuration file loaded.", "path", *configPath)
	}

	// Only flags given explicitly override the file.
	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "size":
			cfg.Graph.Size = *size
		case "max-degree":
			cfg.Graph.MaxDegree = *maxDegree
		case "shape":
			cfg.Graph.Shape = *shape
		case "scale":
			cfg.Graph.Scale = *scale
		case "seed":
			cfg.Graph.Seed = *seed
		case "id-scheme":
			cfg.Graph.IDScheme = *idScheme
		case "out":
			cfg.Output.Path = *out
		case "log-level":
			cfg.Log.Level = *logLevel
		case "log-format":
			cfg.Log.Format = *logFormat
		case "metrics-textfile":
			cfg.Metrics.Textfile = *textfile
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}
