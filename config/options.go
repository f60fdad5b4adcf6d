// SPDX-License-Identifier: MIT
// Package: confgraph/config
//
// options.go - translation of a validated Config into library options.

package config

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/confgraph/builder"
	"github.com/katalvlaran/confgraph/degree"
)

// BuilderOptions returns the builder options for c. c must be valid.
func (c *Config) BuilderOptions(logger *slog.Logger) []builder.BuilderOption {
	opts := []builder.BuilderOption{
		builder.WithSamplerOptions(degree.WithShape(c.Graph.Shape), degree.WithScale(c.Graph.Scale)),
	}
	if c.Graph.Seed != 0 {
		opts = append(opts, builder.WithSeed(c.Graph.Seed))
	}
	if fn, ok := builder.IDSchemeByName(c.Graph.IDScheme); ok {
		opts = append(opts, builder.WithIDScheme(fn))
	}
	if logger != nil {
		opts = append(opts, builder.WithLogger(logger))
	}

	return opts
}

// NewLogger builds a slog.Logger writing to w. Unknown levels fall back to
// info and unknown formats to text.
func (l LogConfig) NewLogger(w io.Writer) *slog.Logger {
	var level slog.Level
	switch l.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if l.Format == "json" {
		handler = slog.NewJSONHandler(w, handlerOpts)
	} else {
		handler = slog.NewTextHandler(w, handlerOpts)
	}

	return slog.New(handler)
}
