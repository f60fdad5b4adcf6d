// SPDX-License-Identifier: MIT

// Command confgraph samples a Gamma degree sequence, realizes it with the
// configuration model and writes the edge list for downstream tooling.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/katalvlaran/confgraph/bfs"
	"github.com/katalvlaran/confgraph/builder"
	"github.com/katalvlaran/confgraph/config"
	"github.com/katalvlaran/confgraph/export"
	"github.com/katalvlaran/confgraph/internal/cli"
	"github.com/katalvlaran/confgraph/metrics"
)

// main is the entrypoint for the confgraph command.
func main() {
	// Use a minimal logger until the configured one exists.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitFailure)
	}
}

// run holds the command logic; stdout receives the document when the output
// path is "-" or empty, stderr receives usage text and logs.
func run(stdout, stderr io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, stderr)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := cfg.Log.NewLogger(stderr)
	reg := metrics.NewRegistry()

	start := time.Now()
	res, err := builder.Run(cfg.Graph.Size, cfg.Graph.MaxDegree, cfg.BuilderOptions(logger)...)
	elapsed := time.Since(start)
	if err != nil {
		reg.RecordFailure(elapsed)
		logger.Error("generation failed", "error", err)
		return errors.Join(
			&cli.ExitError{Code: cli.ExitFailure, Message: err.Error()},
			writeMetrics(cfg, reg, logger),
		)
	}

	stats := res.Graph.Stats()
	reg.RecordGeneration(stats, elapsed, res.Sequence.ParityCorrected())
	comps, err := bfs.Components(context.Background(), res.Graph)
	if err != nil {
		return &cli.ExitError{Code: cli.ExitFailure, Message: err.Error()}
	}
	reg.RecordComponents(comps)

	doc := export.FromResult(res, cfg.Graph.MaxDegree)
	if err = writeDocument(stdout, cfg.Output.Path, doc); err != nil {
		return &cli.ExitError{Code: cli.ExitFailure, Message: err.Error()}
	}
	if err = writeMetrics(cfg, reg, logger); err != nil {
		return &cli.ExitError{Code: cli.ExitFailure, Message: err.Error()}
	}

	logger.Info("graph generated",
		slog.String("run_id", doc.RunID),
		slog.Uint64("seed", res.Seed),
		slog.Int("nodes", stats.VertexCount),
		slog.Int("edges", stats.EdgeCount),
		slog.Int("self_loops", stats.SelfLoops),
		slog.Int("parallel_edges", stats.ParallelEdges),
		slog.Int("components", comps.Count()),
		slog.Int("largest_component", comps.Largest),
		slog.Int("max_degree", cfg.Graph.MaxDegree),
		slog.Int("max_realized_degree", doc.MaxRealizedDegree),
		slog.Bool("parity_corrected", res.Sequence.ParityCorrected()),
		slog.Duration("duration", elapsed),
		slog.String("output", outputName(cfg.Output.Path)),
	)

	return nil
}

func writeDocument(stdout io.Writer, path string, doc *export.Document) error {
	if path == "" || path == config.StdoutPath {
		return export.Write(stdout, doc, export.FormatYAML)
	}

	return export.WriteFile(path, doc)
}

func writeMetrics(cfg *config.Config, reg *metrics.Registry, logger *slog.Logger) error {
	if cfg.Metrics.Textfile == "" {
		return nil
	}
	if err := reg.WriteTextfile(cfg.Metrics.Textfile); err != nil {
		return err
	}
	logger.Debug("metrics written", "path", cfg.Metrics.Textfile)

	return nil
}

func outputName(path string) string {
	if path == "" || path == config.StdoutPath {
		return "stdout"
	}
	return path
}
