// SPDX-License-Identifier: MIT
// Package: confgraph/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Build / Generate / Run are thin compositions over BuildGraph and degree.Sample.
//   - No global generator state: every call resolves its own streams.
//   - Failure returns a nil graph; there is no partial output.

package builder

import (
	"fmt"

	"github.com/katalvlaran/confgraph/core"
	"github.com/katalvlaran/confgraph/degree"
)

// Constructor applies a graph mutation using the resolved builderConfig.
// Constructors validate early, return sentinel errors and never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a core.Graph with gopts, resolves the builder
// configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped as "BuildGraph: %w".
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	return buildWith(gopts, newBuilderConfig(bopts...), cons...)
}

func buildWith(gopts []core.GraphOption, cfg builderConfig, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// multigraphOptions is the graph mode the configuration model requires.
func multigraphOptions() []core.GraphOption {
	return []core.GraphOption{core.WithLoops(), core.WithMultiEdges()}
}

// Build realizes seq on a fresh undirected multigraph with loops.
// Node count is seq.Len(), edge count seq.Sum()/2, deg(i) = seq.At(i).
func Build(seq degree.Sequence, opts ...BuilderOption) (*core.Graph, error) {
	return BuildGraph(multigraphOptions(), opts, ConfigurationModel(seq))
}

// Result bundles a generated graph with the inputs that produced it.
type Result struct {
	Graph    *core.Graph
	Sequence degree.Sequence
	// Seed is the seed both streams were derived from; 0 when WithRand
	// supplied the generator directly.
	Seed uint64
}

// Run samples a degree sequence of the given size and bound, then builds it.
// The sampler and the pairing use independent streams of the same seed.
func Run(size, maxDegree int, opts ...BuilderOption) (*Result, error) {
	cfg := newBuilderConfig(opts...)
	seed, degRand, pairRand := cfg.streams()

	sopts := make([]degree.Option, 0, len(cfg.samplerOpts)+1)
	sopts = append(sopts, degree.WithRand(degRand))
	sopts = append(sopts, cfg.samplerOpts...)
	seq, err := degree.Sample(size, maxDegree, sopts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodGenerate, err)
	}

	cfg.rng = pairRand
	g, err := buildWith(multigraphOptions(), cfg, ConfigurationModel(seq))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodGenerate, err)
	}

	return &Result{Graph: g, Sequence: seq, Seed: seed}, nil
}

// Generate is Build(degree.Sample(size, maxDegree)).
func Generate(size, maxDegree int, opts ...BuilderOption) (*core.Graph, error) {
	r, err := Run(size, maxDegree, opts...)
	if err != nil {
		return nil, err
	}

	return r.Graph, nil
}
