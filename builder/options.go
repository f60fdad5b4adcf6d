// SPDX-License-Identifier: MIT
// Package: confgraph/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors PANIC on nil inputs; constructors never panic.
//   • Determinism is explicit: WithSeed, WithRand or WithSeedSource.

package builder

import (
	"log/slog"
	"math/rand/v2"

	"github.com/katalvlaran/confgraph/degree"
	"github.com/katalvlaran/confgraph/randsrc"
)

// BuilderOption customizes a constructor run by mutating builderConfig.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID generator: idx -> string.
// The function must be injective over the node range. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit generator shared by every random step of
// the call. Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed pins the seed of every random step. Equivalent to
// WithSeedSource(randsrc.Fixed(seed)).
func WithSeed(seed uint64) BuilderOption {
	return WithSeedSource(randsrc.Fixed(seed))
}

// WithSeedSource sets where per-call seeds come from. Panics on nil.
func WithSeedSource(src randsrc.SeedSource) BuilderOption {
	if src == nil {
		panic("builder: WithSeedSource(nil)")
	}
	return func(c *builderConfig) {
		c.seeds = src
		c.rng = nil
	}
}

// WithSamplerOptions forwards options to the degree sampler used by
// Generate and Run (shape, scale). Seeding options passed here override the
// builder's own degree stream.
func WithSamplerOptions(opts ...degree.Option) BuilderOption {
	return func(c *builderConfig) {
		c.samplerOpts = append(c.samplerOpts, opts...)
	}
}

// WithLogger enables debug records for each construction. Panics on nil.
func WithLogger(l *slog.Logger) BuilderOption {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) {
		c.logger = l
	}
}
