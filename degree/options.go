// SPDX-License-Identifier: MIT
// Package: confgraph/degree
//
// options.go - functional options for NewSampler.
//
// Contract:
//   - Option constructors panic on nil inputs (programmer error).
//   - Distribution parameters are validated by NewSampler, not here, so a
//     config-driven value surfaces as ErrBadDistribution instead of a panic.

package degree

import (
	"math/rand/v2"

	"github.com/katalvlaran/confgraph/randsrc"
)

// Default Gamma parameters: a right-skewed, moderate-variance degree profile.
const (
	DefaultShape = 10.0
	DefaultScale = 1.0
)

// samplerConfig holds every knob of a Sampler.
type samplerConfig struct {
	shape float64
	scale float64
	rng   *rand.Rand
	seeds randsrc.SeedSource
}

// Option customizes a Sampler.
type Option func(*samplerConfig)

// WithShape sets the Gamma shape parameter alpha.
func WithShape(alpha float64) Option {
	return func(c *samplerConfig) { c.shape = alpha }
}

// WithScale sets the Gamma scale parameter beta (mean = alpha*beta).
func WithScale(beta float64) Option {
	return func(c *samplerConfig) { c.scale = beta }
}

// WithRand makes the sampler draw from r. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("degree: WithRand(nil)")
	}
	return func(c *samplerConfig) { c.rng = r }
}

// WithSeed fixes the sampler stream to (seed, randsrc.StreamDegrees).
func WithSeed(seed uint64) Option {
	return func(c *samplerConfig) { c.rng = randsrc.New(seed, randsrc.StreamDegrees) }
}

// WithSeedSource draws the stream seed from src when no explicit generator
// is configured. Panics on nil.
func WithSeedSource(src randsrc.SeedSource) Option {
	if src == nil {
		panic("degree: WithSeedSource(nil)")
	}
	return func(c *samplerConfig) { c.seeds = src }
}

// defaultSeeds is the clock shared by samplers built without a seed policy.
// Clock is safe for concurrent use; every sampler still gets its own stream.
var defaultSeeds = randsrc.NewClock()

func newSamplerConfig(opts ...Option) samplerConfig {
	cfg := samplerConfig{
		shape: DefaultShape,
		scale: DefaultScale,
		seeds: defaultSeeds,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = randsrc.New(cfg.seeds.Seed(), randsrc.StreamDegrees)
	}

	return cfg
}
