// SPDX-License-Identifier: MIT
// Package: confgraph/builder
//
// config.go — internal configuration and defaults.
//
// Defaults:
//   • idFn        = DefaultIDFn        ("0","1","2",...)
//   • rng         = nil                (resolved per call from seeds)
//   • seeds       = shared wall clock  (randsrc.Clock)
//   • samplerOpts = none               (degree.DefaultShape / DefaultScale)
//   • logger      = discard

package builder

import (
	"log/slog"
	"math/rand/v2"

	"github.com/katalvlaran/confgraph/degree"
	"github.com/katalvlaran/confgraph/randsrc"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	idFn        IDFn
	rng         *rand.Rand
	seeds       randsrc.SeedSource
	samplerOpts []degree.Option
	logger      *slog.Logger
}

// defaultSeeds is safe for concurrent use; it only hands out seeds, each
// call still builds its own generator.
var defaultSeeds = randsrc.NewClock()

// newBuilderConfig applies opts over the defaults, last option wins.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:   DefaultIDFn,
		seeds:  defaultSeeds,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// pairingRand returns the configured generator, or a fresh stream seeded
// from cfg.seeds at call time.
func (cfg builderConfig) pairingRand() *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}

	return randsrc.New(cfg.seeds.Seed(), randsrc.StreamPairing)
}

// streams resolves the generators of one Generate call. With an explicit
// *rand.Rand both consumers share it and the reported seed is 0; otherwise
// one seed feeds two independent PCG streams.
func (cfg builderConfig) streams() (seed uint64, degrees, pairing *rand.Rand) {
	if cfg.rng != nil {
		return 0, cfg.rng, cfg.rng
	}
	seed = cfg.seeds.Seed()

	return seed, randsrc.New(seed, randsrc.StreamDegrees), randsrc.New(seed, randsrc.StreamPairing)
}
