// SPDX-License-Identifier: MIT
// Package: confgraph/randsrc
//
// randsrc.go - seed sources and per-call PCG streams.

package randsrc

import (
	"math/rand/v2"
	"sync/atomic"
	"time"
)

// Stream selects an independent PCG sequence for one consumer of a seed.
// The sampler and the stub pairing draw from different streams of the same
// seed, so fixing the seed fixes the whole generation.
type Stream uint64

const (
	// StreamDegrees feeds the Gamma draws of the degree sampler.
	StreamDegrees Stream = 0x64656772 // "degr"
	// StreamPairing feeds the stub shuffle of the configuration model.
	StreamPairing Stream = 0x70616972 // "pair"
)

// clockShift amplifies millisecond timestamps before mixing in the counter.
const clockShift = 2

// SeedSource yields one seed per generation call.
type SeedSource interface {
	Seed() uint64
}

// SeedFunc adapts a plain function to SeedSource.
type SeedFunc func() uint64

// Seed calls f.
func (f SeedFunc) Seed() uint64 { return f() }

// Fixed always returns the same seed.
type Fixed uint64

// Seed returns the fixed value.
func (f Fixed) Seed() uint64 { return uint64(f) }

// Clock derives seeds from wall-clock time at call time. The zero value is
// ready to use and safe for concurrent callers.
type Clock struct {
	// Now overrides time.Now; nil means time.Now.
	Now   func() time.Time
	calls atomic.Uint64
}

// Seed returns (unix milliseconds << 2) plus the number of previous calls.
// Two calls within the same millisecond still get distinct seeds.
func (c *Clock) Seed() uint64 {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	n := c.calls.Add(1) - 1

	return uint64(now().UnixMilli())<<clockShift + n
}

// NewClock returns a Clock reading time.Now.
func NewClock() *Clock {
	return &Clock{}
}

// New returns a fresh generator for (seed, stream). Equal inputs give equal
// sequences; the returned *rand.Rand must not be shared across goroutines.
func New(seed uint64, stream Stream) *rand.Rand {
	return rand.New(rand.NewPCG(seed, uint64(stream)))
}
