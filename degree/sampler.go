// SPDX-License-Identifier: MIT
// Package: confgraph/degree
//
// sampler.go - Gamma-distributed degree sequences with parity correction.
//
// Algorithm (per call):
//  1. Validate size ≥ 1 and maxDegree ≥ 1.
//  2. For i in 0..size-1: g ~ Gamma(shape, scale); d[i] = floor(g) mod maxDegree + 1.
//  3. If Σd is odd: d[size-1]++ (exactly once).
//
// Complexity: O(size) time and space.

package degree

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

const methodSample = "Sample"

// Sampler draws degree sequences from a fixed Gamma distribution.
type Sampler struct {
	gamma distuv.Gamma
	shape float64
	scale float64
}

// NewSampler validates the distribution parameters and binds the sampler to
// its random stream.
func NewSampler(opts ...Option) (*Sampler, error) {
	cfg := newSamplerConfig(opts...)
	if !positiveFinite(cfg.shape) {
		return nil, fmt.Errorf("NewSampler: shape=%v must be finite and > 0: %w", cfg.shape, ErrBadDistribution)
	}
	if !positiveFinite(cfg.scale) {
		return nil, fmt.Errorf("NewSampler: scale=%v must be finite and > 0: %w", cfg.scale, ErrBadDistribution)
	}

	return &Sampler{
		// distuv parameterises Gamma by rate, the inverse of scale.
		gamma: distuv.Gamma{Alpha: cfg.shape, Beta: 1 / cfg.scale, Src: cfg.rng},
		shape: cfg.shape,
		scale: cfg.scale,
	}, nil
}

// Shape returns the Gamma shape parameter.
func (s *Sampler) Shape() float64 { return s.shape }

// Scale returns the Gamma scale parameter.
func (s *Sampler) Scale() float64 { return s.scale }

// Sample returns size degrees in [1, maxDegree] with an even sum; the last
// entry may be maxDegree+1 after parity correction.
func (s *Sampler) Sample(size, maxDegree int) (Sequence, error) {
	if size < 1 {
		return Sequence{}, fmt.Errorf("%s: size=%d < 1: %w", methodSample, size, ErrInvalidArgument)
	}
	if maxDegree < 1 {
		return Sequence{}, fmt.Errorf("%s: maxDegree=%d < 1: %w", methodSample, maxDegree, ErrInvalidArgument)
	}

	vals := make([]int, size)
	for i := range vals {
		vals[i] = Fold(s.gamma.Rand(), maxDegree)
	}
	corrected := CorrectParity(vals)

	seq := fromOwned(vals)
	seq.corrected = corrected

	return seq, nil
}

// Sample is NewSampler(opts...) followed by Sample(size, maxDegree).
func Sample(size, maxDegree int, opts ...Option) (Sequence, error) {
	s, err := NewSampler(opts...)
	if err != nil {
		return Sequence{}, err
	}

	return s.Sample(size, maxDegree)
}

// Fold maps a non-negative finite draw g into [1, maxDegree] as
// floor(g) mod maxDegree + 1. maxDegree must be ≥ 1.
// The reduction happens in float64, where math.Mod is exact, so draws
// beyond the int range still land in bounds.
func Fold(g float64, maxDegree int) int {
	return int(math.Mod(math.Floor(g), float64(maxDegree))) + 1
}

// CorrectParity increments the last entry when the sum of vals is odd and
// reports whether it did. Empty input is left untouched.
func CorrectParity(vals []int) bool {
	if len(vals) == 0 {
		return false
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	if sum%2 == 0 {
		return false
	}
	vals[len(vals)-1]++

	return true
}

func positiveFinite(x float64) bool {
	return x > 0 && !math.IsInf(x, 1) && !math.IsNaN(x)
}
