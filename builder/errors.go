// SPDX-License-Identifier: MIT
// Package: confgraph/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Implementations attach context as "<Method>: <detail>: %w".
//   • Constructors never panic; option constructors may (nil arguments).

package builder

import "errors"

// ErrInvariantViolation indicates a degree sequence that cannot be realized
// by stub pairing: an odd stub total or a negative entry.
// Unreachable through Generate, whose sampler always yields an even sum.
var ErrInvariantViolation = errors.New("builder: degree sequence invariant violated")

// ErrTooFewVertices indicates a size or degree parameter below its minimum
// (RandomRegular n/d constraints).
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrUnsupportedGraphMode indicates the target core.Graph mode is incompatible
// with the constructor (directed graphs, or loops/multi-edges disabled for the
// configuration model).
var ErrUnsupportedGraphMode = errors.New("builder: unsupported graph mode")

// ErrConstructFailed indicates the constructor could not produce a valid
// topology: exhausted reshuffles, a nil constructor, or an ID scheme that
// maps two nodes to the same vertex ID.
var ErrConstructFailed = errors.New("builder: construction failed")
