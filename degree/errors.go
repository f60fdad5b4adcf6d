// SPDX-License-Identifier: MIT
// Package: confgraph/degree
//
// errors.go - sentinel errors for the degree package.
// Callers branch with errors.Is; context is attached with %w.

package degree

import "errors"

// ErrInvalidArgument indicates size < 1 or maxDegree < 1 passed to Sample.
var ErrInvalidArgument = errors.New("degree: invalid argument")

// ErrBadDistribution indicates unusable Gamma parameters. It is returned by
// NewSampler, never by Sample.
var ErrBadDistribution = errors.New("degree: bad distribution parameters")
