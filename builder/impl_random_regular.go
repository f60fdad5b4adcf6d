// SPDX-License-Identifier: MIT
// Package: confgraph/builder
//
// impl_random_regular.go — RandomRegular(n, d) constructor.
//
// Canonical model:
//   • Stub pairing over degree.Regular(n, d), the configuration model with a
//     constant sequence.
//   • If the graph forbids loops or multi-edges, a pairing is validated before
//     any edge is added; invalid pairings are reshuffled up to
//     maxStubMatchingAttempts times.
//
// Contract:
//   • Only UNDIRECTED graphs (else ErrUnsupportedGraphMode).
//   • n ≥ 1; 0 ≤ d < n; n*d even (else ErrTooFewVertices).
//   • Exhausted reshuffles → ErrConstructFailed, no edges added.
//
// Complexity: ~O(n·d) per attempt, attempts bounded.

package builder

import (
	"fmt"

	"github.com/katalvlaran/confgraph/core"
	"github.com/katalvlaran/confgraph/degree"
)

// RandomRegular returns a Constructor that builds an undirected d-regular graph.
func RandomRegular(n, d int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if g.Directed() {
			return fmt.Errorf("%s: only undirected graphs are supported: %w",
				MethodRandomRegular, ErrUnsupportedGraphMode)
		}
		if n < minRRVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				MethodRandomRegular, n, minRRVertices, ErrTooFewVertices)
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w",
				MethodRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w",
				MethodRandomRegular, n, d, ErrTooFewVertices)
		}

		ids, err := addNodes(g, n, cfg.idFn, MethodRandomRegular)
		if err != nil {
			return err
		}
		stubs := expandStubs(degree.Regular(n, d))
		if len(stubs) == 0 {
			return nil
		}

		allowLoops, allowMulti := g.Looped(), g.Multigraph()
		rng := cfg.pairingRand()
		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			shuffleStubs(rng, stubs)
			if !pairingAllowed(stubs, allowLoops, allowMulti) {
				continue
			}

			return addPairs(g, ids, stubs, MethodRandomRegular)
		}

		return fmt.Errorf("%s: failed to construct after %d attempts: %w",
			MethodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
	}
}
