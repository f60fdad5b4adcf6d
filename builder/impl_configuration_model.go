// SPDX-License-Identifier: MIT
// Package: confgraph/builder
//
// impl_configuration_model.go — ConfigurationModel(seq) constructor.
//
// Canonical model:
//   • Node i contributes seq[i] stubs; stubs are listed in ascending node order.
//   • One uniform Fisher–Yates shuffle, then (stub[2k], stub[2k+1]) → edge k.
//   • Every pair becomes an edge. Self-loops and parallel edges are kept.
//
// Contract:
//   • Target graph must be undirected with loops and multi-edges enabled
//     (else ErrUnsupportedGraphMode).
//   • Σseq odd or any seq[i] < 0 → ErrInvariantViolation, graph untouched.
//   • Σseq == 0 → vertices only, no error.
//   • Vertices are added via cfg.idFn in ascending index order.
//
// Complexity: O(n + Σseq) time, O(Σseq) temporary space.
//
// Determinism: fixed generator state ⇒ identical edge list.

package builder

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/confgraph/core"
	"github.com/katalvlaran/confgraph/degree"
)

// ConfigurationModel returns a Constructor that realizes seq exactly.
func ConfigurationModel(seq degree.Sequence) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if g.Directed() {
			return fmt.Errorf("%s: only undirected graphs are supported: %w",
				MethodConfigurationModel, ErrUnsupportedGraphMode)
		}
		if !g.Looped() || !g.Multigraph() {
			return fmt.Errorf("%s: graph must allow loops and multi-edges: %w",
				MethodConfigurationModel, ErrUnsupportedGraphMode)
		}
		for i := 0; i < seq.Len(); i++ {
			if seq.At(i) < 0 {
				return fmt.Errorf("%s: degree of node %d is %d: %w",
					MethodConfigurationModel, i, seq.At(i), ErrInvariantViolation)
			}
		}
		if !seq.Even() {
			return fmt.Errorf("%s: stub total %d is odd: %w",
				MethodConfigurationModel, seq.Sum(), ErrInvariantViolation)
		}

		ids, err := addNodes(g, seq.Len(), cfg.idFn, MethodConfigurationModel)
		if err != nil {
			return err
		}

		stubs := expandStubs(seq)
		if len(stubs) == 0 {
			return nil
		}
		shuffleStubs(cfg.pairingRand(), stubs)

		if err = addPairs(g, ids, stubs, MethodConfigurationModel); err != nil {
			return err
		}

		if cfg.logger.Enabled(context.Background(), slog.LevelDebug) {
			s := g.Stats()
			cfg.logger.Debug("configuration model realized",
				slog.Int("nodes", seq.Len()),
				slog.Int("stubs", len(stubs)),
				slog.Int("self_loops", s.SelfLoops),
				slog.Int("parallel_edges", s.ParallelEdges))
		}

		return nil
	}
}
