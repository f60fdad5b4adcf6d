// Package builder turns degree sequences into graphs.
//
// It keeps the functional-options pipeline used across confgraph:
//
//   - BuilderOption: a function that mutates builderConfig before use.
//   - Constructor:   func(g *core.Graph, cfg builderConfig) error, applied by BuildGraph.
//
// Entry points:
//
//   - ConfigurationModel(seq): realize seq exactly by uniform random stub pairing.
//   - Build(seq, opts...):     ConfigurationModel on a fresh loop/multi-edge graph.
//   - Generate(size, max, ...): degree.Sample followed by Build.
//   - Run(size, max, ...):      Generate plus the sampled sequence and seed.
//   - RandomRegular(n, d):     d-regular graph via stub pairing, honoring graph mode flags.
//
// Randomness: every call resolves its own generator. WithRand and WithSeed
// pin it; otherwise a seed is drawn from the configured randsrc.SeedSource
// (a wall-clock source by default) at call time. Equal seeds and options
// produce identical graphs.
//
// Guarantees of the configuration model:
//
//   - |V| = len(seq), |E| = Σseq/2, deg(i) = seq[i] for every node.
//   - Self-loops and parallel edges are kept; removing them would break the
//     degree guarantee.
//   - No partial graphs: Build/Generate return nil on error.
//
// Errors are sentinels; branch with errors.Is (ErrInvariantViolation,
// ErrUnsupportedGraphMode, ErrTooFewVertices, ErrConstructFailed, and
// degree.ErrInvalidArgument passed through by Generate).
package builder
