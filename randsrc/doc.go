// Package randsrc supplies the random streams used by the degree sampler and the
// configuration-model builder.
//
// Every graph generation owns its streams: a SeedSource hands out one seed per
// call and New turns (seed, stream) into a fresh *rand.Rand. Nothing here keeps
// a process-wide generator, so concurrent generations never share state.
//
//   - Clock:  production seeds, wall-clock milliseconds shifted left by two and
//     mixed with a call counter so back-to-back calls differ.
//   - Fixed:  the same seed on every call (tests, reproducible runs).
//   - SeedFunc: adapter for ad-hoc policies.
package randsrc
