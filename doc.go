// Package confgraph generates random multigraphs for discrete-event
// simulation experiments: a Gamma-distributed degree sequence realized
// exactly by the configuration model.
//
// Everything is organized under subpackages:
//
//	randsrc/  — per-call PCG streams and injectable seed sources (clock, fixed)
//	degree/   — Sequence type and the Gamma sampler with parity correction
//	core/     — thread-safe multigraph: vertices, edge multiset, loop-aware degrees
//	builder/  — Constructor pipeline: ConfigurationModel, RandomRegular, Build, Generate, Run
//	bfs/      — breadth-first search and connected components of generated graphs
//	export/   — edge-list documents (YAML/JSON, optional snappy) for downstream tooling
//	metrics/  — Prometheus generation statistics with textfile export
//	config/   — YAML run configuration with struct-tag validation
//
// Quick example, degrees [2 3 1 2 3 3] pair 14 stubs into 7 edges:
//
//	    0───1═══4
//	        │   ╎
//	    2───5═══3   (═ parallel edges, loops allowed)
//
// The drawing is one possible outcome; the degrees are guaranteed, the
// pairing is random.
//
//	go run github.com/katalvlaran/confgraph/cmd/confgraph -size 100 -max-degree 10 -seed 42
package confgraph
