// Package core provides the in-memory multigraph that carries a generated
// topology from the builder to downstream simulation tooling.
//
// A Graph G = (V,E) is configured once at construction:
//
//   - WithDirected(bool)  default orientation of new edges (undirected by default)
//   - WithLoops()         permit self-loops (from == to)
//   - WithMultiEdges()    permit parallel edges between the same endpoints
//
// Vertices keep insertion order, edges keep insertion order and receive
// monotonic IDs ("e1", "e2", ...). Vertices() and Edges() therefore replay the
// exact construction order, which keeps seeded generations byte-stable.
//
// Degree semantics (loop-aware):
//
//	undirected edge u—v   contributes 1 to deg(u) and 1 to deg(v)
//	undirected loop  v—v  contributes 2 to deg(v)
//	directed edge u→v     contributes 1 out to u and 1 in to v
//
// Degree(id) returns the total number of edge endpoints at id, so the
// handshake identity Σ deg(v) = 2|E| always holds.
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
//
// A single sync.RWMutex guards the graph; every exported method is safe for
// concurrent use.
package core
