// Package bfs provides breadth-first search over a core.Graph and the
// connected-component analysis built on it.
//
// What
//
//   - BFS explores vertices in non-decreasing hop distance from a start
//     vertex and returns a BFSResult (visit order, depth, parent links).
//   - Components partitions a graph into connected components, which is how
//     callers learn whether a configuration-model multigraph came out
//     connected. The generator itself never rejects a disconnected graph.
//   - WithOnVisit observes each vertex with its depth and may abort the search.
//   - WithMaxDepth limits the search radius; WithFilterNeighbor prunes hops.
//
// Multigraphs
//
//	Parallel edges are one hop, self-loops never enqueue anything new.
//	Traversal follows core.Graph.NeighborIDs, which lists each distinct
//	neighbor once in first-edge order.
//
// Determinism
//
//	Vertices and neighbors come back in insertion order, so visit order and
//	component numbering are reproducible for a reproducible graph.
//
// Complexity (V = |Vertices|, P = distinct endpoint pairs)
//
//   - Time:   O(V + P)
//   - Memory: O(V)
package bfs
