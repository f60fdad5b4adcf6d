// SPDX-License-Identifier: MIT
// Package: confgraph/core
//
// api.go - read-only policy getters and the Stats snapshot.

package core

// Directed reports the orientation applied to new edges.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowMulti
}

// Stats produces a snapshot of flags, counts and multigraph artefacts.
// Complexity: O(V + P) where P is the number of distinct endpoint pairs.
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := &GraphStats{
		Directed:    g.directed,
		AllowsLoops: g.allowLoops,
		AllowsMulti: g.allowMulti,
		VertexCount: len(g.order),
		EdgeCount:   len(g.edges),
	}
	for key, n := range g.pairs {
		if key.U == key.V {
			s.SelfLoops += n
		}
		if n > 1 {
			s.ParallelEdges += n - 1
		}
	}
	for _, id := range g.order {
		d := g.degree[id]
		if d > s.MaxDegree {
			s.MaxDegree = d
		}
		if d == 0 {
			s.IsolatedVertices++
		}
	}

	return s
}
