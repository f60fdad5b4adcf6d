// SPDX-License-Identifier: MIT
// Package: confgraph/core
//
// methods_edges.go - edge insertion and queries, plus nextEdgeID().
// Determinism:
//   - Edges() returns edges in insertion order, which is also Edge.ID order.
//   - IDs are "e" + decimal sequence, no time or randomness involved.

package core

import "strconv"

// edgeIDPrefix is the textual prefix of edge IDs.
const edgeIDPrefix = 'e'

// AddEdge inserts an edge from→to and returns its ID. Missing endpoints are
// created. Loop and multi-edge policies are enforced here.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	key := g.canonical(from, to)
	if !g.allowMulti && g.pairs[key] > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	g.addVertexLocked(from)
	g.addVertexLocked(to)

	e := &Edge{ID: nextEdgeID(len(g.edges) + 1), From: from, To: to, Directed: g.directed}
	g.edges = append(g.edges, e)
	if g.pairs[key] == 0 {
		g.linkLocked(from, to)
	}
	g.pairs[key]++
	g.degree[from]++
	g.degree[to]++
	if e.Directed {
		g.inDeg[to]++
	}

	return e.ID, nil
}

// canonical orders undirected endpoints so u—v and v—u share a key.
func (g *Graph) canonical(from, to string) pairKey {
	if !g.directed && to < from {
		from, to = to, from
	}

	return pairKey{U: from, V: to}
}

// HasEdge reports whether at least one edge from→to exists. For undirected
// graphs the order of the endpoints does not matter.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	return g.Multiplicity(from, to) > 0
}

// Multiplicity returns how many edges join from and to.
// Complexity: O(1).
func (g *Graph) Multiplicity(from, to string) int {
	if from == "" || to == "" {
		return 0
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.pairs[g.canonical(from, to)]
}

// Edges returns a snapshot of all edges in insertion order. The returned
// pointers are shared with the graph and must be treated as read-only.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns |E|.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// nextEdgeID renders sequence number n as "e<n>" without fmt.
func nextEdgeID(n int) string {
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendInt(buf, int64(n), 10)

	return string(buf)
}
