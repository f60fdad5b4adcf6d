// SPDX-License-Identifier: MIT
// Package: confgraph/core
//
// methods_adjacent.go - neighbor queries over the distinct-pair index.
// Parallel edges collapse to one neighbor entry; a self-loop lists the
// vertex as its own neighbor once.

package core

// linkLocked records a new distinct endpoint pair. Assumes g.mu is held
// for writing and that the pair had multiplicity 0.
func (g *Graph) linkLocked(from, to string) {
	g.adj[from] = append(g.adj[from], to)
	if !g.directed && from != to {
		g.adj[to] = append(g.adj[to], from)
	}
}

// NeighborIDs returns the distinct neighbors of id in the order their first
// edge was inserted. For directed graphs only out-neighbors are listed.
// Complexity: O(deg(id)).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}
	nbrs := g.adj[id]
	out := make([]string, len(nbrs))
	copy(out, nbrs)

	return out, nil
}
