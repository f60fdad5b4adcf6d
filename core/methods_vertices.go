// SPDX-License-Identifier: MIT
// Package: confgraph/core
//
// methods_vertices.go - vertex lifecycle and degree queries.
// Determinism: Vertices() returns insertion order.
// Concurrency: mutations take g.mu, queries take g.mu.RLock.

package core

// AddVertex inserts a vertex with the given ID. Re-adding an existing ID is a
// no-op and keeps the original insertion position.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)

	return nil
}

// addVertexLocked assumes g.mu is held for writing.
func (g *Graph) addVertexLocked(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = &Vertex{ID: id, Index: len(g.order)}
	g.order = append(g.order, id)
}

// HasVertex reports whether id is present.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns a copy of the vertex record for id.
func (g *Graph) Vertex(id string) (Vertex, error) {
	if id == "" {
		return Vertex{}, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return Vertex{}, ErrVertexNotFound
	}

	return *v, nil
}

// Vertices returns all vertex IDs in insertion order.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns |V|.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// Degree returns the number of edge endpoints at id. An undirected self-loop
// contributes 2; a directed self-loop contributes 1 in and 1 out, also 2.
// Complexity: O(1).
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}

	return g.degree[id], nil
}

// InOutDegree splits the degree of id into directed in- and out-endpoints.
// Undirected endpoints have no orientation and are reported in out.
func (g *Graph) InOutDegree(id string) (in, out int, err error) {
	if id == "" {
		return 0, 0, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return 0, 0, ErrVertexNotFound
	}
	in = g.inDeg[id]

	return in, g.degree[id] - in, nil
}

// Degrees returns the degree of every vertex in insertion order.
// Complexity: O(V).
func (g *Graph) Degrees() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]int, len(g.order))
	for i, id := range g.order {
		out[i] = g.degree[id]
	}

	return out
}
