// SPDX-License-Identifier: MIT
// Package: confgraph/core
//
// types.go - Graph, Vertex, Edge, options and sentinel errors.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex is a node of the graph.
type Vertex struct {
	// ID uniquely identifies this Vertex within its Graph.
	ID string

	// Index is the zero-based insertion position of the vertex.
	Index int
}

// Edge connects two vertices. For undirected edges From/To carry the
// order in which the endpoints were paired; it has no semantic meaning.
type Edge struct {
	// ID is "e<n>" with n the 1-based insertion sequence.
	ID string

	// From is the first endpoint.
	From string

	// To is the second endpoint.
	To string

	// Directed is the orientation fixed at insertion time.
	Directed bool
}

// IsLoop reports whether both endpoints are the same vertex.
func (e *Edge) IsLoop() bool { return e.From == e.To }

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the orientation of all new edges.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithLoops permits self-loops.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMultiEdges permits parallel edges between the same endpoints.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// pairKey is the canonical key of an endpoint pair. Undirected pairs are
// stored with U <= V.
type pairKey struct{ U, V string }

// Graph is the in-memory multigraph.
//
// Storage:
//   - vertices: ID → *Vertex, order: insertion order of IDs
//   - edges:    insertion-ordered catalog
//   - degree:   ID → endpoint count (loops count twice when undirected)
//   - pairs:    canonical endpoint pair → multiplicity
//   - adj:      ID → distinct neighbors in first-seen order (out-neighbors if directed)
type Graph struct {
	mu sync.RWMutex

	directed   bool
	allowLoops bool
	allowMulti bool

	vertices map[string]*Vertex
	order    []string
	edges    []*Edge
	degree   map[string]int
	inDeg    map[string]int
	pairs    map[pairKey]int
	adj      map[string][]string
}

// NewGraph creates an empty Graph. By default it is undirected with no
// loops and no multi-edges.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]*Vertex),
		degree:   make(map[string]int),
		inDeg:    make(map[string]int),
		pairs:    make(map[pairKey]int),
		adj:      make(map[string][]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// NewMultigraph is shorthand for an undirected graph that accepts both
// self-loops and parallel edges.
func NewMultigraph(opts ...GraphOption) *Graph {
	all := make([]GraphOption, 0, len(opts)+2)
	all = append(all, WithLoops(), WithMultiEdges())
	all = append(all, opts...)

	return NewGraph(all...)
}

// GraphStats is a read-only snapshot of flags and counts.
type GraphStats struct {
	Directed    bool
	AllowsLoops bool
	AllowsMulti bool

	VertexCount int
	EdgeCount   int

	// SelfLoops counts edges with From == To.
	SelfLoops int
	// ParallelEdges counts edges beyond the first between the same endpoints.
	ParallelEdges int
	// MaxDegree is the largest vertex degree (0 for an empty graph).
	MaxDegree int
	// IsolatedVertices counts vertices with degree 0.
	IsolatedVertices int
}
