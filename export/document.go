// SPDX-License-Identifier: MIT
// Package: confgraph/export
//
// document.go - Document model and construction from a generated graph.

package export

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/confgraph/builder"
	"github.com/katalvlaran/confgraph/core"
)

// Sentinel errors for export operations.
var (
	// ErrUnknownFormat indicates a path or format name with no encoder.
	ErrUnknownFormat = errors.New("export: unknown format")

	// ErrCorruptDocument indicates a document whose edges do not realize its degrees.
	ErrCorruptDocument = errors.New("export: corrupt document")
)

// Edge is one undirected edge; From/To keep the pairing order.
type Edge struct {
	ID   string `yaml:"id" json:"id"`
	From string `yaml:"from" json:"from"`
	To   string `yaml:"to" json:"to"`
}

// Document is the serializable form of one generation run.
type Document struct {
	RunID             string   `yaml:"run_id" json:"run_id"`
	Seed              uint64   `yaml:"seed" json:"seed"`
	MaxDegree         int      `yaml:"max_degree" json:"max_degree"`
	MaxRealizedDegree int      `yaml:"max_realized_degree" json:"max_realized_degree"`
	Nodes             []string `yaml:"nodes" json:"nodes"`
	Degrees           []int    `yaml:"degrees" json:"degrees"`
	Edges             []Edge   `yaml:"edges" json:"edges"`
}

// FromGraph snapshots g under a fresh run ID. maxDegree is the sampling bound
// handed to collaborators; seed is the replay seed (0 if unknown).
func FromGraph(g *core.Graph, seed uint64, maxDegree int) *Document {
	edges := g.Edges()
	doc := &Document{
		RunID:     uuid.NewString(),
		Seed:      seed,
		MaxDegree: maxDegree,
		Nodes:     g.Vertices(),
		Degrees:   g.Degrees(),
		Edges:     make([]Edge, len(edges)),
	}
	for i, e := range edges {
		doc.Edges[i] = Edge{ID: e.ID, From: e.From, To: e.To}
	}
	for _, d := range doc.Degrees {
		if d > doc.MaxRealizedDegree {
			doc.MaxRealizedDegree = d
		}
	}

	return doc
}

// FromResult is FromGraph over a builder.Run result.
func FromResult(r *builder.Result, maxDegree int) *Document {
	return FromGraph(r.Graph, r.Seed, maxDegree)
}

// Validate checks the run ID and that Edges realize Degrees exactly.
// Complexity: O(V + E).
func (d *Document) Validate() error {
	if _, err := uuid.Parse(d.RunID); err != nil {
		return fmt.Errorf("Validate: run_id %q: %w", d.RunID, ErrCorruptDocument)
	}
	if len(d.Nodes) != len(d.Degrees) {
		return fmt.Errorf("Validate: %d nodes but %d degrees: %w",
			len(d.Nodes), len(d.Degrees), ErrCorruptDocument)
	}

	index := make(map[string]int, len(d.Nodes))
	for i, id := range d.Nodes {
		if _, dup := index[id]; dup {
			return fmt.Errorf("Validate: duplicate node %q: %w", id, ErrCorruptDocument)
		}
		index[id] = i
	}

	realized := make([]int, len(d.Nodes))
	for _, e := range d.Edges {
		u, okU := index[e.From]
		v, okV := index[e.To]
		if !okU || !okV {
			return fmt.Errorf("Validate: edge %s references unknown node: %w", e.ID, ErrCorruptDocument)
		}
		realized[u]++
		realized[v]++
	}
	for i, want := range d.Degrees {
		if realized[i] != want {
			return fmt.Errorf("Validate: node %s has degree %d, recorded %d: %w",
				d.Nodes[i], realized[i], want, ErrCorruptDocument)
		}
	}

	return nil
}
