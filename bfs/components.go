// SPDX-License-Identifier: MIT
// Package: confgraph/bfs
//
// components.go - connected components by repeated BFS.

package bfs

import (
	"context"

	"github.com/katalvlaran/confgraph/core"
)

// ComponentSummary describes the component structure of a graph.
type ComponentSummary struct {
	// Components lists member IDs per component, numbered by the insertion
	// index of their first vertex.
	Components [][]string
	// Largest is the size of the biggest component (0 for an empty graph).
	Largest int
	// Isolated counts single-vertex components without edges.
	Isolated int
}

// Count returns the number of components.
func (s *ComponentSummary) Count() int { return len(s.Components) }

// Connected reports whether the graph has exactly one component.
func (s *ComponentSummary) Connected() bool { return len(s.Components) == 1 }

// Components partitions an undirected g into connected components.
// Directed graphs are treated by their out-neighbors only.
// Complexity: O(V + P).
func Components(ctx context.Context, g *core.Graph) (*ComponentSummary, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	o.Ctx = ctx

	vertices := g.Vertices()
	w := newWalker(g, o, len(vertices))
	sum := &ComponentSummary{}
	for _, id := range vertices {
		if w.visited[id] {
			continue
		}
		start := len(w.res.Order)
		w.enqueue(id, 0, "")
		if err := w.loop(); err != nil {
			return nil, err
		}

		members := make([]string, len(w.res.Order)-start)
		copy(members, w.res.Order[start:])
		sum.Components = append(sum.Components, members)
		if len(members) > sum.Largest {
			sum.Largest = len(members)
		}
		if len(members) == 1 {
			if d, _ := g.Degree(id); d == 0 {
				sum.Isolated++
			}
		}
	}

	return sum, nil
}
