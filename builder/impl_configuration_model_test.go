// SPDX-License-Identifier: MIT
// Package: confgraph/builder
//
// impl_configuration_model_test.go - ConfigurationModel and Build contracts.

package builder_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/confgraph/builder"
	"github.com/katalvlaran/confgraph/core"
	"github.com/katalvlaran/confgraph/degree"
)

// requireRealizes asserts the exact-degree and edge-count guarantees.
func requireRealizes(t *testing.T, g *core.Graph, seq degree.Sequence) {
	t.Helper()
	require.NotNil(t, g)
	require.Equal(t, seq.Len(), g.VertexCount(), "node count")
	require.Equal(t, seq.Sum()/2, g.EdgeCount(), "edge count")
	require.Equal(t, seq.Values(), g.Degrees(), "realized degrees")
}

func TestBuild_SixNodeScenario(t *testing.T) {
	t.Parallel()

	seq := degree.NewSequence(2, 3, 1, 2, 3, 3)
	for seed := uint64(0); seed < 25; seed++ {
		g, err := builder.Build(seq, builder.WithSeed(seed))
		require.NoError(t, err)
		requireRealizes(t, g, seq)
		assert.Equal(t, 7, g.EdgeCount())
	}
}

func TestBuild_SingleNodeIsAllSelfLoops(t *testing.T) {
	t.Parallel()

	seq := degree.NewSequence(4)
	g, err := builder.Build(seq, builder.WithSeed(1))
	require.NoError(t, err)
	requireRealizes(t, g, seq)

	s := g.Stats()
	assert.Equal(t, 2, s.SelfLoops)
	assert.Equal(t, 1, s.ParallelEdges)
	for _, e := range g.Edges() {
		assert.Equal(t, "0", e.From)
		assert.Equal(t, "0", e.To)
	}
}

func TestBuild_ZeroStubs(t *testing.T) {
	t.Parallel()

	g, err := builder.Build(degree.NewSequence(0, 0, 0), builder.WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, 3, g.VertexCount())
	assert.Zero(t, g.EdgeCount())

	empty, err := builder.Build(degree.Sequence{})
	require.NoError(t, err)
	assert.Zero(t, empty.VertexCount())
}

func TestBuild_InvariantViolations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		seq  degree.Sequence
	}{
		{"odd sum", degree.NewSequence(2, 3, 1, 2, 3, 2)},
		{"single odd node", degree.NewSequence(3)},
		{"negative entry", degree.NewSequence(2, -2, 4)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.Build(tc.seq, builder.WithSeed(1))
			require.ErrorIs(t, err, builder.ErrInvariantViolation)
			assert.Nil(t, g, "no partial graph")
		})
	}
}

func TestConfigurationModel_GraphModeGate(t *testing.T) {
	t.Parallel()

	seq := degree.NewSequence(1, 1)
	modes := map[string][]core.GraphOption{
		"simple":     nil,
		"loops only": {core.WithLoops()},
		"multi only": {core.WithMultiEdges()},
		"directed":   {core.WithDirected(true), core.WithLoops(), core.WithMultiEdges()},
	}
	for name, gopts := range modes {
		_, err := builder.BuildGraph(gopts, nil, builder.ConfigurationModel(seq))
		assert.ErrorIs(t, err, builder.ErrUnsupportedGraphMode, name)
	}
}

func TestBuild_IDSchemes(t *testing.T) {
	t.Parallel()

	seq := degree.NewSequence(1, 1, 2)
	g, err := builder.Build(seq, builder.WithSeed(3), builder.WithPrefixedIDs("node"))
	require.NoError(t, err)
	assert.Equal(t, []string{"node0", "node1", "node2"}, g.Vertices())
	requireRealizes(t, g, seq)

	collide := builder.WithIDScheme(func(int) string { return "same" })
	g, err = builder.Build(seq, collide)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
	assert.Nil(t, g)
}

func TestBuild_DeterministicPerSeed(t *testing.T) {
	t.Parallel()

	seq := degree.NewSequence(3, 3, 2, 2, 4, 1, 1)
	edgeList := func(g *core.Graph) [][2]string {
		out := make([][2]string, 0, g.EdgeCount())
		for _, e := range g.Edges() {
			out = append(out, [2]string{e.From, e.To})
		}
		return out
	}

	a, err := builder.Build(seq, builder.WithSeed(77))
	require.NoError(t, err)
	b, err := builder.Build(seq, builder.WithSeed(77))
	require.NoError(t, err)
	assert.Equal(t, edgeList(a), edgeList(b))

	differs := false
	for seed := uint64(78); seed < 90 && !differs; seed++ {
		c, err := builder.Build(seq, builder.WithSeed(seed))
		require.NoError(t, err)
		differs = !assert.ObjectsAreEqual(edgeList(a), edgeList(c))
	}
	assert.True(t, differs, "different seeds should eventually pair differently")
}

// TestBuild_PairingIsUniform checks the matching distribution on [2,2]:
// of the three perfect matchings of stubs {0,0,1,1}, one is two self-loops.
func TestBuild_PairingIsUniform(t *testing.T) {
	t.Parallel()

	const trials = 3000
	seq := degree.NewSequence(2, 2)
	loops := 0
	for seed := uint64(0); seed < trials; seed++ {
		g, err := builder.Build(seq, builder.WithSeed(seed))
		require.NoError(t, err)
		if g.Stats().SelfLoops == 2 {
			loops++
		}
	}
	assert.InDelta(t, 1.0/3.0, float64(loops)/trials, 0.05)
}

func TestBuildGraph_NilConstructor(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, nil, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, builder.ErrConstructFailed))
	assert.Nil(t, g)
}
