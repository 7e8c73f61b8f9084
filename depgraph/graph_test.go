// SPDX-License-Identifier: MIT
package depgraph_test

import (
	"testing"

	"github.com/katalvlaran/algmoments/depgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_IsolatedVerticesAndEdges(t *testing.T) {
	g, err := depgraph.New([]string{"y", "x", "w", "x"}, []depgraph.Edge{{"y", "x"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"w", "x", "y"}, g.Vertices())
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 1, g.EdgeCount())
	assert.True(t, g.HasEdge("x", "y"))
	assert.True(t, g.HasEdge("y", "x"), "edges are undirected")
	assert.False(t, g.HasEdge("x", "w"))
	assert.Equal(t, []depgraph.Edge{{"x", "y"}}, g.Edges())
}

func TestNew_DuplicateEdgeIsIdempotent(t *testing.T) {
	g, err := depgraph.New([]string{"a", "b"}, []depgraph.Edge{{"a", "b"}, {"b", "a"}, {"a", "b"}})
	require.NoError(t, err)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name     string
		vertices []string
		edges    []depgraph.Edge
		want     error
	}{
		{"empty vertex", []string{""}, nil, depgraph.ErrEmptyVertexID},
		{"empty endpoint", []string{"a"}, []depgraph.Edge{{"a", ""}}, depgraph.ErrEmptyVertexID},
		{"self loop", []string{"a"}, []depgraph.Edge{{"a", "a"}}, depgraph.ErrLoopNotAllowed},
		{"undeclared endpoint", []string{"a"}, []depgraph.Edge{{"a", "b"}}, depgraph.ErrVertexNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := depgraph.New(tc.vertices, tc.edges)
			require.ErrorIs(t, err, tc.want)
			assert.Nil(t, g)
		})
	}
}

func TestNeighborIDs(t *testing.T) {
	g, err := depgraph.New([]string{"a", "b", "c"}, []depgraph.Edge{{"a", "c"}, {"a", "b"}})
	require.NoError(t, err)

	nbrs, err := g.NeighborIDs("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, nbrs)

	_, err = g.NeighborIDs("zz")
	require.ErrorIs(t, err, depgraph.ErrVertexNotFound)
}

func TestUnion_KeepsSidesDisconnected(t *testing.T) {
	state, err := depgraph.New([]string{"x", "y"}, []depgraph.Edge{{"x", "y"}})
	require.NoError(t, err)
	dist, err := depgraph.New([]string{"cw", "sw", "wv"}, []depgraph.Edge{{"cw", "sw"}})
	require.NoError(t, err)

	sys, err := state.Union(dist)
	require.NoError(t, err)
	assert.Equal(t, []string{"cw", "sw", "wv", "x", "y"}, sys.Vertices())
	assert.Equal(t, []depgraph.Edge{{"cw", "sw"}, {"x", "y"}}, sys.Edges())

	comps, err := sys.Components(sys.Vertices())
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"cw", "sw"}, {"wv"}, {"x", "y"}}, comps)

	_, err = state.Union(nil)
	require.ErrorIs(t, err, depgraph.ErrGraphNil)
}

func TestEdge_Normalize(t *testing.T) {
	assert.Equal(t, depgraph.Edge{"a", "b"}, depgraph.Edge{"b", "a"}.Normalize())
	assert.Equal(t, depgraph.Edge{"a", "b"}, depgraph.Edge{"a", "b"}.Normalize())
}
