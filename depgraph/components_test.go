// SPDX-License-Identifier: MIT
package depgraph_test

import (
	"testing"

	"github.com/katalvlaran/algmoments/depgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chain builds a–b–c–d plus an isolated e.
func chain(t *testing.T) *depgraph.Graph {
	t.Helper()
	g, err := depgraph.New(
		[]string{"a", "b", "c", "d", "e"},
		[]depgraph.Edge{{"a", "b"}, {"b", "c"}, {"c", "d"}},
	)
	require.NoError(t, err)

	return g
}

func TestComponents_Restricted(t *testing.T) {
	g := chain(t)

	cases := []struct {
		name   string
		subset []string
		want   [][]string
	}{
		{"full chain", []string{"d", "a", "c", "b"}, [][]string{{"a", "b", "c", "d"}}},
		{"gap splits the path", []string{"a", "c", "d"}, [][]string{{"a"}, {"c", "d"}}},
		{"isolated vertex", []string{"e", "a", "b"}, [][]string{{"a", "b"}, {"e"}}},
		{"endpoints only", []string{"a", "d"}, [][]string{{"a"}, {"d"}}},
		{"duplicates collapse", []string{"b", "b", "c"}, [][]string{{"b", "c"}}},
		{"empty", nil, [][]string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := g.Components(tc.subset)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestComponents_Errors(t *testing.T) {
	g := chain(t)
	_, err := g.Components([]string{"a", "missing"})
	require.ErrorIs(t, err, depgraph.ErrVertexNotFound)

	var nilGraph *depgraph.Graph
	_, err = nilGraph.Components([]string{"a"})
	require.ErrorIs(t, err, depgraph.ErrGraphNil)
}

func TestComponents_Deterministic(t *testing.T) {
	g := chain(t)
	first, err := g.Components([]string{"e", "d", "c", "b", "a"})
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := g.Components([]string{"a", "b", "c", "d", "e"})
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}
