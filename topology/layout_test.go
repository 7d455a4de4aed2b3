// SPDX-License-Identifier: MIT

package topology_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qpauli/qubit"
	"github.com/katalvlaran/qpauli/topology"
)

func TestParseLayout(t *testing.T) {
	cases := []struct {
		layout           string
		vertices, edges  int
		directed, isTree bool
	}{
		{"line:0,1,2,3", 4, 3, false, false},
		{"directed:line:0,1,2", 3, 2, true, true},
		{"ring:a,b,c", 3, 3, false, false},
		{"star:0:1,2,3", 4, 3, false, false},
		{"directed:star:hub:x,y", 3, 2, true, true},
		{"grid:3x3", 9, 12, false, false},
		{"grid: 2 X 4", 8, 10, false, false},
		{"0-1,1-2,2-0", 3, 3, false, false},
		{"0-1:2.5, 1-anc", 3, 2, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.layout, func(t *testing.T) {
			g, err := topology.ParseLayout(tc.layout)
			require.NoError(t, err)
			require.NotNil(t, g)
			assert.Equal(t, tc.vertices, g.VertexCount())
			assert.Equal(t, tc.edges, g.EdgeCount())
			assert.Equal(t, tc.directed, g.Directed())
			assert.Equal(t, tc.isTree, g.IsArborescence())
		})
	}
}

func TestParseLayout_Labels(t *testing.T) {
	g, err := topology.ParseLayout("0-1:2.5, 1-anc")
	require.NoError(t, err)
	assert.Equal(t, []qubit.Qubit{0, 1, "anc"}, g.Vertices())
	w, ok := g.Weight(1, 0)
	require.True(t, ok)
	assert.Equal(t, 2.5, w)
}

func TestParseLayout_Empty(t *testing.T) {
	g, err := topology.ParseLayout("  ")
	require.NoError(t, err)
	assert.Nil(t, g)
}

func TestParseLayout_Errors(t *testing.T) {
	for _, layout := range []string{"grid:3", "grid:ax2", "star:0", "0-", "0-1:heavy", ",", "0-0"} {
		t.Run(layout, func(t *testing.T) {
			_, err := topology.ParseLayout(layout)
			assert.ErrorIs(t, err, topology.ErrLayout)
		})
	}
	_, err := topology.ParseLayout("ring:0,1")
	assert.ErrorIs(t, err, topology.ErrTooFewVertices)
}
