// SPDX-License-Identifier: MIT

// Package topology_test verifies thread-safety of topology.Graph.
package topology_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qpauli/qubit"
	"github.com/katalvlaran/qpauli/topology"
)

// TestConcurrentAddEdge adds a star's couplers from many goroutines.
func TestConcurrentAddEdge(t *testing.T) {
	g := topology.NewGraph()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)
	for i := 1; i <= num; i++ {
		go func(id int) {
			defer wg.Done()
			assert.NoError(t, g.AddEdge(0, id, 1))
		}(i)
	}
	wg.Wait()

	nbrs, err := g.Neighbors(0)
	require.NoError(t, err)
	require.Len(t, nbrs, num)
}

// TestConcurrentSteiner shares one device between readers.
func TestConcurrentSteiner(t *testing.T) {
	grid, err := topology.Grid(4, 4)
	require.NoError(t, err)
	terminals := [][]qubit.Qubit{
		qubit.Ints(0, 15), qubit.Ints(3, 12), qubit.Ints(5, 6, 9, 10), qubit.Ints(0, 3, 12, 15),
	}

	var wg sync.WaitGroup
	for r := 0; r < 8; r++ {
		for _, terms := range terminals {
			wg.Add(1)
			go func(terms []qubit.Qubit) {
				defer wg.Done()
				tree, err := grid.SteinerTree(terms)
				if assert.NoError(t, err) {
					assert.Equal(t, tree.VertexCount()-1, tree.EdgeCount())
				}
			}(terms)
		}
	}
	wg.Wait()
	require.Equal(t, 24, grid.EdgeCount())
}
