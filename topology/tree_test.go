// SPDX-License-Identifier: MIT

package topology_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/qpauli/qubit"
	"github.com/katalvlaran/qpauli/topology"
)

// TreeSuite groups Steiner, orientation and ordering tests.
type TreeSuite struct {
	suite.Suite
	grid *topology.Graph
}

func (s *TreeSuite) SetupTest() {
	g, err := topology.Grid(3, 3)
	require.NoError(s.T(), err)
	s.grid = g
}

// requireTree checks the Steiner invariants: a tree spanning every terminal
// whose leaves are all terminals.
func (s *TreeSuite) requireTree(tree *topology.Graph, terminals []qubit.Qubit) {
	require.Equal(s.T(), tree.VertexCount()-1, tree.EdgeCount(), "tree has V-1 edges")
	for _, q := range terminals {
		require.True(s.T(), tree.HasVertex(q), "terminal %v", q)
	}
	isTerminal := map[qubit.Qubit]bool{}
	for _, q := range terminals {
		isTerminal[q] = true
	}
	for _, v := range tree.Vertices() {
		if d, _ := tree.Degree(v); d <= 1 && tree.VertexCount() > 1 {
			require.True(s.T(), isTerminal[v], "leaf %v is not a terminal", v)
		}
	}
	_, err := tree.Center()
	require.NoError(s.T(), err, "tree is connected")
}

// TestSteinerCorner: {0, 2, 8} on a 3×3 grid is the path 0-1-2-5-8.
func (s *TreeSuite) TestSteinerCorner() {
	terms := qubit.Ints(0, 2, 8)
	tree, err := s.grid.SteinerTree(terms)
	require.NoError(s.T(), err)
	s.requireTree(tree, terms)
	require.Equal(s.T(), qubit.Ints(0, 1, 2, 5, 8), tree.Vertices())

	c, err := tree.Center()
	require.NoError(s.T(), err)
	require.Equal(s.T(), qubit.Ints(2), c)
	require.Equal(s.T(), 12, s.grid.EdgeCount(), "input is not modified")
}

// TestSteinerCross: the four edge midpoints need at most six couplers.
func (s *TreeSuite) TestSteinerCross() {
	terms := qubit.Ints(1, 3, 5, 7)
	tree, err := s.grid.SteinerTree(terms)
	require.NoError(s.T(), err)
	s.requireTree(tree, terms)

	total := 0.0
	for _, e := range tree.Edges() {
		total += e.Weight
		require.True(s.T(), s.grid.HasEdge(e.From, e.To), "edge %v-%v", e.From, e.To)
	}
	require.LessOrEqual(s.T(), total, 6.0)
}

// TestSteinerDegenerate covers single and duplicated terminals.
func (s *TreeSuite) TestSteinerDegenerate() {
	tree, err := s.grid.SteinerTree(qubit.Ints(4))
	require.NoError(s.T(), err)
	require.Equal(s.T(), qubit.Ints(4), tree.Vertices())
	require.Equal(s.T(), 0, tree.EdgeCount())

	tree, err = s.grid.SteinerTree(qubit.Ints(3, 4, 3))
	require.NoError(s.T(), err)
	require.Equal(s.T(), qubit.Ints(3, 4), tree.Vertices())
}

func (s *TreeSuite) TestSteinerErrors() {
	_, err := s.grid.SteinerTree(nil)
	require.ErrorIs(s.T(), err, topology.ErrTooFewVertices)

	_, err = s.grid.SteinerTree(qubit.Ints(0, 42))
	require.ErrorIs(s.T(), err, topology.ErrTerminalNotFound)

	g := topology.NewGraph()
	require.NoError(s.T(), g.AddEdge(0, 1, 1))
	require.NoError(s.T(), g.AddEdge(2, 3, 1))
	_, err = g.SteinerTree(qubit.Ints(0, 3))
	require.ErrorIs(s.T(), err, topology.ErrDisconnected)

	var nilGraph *topology.Graph
	_, err = nilGraph.SteinerTree(qubit.Ints(0))
	require.ErrorIs(s.T(), err, topology.ErrGraphNil)
}

// TestOrient: depth-first from the root, neighbors in canonical order.
func (s *TreeSuite) TestOrient() {
	square, err := topology.Grid(2, 2)
	require.NoError(s.T(), err)
	tree, err := square.Orient(0)
	require.NoError(s.T(), err)

	require.True(s.T(), tree.Directed())
	require.True(s.T(), tree.IsArborescence())
	require.Equal(s.T(), []topology.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 3, Weight: 1},
		{From: 3, To: 2, Weight: 1},
	}, tree.Edges())

	root, err := tree.Root()
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0, root)

	parent, ok := tree.Predecessor(2)
	require.True(s.T(), ok)
	require.Equal(s.T(), 3, parent)
	_, ok = tree.Predecessor(0)
	require.False(s.T(), ok, "root has no parent")
	_, ok = square.Predecessor(1)
	require.False(s.T(), ok, "undirected graphs have no parents")

	_, err = square.Orient(9)
	require.ErrorIs(s.T(), err, topology.ErrVertexNotFound)
}

func (s *TreeSuite) TestArborescence() {
	line, err := topology.Line(qubit.Ints(0, 1, 2), topology.WithDirected(true))
	require.NoError(s.T(), err)
	require.True(s.T(), line.IsArborescence())

	require.False(s.T(), s.grid.IsArborescence(), "undirected")

	ring, err := topology.Ring(qubit.Ints(0, 1, 2), topology.WithDirected(true))
	require.NoError(s.T(), err)
	_, err = ring.Root()
	require.ErrorIs(s.T(), err, topology.ErrNotArborescence)

	twoParents := topology.NewGraph(topology.WithDirected(true))
	require.NoError(s.T(), twoParents.AddEdge(0, 2, 1))
	require.NoError(s.T(), twoParents.AddEdge(1, 2, 1))
	require.False(s.T(), twoParents.IsArborescence())

	_, err = topology.NewGraph(topology.WithDirected(true)).Root()
	require.ErrorIs(s.T(), err, topology.ErrNotArborescence)
}

func (s *TreeSuite) TestTopologicalSort() {
	star, err := topology.Star(5, qubit.Ints(3, 1, 9), topology.WithDirected(true))
	require.NoError(s.T(), err)
	order, err := star.TopologicalSort()
	require.NoError(s.T(), err)
	require.Equal(s.T(), 5, order[0], "root first")
	require.Len(s.T(), order, 4)

	line, err := topology.Line(qubit.Ints(2, 1, 0), topology.WithDirected(true))
	require.NoError(s.T(), err)
	order, err = line.TopologicalSort()
	require.NoError(s.T(), err)
	require.Equal(s.T(), qubit.Ints(2, 1, 0), order)
}

func (s *TreeSuite) TestTopologicalSortErrors() {
	_, err := s.grid.TopologicalSort()
	require.ErrorIs(s.T(), err, topology.ErrUndirected)

	ring, err := topology.Ring(qubit.Ints(0, 1, 2), topology.WithDirected(true))
	require.NoError(s.T(), err)
	_, err = ring.TopologicalSort()
	require.ErrorIs(s.T(), err, topology.ErrCycleDetected)

	line, err := topology.Line(qubit.Ints(0, 1), topology.WithDirected(true))
	require.NoError(s.T(), err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = line.TopologicalSort(topology.WithCancelContext(ctx))
	require.ErrorIs(s.T(), err, context.Canceled)
}

func TestTreeSuite(t *testing.T) {
	suite.Run(t, new(TreeSuite))
}
