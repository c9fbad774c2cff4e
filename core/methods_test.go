// SPDX-License-Identifier: MIT

package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/campusplanner/core"
)

type GraphSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *GraphSuite) SetupTest() {
	// Six vertices, no edges; individual tests add what they need.
	g, err := core.NewGraph(6)
	s.Require().NoError(err)
	s.g = g
}

func (s *GraphSuite) TestNewGraphBounds() {
	require := require.New(s.T())

	_, err := core.NewGraph(-1)
	require.ErrorIs(err, core.ErrNegativeOrder)

	empty, err := core.NewGraph(0)
	require.NoError(err)
	require.Equal(0, empty.Order())
	require.Empty(empty.Edges())
	require.False(empty.InRange(0))
}

func (s *GraphSuite) TestAddEdgeUndirectedMirrors() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge(0, 1, 5))

	fwd, err := s.g.Neighbors(0)
	require.NoError(err)
	require.Equal([]core.Edge{{From: 0, To: 1, Weight: 5}}, fwd)

	back, err := s.g.Neighbors(1)
	require.NoError(err)
	require.Equal([]core.Edge{{From: 1, To: 0, Weight: 5}}, back)
	require.Equal(1, s.g.EdgeCount())
	require.False(s.g.HasDirectedEdges())
}

func (s *GraphSuite) TestAddEdgeDirected() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge(2, 3, 1.5, core.WithEdgeDirected(true)))

	fwd, _ := s.g.Neighbors(2)
	require.Len(fwd, 1)
	require.True(fwd[0].Directed)

	back, _ := s.g.Neighbors(3)
	require.Empty(back, "directed edge must not be mirrored")
	require.True(s.g.HasDirectedEdges())
}

func (s *GraphSuite) TestAddEdgeOutOfRangeMutatesNothing() {
	require := require.New(s.T())

	require.ErrorIs(s.g.AddEdge(0, 6, 1), core.ErrVertexOutOfRange)
	require.ErrorIs(s.g.AddEdge(-1, 0, 1), core.ErrVertexOutOfRange)

	nbs, err := s.g.Neighbors(0)
	require.NoError(err)
	require.Empty(nbs, "failed insert must leave adjacency untouched")
	require.Zero(s.g.EdgeCount())

	_, err = s.g.Neighbors(6)
	require.ErrorIs(err, core.ErrVertexOutOfRange)
	_, err = s.g.Degree(-3)
	require.ErrorIs(err, core.ErrVertexOutOfRange)
}

func (s *GraphSuite) TestAddEdgeRejectsNaN() {
	require := require.New(s.T())
	require.ErrorIs(s.g.AddEdge(0, 1, math.NaN()), core.ErrBadWeight)
	require.Zero(s.g.EdgeCount())

	// Negative and infinite weights are stored; algorithms decide.
	require.NoError(s.g.AddEdge(0, 1, -2))
	require.NoError(s.g.AddEdge(0, 2, math.Inf(1)))
}

func (s *GraphSuite) TestInsertionOrderPreserved() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge(0, 4, 1))
	require.NoError(s.g.AddEdge(0, 2, 1))
	require.NoError(s.g.AddEdge(0, 5, 1))
	require.NoError(s.g.AddEdge(0, 1, 1))

	nbs, _ := s.g.Neighbors(0)
	got := make([]int, 0, len(nbs))
	for _, e := range nbs {
		got = append(got, e.To)
	}
	require.Equal([]int{4, 2, 5, 1}, got)
}

func (s *GraphSuite) TestSelfLoopsAndParallelEdges() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge(3, 3, 2))
	require.NoError(s.g.AddEdge(0, 1, 4))
	require.NoError(s.g.AddEdge(0, 1, 7))

	deg, err := s.g.Degree(3)
	require.NoError(err)
	require.Equal(2, deg, "undirected self-loop lands twice on the same vertex")

	edges := s.g.Edges()
	require.Equal([]core.Edge{
		{From: 0, To: 1, Weight: 4},
		{From: 0, To: 1, Weight: 7},
		{From: 3, To: 3, Weight: 2},
	}, edges)

	stats := s.g.Stats()
	require.Equal(3, stats.EdgeCount)
	require.Equal(1, stats.SelfLoopCount)
	require.Equal(3, stats.UndirectedEdgeCount)
}

func (s *GraphSuite) TestNeighborsReturnsCopy() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge(0, 1, 1))

	nbs, _ := s.g.Neighbors(0)
	nbs[0].Weight = 99

	again, _ := s.g.Neighbors(0)
	require.Equal(float64(1), again[0].Weight)
}

func (s *GraphSuite) TestCloneIsDeep() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge(0, 1, 1))

	c := s.g.Clone()
	require.NoError(c.AddEdge(1, 2, 3))

	require.Equal(1, s.g.EdgeCount())
	require.Equal(2, c.EdgeCount())
	orig, _ := s.g.Neighbors(1)
	require.Len(orig, 1)
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}
