package dfs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/campusplanner/core"
	"github.com/katalvlaran/campusplanner/dfs"
)

// build makes an n-vertex graph from {u, v} pairs with unit weights.
func build(t testing.TB, n int, directed bool, pairs ...[2]int) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n)
	require.NoError(t, err)
	for _, p := range pairs {
		require.NoError(t, g.AddEdge(p[0], p[1], 1, core.WithEdgeDirected(directed)))
	}

	return g
}

// sample is the campus road layout: 0-1 0-2 2-3 2-4 4-5.
func sample(t testing.TB) *core.Graph {
	return build(t, 6, false, [2]int{0, 1}, [2]int{0, 2}, [2]int{2, 3}, [2]int{2, 4}, [2]int{4, 5})
}

func TestDFS_Errors(t *testing.T) {
	_, err := dfs.DFS(nil, 0)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = dfs.DFS(sample(t), 9)
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)

	_, err = dfs.DFS(sample(t), 0, dfs.WithMaxDepth(-2))
	assert.ErrorIs(t, err, dfs.ErrOptionViolation)

	empty := build(t, 0, false)
	res, err := dfs.DFS(empty, 0)
	require.NoError(t, err)
	assert.Empty(t, res.Order)
}

func TestDFS_SampleOrders(t *testing.T) {
	res, err := dfs.DFS(sample(t), 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, res.Order)
	assert.Equal(t, []int{1, 3, 5, 4, 2, 0}, res.PostOrder)
	assert.Equal(t, []int{0, 1, 1, 2, 2, 3}, res.Depth)
	assert.Equal(t, []int{-1, 0, 0, 2, 2, 4}, res.Parent)

	res, err = dfs.DFS(sample(t), 4)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 2, 0, 1, 3, 5}, res.Order)
	assert.Equal(t, []int{1, 0, 3, 2, 5, 4}, res.PostOrder)
}

func TestDFS_MaxDepth(t *testing.T) {
	res, err := dfs.DFS(sample(t), 0, dfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Order)
	assert.False(t, res.Visited(3))

	res, err = dfs.DFS(sample(t), 0, dfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.Order)
}

func TestDFS_FullTraversal(t *testing.T) {
	g := build(t, 5, false, [2]int{0, 1}, [2]int{3, 4})

	res, err := dfs.DFS(g, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, res.Order)

	res, err = dfs.DFS(g, 3, dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 0, 1, 2}, res.Order)
	assert.Equal(t, []int{-1, 0, -1, -1, 3}, res.Parent)
	assert.Equal(t, []int{0, 1, 0, 0, 1}, res.Depth)
}

func TestDFS_FilterNeighbor(t *testing.T) {
	res, err := dfs.DFS(sample(t), 0, dfs.WithFilterNeighbor(func(_, nbr int) bool {
		return nbr != 4
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Order)
	assert.Equal(t, 1, res.SkippedNeighbors)
}

func TestDFS_DirectedOneWay(t *testing.T) {
	g := build(t, 3, true, [2]int{0, 1}, [2]int{1, 2})
	res, err := dfs.DFS(g, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, res.Order)
}

func TestDFS_HookAbort(t *testing.T) {
	stop := errors.New("stop")
	res, err := dfs.DFS(sample(t), 0, dfs.WithOnVisit(func(v, _ int) error {
		if v == 2 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
	assert.Equal(t, []int{0, 1, 2}, res.Order)

	var exits []int
	_, err = dfs.DFS(sample(t), 0, dfs.WithOnExit(func(v int) error {
		exits = append(exits, v)
		if v == 4 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
	assert.Equal(t, []int{1, 3, 5, 4}, exits)
}

func TestTopologicalSort(t *testing.T) {
	_, err := dfs.TopologicalSort(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = dfs.TopologicalSort(sample(t))
	assert.ErrorIs(t, err, dfs.ErrUndirectedEdge)

	dag := build(t, 5, true, [2]int{0, 1}, [2]int{0, 2}, [2]int{1, 3}, [2]int{2, 3}, [2]int{4, 0})
	order, err := dfs.TopologicalSort(dag)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 0, 2, 1, 3}, order)

	pos := make([]int, len(order))
	for i, v := range order {
		pos[v] = i
	}
	for _, e := range dag.Edges() {
		assert.Less(t, pos[e.From], pos[e.To], "edge %d→%d", e.From, e.To)
	}

	cyclic := build(t, 3, true, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0})
	_, err = dfs.TopologicalSort(cyclic)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
}

func TestFindCycle(t *testing.T) {
	_, err := dfs.FindCycle(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	cases := []struct {
		name string
		g    *core.Graph
		want []int
	}{
		{"tree", sample(t), nil},
		{"triangle", build(t, 6, false,
			[2]int{0, 1}, [2]int{0, 2}, [2]int{2, 3}, [2]int{2, 4}, [2]int{4, 5}, [2]int{3, 4}), []int{2, 3, 4}},
		{"parallel", build(t, 2, false, [2]int{0, 1}, [2]int{0, 1}), []int{0, 1}},
		{"self-loop", build(t, 2, false, [2]int{1, 1}), []int{1}},
		{"directed two-cycle", build(t, 2, true, [2]int{0, 1}, [2]int{1, 0}), []int{0, 1}},
		{"directed diamond", build(t, 4, true, [2]int{0, 1}, [2]int{0, 2}, [2]int{1, 3}, [2]int{2, 3}), nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := dfs.FindCycle(tc.g)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
