package dfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphmetrics/core"
	"github.com/katalvlaran/graphmetrics/dfs"
	"github.com/katalvlaran/graphmetrics/internal/fixtures"
)

func TestDFS_Errors(t *testing.T) {
	_, err := dfs.DFS[string](nil, "A")
	require.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = dfs.DFS(fixtures.Triangle(), "missing")
	require.ErrorIs(t, err, core.ErrVertexNotFound)

	_, err = dfs.Components[string](nil)
	require.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestDFS_CourseworkPreOrder(t *testing.T) {
	res, err := dfs.DFS(fixtures.Coursework(), "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "11", "12", "6", "7", "8", "9", "10"}, res.Order)
	assert.Equal(t, 6, res.Depth["12"])
	assert.Equal(t, 7, res.Depth["10"])
	assert.Equal(t, "6", res.Parent["7"])
	assert.Equal(t, []string{"1"}, res.Roots)
	_, hasParent := res.Parent["1"]
	assert.False(t, hasParent)
}

func TestDFS_SquareTakesFirstNeighbor(t *testing.T) {
	res, err := dfs.DFS(fixtures.Square(), "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, res.Order)
	assert.Equal(t, "C", res.Parent["D"])
}

func TestDFS_DirectedFollowsEdges(t *testing.T) {
	res, err := dfs.DFS(fixtures.DirectedChain(), "B")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, res.Order)
	assert.False(t, res.Visited("A"))
}

func TestDFS_FullTraversal(t *testing.T) {
	res, err := dfs.DFS(fixtures.TwoIslands(), "", dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, res.Roots)
	assert.Len(t, res.Order, 4)
}

func TestDFS_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.DFS(fixtures.Coursework(), "1", dfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestComponents(t *testing.T) {
	cases := []struct {
		name string
		g    *core.Graph[string]
		want [][]string
	}{
		{"Islands", fixtures.TwoIslands(), [][]string{{"A", "B"}, {"C", "D"}}},
		{"DirectedWeak", fixtures.DirectedChain(), [][]string{{"A", "B", "C"}}},
		{"Empty", core.NewGraph[string](nil), [][]string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := dfs.Components(tc.g)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	got, err := dfs.Components(fixtures.Coursework())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Len(t, got[0], 12)
}

func TestComponents_DirectedReachedFromLaterRoot(t *testing.T) {
	// C→A only; starting at A must still pull C in through the incoming edge.
	g := core.NewGraphFromPairs([][2]string{{"A", "B"}, {"C", "A"}}, core.WithDirected(true))
	got, err := dfs.Components(g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "B", "C"}}, got)
}
