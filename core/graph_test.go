// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph construction and query contracts.

package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphmetrics/core"
	"github.com/katalvlaran/graphmetrics/internal/fixtures"
)

// TestNewGraph_UndirectedMirrors checks that every pair is stored both ways.
func TestNewGraph_UndirectedMirrors(t *testing.T) {
	g := fixtures.Coursework()

	require.False(t, g.Directed())
	require.Equal(t, 12, g.VertexCount())
	require.Equal(t, len(fixtures.CourseworkPairs), g.EdgeCount())

	for _, p := range fixtures.CourseworkPairs {
		assert.True(t, g.IsConnected(p[0], p[1]), "%s→%s", p[0], p[1])
		assert.True(t, g.IsConnected(p[1], p[0]), "%s→%s", p[1], p[0])
	}
}

// TestIsConnected_Symmetric asserts the undirected symmetry invariant over all pairs.
func TestIsConnected_Symmetric(t *testing.T) {
	g := fixtures.Coursework()
	for _, a := range g.Vertices() {
		for _, b := range g.Vertices() {
			assert.Equal(t, g.IsConnected(a, b), g.IsConnected(b, a), "(%s,%s)", a, b)
		}
	}
}

// TestNewGraph_Directed keeps edges one-way but still registers sinks as vertices.
func TestNewGraph_Directed(t *testing.T) {
	g := fixtures.DirectedChain()

	require.True(t, g.Directed())
	assert.True(t, g.IsConnected("A", "B"))
	assert.False(t, g.IsConnected("B", "A"))
	assert.True(t, g.HasVertex("C"), "sink must be a member")

	nbrs, err := g.Neighbors("C")
	require.NoError(t, err)
	assert.Empty(t, nbrs)

	deg, err := g.Degree("C")
	require.NoError(t, err)
	assert.Zero(t, deg)
}

// TestNewGraph_DuplicatesAndLoops verifies idempotent insertion.
func TestNewGraph_DuplicatesAndLoops(t *testing.T) {
	g := core.NewGraph([]core.Connection[int]{
		core.Conn(1, 2),
		core.Conn(2, 1),
		core.Conn(1, 2),
		core.Conn(3, 3),
	})

	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 2, g.EdgeCount())
	assert.True(t, g.IsConnected(3, 3))

	deg, err := g.Degree(1)
	require.NoError(t, err)
	assert.Equal(t, 1, deg)

	stats := g.Stats()
	assert.Equal(t, 1, stats.SelfLoopCount)
	assert.Zero(t, stats.IsolatedCount)
}

// TestNeighbors_InsertionOrder locks in deterministic neighbor order.
func TestNeighbors_InsertionOrder(t *testing.T) {
	g := fixtures.Coursework()

	nbrs, err := g.Neighbors("3")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "4", "5", "12"}, nbrs)

	nbrs, err = g.Neighbors("12")
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "6", "7", "8", "9", "10", "11"}, nbrs)

	// The returned slice is a copy.
	nbrs[0] = "mutated"
	again, _ := g.Neighbors("12")
	assert.Equal(t, "3", again[0])
}

// TestVertices_FirstSeenOrder checks vertex ordering follows the connection list.
func TestVertices_FirstSeenOrder(t *testing.T) {
	g := fixtures.Coursework()
	want := []string{"1", "2", "3", "4", "5", "12", "11", "6", "7", "8", "9", "10"}
	assert.Equal(t, want, g.Vertices())
}

// TestMissingVertex distinguishes absent vertices from isolated ones.
func TestMissingVertex(t *testing.T) {
	g := fixtures.Coursework()

	assert.False(t, g.HasVertex("99"))
	assert.False(t, g.IsConnected("99", "1"), "unknown source is simply not connected")

	_, err := g.Neighbors("99")
	assert.True(t, errors.Is(err, core.ErrVertexNotFound))

	_, err = g.Degree("99")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	assert.NoError(t, g.CheckVertices("1", "12"))
	assert.ErrorIs(t, g.CheckVertices("1", "99"), core.ErrVertexNotFound)
}

// TestAdjacencyList_Snapshot ensures the snapshot is complete and detached.
func TestAdjacencyList_Snapshot(t *testing.T) {
	g := fixtures.DirectedChain()
	adj := g.AdjacencyList()

	require.Len(t, adj, 3)
	assert.Equal(t, []string{"B"}, adj["A"])
	assert.Equal(t, []string{"C"}, adj["B"])
	assert.Empty(t, adj["C"])

	adj["A"][0] = "Z"
	assert.True(t, g.IsConnected("A", "B"))
}

// TestStats_Counts checks that a sink with incoming edges is not isolated.
func TestStats_Counts(t *testing.T) {
	stats := fixtures.DirectedChain().Stats()
	assert.Equal(t, &core.GraphStats{
		Directed:    true,
		VertexCount: 3,
		EdgeCount:   2,
	}, stats)

	// C→A: C is a source, B a sink, nothing isolated.
	g := core.NewGraphFromPairs([][2]string{{"A", "B"}, {"C", "A"}}, core.WithDirected(true))
	assert.Zero(t, g.Stats().IsolatedCount)
}

// TestEmptyGraph covers the zero-connection graph.
func TestEmptyGraph(t *testing.T) {
	g := core.NewGraph[string](nil)
	assert.Zero(t, g.VertexCount())
	assert.Zero(t, g.EdgeCount())
	assert.Empty(t, g.Vertices())
	assert.Equal(t, "Graph(map[])", g.String())
}

// TestEachNeighbor_StopsEarly verifies the callback can halt iteration.
func TestEachNeighbor_StopsEarly(t *testing.T) {
	g := fixtures.Coursework()
	var seen []string
	g.EachNeighbor("12", func(nbr string) bool {
		seen = append(seen, nbr)
		return len(seen) < 2
	})
	assert.Equal(t, []string{"3", "6"}, seen)
}
