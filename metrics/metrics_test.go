package metrics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphmetrics/core"
	"github.com/katalvlaran/graphmetrics/internal/fixtures"
	"github.com/katalvlaran/graphmetrics/metrics"
)

const eps = 1e-12

func TestAverageShortestPathLength(t *testing.T) {
	got, err := metrics.AverageShortestPathLength(fixtures.Coursework())
	require.NoError(t, err)
	assert.InDelta(t, 139.0/66.0, got, eps)

	// Only A–B and C–D are reachable pairs.
	got, err = metrics.AverageShortestPathLength(fixtures.TwoIslands())
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got, eps)

	// Directed: A→B, A→C, B→C reachable in insertion order.
	got, err = metrics.AverageShortestPathLength(fixtures.DirectedChain())
	require.NoError(t, err)
	assert.InDelta(t, 4.0/3.0, got, eps)

	got, err = metrics.AverageShortestPathLength(core.NewGraph[string](nil))
	require.NoError(t, err)
	assert.Zero(t, got)

	_, err = metrics.AverageShortestPathLength[string](nil)
	require.ErrorIs(t, err, metrics.ErrGraphNil)
}

func TestClusteringCoefficient(t *testing.T) {
	g := fixtures.Coursework()
	want := map[string]float64{
		"1": 1, "2": 1, "3": 0.2, "4": 1, "5": 1.0 / 3, "12": 1.0 / 21,
		"11": 0, "6": 1, "7": 1, "8": 0, "9": 0, "10": 0,
	}
	for v, w := range want {
		got, err := metrics.ClusteringCoefficient(g, v)
		require.NoError(t, err)
		assert.InDelta(t, w, got, eps, v)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.LessOrEqual(t, got, 1.0)
	}

	_, err := metrics.ClusteringCoefficient(g, "99")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestClusteringCoefficient_FewNeighbors is exactly zero below two neighbors.
func TestClusteringCoefficient_FewNeighbors(t *testing.T) {
	g := fixtures.DirectedChain()
	for _, v := range g.Vertices() {
		got, err := metrics.ClusteringCoefficient(g, v)
		require.NoError(t, err)
		assert.Equal(t, 0.0, got, v)
	}
}

// TestAverageClustering equals the mean of the per-vertex coefficients.
func TestAverageClustering(t *testing.T) {
	g := fixtures.Coursework()
	got, err := metrics.AverageClustering(g)
	require.NoError(t, err)
	assert.InDelta(t, 0.46507936507936504, got, eps)

	sum := 0.0
	for _, v := range g.Vertices() {
		c, _ := metrics.ClusteringCoefficient(g, v)
		sum += c
	}
	assert.InDelta(t, sum/float64(g.VertexCount()), got, eps)

	got, err = metrics.AverageClustering(core.NewGraph[int](nil))
	require.NoError(t, err)
	assert.Zero(t, got)

	got, err = metrics.AverageClustering(fixtures.Triangle())
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got, eps)
}

func TestDegreeDistribution(t *testing.T) {
	g := fixtures.Coursework()
	dist, err := metrics.DegreeDistribution(g)
	require.NoError(t, err)
	assert.Equal(t, map[int]int{1: 3, 2: 6, 3: 1, 5: 1, 7: 1}, dist)

	total := 0
	for _, c := range dist {
		total += c
	}
	assert.Equal(t, g.VertexCount(), total)

	bins, err := metrics.DegreeHistogram(g)
	require.NoError(t, err)
	assert.Equal(t, []metrics.DegreeBin{
		{Degree: 1, Count: 3},
		{Degree: 2, Count: 6},
		{Degree: 3, Count: 1},
		{Degree: 5, Count: 1},
		{Degree: 7, Count: 1},
	}, bins)

	_, err = metrics.DegreeHistogram[string](nil)
	require.ErrorIs(t, err, metrics.ErrGraphNil)
}
