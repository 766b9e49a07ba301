package metrics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphmetrics/builder"
	"github.com/katalvlaran/graphmetrics/metrics"
)

func TestTopologies(t *testing.T) {
	cases := []struct {
		name       string
		con        builder.Constructor
		avgCluster float64
		avgPath    float64
	}{
		{"Complete5", builder.Complete(5), 1, 1},
		{"Star5", builder.Star(5), 0, 1.6},
		{"Path4", builder.Path(4), 0, 5.0 / 3},
		// Hub: 5 rim edges of C(5,2)=10 pairs; rim: 2 of 3.
		{"Wheel6", builder.Wheel(6), (0.5 + 5*2.0/3) / 6, 1.3333333333333333},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, builder.DefaultIDFn, tc.con)
			require.NoError(t, err)

			avg, err := metrics.AverageClustering(g)
			require.NoError(t, err)
			assert.InDelta(t, tc.avgCluster, avg, eps)

			aspl, err := metrics.AverageShortestPathLength(g)
			require.NoError(t, err)
			assert.InDelta(t, tc.avgPath, aspl, eps)
		})
	}
}

func TestDegreeHistogram_Wheel(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.DefaultIDFn, builder.Wheel(6))
	require.NoError(t, err)
	h, err := metrics.DegreeHistogram(g)
	require.NoError(t, err)
	assert.Equal(t, []metrics.DegreeBin{{Degree: 3, Count: 5}, {Degree: 5, Count: 1}}, h)
}
