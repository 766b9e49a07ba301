package config_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphmetrics/internal/config"
	"github.com/katalvlaran/graphmetrics/paths"
)

func TestLoad_DefaultWhenNoPath(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Len(t, cfg.Connections, 15)
	assert.Equal(t, []string{"3", "12", "11"}, cfg.Queries.Eccentricity)
	assert.Equal(t, paths.DefaultMaxPaths, cfg.Limits.MaxPaths)
	assert.Equal(t, 12, cfg.Graph().VertexCount())
}

func TestLoad_File(t *testing.T) {
	cfg, err := config.Load(filepath.Join("testdata", "square.yaml"))
	require.NoError(t, err)

	assert.False(t, cfg.Directed)
	assert.Equal(t, [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}}, cfg.Connections)
	assert.Equal(t, []string{"A", "C"}, cfg.Queries.Clustering)
	assert.Equal(t, [][2]string{{"A", "C"}}, cfg.Queries.Paths)
	assert.Equal(t, config.Limits{MaxPaths: 10, MaxHops: 3}, cfg.Limits)
	assert.Len(t, cfg.PathOptions(), 2)

	g := cfg.Graph()
	assert.True(t, g.IsConnected("A", "D"))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join("testdata", "nope.yaml"))
	require.Error(t, err)
}

func TestParse_DefaultsLimits(t *testing.T) {
	cfg, err := config.Parse([]byte(`connections: [["x", "y"]]`))
	require.NoError(t, err)
	assert.Equal(t, paths.DefaultMaxPaths, cfg.Limits.MaxPaths)
	assert.Zero(t, cfg.Limits.MaxHops)
}

func TestParse_Directed(t *testing.T) {
	cfg, err := config.Parse([]byte("directed: true\nconnections: [[\"x\", \"y\"]]\n"))
	require.NoError(t, err)
	g := cfg.Graph()
	assert.True(t, g.Directed())
	assert.False(t, g.IsConnected("y", "x"))
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"empty":         `directed: false`,
		"blank id":      `connections: [["a", " "]]`,
		"negative":      "connections: [[\"a\", \"b\"]]\nlimits: {max_paths: -1}",
		"unknown query": "connections: [[\"a\", \"b\"]]\nqueries: {closeness: [\"z\"]}",
		"unknown path":  "connections: [[\"a\", \"b\"]]\nqueries: {paths: [[\"a\", \"z\"]]}",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(doc))
			require.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	_, err := config.Parse([]byte("connections: [[\"a\", \"b\", \"c\"]]"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, config.ErrInvalid)
}
