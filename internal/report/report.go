// Package report runs every graphmetrics measure described by a config.Config
// and renders the results as text or JSON.
package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/katalvlaran/graphmetrics/bfs"
	"github.com/katalvlaran/graphmetrics/centrality"
	"github.com/katalvlaran/graphmetrics/core"
	"github.com/katalvlaran/graphmetrics/dfs"
	"github.com/katalvlaran/graphmetrics/internal/config"
	"github.com/katalvlaran/graphmetrics/metrics"
	"github.com/katalvlaran/graphmetrics/paths"
)

// Hops is a hop count that renders bfs.Infinite as "inf" (text) or null (JSON).
type Hops int

// Infinite reports whether h is the unreachable sentinel.
func (h Hops) Infinite() bool { return int(h) == bfs.Infinite }

func (h Hops) String() string {
	if h.Infinite() {
		return "inf"
	}

	return strconv.Itoa(int(h))
}

// MarshalJSON encodes unreachable as null.
func (h Hops) MarshalJSON() ([]byte, error) {
	if h.Infinite() {
		return []byte("null"), nil
	}

	return []byte(strconv.Itoa(int(h))), nil
}

// Summary describes the analysed graph.
type Summary struct {
	Directed   bool `json:"directed"`
	Vertices   int  `json:"vertices"`
	Edges      int  `json:"edges"`
	Isolated   int  `json:"isolated"`
	Components int  `json:"components"`
}

// Score is a per-vertex value, kept in query order.
type Score struct {
	Vertex string  `json:"vertex"`
	Value  float64 `json:"value"`
}

// HopScore is a per-vertex hop count.
type HopScore struct {
	Vertex string `json:"vertex"`
	Hops   Hops   `json:"hops"`
}

// PathResult is the outcome of a path query between two vertices.
type PathResult struct {
	From      string     `json:"from"`
	To        string     `json:"to"`
	Shortest  []string   `json:"shortest"`
	Hops      Hops       `json:"hops"`
	All       [][]string `json:"all,omitempty"`
	Truncated bool       `json:"truncated,omitempty"`
}

// Report is the full set of computed measures.
type Report struct {
	Summary                   Summary             `json:"summary"`
	Closeness                 []Score             `json:"closeness"`
	Eccentricity              []HopScore          `json:"eccentricity"`
	Betweenness               []Score             `json:"betweenness"`
	Eigenvector               []Score             `json:"eigenvector"`
	EigenvectorConverged      bool                `json:"eigenvector_converged"`
	Clustering                []Score             `json:"clustering"`
	AverageClustering         float64             `json:"average_clustering"`
	AverageShortestPathLength float64             `json:"average_shortest_path_length"`
	DegreeHistogram           []metrics.DegreeBin `json:"degree_histogram"`
	Paths                     []PathResult        `json:"paths"`
}

// Build computes every measure for cfg. Empty per-vertex query lists mean
// "every vertex". Betweenness and path listings honor cfg.Limits and ctx.
func Build(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Report, error) {
	g := cfg.Graph()
	st := g.Stats()
	logger.Debug("graph built", "vertices", st.VertexCount, "edges", st.EdgeCount, "directed", st.Directed)

	comps, err := dfs.Components(g)
	if err != nil {
		return nil, err
	}
	if len(comps) > 1 {
		logger.Info("graph is disconnected; distances ignore unreachable pairs", "components", len(comps))
	}

	r := &Report{Summary: Summary{
		Directed:   st.Directed,
		Vertices:   st.VertexCount,
		Edges:      st.EdgeCount,
		Isolated:   st.IsolatedCount,
		Components: len(comps),
	}}
	pathOpts := append(cfg.PathOptions(), paths.WithContext(ctx))
	// Betweenness is defined over every simple path, so max_hops only bounds listings.
	betweenOpts := []paths.Option{paths.WithMaxPaths(cfg.Limits.MaxPaths), paths.WithContext(ctx)}
	q := cfg.Queries

	closeness, err := centrality.Closeness(g, q.Closeness...)
	if err != nil {
		return nil, err
	}
	r.Closeness = scores(g, q.Closeness, closeness)

	ecc, err := centrality.Eccentricities(g, q.Eccentricity...)
	if err != nil {
		return nil, err
	}
	for _, v := range orDefault(g, q.Eccentricity) {
		r.Eccentricity = append(r.Eccentricity, HopScore{Vertex: v, Hops: Hops(ecc[v])})
	}

	logger.Debug("enumerating simple paths for betweenness", "max_paths", cfg.Limits.MaxPaths)
	between, err := centrality.Betweenness(g, q.Betweenness, betweenOpts...)
	if err != nil {
		return nil, err
	}
	r.Betweenness = scores(g, q.Betweenness, between)

	eig, err := centrality.Eigenvector(g)
	switch {
	case err == nil:
		r.EigenvectorConverged = true
	case errors.Is(err, centrality.ErrNotConverged):
		logger.Warn("eigenvector centrality did not converge; reporting last iterate", "err", err)
	default:
		return nil, err
	}
	r.Eigenvector = scores(g, nil, eig)

	for _, v := range orDefault(g, q.Clustering) {
		c, err := metrics.ClusteringCoefficient(g, v)
		if err != nil {
			return nil, err
		}
		r.Clustering = append(r.Clustering, Score{Vertex: v, Value: c})
	}
	if r.AverageClustering, err = metrics.AverageClustering(g); err != nil {
		return nil, err
	}
	if r.AverageShortestPathLength, err = metrics.AverageShortestPathLength(g); err != nil {
		return nil, err
	}
	if r.DegreeHistogram, err = metrics.DegreeHistogram(g); err != nil {
		return nil, err
	}

	for _, p := range q.Paths {
		pr, err := Path(g, p[0], p[1], true, pathOpts...)
		if err != nil {
			return nil, err
		}
		if pr.Truncated {
			logger.Warn("path listing truncated", "from", p[0], "to", p[1], "max_paths", cfg.Limits.MaxPaths)
		}
		r.Paths = append(r.Paths, *pr)
	}

	return r, nil
}

// Path answers a single from→to query: the BFS shortest path and its length,
// plus every simple path when all is set. Hitting the path cap is reported as
// Truncated rather than an error.
func Path(g *core.Graph[string], from, to string, all bool, opts ...paths.Option) (*PathResult, error) {
	shortest, err := bfs.ShortestPath(g, from, to)
	if err != nil {
		return nil, fmt.Errorf("report: path %s→%s: %w", from, to, err)
	}
	pr := &PathResult{From: from, To: to, Shortest: shortest, Hops: Hops(bfs.Infinite)}
	if shortest != nil {
		pr.Hops = Hops(len(shortest) - 1)
	}
	if !all {
		return pr, nil
	}

	pr.All, err = paths.AllPaths(g, from, to, opts...)
	switch {
	case errors.Is(err, paths.ErrPathLimit):
		pr.Truncated = true
	case err != nil:
		return nil, fmt.Errorf("report: all paths %s→%s: %w", from, to, err)
	}

	return pr, nil
}

func orDefault(g *core.Graph[string], ids []string) []string {
	if len(ids) == 0 {
		return g.Vertices()
	}

	return ids
}

func scores(g *core.Graph[string], ids []string, values map[string]float64) []Score {
	ids = orDefault(g, ids)
	out := make([]Score, 0, len(ids))
	for _, v := range ids {
		out = append(out, Score{Vertex: v, Value: values[v]})
	}

	return out
}
