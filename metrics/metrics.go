// Package metrics computes whole-graph structural summaries over a core.Graph:
// average shortest path length, clustering coefficients and the degree
// distribution.
//
// Aggregates over an empty graph return 0 rather than an error.
package metrics

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/graphmetrics/bfs"
	"github.com/katalvlaran/graphmetrics/core"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("metrics: graph is nil")

// AverageShortestPathLength returns the mean hop count over unordered pairs
// {u, v} of distinct vertices (u before v in insertion order) for which v is
// reachable from u. Unreachable pairs are excluded from both sum and count;
// 0 is returned when no pair is reachable.
//
// Complexity: O(V·(V+E)), one BFS per vertex.
func AverageShortestPathLength[N comparable](g *core.Graph[N]) (float64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	vertices := g.Vertices()
	var sum, count int
	for i, u := range vertices {
		dist, err := bfs.Distances(g, u)
		if err != nil {
			return 0, fmt.Errorf("metrics: distances from %v: %w", u, err)
		}
		for _, v := range vertices[i+1:] {
			if d, ok := dist[v]; ok {
				sum += d
				count++
			}
		}
	}
	if count == 0 {
		return 0, nil
	}

	return float64(sum) / float64(count), nil
}

// ClusteringCoefficient returns the fraction of v's neighbor pairs that are
// themselves adjacent: links / C(k, 2) with k = |N(v)|. Vertices with fewer
// than two neighbors score exactly 0. In a directed graph a neighbor pair
// linked both ways counts once per direction, halved, so the value stays in [0,1].
func ClusteringCoefficient[N comparable](g *core.Graph[N], v N) (float64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	nbrs, err := g.Neighbors(v)
	if err != nil {
		return 0, fmt.Errorf("metrics: clustering of %v: %w", v, err)
	}

	return clustering(g, nbrs), nil
}

func clustering[N comparable](g *core.Graph[N], nbrs []N) float64 {
	k := len(nbrs)
	if k < 2 {
		return 0
	}
	// ordered pairs, so each undirected link is seen twice
	links := 0
	for _, a := range nbrs {
		for _, b := range nbrs {
			if a != b && g.IsConnected(a, b) {
				links++
			}
		}
	}
	possible := float64(k*(k-1)) / 2

	return float64(links) / 2 / possible
}

// AverageClustering is the arithmetic mean of ClusteringCoefficient over all
// vertices, 0 for an empty graph.
func AverageClustering[N comparable](g *core.Graph[N]) (float64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	vertices := g.Vertices()
	if len(vertices) == 0 {
		return 0, nil
	}
	total := 0.0
	for _, v := range vertices {
		nbrs, _ := g.Neighbors(v)
		total += clustering(g, nbrs)
	}

	return total / float64(len(vertices)), nil
}

// DegreeDistribution maps each degree value to the number of vertices having it.
// The counts sum to VertexCount.
func DegreeDistribution[N comparable](g *core.Graph[N]) (map[int]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	out := make(map[int]int)
	for _, v := range g.Vertices() {
		d, _ := g.Degree(v)
		out[d]++
	}

	return out, nil
}

// DegreeBin is one bar of a degree histogram.
type DegreeBin struct {
	Degree int `json:"degree"`
	Count  int `json:"count"`
}

// DegreeHistogram returns DegreeDistribution as bins sorted by degree,
// ready to hand to a plotting or table renderer.
func DegreeHistogram[N comparable](g *core.Graph[N]) ([]DegreeBin, error) {
	dist, err := DegreeDistribution(g)
	if err != nil {
		return nil, err
	}
	bins := make([]DegreeBin, 0, len(dist))
	for d, c := range dist {
		bins = append(bins, DegreeBin{Degree: d, Count: c})
	}
	sort.Slice(bins, func(i, j int) bool { return bins[i].Degree < bins[j].Degree })

	return bins, nil
}
