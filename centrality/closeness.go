package centrality

import (
	"fmt"

	"github.com/katalvlaran/graphmetrics/bfs"
	"github.com/katalvlaran/graphmetrics/core"
)

// Closeness returns 1 / Σ d(v, u) for each requested vertex v, where the sum
// runs over every other vertex u reachable from v. Unreachable vertices are
// left out of the sum rather than making it infinite. A vertex whose sum is
// zero (isolated, or a singleton graph) scores 0.
//
// With no vertices requested, every vertex of g is scored.
//
// Complexity: O(k·(V+E)) for k requested vertices.
func Closeness[N comparable](g *core.Graph[N], nodes ...N) (map[N]float64, error) {
	nodes, err := resolve(g, nodes)
	if err != nil {
		return nil, err
	}

	out := make(map[N]float64, len(nodes))
	for _, v := range nodes {
		dist, err := bfs.Distances(g, v)
		if err != nil {
			return nil, fmt.Errorf("centrality: closeness of %v: %w", v, err)
		}
		sum := 0
		for _, d := range dist {
			sum += d
		}
		if sum > 0 {
			out[v] = 1 / float64(sum)
		} else {
			out[v] = 0
		}
	}

	return out, nil
}

// resolve validates g and nodes, defaulting to every vertex when nodes is empty.
func resolve[N comparable](g *core.Graph[N], nodes []N) ([]N, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if len(nodes) == 0 {
		return g.Vertices(), nil
	}
	if err := g.CheckVertices(nodes...); err != nil {
		return nil, fmt.Errorf("centrality: %w", err)
	}

	return nodes, nil
}
