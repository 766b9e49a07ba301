package centrality

import (
	"fmt"

	"github.com/katalvlaran/graphmetrics/core"
	"github.com/katalvlaran/graphmetrics/paths"
)

// Betweenness scores each requested vertex by path enumeration: for every
// ordered pair (s, t) of distinct vertices it lists all simple s→t paths and
// adds (paths containing the vertex) / (total paths). Endpoints count as
// containing, pairs without a path add nothing, and the result is not
// normalized, so an undirected pair contributes once per direction.
//
// With no vertices requested, every vertex of g is scored. opts are passed to
// the underlying paths.AllPaths calls, but only paths.WithContext and
// paths.WithMaxPaths are accepted: hitting the path cap aborts with an error
// wrapping paths.ErrPathLimit. A hop limit would drop long paths and change
// the scores themselves, so a non-zero paths.WithMaxHops is rejected with
// ErrOptionViolation.
//
// Complexity: exponential in the number of simple paths; intended for small graphs.
func Betweenness[N comparable](g *core.Graph[N], nodes []N, opts ...paths.Option) (map[N]float64, error) {
	nodes, err := resolve(g, nodes)
	if err != nil {
		return nil, err
	}
	o, err := paths.Build(opts...)
	if err != nil {
		return nil, fmt.Errorf("centrality: betweenness: %w", err)
	}
	if o.MaxHops != 0 {
		return nil, fmt.Errorf("%w: betweenness counts every simple path, MaxHops must be 0 (%d)",
			ErrOptionViolation, o.MaxHops)
	}

	out := make(map[N]float64, len(nodes))
	for _, v := range nodes {
		out[v] = 0
	}

	vertices := g.Vertices()
	for _, s := range vertices {
		for _, t := range vertices {
			if s == t {
				continue
			}
			all, err := paths.AllPaths(g, s, t, opts...)
			if err != nil {
				return nil, fmt.Errorf("centrality: betweenness %v→%v: %w", s, t, err)
			}
			if len(all) == 0 {
				continue
			}
			total := float64(len(all))
			for _, v := range nodes {
				out[v] += float64(paths.CountThrough(all, v)) / total
			}
		}
	}

	return out, nil
}
