package centrality

import (
	"fmt"

	"github.com/katalvlaran/graphmetrics/bfs"
	"github.com/katalvlaran/graphmetrics/core"
)

// Eccentricity returns the largest hop distance from v to any other vertex,
// or bfs.Infinite if some vertex cannot be reached from v. A singleton graph
// has eccentricity 0.
func Eccentricity[N comparable](g *core.Graph[N], v N) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	dist, err := bfs.Distances(g, v)
	if err != nil {
		return 0, fmt.Errorf("centrality: eccentricity of %v: %w", v, err)
	}
	if len(dist) < g.VertexCount() {
		return bfs.Infinite, nil
	}
	ecc := 0
	for _, d := range dist {
		ecc = max(ecc, d)
	}

	return ecc, nil
}

// Eccentricities maps each requested vertex (all when none given) to its eccentricity.
func Eccentricities[N comparable](g *core.Graph[N], nodes ...N) (map[N]int, error) {
	nodes, err := resolve(g, nodes)
	if err != nil {
		return nil, err
	}
	out := make(map[N]int, len(nodes))
	for _, v := range nodes {
		if out[v], err = Eccentricity(g, v); err != nil {
			return nil, err
		}
	}

	return out, nil
}
