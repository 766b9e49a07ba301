package centrality

import (
	"fmt"
	"math"

	"github.com/katalvlaran/graphmetrics/core"
)

// Eigenvector computes eigenvector centrality by power iteration on A+I.
//
// Each round every vertex passes its previous score to its neighbors
// (successors, in a directed graph) and keeps its own; the vector is then
// L2-normalized. Iteration stops once Σ|x - x_prev| < |V|·Tolerance.
//
// Errors: ErrGraphNil, ErrEmptyGraph, ErrOptionViolation, and ErrNotConverged
// (with the last iterate still returned) when MaxIterations is exhausted.
func Eigenvector[N comparable](g *core.Graph[N], opts ...Option) (map[N]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	vertices := g.Vertices()
	n := len(vertices)
	if n == 0 {
		return nil, ErrEmptyGraph
	}

	x := make(map[N]float64, n)
	for _, v := range vertices {
		x[v] = 1 / float64(n)
	}
	threshold := float64(n) * o.Tolerance

	for i := 0; i < o.MaxIterations; i++ {
		prev := x
		x = make(map[N]float64, n)
		for _, v := range vertices {
			x[v] += prev[v]
			g.EachNeighbor(v, func(nbr N) bool {
				x[nbr] += prev[v]
				return true
			})
		}

		norm := 0.0
		for _, v := range vertices {
			norm += x[v] * x[v]
		}
		norm = math.Sqrt(norm)
		if norm == 0 {
			norm = 1
		}
		delta := 0.0
		for _, v := range vertices {
			x[v] /= norm
			delta += math.Abs(x[v] - prev[v])
		}
		if delta < threshold {
			return x, nil
		}
	}

	return x, fmt.Errorf("%w after %d iterations", ErrNotConverged, o.MaxIterations)
}
