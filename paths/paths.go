// Package paths enumerates every simple path between two vertices of a core.Graph.
//
// Enumeration is a breadth-first expansion over partial paths: each partial
// path is extended by every neighbor not already on it. The number of simple
// paths grows exponentially with graph size, so every call is bounded by
// Options.MaxPaths (and optionally MaxHops and a context).
package paths

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/graphmetrics/core"
)

// AllPaths returns every simple path from start to goal, shortest first,
// ties in neighbor insertion order.
//
//	start == goal: [][]N{{start}}
//	unreachable:   empty result, nil error
//
// When more than MaxPaths paths exist, the first MaxPaths are returned
// together with an error wrapping ErrPathLimit.
func AllPaths[N comparable](g *core.Graph[N], start, goal N, opts ...Option) ([][]N, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := Build(opts...)
	if err != nil {
		return nil, err
	}
	if err = g.CheckVertices(start, goal); err != nil {
		return nil, fmt.Errorf("paths: %w", err)
	}
	if start == goal {
		return [][]N{{start}}, nil
	}

	var out [][]N
	queue := [][]N{{start}}
	for len(queue) > 0 {
		select {
		case <-o.Ctx.Done():
			return out, o.Ctx.Err()
		default:
		}

		path := queue[0]
		queue = queue[1:]
		if o.MaxHops > 0 && len(path) > o.MaxHops {
			continue
		}

		var limitHit bool
		g.EachNeighbor(path[len(path)-1], func(nbr N) bool {
			if slices.Contains(path, nbr) {
				return true
			}
			next := make([]N, len(path)+1)
			copy(next, path)
			next[len(path)] = nbr
			if nbr != goal {
				queue = append(queue, next)
				return true
			}
			if o.MaxPaths > 0 && len(out) == o.MaxPaths {
				limitHit = true
				return false
			}
			out = append(out, next)

			return true
		})
		if limitHit {
			return out, fmt.Errorf("%w: more than %d paths from %v to %v", ErrPathLimit, o.MaxPaths, start, goal)
		}
	}

	return out, nil
}

// CountThrough reports how many of paths contain v (endpoints included).
func CountThrough[N comparable](paths [][]N, v N) int {
	n := 0
	for _, p := range paths {
		if slices.Contains(p, v) {
			n++
		}
	}

	return n
}
