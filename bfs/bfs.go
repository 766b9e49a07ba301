// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores vertices in increasing distance from a start vertex,
// with optional depth limiting and cancellation.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/graphmetrics/core"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem[N comparable] struct {
	id    N
	depth int
}

// walker encapsulates mutable BFS state.
type walker[N comparable] struct {
	graph *core.Graph[N]
	opts  Options
	ctx   context.Context
	queue []queueItem[N]
	res   *Result[N]

	// goal, when hasGoal is set, ends the walk as soon as it is discovered.
	goal    N
	hasGoal bool
	found   bool
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil, an error wrapping core.ErrVertexNotFound for an unknown
// start, ErrOptionViolation for bad options, or the context error on cancellation.
func BFS[N comparable](g *core.Graph[N], start N, opts ...Option) (*Result[N], error) {
	w, err := newWalker(g, start, opts)
	if err != nil {
		return nil, err
	}

	return w.res, w.loop()
}

// ShortestPath returns the first minimum-hop path found from start to goal.
// Ties are broken by neighbor insertion order.
//
//	start == goal: returns []N{start}
//	unreachable:   returns nil, nil ("no path" is an outcome, not a fault)
//
// Errors are reserved for a nil graph, unknown vertices, bad options and cancellation.
func ShortestPath[N comparable](g *core.Graph[N], start, goal N, opts ...Option) ([]N, error) {
	res, err := walkTo(g, start, goal, opts)
	if err != nil || !res.Reached(goal) {
		return nil, err
	}

	return res.PathTo(goal)
}

// ShortestPathLength returns the hop count from start to goal:
// 0 when start == goal, Infinite when goal is unreachable.
func ShortestPathLength[N comparable](g *core.Graph[N], start, goal N, opts ...Option) (int, error) {
	res, err := walkTo(g, start, goal, opts)
	if err != nil {
		return Infinite, err
	}

	return res.DistanceTo(goal), nil
}

// Distances returns the hop count from start to every reachable vertex,
// start included at 0. Unreachable vertices are absent from the map.
func Distances[N comparable](g *core.Graph[N], start N, opts ...Option) (map[N]int, error) {
	res, err := BFS(g, start, opts...)
	if err != nil {
		return nil, err
	}

	return res.Depth, nil
}

// walkTo validates goal and runs a BFS that stops once goal is discovered.
func walkTo[N comparable](g *core.Graph[N], start, goal N, opts []Option) (*Result[N], error) {
	w, err := newWalker(g, start, opts)
	if err != nil {
		return nil, err
	}
	if !g.HasVertex(goal) {
		return nil, fmt.Errorf("bfs: goal: %w: %v", core.ErrVertexNotFound, goal)
	}
	w.goal, w.hasGoal = goal, true
	w.found = start == goal

	return w.res, w.loop()
}

// newWalker builds options, validates input and seeds the queue with start.
func newWalker[N comparable](g *core.Graph[N], start N, opts []Option) (*walker[N], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	// Validate start vertex
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("bfs: start: %w: %v", core.ErrVertexNotFound, start)
	}

	n := g.VertexCount()
	w := &walker[N]{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem[N], 0, n),
		res: &Result[N]{
			Start:  start,
			Order:  make([]N, 0, n),
			Depth:  make(map[N]int, n),
			Parent: make(map[N]N, n),
		},
	}
	// Seed queue with start vertex (no parent)
	w.res.Depth[start] = 0
	w.queue = append(w.queue, queueItem[N]{id: start})

	return w, nil
}

// loop processes the queue until empty, goal found, or cancellation.
func (w *walker[N]) loop() error {
	for len(w.queue) > 0 && !w.found {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors applies MaxDepth and enqueues each unseen neighbor
// in insertion order.
func (w *walker[N]) enqueueNeighbors(item queueItem[N]) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	w.graph.EachNeighbor(item.id, func(nbr N) bool {
		if _, seen := w.res.Depth[nbr]; seen {
			return true
		}
		w.res.Depth[nbr] = nextDepth
		w.res.Parent[nbr] = item.id
		w.queue = append(w.queue, queueItem[N]{id: nbr, depth: nextDepth})
		if w.hasGoal && nbr == w.goal {
			w.found = true
			return false
		}

		return true
	})
}
