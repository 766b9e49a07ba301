package dfs

import (
	"fmt"

	"github.com/katalvlaran/graphmetrics/core"
)

// walker carries traversal state.
type walker[N comparable] struct {
	graph     *core.Graph[N]
	opts      Options
	res       *Result[N]
	neighbors func(N) []N
}

type frame[N comparable] struct {
	id     N
	parent N
	depth  int
	root   bool
}

// DFS performs depth-first search on g from start, or over the whole graph
// when WithFullTraversal is given.
func DFS[N comparable](g *core.Graph[N], start N, opts ...Option) (*Result[N], error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Single-root mode: verify start
	if !o.FullTraversal {
		if err := g.CheckVertices(start); err != nil {
			return nil, fmt.Errorf("dfs: start: %w", err)
		}
	}

	w := newWalker(g, o, outgoing(g))

	// 4. Traverse: forest or single tree
	if o.FullTraversal {
		if err := w.forest(); err != nil {
			return nil, err
		}

		return w.res, nil
	}
	if err := w.traverse(start); err != nil {
		return nil, err
	}

	return w.res, nil
}

// Components returns the connected components of g, each listed in DFS
// pre-order, components ordered by their first vertex. Directed edges are
// followed in both directions. An empty graph yields no components.
func Components[N comparable](g *core.Graph[N]) ([][]N, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	nbrs := outgoing(g)
	if g.Directed() {
		nbrs = undirected(g)
	}
	w := newWalker(g, DefaultOptions(), nbrs)
	if err := w.forest(); err != nil {
		return nil, err
	}

	// Pre-order keeps each tree contiguous; a new tree starts at depth 0.
	out := make([][]N, 0, len(w.res.Roots))
	for pos := 0; pos < len(w.res.Order); {
		end := pos + 1
		for end < len(w.res.Order) && w.res.Depth[w.res.Order[end]] > 0 {
			end++
		}
		out = append(out, w.res.Order[pos:end:end])
		pos = end
	}

	return out, nil
}

func newWalker[N comparable](g *core.Graph[N], o Options, nbrs func(N) []N) *walker[N] {
	n := g.VertexCount()

	return &walker[N]{
		graph: g,
		opts:  o,
		res: &Result[N]{
			Order:  make([]N, 0, n),
			Depth:  make(map[N]int, n),
			Parent: make(map[N]N, n),
		},
		neighbors: nbrs,
	}
}

func (w *walker[N]) forest() error {
	for _, v := range w.graph.Vertices() {
		if w.res.Visited(v) {
			continue
		}
		if err := w.traverse(v); err != nil {
			return err
		}
	}

	return nil
}

// traverse runs an iterative pre-order walk rooted at root.
func (w *walker[N]) traverse(root N) error {
	w.res.Roots = append(w.res.Roots, root)
	stack := []frame[N]{{id: root, root: true}}
	for len(stack) > 0 {
		// 1. Cancellation check
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if w.res.Visited(f.id) {
			continue
		}

		// 2. Record visit
		w.res.Order = append(w.res.Order, f.id)
		w.res.Depth[f.id] = f.depth
		if !f.root {
			w.res.Parent[f.id] = f.parent
		}

		// 3. Push unvisited neighbors in reverse so they pop in insertion order
		nbs := w.neighbors(f.id)
		for i := len(nbs) - 1; i >= 0; i-- {
			if !w.res.Visited(nbs[i]) {
				stack = append(stack, frame[N]{id: nbs[i], parent: f.id, depth: f.depth + 1})
			}
		}
	}

	return nil
}

func outgoing[N comparable](g *core.Graph[N]) func(N) []N {
	return func(v N) []N {
		var out []N
		g.EachNeighbor(v, func(u N) bool {
			out = append(out, u)
			return true
		})

		return out
	}
}

// undirected merges outgoing and incoming neighbors, outgoing first.
func undirected[N comparable](g *core.Graph[N]) func(N) []N {
	incoming := make(map[N][]N, g.VertexCount())
	for _, v := range g.Vertices() {
		g.EachNeighbor(v, func(u N) bool {
			incoming[u] = append(incoming[u], v)
			return true
		})
	}
	out := outgoing(g)

	return func(v N) []N {
		return append(out(v), incoming[v]...)
	}
}
