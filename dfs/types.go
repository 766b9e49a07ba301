package dfs

import (
	"context"
	"errors"
)

// ErrGraphNil indicates a nil graph pointer.
var ErrGraphNil = errors.New("dfs: graph is nil")

// Option configures DFS.
type Option func(*Options)

// Options holds traversal settings.
type Options struct {
	// Ctx allows cancellation; checked once per popped stack frame.
	Ctx context.Context

	// FullTraversal restarts from every unvisited vertex, covering all
	// components; the start argument is then ignored.
	FullTraversal bool
}

// DefaultOptions returns background context, single-root traversal.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithFullTraversal makes DFS visit every component.
func WithFullTraversal() Option {
	return func(o *Options) { o.FullTraversal = true }
}

// Result is the outcome of a DFS.
type Result[N comparable] struct {
	// Order lists vertices in pre-order.
	Order []N
	// Depth maps each visited vertex to its tree depth (roots are 0).
	Depth map[N]int
	// Parent maps each non-root visited vertex to its tree parent.
	Parent map[N]N
	// Roots lists the tree roots in the order they were started.
	Roots []N
}

// Visited reports whether v was reached.
func (r *Result[N]) Visited(v N) bool {
	_, ok := r.Depth[v]

	return ok
}
