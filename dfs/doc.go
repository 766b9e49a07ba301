// Package dfs implements depth-first search over core.Graph and uses it to
// split a graph into connected components.
//
// Key features:
//   - DFS(g, start, opts...): pre-order visit from one root, or the whole
//     forest with WithFullTraversal.
//   - Components(g): connected components; for directed graphs edges are
//     followed both ways (weak connectivity).
//   - Cancellation via context.Context.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the explicit stack and metadata maps.
//
// Determinism:
//
//	Roots are taken in vertex insertion order and neighbors are pushed so
//	that they pop in insertion order, matching a recursive walk.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - core.ErrVertexNotFound    (wrapped) if start is missing.
//   - context errors on cancellation.
package dfs
