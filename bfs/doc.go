// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - ShortestPath / ShortestPathLength stop as soon as the goal is discovered.
//   - Distances exposes the whole Depth map for metric aggregation.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - Follows directed graphs only along inserted edges.
//
// Unreachable goals
//
//	Unreachability is an outcome, not a fault: ShortestPath returns a nil
//	path with a nil error, ShortestPathLength returns Infinite.
//
// Determinism
//
//	core.Graph yields neighbors in insertion order and BFS enqueues them in
//	that order, so the visit sequence and every tie between equal-length
//	paths are fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	path, err := bfs.ShortestPath(g, "1", "12")
//	if err != nil {
//	    // ErrGraphNil, core.ErrVertexNotFound, ErrOptionViolation or ctx.Err()
//	}
//	if path == nil {
//	    // no path
//	}
//
//	res, err := bfs.BFS(g, "1", bfs.WithContext(ctx), bfs.WithMaxDepth(3))
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - core.ErrVertexNotFound  (wrapped) if start or goal does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNoPath               from Result.PathTo for an unreached vertex.
//   - context errors on cancellation.
package bfs
