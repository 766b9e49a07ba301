// Package graphmetrics is an in-memory toolkit for measuring small graphs:
// who sits at the center, how far apart vertices are, and how tightly
// neighborhoods cluster.
//
// What is in the box?
//
//	core/       — immutable adjacency-set Graph[N comparable], built once from connection pairs
//	bfs/        — breadth-first search, shortest paths and hop distances
//	dfs/        — depth-first search and connected components
//	paths/      — bounded enumeration of every simple path between two vertices
//	centrality/ — closeness, eccentricity, betweenness, eigenvector
//	metrics/    — average shortest path length, clustering coefficients, degree distribution
//	builder/    — path, cycle, star, wheel and complete graphs with known metric values
//	cmd/graphmetrics — command-line report over a YAML connection list
//
// Conventions shared by every package:
//
//   - Vertex IDs are any comparable type; iteration follows insertion order,
//     so results and tie-breaks are reproducible.
//   - Asking about a vertex that does not exist returns an error wrapping
//     core.ErrVertexNotFound; an isolated vertex is a valid input.
//   - Unreachability is a value, not an error: a nil path or bfs.Infinite.
//   - Aggregates over an empty graph return 0.
//
// Quick ASCII example:
//
//	    1───2
//	     \ /
//	      3───12
//
//	g := core.NewGraphFromPairs([][2]string{{"1", "2"}, {"1", "3"}, {"2", "3"}, {"3", "12"}})
//	c, _ := centrality.Closeness(g, "3")   // 1/3
//
// Simple-path enumeration (paths.AllPaths, centrality.Betweenness) is
// exponential; keep the default paths.DefaultMaxPaths cap or pass your own.
package graphmetrics
