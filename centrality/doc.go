// Package centrality scores vertices of a core.Graph by how central they are.
//
// Measures:
//
//	Closeness(g, nodes...)            1 / Σ hop distance to every reachable vertex
//	Eccentricity(g, v)                max hop distance, bfs.Infinite if any vertex is unreachable
//	Eccentricities(g, nodes...)       Eccentricity for several vertices
//	Betweenness(g, nodes, opts...)    Σ over ordered pairs of (paths through v / all simple paths)
//	Eigenvector(g, opts...)           power iteration on A+I, L2-normalized
//
// Conventions:
//
//   - Closeness skips unreachable vertices instead of failing on disconnected graphs.
//   - Betweenness enumerates simple paths (not only shortest ones), counts
//     endpoints as "through", visits each unordered pair in both directions
//     and is never normalized.
//   - Requested vertices that do not exist yield an error wrapping
//     core.ErrVertexNotFound; an isolated vertex is a valid input scoring 0.
//
// Betweenness is exponential in the number of simple paths. Pass
// paths.WithMaxPaths / paths.WithContext to bound it on anything larger than
// a toy graph.
package centrality
