// Package core provides the immutable adjacency-set Graph that every
// graphmetrics algorithm runs on.
//
// The Graph G = (V,E) is built once from a list of connection pairs:
//
//   - Vertex IDs are any comparable Go type (strings, ints, small structs).
//   - Undirected by default; WithDirected(true) stores pairs one-way.
//   - Membership is explicit: every endpoint of every pair is a vertex,
//     so an isolated directed sink is still found by HasVertex.
//   - Duplicate pairs are a no-op; self-loops are plain set membership.
//   - There are no mutators after NewGraph, so a Graph is safe for
//     concurrent readers without locks.
//
// Determinism:
//
//	Vertices() and Neighbors() return insertion order. Every algorithm in
//	bfs, paths, centrality and metrics iterates in that order, so ties are
//	broken the same way on every run.
//
// Core Methods:
//
//	// Construction
//	NewGraph(conns []Connection[N], opts ...GraphOption) *Graph[N]  // O(E)
//	NewGraphFromPairs(pairs [][2]N, opts ...GraphOption) *Graph[N]  // O(E)
//
//	// Query
//	HasVertex(id N) bool                  // O(1)
//	IsConnected(a, b N) bool              // O(1)
//	Neighbors(id N) ([]N, error)          // O(d)
//	Degree(id N) (int, error)             // O(1)
//	Vertices() []N                        // O(V)
//	AdjacencyList() map[N][]N             // O(V+E)
//	VertexCount(), EdgeCount() int        // O(1)
//	Stats() *GraphStats                   // O(V)
//
// Errors:
//
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrGraphNil       - nil graph passed to a helper.
//
// Quick ASCII example:
//
//	    1───2
//	     \ /
//	      3───12
//
//	g := core.NewGraphFromPairs([][2]string{{"1", "2"}, {"1", "3"}, {"2", "3"}, {"3", "12"}})
//	g.IsConnected("3", "1") // true
package core
