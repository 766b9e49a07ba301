// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex membership and degree queries.
// Determinism:
//   - Vertices() returns first-seen order, the same order every algorithm iterates in.

package core

import "fmt"

// HasVertex reports whether id is a member of the graph.
//
// Membership is explicit: the target of a directed connection is a vertex even
// though it may have no outgoing neighbors.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph[N]) HasVertex(id N) bool {
	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all vertex IDs in first-seen order.
//
// Behavior highlights:
//   - Returned slice is a fresh copy; callers may retain and mutate it.
//
// Complexity:
//   - Time O(V), Space O(V).
func (g *Graph[N]) Vertices() []N {
	out := make([]N, len(g.order))
	copy(out, g.order)

	return out
}

// Degree returns |adjacency[id]|: the neighbor count for undirected graphs,
// the out-degree for directed graphs.
//
// Errors:
//   - ErrVertexNotFound (wrapped with the ID) if id is not a member.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph[N]) Degree(id N) (int, error) {
	set, ok := g.adjacent[id]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrVertexNotFound, id)
	}

	return len(set), nil
}

// CheckVertices returns an error wrapping ErrVertexNotFound for the first ID in ids
// that is not a member, or nil if all are present.
//
// Algorithms call this up front so an absent vertex is never confused with an
// isolated one.
func (g *Graph[N]) CheckVertices(ids ...N) error {
	for _, id := range ids {
		if _, ok := g.vertices[id]; !ok {
			return fmt.Errorf("%w: %v", ErrVertexNotFound, id)
		}
	}

	return nil
}
