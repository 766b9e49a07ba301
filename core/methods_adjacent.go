// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Adjacency queries (IsConnected, Neighbors, AdjacencyList).
// Determinism:
//   - Neighbor lists are returned in insertion order.

package core

import "fmt"

// IsConnected reports whether b is a direct neighbor of a.
//
// Behavior highlights:
//   - Returns false, not an error, when a has no recorded neighbors or is unknown.
//   - Symmetric for undirected graphs; one-way as inserted for directed graphs.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph[N]) IsConnected(a, b N) bool {
	set, ok := g.adjacent[a]
	if !ok {
		return false
	}
	_, ok = set[b]

	return ok
}

// Neighbors returns the neighbors of id in insertion order.
// For directed graphs only outgoing neighbors are listed.
//
// Implementation:
//   - Stage 1: Validate membership.
//   - Stage 2: Copy the insertion-ordered neighbor list.
//
// Returns:
//   - []N: fresh slice, safe to retain.
//   - error: ErrVertexNotFound (wrapped) if id is absent.
//
// Complexity:
//   - Time O(d), Space O(d) where d = Degree(id).
func (g *Graph[N]) Neighbors(id N) ([]N, error) {
	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, id)
	}
	src := g.neighborOrder[id]
	out := make([]N, len(src))
	copy(out, src)

	return out, nil
}

// EachNeighbor calls fn for every neighbor of id in insertion order without
// copying; iteration stops early when fn returns false. Unknown IDs have no
// neighbors.
//
// Complexity:
//   - Time O(d), Space O(1).
func (g *Graph[N]) EachNeighbor(id N, fn func(nbr N) bool) {
	for _, nbr := range g.neighborOrder[id] {
		if !fn(nbr) {
			return
		}
	}
}

// AdjacencyList returns a snapshot mapping every vertex to its insertion-ordered
// neighbor list. Vertices without neighbors map to an empty slice.
//
// Complexity:
//   - Time O(V+E), Space O(V+E).
func (g *Graph[N]) AdjacencyList() map[N][]N {
	out := make(map[N][]N, len(g.order))
	for _, v := range g.order {
		src := g.neighborOrder[v]
		nbrs := make([]N, len(src))
		copy(nbrs, src)
		out[v] = nbrs
	}

	return out
}
