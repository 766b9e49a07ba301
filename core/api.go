// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters over the construction-time configuration and catalog sizes.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity.

package core

// GraphStats is a read-only snapshot of configuration and catalog sizes.
type GraphStats struct {
	// Directed reports the construction-time directedness.
	Directed bool

	// VertexCount is |V|.
	VertexCount int

	// EdgeCount is the number of stored pairs; undirected pairs are counted once.
	EdgeCount int

	// IsolatedCount is the number of vertices with no edge in either direction.
	IsolatedCount int

	// SelfLoopCount is the number of vertices adjacent to themselves.
	SelfLoopCount int
}

// Directed reports whether connections were stored one-way as inserted.
//
// Determinism:
//   - The flag is fixed at construction and never changes.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph[N]) Directed() bool {
	return g.directed
}

// VertexCount returns |V|.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph[N]) VertexCount() int {
	return len(g.order)
}

// EdgeCount returns the number of distinct stored pairs.
// For undirected graphs a mirrored pair counts once.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph[N]) EdgeCount() int {
	return g.edgeCount
}

// Stats produces a deterministic snapshot of flags and counts.
//
// Implementation:
//   - Stage 1: Copy the configuration flag and catalog sizes.
//   - Stage 2: For directed graphs, mark every vertex that is some edge's target.
//   - Stage 3: Scan vertices once to classify isolated vertices and self-loops.
//
// Returns:
//   - *GraphStats: a fresh value the caller may retain.
//
// Complexity:
//   - Time O(V) undirected, O(V+E) directed; Space O(V) for directed graphs.
func (g *Graph[N]) Stats() *GraphStats {
	stats := GraphStats{
		Directed:    g.directed,
		VertexCount: len(g.order),
		EdgeCount:   g.edgeCount,
	}
	var targets map[N]struct{}
	if g.directed {
		targets = make(map[N]struct{}, len(g.order))
		for _, v := range g.order {
			for u := range g.adjacent[v] {
				targets[u] = struct{}{}
			}
		}
	}
	for _, v := range g.order {
		set := g.adjacent[v]
		_, incoming := targets[v]
		if len(set) == 0 && !incoming {
			stats.IsolatedCount++
		}
		if _, ok := set[v]; ok {
			stats.SelfLoopCount++
		}
	}

	return &stats
}
