// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Connection, GraphOption, sentinel errors and the NewGraph constructor.
// Policy:
//   - A Graph is built once from its connection list and never mutated afterwards.
//   - Vertex membership is explicit and independent of adjacency.
//   - Iteration order is insertion order everywhere (vertices and neighbors).

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrGraphNil indicates a nil *Graph was passed where a graph is required.
	ErrGraphNil = errors.New("core: graph is nil")
)

// Connection is a single (From, To) pair used to build a Graph.
// In an undirected graph the pair is mirrored.
type Connection[N comparable] struct {
	From N
	To   N
}

// Conn is shorthand for Connection{From: from, To: to}.
func Conn[N comparable](from, to N) Connection[N] {
	return Connection[N]{From: from, To: to}
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(c *graphConfig)

// graphConfig collects construction-time flags; it never outlives NewGraph.
type graphConfig struct {
	directed bool
}

// WithDirected sets the directedness of every connection
// (true = one-way as inserted, false = mirrored).
func WithDirected(directed bool) GraphOption {
	return func(c *graphConfig) { c.directed = directed }
}

// Graph is an immutable adjacency-set graph over comparable vertex IDs.
//
// vertices holds explicit membership; adjacent[v] holds the neighbor set of v
// and order/neighborOrder keep insertion order for deterministic iteration.
// No locks are needed: nothing writes to a Graph after NewGraph returns.
type Graph[N comparable] struct {
	directed bool

	order    []N                  // vertices in first-seen order
	vertices map[N]int            // vertex ID → index into order
	adjacent map[N]map[N]struct{} // adjacency sets

	// neighborOrder[v] lists adjacent[v] in insertion order.
	neighborOrder map[N][]N

	edgeCount int
}

// NewGraph creates a Graph from conns. Both endpoints of every connection
// become vertices. By default the graph is undirected.
//
// Adding the same pair twice is a no-op; a self-loop is stored as plain set
// membership.
//
// Complexity: O(len(conns)).
func NewGraph[N comparable](conns []Connection[N], opts ...GraphOption) *Graph[N] {
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Graph[N]{
		directed:      cfg.directed,
		order:         make([]N, 0, len(conns)),
		vertices:      make(map[N]int, len(conns)),
		adjacent:      make(map[N]map[N]struct{}, len(conns)),
		neighborOrder: make(map[N][]N, len(conns)),
	}
	for _, c := range conns {
		g.add(c.From, c.To)
	}

	return g
}

// NewGraphFromPairs is NewGraph over [2]N literals, convenient for fixtures.
func NewGraphFromPairs[N comparable](pairs [][2]N, opts ...GraphOption) *Graph[N] {
	conns := make([]Connection[N], len(pairs))
	for i, p := range pairs {
		conns[i] = Connection[N]{From: p[0], To: p[1]}
	}

	return NewGraph(conns, opts...)
}

// add registers both endpoints and links from→to (mirrored when undirected).
func (g *Graph[N]) add(from, to N) {
	g.ensureVertex(from)
	g.ensureVertex(to)

	inserted := g.link(from, to)
	if !g.directed && from != to {
		g.link(to, from)
	}
	if inserted {
		g.edgeCount++
	}
}

func (g *Graph[N]) ensureVertex(id N) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = len(g.order)
	g.order = append(g.order, id)
	g.adjacent[id] = make(map[N]struct{})
}

// link inserts to into from's neighbor set and reports whether it was new.
func (g *Graph[N]) link(from, to N) bool {
	set := g.adjacent[from]
	if _, ok := set[to]; ok {
		return false
	}
	set[to] = struct{}{}
	g.neighborOrder[from] = append(g.neighborOrder[from], to)

	return true
}

// String renders the adjacency in insertion order, e.g. "Graph(map[1:[2 3] 2:[1]])".
func (g *Graph[N]) String() string {
	if g == nil {
		return "Graph(<nil>)"
	}
	buf := make([]byte, 0, 16*len(g.order))
	buf = append(buf, "Graph(map["...)
	for i, v := range g.order {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = fmt.Appendf(buf, "%v:%v", v, g.neighborOrder[v])
	}
	buf = append(buf, "])"...)

	return string(buf)
}
