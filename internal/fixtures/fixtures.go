// Package fixtures holds the small reference graphs shared by tests and by the
// graphmetrics driver's built-in report.
package fixtures

import "github.com/katalvlaran/graphmetrics/core"

// CourseworkPairs is the twelve-vertex undirected graph the reference report
// is computed over:
//
//	1───2       6───7
//	 \ /         \ /
//	  3──────────12──8,9,10
//	 / \        /
//	4───5──11──┘
var CourseworkPairs = [][2]string{
	{"1", "2"}, {"1", "3"},
	{"2", "3"},
	{"3", "4"}, {"3", "5"}, {"3", "12"},
	{"4", "5"},
	{"5", "11"},
	{"6", "7"}, {"6", "12"},
	{"7", "12"},
	{"8", "12"},
	{"9", "12"},
	{"10", "12"},
	{"11", "12"},
}

// Coursework builds a fresh undirected graph over CourseworkPairs.
func Coursework() *core.Graph[string] {
	return core.NewGraphFromPairs(CourseworkPairs)
}

// Triangle returns the undirected triangle A–B–C.
func Triangle() *core.Graph[string] {
	return core.NewGraphFromPairs([][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}})
}

// TwoIslands returns two disconnected undirected edges A–B and C–D.
func TwoIslands() *core.Graph[string] {
	return core.NewGraphFromPairs([][2]string{{"A", "B"}, {"C", "D"}})
}

// DirectedChain returns the directed path A→B→C.
func DirectedChain() *core.Graph[string] {
	return core.NewGraphFromPairs([][2]string{{"A", "B"}, {"B", "C"}}, core.WithDirected(true))
}

// Square returns the undirected 4-cycle A–B–C–D–A, which has two
// equal-length routes between opposite corners.
func Square() *core.Graph[string] {
	return core.NewGraphFromPairs([][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}})
}
