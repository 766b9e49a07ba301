// Package builder generates canonical graph topologies as connection lists
// ready for core.NewGraph.
//
// What
//
//   - Path(n), Cycle(n), Star(n), Wheel(n), Complete(n) describe well-known
//     shapes whose centrality and clustering values are known in closed form.
//   - Constructors only emit connections; BuildGraph concatenates them and
//     hands the result to core.NewGraph, so every core.GraphOption applies.
//   - Vertex IDs come from an IDFn (DefaultIDFn: "0", "1", ...).
//
// Determinism
//
//	Each constructor emits vertices in ascending index order and edges in a
//	fixed order, so the resulting graph's vertex and neighbor order is stable.
//
// Usage
//
//	g, err := builder.BuildGraph(nil, builder.DefaultIDFn, builder.Wheel(6))
//	if err != nil {
//	    // ErrTooFewVertices
//	}
package builder
