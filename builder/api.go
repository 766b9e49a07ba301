// SPDX-License-Identifier: MIT
// Package: graphmetrics/builder
//
// api.go — Constructor contract and BuildGraph entry point.
//
// Contract:
//   • A Constructor validates its own size parameter and returns a sentinel
//     error (wrapped with method context) before emitting anything.
//   • BuildGraph runs constructors in argument order; vertex IDs shared by two
//     constructors refer to the same vertex.
//   • The first failing constructor aborts the build; no partial graph escapes.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphmetrics/core"
)

// Constructor emits the connections of one topology using idFn for IDs.
type Constructor func(idFn IDFn) ([]core.Connection[string], error)

// Connections runs cons and returns their concatenated connection lists.
func Connections(idFn IDFn, cons ...Constructor) ([]core.Connection[string], error) {
	if idFn == nil {
		return nil, ErrNilIDFn
	}
	var out []core.Connection[string]
	for _, c := range cons {
		conns, err := c(idFn)
		if err != nil {
			return nil, err
		}
		out = append(out, conns...)
	}

	return out, nil
}

// BuildGraph assembles a graph from cons, applying gopts to core.NewGraph.
func BuildGraph(gopts []core.GraphOption, idFn IDFn, cons ...Constructor) (*core.Graph[string], error) {
	conns, err := Connections(idFn, cons...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return core.NewGraph(conns, gopts...), nil
}

func tooFew(method string, n, minimum int) error {
	return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, minimum, ErrTooFewVertices)
}
