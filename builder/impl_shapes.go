// SPDX-License-Identifier: MIT
// Package: graphmetrics/builder
//
// impl_shapes.go — Path, Cycle, Star, Wheel and Complete constructors.
//
// Contract:
//   • Vertices are indexed 0..n-1 and emitted in ascending order.
//   • Edges are emitted in ascending (i, j) order; a directed graph built from
//     them points from the lower index to the higher (Cycle closes n-1 → 0).
//
// Complexity:
//   • Path, Cycle, Star, Wheel: O(n) connections.
//   • Complete: O(n²) connections.

package builder

import "github.com/katalvlaran/graphmetrics/core"

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodWheel    = "Wheel"
	methodComplete = "Complete"

	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minWheelNodes    = 4
	minCompleteNodes = 2
)

// Path returns a chain 0–1–…–(n-1). Requires n ≥ 2.
func Path(n int) Constructor {
	return func(idFn IDFn) ([]core.Connection[string], error) {
		if n < minPathNodes {
			return nil, tooFew(methodPath, n, minPathNodes)
		}
		out := make([]core.Connection[string], 0, n-1)
		for i := 0; i+1 < n; i++ {
			out = append(out, core.Conn(idFn(i), idFn(i+1)))
		}

		return out, nil
	}
}

// Cycle returns a ring 0–1–…–(n-1)–0. Requires n ≥ 3.
func Cycle(n int) Constructor {
	return func(idFn IDFn) ([]core.Connection[string], error) {
		if n < minCycleNodes {
			return nil, tooFew(methodCycle, n, minCycleNodes)
		}
		out := make([]core.Connection[string], 0, n)
		for i := 0; i < n; i++ {
			out = append(out, core.Conn(idFn(i), idFn((i+1)%n)))
		}

		return out, nil
	}
}

// Star returns a hub 0 joined to leaves 1..n-1. Requires n ≥ 2.
func Star(n int) Constructor {
	return func(idFn IDFn) ([]core.Connection[string], error) {
		if n < minStarNodes {
			return nil, tooFew(methodStar, n, minStarNodes)
		}
		hub := idFn(0)
		out := make([]core.Connection[string], 0, n-1)
		for i := 1; i < n; i++ {
			out = append(out, core.Conn(hub, idFn(i)))
		}

		return out, nil
	}
}

// Wheel returns a hub 0 joined to every vertex of the rim cycle 1..n-1.
// Requires n ≥ 4.
func Wheel(n int) Constructor {
	return func(idFn IDFn) ([]core.Connection[string], error) {
		if n < minWheelNodes {
			return nil, tooFew(methodWheel, n, minWheelNodes)
		}
		hub := idFn(0)
		rim := n - 1
		out := make([]core.Connection[string], 0, 2*rim)
		for i := 1; i < n; i++ {
			out = append(out, core.Conn(hub, idFn(i)))
		}
		for i := 0; i < rim; i++ {
			out = append(out, core.Conn(idFn(1+i), idFn(1+(i+1)%rim)))
		}

		return out, nil
	}
}

// Complete returns K_n. Requires n ≥ 2.
func Complete(n int) Constructor {
	return func(idFn IDFn) ([]core.Connection[string], error) {
		if n < minCompleteNodes {
			return nil, tooFew(methodComplete, n, minCompleteNodes)
		}
		out := make([]core.Connection[string], 0, n*(n-1)/2)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				out = append(out, core.Conn(idFn(i), idFn(j)))
			}
		}

		return out, nil
	}
}
