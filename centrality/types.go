// Package centrality defines options and sentinel errors for vertex
// centrality measures over a core.Graph.
package centrality

import (
	"errors"
	"fmt"
)

// Defaults for eigenvector power iteration.
const (
	DefaultMaxIterations = 100
	DefaultTolerance     = 1e-6
)

var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("centrality: graph is nil")

	// ErrEmptyGraph is returned when a measure needs at least one vertex.
	ErrEmptyGraph = errors.New("centrality: graph has no vertices")

	// ErrNotConverged is returned when power iteration exhausts MaxIterations.
	ErrNotConverged = errors.New("centrality: power iteration did not converge")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("centrality: invalid option supplied")
)

// Option configures Eigenvector.
type Option func(*Options)

// Options holds power-iteration parameters.
type Options struct {
	// MaxIterations bounds the number of multiply-normalize rounds.
	MaxIterations int

	// Tolerance is the per-vertex convergence threshold; the run stops once the
	// L1 change between rounds drops below |V|·Tolerance.
	Tolerance float64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns MaxIterations = 100 and Tolerance = 1e-6.
func DefaultOptions() Options {
	return Options{
		MaxIterations: DefaultMaxIterations,
		Tolerance:     DefaultTolerance,
	}
}

// WithMaxIterations sets the iteration cap (must be > 0).
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxIterations must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithTolerance sets the convergence threshold (must be > 0).
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if !(tol > 0) {
			o.err = fmt.Errorf("%w: Tolerance must be positive (%g)", ErrOptionViolation, tol)
			return
		}
		o.Tolerance = tol
	}
}
