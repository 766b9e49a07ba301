// Package paths defines options and sentinel errors for simple-path
// enumeration over a core.Graph.
package paths

import (
	"context"
	"errors"
	"fmt"
)

// DefaultMaxPaths caps AllPaths when the caller does not choose a limit.
const DefaultMaxPaths = 100_000

var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("paths: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("paths: invalid option supplied")

	// ErrPathLimit is returned when enumeration found more paths than MaxPaths.
	ErrPathLimit = errors.New("paths: path limit exceeded")
)

// Option configures AllPaths via functional arguments.
type Option func(*Options)

// Options bounds the exponential enumeration.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per expanded partial path.
	Ctx context.Context

	// MaxPaths stops enumeration once this many paths were found.
	// 0 disables the cap.
	MaxPaths int

	// MaxHops, if > 0, discards partial paths longer than this many edges.
	MaxHops int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Background context, MaxPaths = DefaultMaxPaths and no hop limit.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxPaths: DefaultMaxPaths,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxPaths caps the number of returned paths.
//
//	n > 0: at most n paths, ErrPathLimit if more exist
//	n == 0: unlimited
//	n < 0: ErrOptionViolation
func WithMaxPaths(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxPaths cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxPaths = n
	}
}

// WithMaxHops limits path length in edges; 0 means no limit.
func WithMaxHops(h int) Option {
	return func(o *Options) {
		if h < 0 {
			o.err = fmt.Errorf("%w: MaxHops cannot be negative (%d)", ErrOptionViolation, h)
			return
		}
		o.MaxHops = h
	}
}

// Build applies opts over DefaultOptions and returns the first recorded violation.
func Build(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
