// SPDX-License-Identifier: MIT
// Package: graphmetrics/builder
//
// errors.go — sentinel errors for topology constructors.

package builder

import "errors"

// ErrTooFewVertices is returned when a size parameter is below the
// constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNilIDFn is returned by BuildGraph when no IDFn is supplied.
var ErrNilIDFn = errors.New("builder: id function is nil")
