// SPDX-License-Identifier: MIT
// Package: cdk/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w, prefixed by the method name.
//   • Validation panics are confined to option constructors (WithX...).
//
// Priority when several validations fail:
//   ErrTooFewVertices, then ErrInvalidProbability, then ErrNeedRandSource,
//   then ErrUnsupportedGraphMode, and ErrConstructFailed last.

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (n, rows, cols, degree,
// ring size) is below the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnsupportedGraphMode indicates the constructor needs a graph mode the
// target graph lacks (e.g. Parallel on a graph without multi-edges).
var ErrUnsupportedGraphMode = errors.New("builder: unsupported graph mode")

// ErrConstructFailed indicates that the builder exhausted its attempts or was
// handed a nil constructor or graph.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates an out-of-domain parameter that is not a size,
// e.g. an unknown Platonic solid or an out-of-range vertex index.
var ErrOptionViolation = errors.New("builder: invalid option value")
