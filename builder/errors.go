// SPDX-License-Identifier: MIT
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w.
//   • Validation order: size, then probability, then RNG presence.

package builder

import "errors"

// ErrTooFewVertices indicates that the graph (or a rows/cols parameter) is
// smaller than the minimum the constructor needs.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a construction that cannot proceed, such as
// a nil Constructor passed to BuildGraph.
var ErrConstructFailed = errors.New("builder: construction failed")
