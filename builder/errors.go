// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.
//   • Errors raised by core (e.g. core.ErrNegativeWeight from a bad WeightFn)
//     pass through wrapped, so errors.Is works against core sentinels too.

package builder

import "errors"

// ErrTooFewNodes indicates that a size parameter (n, rows, cols) is smaller
// than the allowed minimum for the requested constructor.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a
// non-nil *rand.Rand (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a structural misuse of the orchestrators
// (nil constructor, nil graph).
var ErrConstructFailed = errors.New("builder: construction failed")
