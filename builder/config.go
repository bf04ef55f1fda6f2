// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng      = nil             (pure/deterministic unless seeded)
//   • weightFn = DefaultWeightFn (constant DefaultEdgeWeight)
//   • directed = false           (topology edges inserted in both directions)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator for every emitted edge.
	weightFn WeightFn
	// directed=false emits each topology edge via AddBidirEdge.
	directed bool
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		weightFn: DefaultWeightFn,
		directed: false,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
