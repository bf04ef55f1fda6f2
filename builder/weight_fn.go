// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// weight_fn.go — edge-weight generators handed to constructors via
// WithWeightFn.
//
// Contract:
//   • A WeightFn never returns a negative or NaN weight; core would reject
//     the edge with core.ErrNegativeWeight.
//   • Stochastic generators draw from the rng they are given and fall back to
//     DefaultEdgeWeight when it is nil, so an unseeded build stays
//     deterministic.
//   • Generator constructors panic on parameters that cannot produce a
//     valid weight (same policy as BuilderOption constructors).

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is emitted when no WeightFn is configured, and by
// stochastic generators that receive a nil rng.
const DefaultEdgeWeight float64 = 1

// WeightFn yields the weight of the next emitted edge.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn ignores rng and returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// sampled wraps a sampler with the nil-rng fallback shared by every
// stochastic generator.
func sampled(draw func(rng *rand.Rand) float64) WeightFn {
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return draw(rng)
	}
}

// badWeightParam panics with a uniform message for generator misuse.
func badWeightParam(fn, format string, args ...interface{}) {
	panic(fmt.Sprintf("builder: %s: %s", fn, fmt.Sprintf(format, args...)))
}

// ConstantWeightFn emits value for every edge. Panics on negative or NaN.
func ConstantWeightFn(value float64) WeightFn {
	if !(value >= 0) {
		badWeightParam("ConstantWeightFn", "value=%g must be ≥ 0", value)
	}

	return func(*rand.Rand) float64 { return value }
}

// UniformWeightFn draws from the half-open interval [min, max); min == max
// yields min. Panics unless 0 ≤ min ≤ max.
// Complexity: O(1) per draw.
func UniformWeightFn(min, max float64) WeightFn {
	if !(min >= 0) || !(max >= min) {
		badWeightParam("UniformWeightFn", "need 0 ≤ min ≤ max, got [%g, %g)", min, max)
	}
	span := max - min

	return sampled(func(rng *rand.Rand) float64 {
		if span == 0 {
			return min
		}

		return min + span*rng.Float64()
	})
}

// IntUniformWeightFn draws integers from the closed range [min, max].
// Integral weights keep path totals exact. Panics unless 0 ≤ min ≤ max.
// Complexity: O(1) per draw.
func IntUniformWeightFn(min, max int) WeightFn {
	if min < 0 || max < min {
		badWeightParam("IntUniformWeightFn", "need 0 ≤ min ≤ max, got [%d, %d]", min, max)
	}
	n := max - min + 1

	return sampled(func(rng *rand.Rand) float64 {
		return float64(min + rng.Intn(n))
	})
}

// NormalWeightFn draws from N(mean, stddev²), rounds to the nearest integer
// and clamps negative samples to 0. Panics on negative or NaN stddev.
func NormalWeightFn(mean, stddev float64) WeightFn {
	if !(stddev >= 0) {
		badWeightParam("NormalWeightFn", "stddev=%g must be ≥ 0", stddev)
	}

	return sampled(func(rng *rand.Rand) float64 {
		return math.Max(0, math.Round(mean+stddev*rng.NormFloat64()))
	})
}

// ExponentialWeightFn draws from Exp(rate) (mean 1/rate) and rounds to the
// nearest integer. Panics unless rate > 0.
func ExponentialWeightFn(rate float64) WeightFn {
	if !(rate > 0) {
		badWeightParam("ExponentialWeightFn", "rate=%g must be > 0", rate)
	}

	return sampled(func(rng *rand.Rand) float64 {
		return math.Round(rng.ExpFloat64() / rate)
	})
}
