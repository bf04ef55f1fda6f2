// SPDX-License-Identifier: MIT
// Package builder_test contains unit tests for the WeightFn implementations
// in the builder package, covering both correct behavior and panic conditions.
package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/builder"
)

// TestWeightFnConstructors verifies that WeightFn constructors panic
// on invalid parameters according to their documented contracts.
func TestWeightFnConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		constructor func() builder.WeightFn
	}{
		{"ConstantWeightFn_negative", func() builder.WeightFn { return builder.ConstantWeightFn(-1) }},
		{"ConstantWeightFn_NaN", func() builder.WeightFn { return builder.ConstantWeightFn(math.NaN()) }},
		{"UniformWeightFn_minNegative", func() builder.WeightFn { return builder.UniformWeightFn(-1, 5) }},
		{"UniformWeightFn_maxLessThanMin", func() builder.WeightFn { return builder.UniformWeightFn(5, 4) }},
		{"IntUniformWeightFn_minNegative", func() builder.WeightFn { return builder.IntUniformWeightFn(-1, 5) }},
		{"IntUniformWeightFn_maxLessThanMin", func() builder.WeightFn { return builder.IntUniformWeightFn(5, 4) }},
		{"NormalWeightFn_stddevNegative", func() builder.WeightFn { return builder.NormalWeightFn(0, -0.1) }},
		{"ExponentialWeightFn_zeroRate", func() builder.WeightFn { return builder.ExponentialWeightFn(0) }},
		{"ExponentialWeightFn_negativeRate", func() builder.WeightFn { return builder.ExponentialWeightFn(-1) }},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Panics(t, func() { tc.constructor() }, tc.name)
		})
	}
}

// TestWeightFnBehavior covers the runtime behavior of each WeightFn:
//   - nil RNG falls back to DefaultEdgeWeight for stochastic generators.
//   - seeded samples stay inside the documented domain.
func TestWeightFnBehavior(t *testing.T) {
	t.Parallel()

	const seed = 42
	rng := rand.New(rand.NewSource(seed))

	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(nil))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(rng))

	const constVal = 7.0
	wfnConst := builder.ConstantWeightFn(constVal)
	assert.Equal(t, constVal, wfnConst(nil))
	assert.Equal(t, constVal, wfnConst(rng))

	wfnUni := builder.UniformWeightFn(3, 3)
	assert.Equal(t, builder.DefaultEdgeWeight, wfnUni(nil))
	assert.Equal(t, 3.0, wfnUni(rng))

	var w float64
	wfnRange := builder.UniformWeightFn(1, 10)
	for i := 0; i < 100; i++ {
		w = wfnRange(rng)
		require.GreaterOrEqual(t, w, 1.0)
		require.Less(t, w, 10.0)
	}

	wfnInt := builder.IntUniformWeightFn(2, 4)
	assert.Equal(t, builder.DefaultEdgeWeight, wfnInt(nil))
	for i := 0; i < 100; i++ {
		w = wfnInt(rng)
		require.Contains(t, []float64{2, 3, 4}, w)
	}

	wfnNorm := builder.NormalWeightFn(10, 2)
	assert.Equal(t, builder.DefaultEdgeWeight, wfnNorm(nil))
	for i := 0; i < 100; i++ {
		w = wfnNorm(rng)
		require.GreaterOrEqual(t, w, 0.0)
		require.Equal(t, math.Round(w), w)
	}

	wfnExp := builder.ExponentialWeightFn(1.5)
	assert.Equal(t, builder.DefaultEdgeWeight, wfnExp(nil))
	for i := 0; i < 100; i++ {
		require.GreaterOrEqual(t, wfnExp(rng), 0.0)
	}
}

// TestWeightFnDeterminism checks that equal seeds yield equal sequences.
func TestWeightFnDeterminism(t *testing.T) {
	t.Parallel()

	fn := builder.UniformWeightFn(0, 100)
	a := rand.New(rand.NewSource(9))
	b := rand.New(rand.NewSource(9))
	for i := 0; i < 32; i++ {
		require.Equal(t, fn(a), fn(b), "sample %d", i)
	}
}
