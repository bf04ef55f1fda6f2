// SPDX-License-Identifier: MIT
// Package core_test verifies construction boundaries and the sentinel
// error hierarchy of core.

package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/core"
)

// TestNewGraph_Boundary checks init(0) and init(1) fail, init(2) succeeds.
func TestNewGraph_Boundary(t *testing.T) {
	for _, n := range []int{-1, 0, 1} {
		g, err := core.NewGraph(n)
		require.ErrorIs(t, err, core.ErrTooFewNodes, "n=%d", n)
		require.ErrorIs(t, err, core.ErrInvalidArgument, "n=%d", n)
		assert.Nil(t, g)
	}

	g, err := core.NewGraph(core.MinNodes)
	require.NoError(t, err)
	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())
}

// TestNewGraph_IsolatedNodes checks a fresh graph has no edges anywhere.
func TestNewGraph_IsolatedNodes(t *testing.T) {
	g := mustGraph(t, 5)
	for u := core.NodeID(0); u < 5; u++ {
		d, err := g.OutDegree(u)
		require.NoError(t, err)
		assert.Zero(t, d)
	}
}

// TestErrors_Hierarchy checks every narrow sentinel wraps ErrInvalidArgument.
func TestErrors_Hierarchy(t *testing.T) {
	for _, e := range []error{
		core.ErrTooFewNodes,
		core.ErrNodeOutOfRange,
		core.ErrNegativeWeight,
		core.ErrBadCount,
	} {
		assert.True(t, errors.Is(e, core.ErrInvalidArgument), "%v", e)
	}
	assert.False(t, errors.Is(core.ErrNodeOutOfRange, core.ErrNegativeWeight))
}

// TestErrors_CarryValues checks messages name the offending value and range.
func TestErrors_CarryValues(t *testing.T) {
	g := mustGraph(t, 4)

	err := g.AddEdge(0, 9, WeightOne)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "to=9")
	assert.Contains(t, err.Error(), "0..3")

	err = g.AddEdge(0, 1, -2.5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "weight=-2.5")

	_, err = core.NewGraph(1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nodeCount=1")
}
