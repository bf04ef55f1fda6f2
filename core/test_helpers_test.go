// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for lvroute/core.
//
// Purpose:
//   - Provide small, deterministic fixtures for core.Graph.
//   - Keep assertions on sentinels via errors.Is (require.ErrorIs).

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/core"
)

// Common weights used across core tests.
const (
	WeightZero  = 0.0
	WeightOne   = 1.0
	WeightSeven = 7.0
)

// mustGraph creates a graph with n nodes or fails the test.
func mustGraph(t *testing.T, n int) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n)
	require.NoError(t, err)

	return g
}

// edgesOf returns a copy of u's out-edges or fails the test.
func edgesOf(t *testing.T, g *core.Graph, u core.NodeID) []core.Edge {
	t.Helper()
	nbs, err := g.Neighbors(u)
	require.NoError(t, err)

	return append([]core.Edge(nil), nbs...)
}

// snapshot copies every adjacency list so later mutations can be compared.
func snapshot(t *testing.T, g *core.Graph) [][]core.Edge {
	t.Helper()
	out := make([][]core.Edge, g.NodeCount())
	for u := 0; u < g.NodeCount(); u++ {
		out[u] = edgesOf(t, g, core.NodeID(u))
	}

	return out
}
