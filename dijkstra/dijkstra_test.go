// SPDX-License-Identifier: MIT
// Package dijkstra_test contains unit tests for the Dijkstra implementation.
// These tests validate inputs, the concrete reference scenarios, the
// unreachable-node asymmetry, thresholds and the result's independence from
// later graph mutation.
package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dijkstra"
)

// Café ids used by the reference scenario.
const (
	FullStack core.NodeID = iota
	DigInn
	Dubliner
	Starbucks
	CafeGrumpy
	InsomniaCookies
)

// buildCafe builds the 6-node café graph from nine bidirectional edges.
func buildCafe(t testing.TB) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(6)
	require.NoError(t, err)
	for _, e := range []struct {
		u, v core.NodeID
		w    float64
	}{
		{DigInn, FullStack, 7},
		{FullStack, Starbucks, 6},
		{DigInn, Dubliner, 4},
		{FullStack, Dubliner, 2},
		{Dubliner, Starbucks, 3},
		{DigInn, CafeGrumpy, 9},
		{CafeGrumpy, InsomniaCookies, 5},
		{Dubliner, InsomniaCookies, 7},
		{Starbucks, InsomniaCookies, 6},
	} {
		require.NoError(t, g.AddBidirEdge(e.u, e.v, e.w))
	}

	return g
}

// mustSolve runs CalculateFor or fails the test.
func mustSolve(t *testing.T, g dijkstra.Graph, start core.NodeID, opts ...dijkstra.Option) *dijkstra.ShortestPaths {
	t.Helper()
	sp, err := dijkstra.CalculateFor(g, start, opts...)
	require.NoError(t, err)

	return sp
}

// weight returns TotalWeight(end) or fails the test.
func weight(t *testing.T, sp *dijkstra.ShortestPaths, end core.NodeID) float64 {
	t.Helper()
	w, err := sp.TotalWeight(end)
	require.NoError(t, err)

	return w
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestCalculateFor_NilGraph(t *testing.T) {
	_, err := dijkstra.CalculateFor(nil, 0)
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
	require.ErrorIs(t, err, core.ErrInvalidArgument)
}

func TestCalculateFor_TypedNilGraph(t *testing.T) {
	var g *core.Graph
	var sp *dijkstra.ShortestPaths
	var err error
	require.NotPanics(t, func() { sp, err = dijkstra.CalculateFor(g, 0) })
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
	require.ErrorIs(t, err, core.ErrInvalidArgument)
	assert.Nil(t, sp)
}

func TestCalculateFor_StartOutOfRange(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)

	for _, s := range []core.NodeID{-1, 3, 100} {
		sp, err := dijkstra.CalculateFor(g, s)
		require.ErrorIs(t, err, dijkstra.ErrStartOutOfRange, "start=%d", s)
		require.ErrorIs(t, err, core.ErrInvalidArgument)
		assert.Nil(t, sp)
	}
}

func TestResult_EndOutOfRange(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	sp := mustSolve(t, g, 0)

	for _, e := range []core.NodeID{-1, 3} {
		_, err = sp.ShortestPathTo(e)
		require.ErrorIs(t, err, dijkstra.ErrEndOutOfRange)
		require.ErrorIs(t, err, core.ErrInvalidArgument)
		require.NotErrorIs(t, err, dijkstra.ErrNoPathFound)

		_, err = sp.TotalWeight(e)
		require.ErrorIs(t, err, dijkstra.ErrEndOutOfRange)

		_, err = sp.Predecessor(e)
		require.ErrorIs(t, err, dijkstra.ErrEndOutOfRange)

		assert.False(t, sp.Reachable(e))
	}
}

// ------------------------------------------------------------------------
// 2. Reference scenarios
// ------------------------------------------------------------------------

func TestCalculateFor_Cafe(t *testing.T) {
	sp := mustSolve(t, buildCafe(t), FullStack)

	path, err := sp.ShortestPathTo(CafeGrumpy)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{FullStack, Dubliner, InsomniaCookies, CafeGrumpy}, path)
	assert.Equal(t, 14.0, weight(t, sp, CafeGrumpy))

	want := map[core.NodeID]float64{
		FullStack:       0,
		DigInn:          6,
		Dubliner:        2,
		Starbucks:       5,
		CafeGrumpy:      14,
		InsomniaCookies: 9,
	}
	for v, w := range want {
		assert.Equal(t, w, weight(t, sp, v), "node %d", v)
	}
}

func TestCalculateFor_ThreeNodeScenario(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 2, 42))

	sp := mustSolve(t, g, 0)

	path, err := sp.ShortestPathTo(2)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0, 2}, path)
	assert.Equal(t, 42.0, weight(t, sp, 2))

	_, err = sp.ShortestPathTo(1)
	require.ErrorIs(t, err, dijkstra.ErrNoPathFound)
	require.NotErrorIs(t, err, core.ErrInvalidArgument)

	// TotalWeight reports +Inf without failing.
	assert.True(t, math.IsInf(weight(t, sp, 1), 1))
	assert.False(t, sp.Reachable(1))
	assert.True(t, sp.Reachable(2))
}

func TestCalculateFor_PathToStart(t *testing.T) {
	g := buildCafe(t)
	for s := core.NodeID(0); s < 6; s++ {
		sp := mustSolve(t, g, s)
		path, err := sp.ShortestPathTo(s)
		require.NoError(t, err)
		assert.Equal(t, []core.NodeID{s}, path)
		assert.Zero(t, weight(t, sp, s))
		assert.Equal(t, s, sp.Start())
		p, err := sp.Predecessor(s)
		require.NoError(t, err)
		assert.Equal(t, core.NoNode, p)
	}
}

func TestCalculateFor_DirectedOnly(t *testing.T) {
	// A→B(2), A→C(1), C→B(1), B→D(3), C→D(5)
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 2))
	require.NoError(t, g.AddEdge(0, 2, 1))
	require.NoError(t, g.AddEdge(2, 1, 1))
	require.NoError(t, g.AddEdge(1, 3, 3))
	require.NoError(t, g.AddEdge(2, 3, 5))

	sp := mustSolve(t, g, 0)
	assert.Equal(t, 5.0, weight(t, sp, 3))

	// Nothing flows backward along directed edges.
	back := mustSolve(t, g, 3)
	for v := core.NodeID(0); v < 3; v++ {
		assert.False(t, back.Reachable(v))
	}
}

// ------------------------------------------------------------------------
// 3. Edge properties
// ------------------------------------------------------------------------

func TestCalculateFor_ParallelEdgesUseMinimum(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 9))
	require.NoError(t, g.AddEdge(0, 1, 4))
	require.NoError(t, g.AddEdge(0, 1, 6))

	assert.Equal(t, 4.0, weight(t, mustSolve(t, g, 0), 1))
}

func TestCalculateFor_SelfLoopsHarmless(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 0, 0))
	require.NoError(t, g.AddEdge(1, 1, 3))
	require.NoError(t, g.AddEdge(0, 1, 2))

	sp := mustSolve(t, g, 0)
	assert.Zero(t, weight(t, sp, 0))
	assert.Equal(t, 2.0, weight(t, sp, 1))
}

func TestCalculateFor_ZeroWeightCycle(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddBidirEdge(0, 1, 0))
	require.NoError(t, g.AddBidirEdge(1, 2, 0))
	require.NoError(t, g.AddEdge(2, 0, 0))

	sp := mustSolve(t, g, 0)
	path, err := sp.ShortestPathTo(2)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0, 1, 2}, path)
	assert.Zero(t, weight(t, sp, 2))
}

func TestCalculateFor_AddEdgeBound(t *testing.T) {
	// totalWeight(to) ≤ weight for a freshly added edge from the start.
	g := buildCafe(t)
	require.NoError(t, g.AddEdge(FullStack, CafeGrumpy, 20))
	assert.LessOrEqual(t, weight(t, mustSolve(t, g, FullStack), CafeGrumpy), 20.0)

	// Equality when it is the only path.
	h, err := core.NewGraph(2)
	require.NoError(t, err)
	require.NoError(t, h.AddEdge(0, 1, 3.5))
	assert.Equal(t, 3.5, weight(t, mustSolve(t, h, 0), 1))
}

func TestCalculateFor_BidirSymmetry(t *testing.T) {
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	require.NoError(t, g.AddBidirEdge(1, 3, 11))

	ab := weight(t, mustSolve(t, g, 1), 3)
	ba := weight(t, mustSolve(t, g, 3), 1)
	assert.Equal(t, 11.0, ab)
	assert.Equal(t, ab, ba)
}

// ------------------------------------------------------------------------
// 4. Result independence
// ------------------------------------------------------------------------

func TestResult_IndependentOfLaterMutation(t *testing.T) {
	g := buildCafe(t)
	sp := mustSolve(t, g, FullStack)

	n := g.AddNode()
	require.NoError(t, g.AddBidirEdge(FullStack, CafeGrumpy, 1))
	require.NoError(t, g.AddBidirEdge(n, FullStack, 1))

	assert.Equal(t, 6, sp.NodeCount())
	assert.Equal(t, 14.0, weight(t, sp, CafeGrumpy))
	_, err := sp.ShortestPathTo(n)
	require.ErrorIs(t, err, dijkstra.ErrEndOutOfRange)
}

func TestCalculateFor_DoesNotMutateGraph(t *testing.T) {
	g := buildCafe(t)
	before := g.Clone()
	_ = mustSolve(t, g, Starbucks)

	require.Equal(t, before.NodeCount(), g.NodeCount())
	require.Equal(t, before.EdgeCount(), g.EdgeCount())
	for u := core.NodeID(0); int(u) < g.NodeCount(); u++ {
		a, _ := before.Neighbors(u)
		b, _ := g.Neighbors(u)
		require.Equal(t, a, b)
	}
}

// ------------------------------------------------------------------------
// 5. Thresholds
// ------------------------------------------------------------------------

func TestCalculateFor_MaxDistance(t *testing.T) {
	// Linear: 0—1(1)—2(1)—3(1)
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	for i := core.NodeID(0); i < 3; i++ {
		require.NoError(t, g.AddBidirEdge(i, i+1, 1))
	}

	sp := mustSolve(t, g, 0, dijkstra.WithMaxDistance(1))
	assert.Zero(t, weight(t, sp, 0))
	assert.Equal(t, 1.0, weight(t, sp, 1))
	assert.True(t, math.IsInf(weight(t, sp, 2), 1))
	_, err = sp.ShortestPathTo(3)
	require.ErrorIs(t, err, dijkstra.ErrNoPathFound)

	zero := mustSolve(t, g, 0, dijkstra.WithMaxDistance(0))
	assert.False(t, zero.Reachable(1))
}

func TestCalculateFor_InfEdgeThreshold(t *testing.T) {
	// 0—1(2), 1—2(4), 0—2(10); threshold 5 hides the direct edge.
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddBidirEdge(0, 1, 2))
	require.NoError(t, g.AddBidirEdge(1, 2, 4))
	require.NoError(t, g.AddBidirEdge(0, 2, 10))

	sp := mustSolve(t, g, 0, dijkstra.WithInfEdgeThreshold(5))
	path, err := sp.ShortestPathTo(2)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0, 1, 2}, path)
	assert.Equal(t, 6.0, weight(t, sp, 2))

	wall := mustSolve(t, g, 0, dijkstra.WithInfEdgeThreshold(2))
	assert.False(t, wall.Reachable(1))
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	assert.PanicsWithValue(t, dijkstra.ErrBadMaxDistance.Error(), func() { dijkstra.WithMaxDistance(-1) })
	assert.Panics(t, func() { dijkstra.WithMaxDistance(math.NaN()) })
	assert.PanicsWithValue(t, dijkstra.ErrBadInfThreshold.Error(), func() { dijkstra.WithInfEdgeThreshold(0) })
	assert.Panics(t, func() { dijkstra.WithInfEdgeThreshold(-3) })
	assert.NotPanics(t, func() { dijkstra.WithMaxDistance(0) })

	d := dijkstra.DefaultOptions()
	assert.True(t, math.IsInf(d.MaxDistance, 1))
	assert.True(t, math.IsInf(d.InfEdgeThreshold, 1))
}

// ------------------------------------------------------------------------
// 6. Foreign graph implementations
// ------------------------------------------------------------------------

// rawGraph is a Graph that bypasses core's endpoint and weight validation.
type rawGraph [][]core.Edge

func (r rawGraph) NodeCount() int { return len(r) }
func (r rawGraph) Neighbors(u core.NodeID) ([]core.Edge, error) {
	return r[u], nil
}

func TestCalculateFor_ForeignNegativeWeight(t *testing.T) {
	g := rawGraph{{{To: 1, Weight: -1}}, nil}
	_, err := dijkstra.CalculateFor(g, 0)
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
	require.ErrorIs(t, err, core.ErrInvalidArgument)
}

func TestCalculateFor_ForeignEndpointOutOfRange(t *testing.T) {
	for _, to := range []core.NodeID{7, -1} {
		g := rawGraph{{{To: to, Weight: 1}}, nil}
		var err error
		require.NotPanics(t, func() { _, err = dijkstra.CalculateFor(g, 0) }, "to=%d", to)
		require.ErrorIs(t, err, core.ErrNodeOutOfRange, "to=%d", to)
		require.ErrorIs(t, err, core.ErrInvalidArgument)
	}
}

func TestCalculateFor_ForeignGraph(t *testing.T) {
	g := rawGraph{
		{{To: 1, Weight: 1}, {To: 2, Weight: 5}},
		{{To: 2, Weight: 1}},
		nil,
	}
	sp := mustSolve(t, g, 0)
	assert.Equal(t, 2.0, weight(t, sp, 2))
}
