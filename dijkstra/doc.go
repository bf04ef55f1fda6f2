// SPDX-License-Identifier: MIT
//
// Package dijkstra provides a precise, allocation-lean implementation of
// Dijkstra's shortest-path algorithm on indexed graphs with non-negative
// edge weights.
//
// Overview:
//
//   - CalculateFor computes the minimum-cost path from one start node to every
//     reachable node in O((V + E) log V), where V = nodes and E = edges.
//   - It relies on a binary min-heap (container/heap) to always expand the
//     next-closest node, with lazy decrease-key and explicit stale skipping.
//   - The answer is a ShortestPaths value: distances and predecessors indexed
//     by node id. Paths are reconstructed on demand.
//
// When to use:
//
//   - Any single-source query on a weighted graph with weights ≥ 0.
//   - All destinations from one source come for free: solve once, then ask
//     ShortestPathTo / TotalWeight for as many destinations as needed.
//   - Template reuse: clone a large static core.Graph, add a few query-specific
//     nodes/edges, solve the clone (see package reuse).
//
// Result queries:
//
//   - ShortestPathTo(end): the node sequence start→end inclusive, or
//     ErrNoPathFound when end is unreachable.
//   - TotalWeight(end): the path cost, +Inf when unreachable (no error).
//     This asymmetry lets callers probe many nodes cheaply.
//   - Reachable(end), Predecessor(end), Start(), NodeCount().
//
// Tie-breaking:
//
//	When two candidate paths reach a node with equal total weight, the one
//	relaxed first keeps the predecessor slot. The order is deterministic for
//	a given graph but must not be read as lexical or insertion order.
//
// Weight semantics:
//
//	core.Graph rejects negative and NaN weights on insertion. A foreign Graph
//	implementation that yields one is detected during relaxation and reported
//	as ErrNegativeWeight.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph, ErrStartOutOfRange, ErrEndOutOfRange, ErrNegativeWeight:
//     input errors, all wrapping core.ErrInvalidArgument.
//   - ErrNoPathFound: valid but unreachable destination (path reconstruction only).
//   - ErrBadMaxDistance, ErrBadInfThreshold: panics from option constructors.
//
// API reference:
//
//	func CalculateFor(g Graph, start core.NodeID, opts ...Option) (*ShortestPaths, error)
//
//	  - g:     any Graph (NodeCount + Neighbors); *core.Graph satisfies it.
//	  - start: source node id.
//	  - opts:  WithMaxDistance(float64), WithInfEdgeThreshold(float64).
//
// Concurrency:
//
//	CalculateFor only reads g. Do not mutate g while a solve runs. Results are
//	immutable and may be shared freely.
package dijkstra
