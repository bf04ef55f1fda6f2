// SPDX-License-Identifier: MIT
//
// Package core provides the indexed, append-only Graph that every other
// lvroute package builds on.
//
// Nodes are dense integers in [0, NodeCount()). The caller maps its own
// entities (cafés, intersections, routers, ...) onto that index space, which
// keeps the adjacency compact and lookups O(1) even for millions of edges.
//
// The Graph G = (V,E) has these properties:
//
//   - Directed edges with non-negative float64 weights.
//   - Parallel edges and self-loops are permitted.
//   - Append-only: nodes and edges are added, never removed or renumbered.
//   - Cheap deep Clone for template reuse: build a large static graph once,
//     clone it per query, extend the clone with a few nodes and edges.
//
// Core Methods:
//
//	// Construction & growth
//	NewGraph(nodeCount int) (*Graph, error)          // O(V), nodeCount >= MinNodes
//	AddNode() NodeID                                 // O(1)†
//	AddNodes(n int) (NodeID, error)                  // O(n)†
//	AddEdge(from, to NodeID, w float64) error        // O(1)†
//	AddBidirEdge(from, to NodeID, w float64) error   // O(1)†
//	Clone() *Graph                                   // O(V+E)
//
//	// Queries
//	NodeCount() int, EdgeCount() int, HasNode(u) bool
//	Neighbors(u NodeID) ([]Edge, error)              // read-only view
//	OutDegree(u NodeID) (int, error)
//	Stats() Stats                                    // O(V+E)
//
//	† amortized
//
// Errors:
//
//	ErrInvalidArgument - broad class; every error below wraps it.
//	ErrTooFewNodes     - NewGraph(nodeCount < MinNodes).
//	ErrNodeOutOfRange  - endpoint or queried node outside [0, NodeCount()).
//	ErrNegativeWeight  - weight < 0 or NaN.
//	ErrBadCount        - AddNodes(n < 1).
//
// A rejected call never mutates the graph.
//
// Concurrency:
//
// Graph has no internal locks. The supported pattern for parallel work is
// clone-then-extend-then-solve per worker (see package reuse); Clone itself
// only reads, so many goroutines may clone one untouched template at once.
//
// Quick example:
//
//	g, _ := core.NewGraph(3)
//	_ = g.AddEdge(0, 2, 42)
//	_ = g.AddBidirEdge(0, 1, 7)
//	fmt.Println(g.NodeCount(), g.EdgeCount()) // 3 3
package core
