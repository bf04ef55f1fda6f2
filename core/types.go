// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: NodeID, Edge and Graph declarations, sentinel errors, NewGraph.
// Invariants:
//   - NodeCount() >= MinNodes from construction on; nodes are only appended.
//   - Every stored edge has To in [0, NodeCount()) and Weight >= 0 (never NaN).
//   - Node ids are never renumbered; existing edge lists are never reordered.

package core

import (
	"errors"
	"fmt"
)

// MinNodes is the smallest node count a Graph may be created with.
// A graph with fewer nodes cannot express a path.
const MinNodes = 2

// NoNode is the predecessor sentinel: "no node" / "not reached yet".
const NoNode NodeID = -1

// Sentinel errors for core graph operations.
//
// Every input-validation error wraps ErrInvalidArgument, so callers may branch
// either on the broad class or on the precise cause:
//
//	if errors.Is(err, core.ErrInvalidArgument) { ... }
//	if errors.Is(err, core.ErrNegativeWeight) { ... }
var (
	// ErrInvalidArgument is the broad class of caller-input errors.
	ErrInvalidArgument = errors.New("core: invalid argument")

	// ErrTooFewNodes indicates NewGraph was asked for fewer than MinNodes nodes.
	ErrTooFewNodes = fmt.Errorf("%w: node count below minimum", ErrInvalidArgument)

	// ErrNodeOutOfRange indicates a node id outside [0, NodeCount()).
	ErrNodeOutOfRange = fmt.Errorf("%w: node id out of range", ErrInvalidArgument)

	// ErrNegativeWeight indicates an edge weight below zero (or NaN).
	ErrNegativeWeight = fmt.Errorf("%w: edge weight must be non-negative", ErrInvalidArgument)

	// ErrBadCount indicates a non-positive bulk count (AddNodes).
	ErrBadCount = fmt.Errorf("%w: count must be positive", ErrInvalidArgument)
)

// NodeID is a dense node identifier in [0, NodeCount()).
// Callers map their domain entities onto this index space.
type NodeID int

// Edge is a directed, weighted connection stored in the adjacency list of
// its source node. The source is implied by the list it lives in.
type Edge struct {
	// To is the destination node.
	To NodeID

	// Weight is the non-negative traversal cost.
	Weight float64
}

// Graph is an append-only, index-addressed directed graph.
//
// adjacency[u] holds the out-edges of node u in insertion order. Parallel
// edges and self-loops are allowed; the shortest-path solver treats them
// independently.
//
// Graph performs no internal locking. Build it from one goroutine, then either
// hand it to one solve at a time or Clone it per worker. Never mutate a Graph
// while another goroutine reads it.
type Graph struct {
	adjacency [][]Edge
	edgeCount int
}

// Stats is a point-in-time summary of a Graph.
type Stats struct {
	Nodes        int
	Edges        int
	MaxOutDegree int
	SelfLoops    int
}

// NewGraph creates a Graph with nodeCount isolated nodes and no edges.
//
// Errors:
//   - ErrTooFewNodes if nodeCount < MinNodes.
//
// Complexity: O(nodeCount).
func NewGraph(nodeCount int) (*Graph, error) {
	if nodeCount < MinNodes {
		return nil, fmt.Errorf("%w: nodeCount=%d (must be >= %d)", ErrTooFewNodes, nodeCount, MinNodes)
	}

	return &Graph{adjacency: make([][]Edge, nodeCount)}, nil
}

// checkNode reports ErrNodeOutOfRange, naming the argument, when u is not a
// valid node id for a graph of n nodes.
func checkNode(name string, u NodeID, n int) error {
	if u < 0 || int(u) >= n {
		return fmt.Errorf("%w: %s=%d (must be in range 0..%d)", ErrNodeOutOfRange, name, u, n-1)
	}

	return nil
}

// checkWeight reports ErrNegativeWeight for w < 0 or NaN.
func checkWeight(w float64) error {
	// !(w >= 0) also rejects NaN, which compares false against everything.
	if !(w >= 0) {
		return fmt.Errorf("%w: weight=%g", ErrNegativeWeight, w)
	}

	return nil
}
