// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node insertion: AddNode and AddNodes.
// Determinism:
//   - New ids are always the next integers after the current NodeCount()-1.

package core

import "fmt"

// AddNode appends one isolated node and returns its id (NodeCount()-1 after
// the append). It never fails.
// Complexity: O(1) amortized.
func (g *Graph) AddNode() NodeID {
	g.adjacency = append(g.adjacency, nil)

	return NodeID(len(g.adjacency) - 1)
}

// AddNodes appends n isolated nodes and returns the id of the first one.
// The new ids are first, first+1, ..., first+n-1.
//
// Errors:
//   - ErrBadCount if n < 1; the graph is unchanged.
//
// Complexity: O(n) amortized.
func (g *Graph) AddNodes(n int) (NodeID, error) {
	if n < 1 {
		return NoNode, fmt.Errorf("%w: n=%d", ErrBadCount, n)
	}
	first := NodeID(len(g.adjacency))
	g.adjacency = append(g.adjacency, make([][]Edge, n)...)

	return first, nil
}
