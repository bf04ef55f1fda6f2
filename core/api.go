// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters over a Graph.
// Policy:
//   - No mutation and no allocation beyond the returned values.
//   - Every exported function documents complexity.

package core

// NodeCount returns the current number of nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	return len(g.adjacency)
}

// EdgeCount returns the number of directed edges stored.
// A bidirectional insertion counts as two.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	return g.edgeCount
}

// HasNode reports whether u is a valid node id.
// Complexity: O(1).
func (g *Graph) HasNode(u NodeID) bool {
	return u >= 0 && int(u) < len(g.adjacency)
}

// Neighbors returns the out-edges of u in insertion order.
//
// The returned slice aliases the graph's storage and must be treated as
// read-only. Its capacity is clipped to its length, so an append by the
// caller reallocates instead of writing into the graph.
//
// Errors:
//   - ErrNodeOutOfRange if u is not a valid node id.
//
// Complexity: O(1).
func (g *Graph) Neighbors(u NodeID) ([]Edge, error) {
	if err := checkNode("node", u, len(g.adjacency)); err != nil {
		return nil, err
	}
	out := g.adjacency[u]

	return out[:len(out):len(out)], nil
}

// OutDegree returns the number of out-edges of u, parallel edges included.
//
// Errors:
//   - ErrNodeOutOfRange if u is not a valid node id.
//
// Complexity: O(1).
func (g *Graph) OutDegree(u NodeID) (int, error) {
	if err := checkNode("node", u, len(g.adjacency)); err != nil {
		return 0, err
	}

	return len(g.adjacency[u]), nil
}

// Stats scans the graph once and returns its summary.
// Complexity: O(V + E).
func (g *Graph) Stats() Stats {
	s := Stats{Nodes: len(g.adjacency), Edges: g.edgeCount}
	var (
		u     int
		edges []Edge
		e     Edge
	)
	for u, edges = range g.adjacency {
		if len(edges) > s.MaxOutDegree {
			s.MaxOutDegree = len(edges)
		}
		for _, e = range edges {
			if int(e.To) == u {
				s.SelfLoops++
			}
		}
	}

	return s
}
