// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning graph instances for template reuse.
// Determinism:
//   - The clone has identical node count and per-node edge order.
// AI-HINT (file):
//   - All edges are copied into one contiguous backing array; each node gets
//     a capacity-clipped window of it. Appending to a clone's list therefore
//     reallocates that list alone and can never touch a neighbouring window
//     or the original graph.

package core

// Clone returns an independent deep copy of the Graph.
//
// Mutating the clone (AddNode, AddEdge, ...) never affects the original, and
// vice versa. Clone only reads g, so several goroutines may clone the same
// graph concurrently as long as nobody mutates it meanwhile.
//
// Complexity: O(V + E) time, two allocations.
func (g *Graph) Clone() *Graph {
	adjacency := make([][]Edge, len(g.adjacency))
	backing := make([]Edge, 0, g.edgeCount)

	var (
		u     int
		edges []Edge
		lo    int
	)
	for u, edges = range g.adjacency {
		if len(edges) == 0 {
			continue
		}
		lo = len(backing)
		backing = append(backing, edges...)
		adjacency[u] = backing[lo:len(backing):len(backing)]
	}

	return &Graph{adjacency: adjacency, edgeCount: g.edgeCount}
}
