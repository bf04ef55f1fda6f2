// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge insertion: AddEdge and AddBidirEdge.
// Determinism:
//   - Edges are appended to the source's list; insertion order is preserved
//     and is observable only through solver tie-breaking.
// AI-HINT (file):
//   - All validation happens before the first append; a rejected call leaves
//     the graph byte-for-byte unchanged.
//   - Parallel edges and self-loops are accepted.

package core

// AddEdge appends one directed edge from→to with the given weight.
//
// Calling it twice with identical arguments yields two parallel edges.
//
// Steps:
//  1. Validate from, to against [0, NodeCount()).
//  2. Validate weight (>= 0, not NaN).
//  3. Append to adjacency[from]; bump the edge counter.
//
// Errors:
//   - ErrNodeOutOfRange for an invalid endpoint.
//   - ErrNegativeWeight for a negative or NaN weight.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to NodeID, weight float64) error {
	if err := g.validateEdge(from, to, weight); err != nil {
		return err
	}
	g.appendEdge(from, to, weight)

	return nil
}

// AddBidirEdge appends two directed edges, from→to and to→from, both with
// the given weight. Validation is identical to AddEdge and covers both
// directions before either is inserted.
//
// Complexity: O(1) amortized.
func (g *Graph) AddBidirEdge(from, to NodeID, weight float64) error {
	if err := g.validateEdge(from, to, weight); err != nil {
		return err
	}
	g.appendEdge(from, to, weight)
	g.appendEdge(to, from, weight)

	return nil
}

// validateEdge checks endpoints, then weight, against the current node count.
func (g *Graph) validateEdge(from, to NodeID, weight float64) error {
	n := len(g.adjacency)
	if err := checkNode("from", from, n); err != nil {
		return err
	}
	if err := checkNode("to", to, n); err != nil {
		return err
	}

	return checkWeight(weight)
}

// appendEdge stores a pre-validated edge.
func (g *Graph) appendEdge(from, to NodeID, weight float64) {
	g.adjacency[from] = append(g.adjacency[from], Edge{To: to, Weight: weight})
	g.edgeCount++
}
