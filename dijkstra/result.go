// SPDX-License-Identifier: MIT

package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvroute/core"
)

// ShortestPaths is the immutable outcome of one CalculateFor call.
//
// It owns node-indexed distance and predecessor arrays sized to the graph's
// node count at solve time and keeps no reference to the graph. It is safe
// to share read-only between any number of goroutines.
type ShortestPaths struct {
	start core.NodeID
	dist  []float64     // +Inf for unreached nodes
	prev  []core.NodeID // core.NoNode for the start and unreached nodes
}

// Start returns the source node of the computation.
func (sp *ShortestPaths) Start() core.NodeID { return sp.start }

// NodeCount returns the number of nodes the graph had when it was solved.
func (sp *ShortestPaths) NodeCount() int { return len(sp.dist) }

// ShortestPathTo reconstructs the path start→end, both endpoints included,
// by walking predecessors backward from end and reversing.
// For end == start the path is [start].
//
// Errors:
//   - ErrEndOutOfRange if end is outside [0, NodeCount()).
//   - ErrNoPathFound if end is unreachable from start.
//
// Complexity: O(path length).
func (sp *ShortestPaths) ShortestPathTo(end core.NodeID) ([]core.NodeID, error) {
	if err := sp.checkEnd(end); err != nil {
		return nil, err
	}

	path := []core.NodeID{end}
	for cur := end; cur != sp.start; {
		cur = sp.prev[cur]
		if cur == core.NoNode {
			return nil, fmt.Errorf("%w: from %d to %d", ErrNoPathFound, sp.start, end)
		}
		path = append(path, cur)
	}

	// Reverse in place: start first.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// TotalWeight returns the total weight of the shortest path to end, or +Inf
// when end is unreachable. Unlike ShortestPathTo it does not report
// ErrNoPathFound; test with math.IsInf(w, 1) or use Reachable.
//
// Errors:
//   - ErrEndOutOfRange if end is outside [0, NodeCount()).
//
// Complexity: O(1).
func (sp *ShortestPaths) TotalWeight(end core.NodeID) (float64, error) {
	if err := sp.checkEnd(end); err != nil {
		return math.Inf(1), err
	}

	return sp.dist[end], nil
}

// Reachable reports whether end is a valid node with a finite distance.
func (sp *ShortestPaths) Reachable(end core.NodeID) bool {
	return end >= 0 && int(end) < len(sp.dist) && !math.IsInf(sp.dist[end], 1)
}

// Predecessor returns the node preceding end on its shortest path, or
// core.NoNode for the start node and for unreachable nodes.
//
// Errors:
//   - ErrEndOutOfRange if end is outside [0, NodeCount()).
func (sp *ShortestPaths) Predecessor(end core.NodeID) (core.NodeID, error) {
	if err := sp.checkEnd(end); err != nil {
		return core.NoNode, err
	}

	return sp.prev[end], nil
}

// checkEnd validates a destination against the solved node count.
func (sp *ShortestPaths) checkEnd(end core.NodeID) error {
	if end < 0 || int(end) >= len(sp.dist) {
		return fmt.Errorf("%w: end=%d (must be in range 0..%d)", ErrEndOutOfRange, end, len(sp.dist)-1)
	}

	return nil
}
