// SPDX-License-Identifier: MIT
//
// Package dijkstra implements Dijkstra's shortest-path algorithm on indexed graphs.
//
// Notes on implementation choices:
//
//   - Distances and predecessors live in node-indexed slices, not maps.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap
//     and skipping entries whose distance is worse than the best known one.
//   - Relaxation uses a strict “<”, so among equal-weight candidates the one
//     relaxed first keeps the predecessor slot.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/lvroute/core"
)

// CalculateFor computes shortest distances and predecessors from start to
// every node of g and returns them as an immutable ShortestPaths.
//
// Preconditions and validation (in order):
//  1. g must be non-nil, including a typed-nil *core.Graph (ErrNilGraph).
//  2. start must lie in [0, g.NodeCount()) (ErrStartOutOfRange).
//
// Options customization:
//
//   - WithMaxDistance(x): nodes with distance > x are left unreached.
//   - WithInfEdgeThreshold(t): edges with weight ≥ t are skipped.
//
// The result holds no reference to g; mutating g afterwards does not affect it.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func CalculateFor(g Graph, start core.NodeID, opts ...Option) (*ShortestPaths, error) {
	// 1) Build Options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate inputs before allocating anything.
	if g == nil {
		return nil, ErrNilGraph
	}
	if cg, ok := g.(*core.Graph); ok && cg == nil {
		return nil, ErrNilGraph
	}
	n := g.NodeCount()
	if start < 0 || int(start) >= n {
		return nil, fmt.Errorf("%w: start=%d (must be in range 0..%d)", ErrStartOutOfRange, start, n-1)
	}

	// 3) Prepare state and run.
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]float64, n),
		prev:    make([]core.NodeID, n),
		pq:      make(nodePQ, 0, n),
	}
	r.init(start)
	if err := r.process(); err != nil {
		return nil, err
	}

	return &ShortestPaths{start: start, dist: r.dist, prev: r.prev}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       Graph         // The input graph; read-only within Dijkstra.
	options Options       // Thresholds.
	dist    []float64     // dist[v] = best known distance from start.
	prev    []core.NodeID // prev[v] = predecessor of v on the best known path.
	pq      nodePQ        // Min-heap for the lazy priority queue.
}

// init sets every distance to +Inf and every predecessor to core.NoNode,
// then seeds the heap with (start, 0).
func (r *runner) init(start core.NodeID) {
	inf := math.Inf(1)
	for v := range r.dist {
		r.dist[v] = inf
		r.prev[v] = core.NoNode
	}
	r.dist[start] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{id: start, dist: 0})
}

// process is the core loop. It repeatedly pops the closest pending node and
// relaxes its outgoing edges until the heap is empty.
//
// A popped entry whose distance exceeds dist[u] is stale: a better entry for
// u has already been expanded, so every relaxation it could produce is
// dominated. We skip it.
func (r *runner) process() error {
	var item nodeItem
	for r.pq.Len() > 0 {
		item = heap.Pop(&r.pq).(nodeItem)
		if item.dist > r.dist[item.id] {
			continue
		}
		if err := r.relax(item.id, item.dist); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge leaving u (whose distance d is final) and improves
// the distance of its head when strictly shorter.
func (r *runner) relax(u core.NodeID, d float64) error {
	edges, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
	}

	var (
		e       core.Edge
		newDist float64
	)
	n := len(r.dist)
	for _, e = range edges {
		// Safety checks for Graph implementations that skip core's validation.
		if e.To < 0 || int(e.To) >= n {
			return fmt.Errorf("%w: edge %d→%d (must be in range 0..%d)", core.ErrNodeOutOfRange, u, e.To, n-1)
		}
		if !(e.Weight >= 0) {
			return fmt.Errorf("%w: edge %d→%d weight=%g", ErrNegativeWeight, u, e.To, e.Weight)
		}
		if e.Weight >= r.options.InfEdgeThreshold {
			continue
		}

		newDist = d + e.Weight
		if newDist > r.options.MaxDistance || newDist >= r.dist[e.To] {
			continue
		}

		r.dist[e.To] = newDist
		r.prev[e.To] = u
		heap.Push(&r.pq, nodeItem{id: e.To, dist: newDist})
	}

	return nil
}

// nodeItem is a (node, tentative distance) heap entry.
type nodeItem struct {
	id   core.NodeID
	dist float64
}

// nodePQ is a binary min-heap of nodeItem ordered by dist ascending.
// Items are stored by value to keep the heap a single flat allocation.
type nodePQ []nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

// Pop removes and returns the last element; heap.Pop has already moved the
// minimum there.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
