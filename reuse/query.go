// SPDX-License-Identifier: MIT
// Package: lvroute/reuse
//
// query.go — applying a Query to a graph.

package reuse

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

// Apply appends q.NewNodes nodes to g, then q.Edges in order.
//
// The whole query is validated against the node count g will have after the
// append before anything is written, so a rejected query leaves g unchanged.
//
// Errors (all wrap core.ErrInvalidArgument):
//   - core.ErrBadCount for NewNodes < 0.
//   - core.ErrNodeOutOfRange for an endpoint outside the extended range.
//   - core.ErrNegativeWeight for a negative or NaN weight.
//
// Complexity: O(NewNodes + len(Edges)) amortized.
func (q Query) Apply(g *core.Graph) error {
	if q.NewNodes < 0 {
		return fmt.Errorf("%w: NewNodes=%d", core.ErrBadCount, q.NewNodes)
	}

	// 1) Validate against the extended size.
	n := g.NodeCount() + q.NewNodes
	for i, e := range q.Edges {
		if e.From < 0 || int(e.From) >= n {
			return fmt.Errorf("%w: edge %d: from=%d (must be in range 0..%d)", core.ErrNodeOutOfRange, i, e.From, n-1)
		}
		if e.To < 0 || int(e.To) >= n {
			return fmt.Errorf("%w: edge %d: to=%d (must be in range 0..%d)", core.ErrNodeOutOfRange, i, e.To, n-1)
		}
		if !(e.Weight >= 0) {
			return fmt.Errorf("%w: edge %d: weight=%g", core.ErrNegativeWeight, i, e.Weight)
		}
	}

	// 2) Grow.
	if q.NewNodes > 0 {
		if _, err := g.AddNodes(q.NewNodes); err != nil {
			return err
		}
	}

	// 3) Append edges; validated above, so these cannot fail.
	var err error
	for _, e := range q.Edges {
		if e.Bidirectional {
			err = g.AddBidirEdge(e.From, e.To, e.Weight)
		} else {
			err = g.AddEdge(e.From, e.To, e.Weight)
		}
		if err != nil {
			return err
		}
	}

	return nil
}
