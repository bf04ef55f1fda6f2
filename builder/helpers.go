// SPDX-License-Identifier: MIT
// Package builder provides internal helper functions used by Constructor
// implementations to grow graphs and emit edges.
//
// Design principles:
//   - Single Responsibility: each helper does one well-defined job.
//   - Error Context: wrap errors with the method name for uniform reporting.
package builder

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

// ensureNodes grows g until it has at least n nodes.
// Complexity: O(max(0, n-NodeCount)) amortized.
func ensureNodes(g *core.Graph, n int) error {
	missing := n - g.NodeCount()
	if missing <= 0 {
		return nil
	}
	if _, err := g.AddNodes(missing); err != nil {
		return fmt.Errorf("ensureNodes(%d): %w", n, err)
	}

	return nil
}

// connect emits the topology edge u—v with a weight drawn from cfg: a single
// arc u→v when cfg.directed, otherwise both directions with the same weight.
func connect(g *core.Graph, cfg builderConfig, method string, u, v int) error {
	w := cfg.weightFn(cfg.rng)
	from, to := core.NodeID(u), core.NodeID(v)

	var err error
	if cfg.directed {
		err = g.AddEdge(from, to, w)
	} else {
		err = g.AddBidirEdge(from, to, w)
	}
	if err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d, w=%g): %w", method, u, v, w, err)
	}

	return nil
}
