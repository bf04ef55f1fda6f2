// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// impl_complete.go — implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewNodes).
//   • Undirected: emits i—j for every pair i<j (i asc, then j asc).
//   • Directed:   emits i→j for every ordered pair i≠j (i asc, then j asc).
//   • No self-loops.
//
// Complexity: O(n²) time, O(1) extra space.

package builder

import "github.com/katalvlaran/lvroute/core"

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodComplete, "n", n, MinCompleteNodes); err != nil {
			return err
		}
		if err := ensureNodes(g, n); err != nil {
			return err
		}

		var i, j, from int
		for i = 0; i < n; i++ {
			from = i + 1
			if cfg.directed {
				from = 0
			}
			for j = from; j < n; j++ {
				if i == j {
					continue
				}
				if err := connect(g, cfg, MethodComplete, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
