// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// impl_path.go — implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewNodes).
//   • Grows g to at least n nodes; emits i—(i+1) for i=0..n-2.
//   • Weight per edge: cfg.weightFn(cfg.rng).
//
// Complexity: O(n) time, O(1) extra space.
//
// Determinism: edges in ascending i.

package builder

import "github.com/katalvlaran/lvroute/core"

// Path returns a Constructor that builds the simple path P_n over ids 0..n-1.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodPath, "n", n, MinPathNodes); err != nil {
			return err
		}
		if err := ensureNodes(g, n); err != nil {
			return err
		}

		var i int
		for i = 0; i < n-1; i++ {
			if err := connect(g, cfg, MethodPath, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}
