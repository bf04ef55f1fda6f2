// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// impl_star.go — implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewNodes). Node 0 is the center; 1..n-1 are leaves.
//   • Emits 0—i for i=1..n-1 (0→i only when directed).
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "github.com/katalvlaran/lvroute/core"

// StarCenter is the id of the star's (and wheel's) hub node.
const StarCenter core.NodeID = 0

// Star returns a Constructor that builds the star S_n with center StarCenter.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodStar, "n", n, MinStarNodes); err != nil {
			return err
		}
		if err := ensureNodes(g, n); err != nil {
			return err
		}

		return spokes(g, cfg, MethodStar, 1, n)
	}
}

// spokes connects StarCenter to every id in [lo, hi).
func spokes(g *core.Graph, cfg builderConfig, method string, lo, hi int) error {
	var i int
	for i = lo; i < hi; i++ {
		if err := connect(g, cfg, method, int(StarCenter), i); err != nil {
			return err
		}
	}

	return nil
}
