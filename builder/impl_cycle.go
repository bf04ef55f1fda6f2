// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// impl_cycle.go — implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewNodes).
//   • Grows g to at least n nodes; emits i—((i+1) mod n) for i=0..n-1.
//   • Weight per edge: cfg.weightFn(cfg.rng).
//
// Complexity: O(n) time, O(1) extra space.
//
// Determinism: edges in ascending i; the closing edge (n-1)—0 comes last.

package builder

import "github.com/katalvlaran/lvroute/core"

// Cycle returns a Constructor that builds the ring C_n over ids 0..n-1.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodCycle, "n", n, MinCycleNodes); err != nil {
			return err
		}
		if err := ensureNodes(g, n); err != nil {
			return err
		}

		return ring(g, cfg, MethodCycle, 0, n)
	}
}

// ring emits the cycle over the contiguous id window [lo, lo+size).
func ring(g *core.Graph, cfg builderConfig, method string, lo, size int) error {
	var i int
	for i = 0; i < size; i++ {
		if err := connect(g, cfg, method, lo+i, lo+(i+1)%size); err != nil {
			return err
		}
	}

	return nil
}
