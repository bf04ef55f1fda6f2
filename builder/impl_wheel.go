// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// impl_wheel.go — implementation of Wheel(n) constructor.
//
// Canonical definition:
//   • Wₙ = hub + Cₙ₋₁: the hub is StarCenter (id 0), the rim is the cycle
//     over ids 1..n-1.
//   • Therefore n ≥ 4 (the rim must be a valid cycle: n-1 ≥ 3).
//
// Contract:
//   • n ≥ 4 (else ErrTooFewNodes).
//   • Emits the rim first (1—2, …, (n-1)—1), then spokes 0—i for i=1..n-1.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

// Wheel returns a Constructor that builds the wheel Wₙ.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodWheel, "n", n, MinWheelNodes); err != nil {
			return err
		}
		if err := ensureNodes(g, n); err != nil {
			return err
		}

		// 1) Rim C_{n-1} over ids 1..n-1.
		if err := ring(g, cfg, MethodWheel, 1, n-1); err != nil {
			return fmt.Errorf("%s: rim C_%d: %w", MethodWheel, n-1, err)
		}

		// 2) Spokes from the hub in ascending rim order.
		return spokes(g, cfg, MethodWheel, 1, n)
	}
}
