// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like generator: include each admissible edge independently with prob p.
//   - Undirected: iterate unordered pairs {i,j} with i<j.
//   - Directed: iterate ordered pairs (i,j) with i≠j.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewNodes).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource);
//     p=0 and p=1 are deterministic and need no RNG.
//
// Complexity:
//   - Time: O(n²) Bernoulli trials.
//   - Space: O(1) extra.
//
// Determinism:
//   - Stable edge-trial order: for each i asc, j asc. One Float64 draw per
//     trial, then one weight draw per accepted edge.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

// RandomSparse returns a Constructor that samples an Erdős–Rényi-like graph
// over n nodes with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early (zero side-effects on invalid input).
		if err := validateMin(MethodRandomSparse, "n", n, MinRandomNodes); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: p=%g: %w", MethodRandomSparse, p, ErrNeedRandSource)
		}

		// 2) Grow to n nodes.
		if err := ensureNodes(g, n); err != nil {
			return err
		}
		if p == MinProbability {
			return nil
		}

		// 3) Trials in fixed order.
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
				if p < MaxProbability && cfg.rng.Float64() >= p {
					continue
				}
				if err := connect(g, cfg, MethodRandomSparse, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
