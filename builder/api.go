// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - Two orchestrators: BuildGraph(bopts, cons...) creates a fresh graph;
//     Extend(g, bopts, cons...) grows an existing one (typically a clone).
//   - All public factories are implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic at runtime; return sentinel errors from constructors.
//
// AI-Hints (practical):
//   - Compose constructors in BuildGraph to overlay topologies on the same ids.
//   - Use WithSeed(...) to freeze stochastic paths (RandomSparse, random weights).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters before touching g and return sentinel errors.
//   - Grow g to the node count they need (never shrink, never renumber).
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with core.MinNodes isolated nodes,
// resolves the builder configuration from bopts, and applies all
// constructors in order. The final node count is the largest count any
// constructor required (at least core.MinNodes).
//
// Errors:
//   - Wraps constructor errors via %w; branch with errors.Is against builder
//     sentinels (ErrTooFewNodes, ErrInvalidProbability, ...) or core sentinels.
//
// Complexity: Σ cost of each constructor.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g, err := core.NewGraph(core.MinNodes)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	if err = apply(g, newBuilderConfig(bopts...), cons); err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// Extend applies constructors to an existing graph. Constructors address
// ids from 0, so Extend overlays structure on the graph's existing nodes and
// appends nodes only when a constructor needs more than g has.
//
// On error g may hold the edges emitted before the failing constructor.
func Extend(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Extend: nil graph: %w", ErrConstructFailed)
	}
	if err := apply(g, newBuilderConfig(bopts...), cons); err != nil {
		return fmt.Errorf("Extend: %w", err)
	}

	return nil
}

// apply runs constructors sequentially, rejecting nil entries.
func apply(g *core.Graph, cfg builderConfig, cons []Constructor) error {
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return err
		}
	}

	return nil
}
