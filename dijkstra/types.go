// SPDX-License-Identifier: MIT
//
// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on indexed graphs.
//
// Options:
//
//	– MaxDistance:      optional cap on distances to explore; nodes beyond stay unreached.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrNilGraph         if the provided graph is nil.
//	– ErrStartOutOfRange  if the start node is outside [0, NodeCount()).
//	– ErrEndOutOfRange    if a queried destination is outside [0, NodeCount()).
//	– ErrNegativeWeight   if a negative or NaN weight is observed during relaxation.
//	– core.ErrNodeOutOfRange if a Graph reports an edge whose head is outside [0, NodeCount()).
//	– ErrNoPathFound      if the destination is valid but unreachable.
//	– ErrBadMaxDistance   if MaxDistance < 0 or NaN (option constructor panics).
//	– ErrBadInfThreshold  if InfEdgeThreshold <= 0 or NaN (option constructor panics).
//
// All input errors wrap core.ErrInvalidArgument.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvroute/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil graph was passed to CalculateFor.
	ErrNilGraph = fmt.Errorf("dijkstra: graph is nil: %w", core.ErrInvalidArgument)

	// ErrStartOutOfRange indicates the start node is not a node of the graph.
	ErrStartOutOfRange = fmt.Errorf("dijkstra: start node out of range: %w", core.ErrInvalidArgument)

	// ErrEndOutOfRange indicates a queried destination is not a node of the
	// solved graph.
	ErrEndOutOfRange = fmt.Errorf("dijkstra: end node out of range: %w", core.ErrInvalidArgument)

	// ErrNegativeWeight indicates that a negative (or NaN) edge weight was
	// observed. core.Graph rejects such weights on insertion, so this only
	// fires for foreign Graph implementations.
	ErrNegativeWeight = fmt.Errorf("dijkstra: negative edge weight encountered: %w", core.ErrInvalidArgument)

	// ErrNoPathFound indicates the destination is a valid node that cannot be
	// reached from the start node.
	ErrNoPathFound = errors.New("dijkstra: no path found")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or a
	// negative value, which would make every edge impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Graph is the read-only view the solver needs. *core.Graph satisfies it.
//
// Neighbors must return the out-edges of u; the solver never modifies the
// returned slice and never calls Neighbors with an id outside
// [0, NodeCount()).
type Graph interface {
	NodeCount() int
	Neighbors(u core.NodeID) ([]core.Edge, error)
}

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance      – nodes whose shortest distance would exceed this value are
//
//	left unreached (+Inf). Must be ≥ 0. Default +Inf (no cap).
//
// InfEdgeThreshold – edges with weight ≥ this threshold are skipped.
//
//	Must be > 0. Default +Inf (no edge is impassable).
type Options struct {
	MaxDistance      float64
	InfEdgeThreshold float64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Panics with ErrBadMaxDistance on negative or NaN input.
func WithMaxDistance(max float64) Option {
	if !(max >= 0) {
		// Option constructors validate and panic; the algorithm itself never does.
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges
// are considered non-traversable.
// Panics with ErrBadInfThreshold on zero, negative or NaN input.
func WithInfEdgeThreshold(threshold float64) Option {
	if !(threshold > 0) {
		panic(ErrBadInfThreshold.Error())
	}

	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options with no distance cap and no impassable
// edges.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}
