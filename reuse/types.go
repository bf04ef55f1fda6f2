// SPDX-License-Identifier: MIT
// Package: lvroute/reuse
//
// types.go — query model, sentinel errors and runner options.

package reuse

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dijkstra"
)

// Sentinel errors for runner construction.
var (
	// ErrNilTemplate is returned by NewRunner for a nil template graph.
	ErrNilTemplate = fmt.Errorf("%w: reuse: nil template graph", core.ErrInvalidArgument)

	// ErrBadWorkers is returned by NewRunner when the worker count is < 1.
	ErrBadWorkers = errors.New("reuse: worker count must be ≥ 1")
)

// ExtraEdge is one edge a Query appends to its clone of the template.
// Endpoints may reference nodes the same Query adds.
type ExtraEdge struct {
	From, To      core.NodeID
	Weight        float64
	Bidirectional bool
}

// Query describes one computation: nodes and edges appended to a fresh
// clone of the template, then a solve from Start.
type Query struct {
	Start    core.NodeID
	NewNodes int
	Edges    []ExtraEdge
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithWorkers bounds concurrent solves in Run. Values < 1 make NewRunner
// fail with ErrBadWorkers.
func WithWorkers(n int) RunnerOption {
	return func(r *Runner) {
		r.workers = n
	}
}

// WithLogger sets the run logger. Panics on nil.
func WithLogger(l *log.Logger) RunnerOption {
	if l == nil {
		panic("reuse: WithLogger(nil)")
	}

	return func(r *Runner) {
		r.logger = l
	}
}

// WithMetrics attaches Prometheus collectors. nil disables metrics.
func WithMetrics(m *Metrics) RunnerOption {
	return func(r *Runner) {
		r.metrics = m
	}
}

// WithSolverOptions forwards options to every dijkstra.CalculateFor call.
func WithSolverOptions(opts ...dijkstra.Option) RunnerOption {
	return func(r *Runner) {
		r.solverOpts = append(r.solverOpts, opts...)
	}
}

// defaultWorkers is the Run fan-out when WithWorkers is not given.
func defaultWorkers() int {
	return runtime.GOMAXPROCS(0)
}
