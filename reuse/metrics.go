// SPDX-License-Identifier: MIT
// Package: lvroute/reuse
//
// metrics.go — Prometheus collectors for Runner.

package reuse

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/lvroute/core"
)

// Query outcome label values.
const (
	OutcomeOK      = "ok"
	OutcomeInvalid = "invalid_argument"
	OutcomeFailed  = "failed"
)

// Metrics groups the Runner collectors. A nil *Metrics records nothing.
type Metrics struct {
	queries      *prometheus.CounterVec
	solveSeconds prometheus.Histogram
	cloneSeconds prometheus.Histogram
	graphNodes   prometheus.Gauge
	graphEdges   prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg creates unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		queries: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lvroute",
			Subsystem: "reuse",
			Name:      "queries_total",
			Help:      "Total queries solved, by outcome.",
		}, []string{"outcome"}),
		solveSeconds: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "lvroute",
			Subsystem: "reuse",
			Name:      "solve_seconds",
			Help:      "Time spent in the shortest-path solve of one query.",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 10),
		}),
		cloneSeconds: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "lvroute",
			Subsystem: "reuse",
			Name:      "clone_seconds",
			Help:      "Time spent cloning and extending the template for one query.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
		graphNodes: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "lvroute",
			Subsystem: "reuse",
			Name:      "graph_nodes",
			Help:      "Node count of the most recently extended graph.",
		}),
		graphEdges: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "lvroute",
			Subsystem: "reuse",
			Name:      "graph_edges",
			Help:      "Edge count of the most recently extended graph.",
		}),
	}
}

func (m *Metrics) observeClone(d time.Duration, g *core.Graph) {
	if m == nil {
		return
	}
	m.cloneSeconds.Observe(d.Seconds())
	m.graphNodes.Set(float64(g.NodeCount()))
	m.graphEdges.Set(float64(g.EdgeCount()))
}

func (m *Metrics) observeSolve(d time.Duration) {
	if m == nil {
		return
	}
	m.solveSeconds.Observe(d.Seconds())
}

func (m *Metrics) countOutcome(err error) {
	if m == nil {
		return
	}
	m.queries.WithLabelValues(outcome(err)).Inc()
}

// outcome maps a Solve error to its label value.
func outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, core.ErrInvalidArgument):
		return OutcomeInvalid
	default:
		return OutcomeFailed
	}
}
