// SPDX-License-Identifier: MIT
// Package: lvroute/reuse
//
// runner.go — clone-extend-solve over a shared template.

package reuse

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dijkstra"
)

// Runner solves Queries against a read-only template graph.
// A Runner is safe for concurrent use as long as nobody mutates the
// template while it is in use.
type Runner struct {
	template   *core.Graph
	workers    int
	logger     *log.Logger
	metrics    *Metrics
	solverOpts []dijkstra.Option
}

// NewRunner binds a Runner to template.
//
// Errors:
//   - ErrNilTemplate for a nil template.
//   - ErrBadWorkers when WithWorkers was given a value < 1.
func NewRunner(template *core.Graph, opts ...RunnerOption) (*Runner, error) {
	if template == nil {
		return nil, ErrNilTemplate
	}
	r := &Runner{
		template: template,
		workers:  defaultWorkers(),
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.workers < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadWorkers, r.workers)
	}

	return r, nil
}

// Workers reports the Run fan-out bound.
func (r *Runner) Workers() int { return r.workers }

// Solve clones the template, applies q to the clone and solves from q.Start.
// Errors from Query.Apply and dijkstra.CalculateFor are returned unchanged.
//
// Complexity: O(V + E) clone + O((V + E) log V) solve.
func (r *Runner) Solve(q Query) (*dijkstra.ShortestPaths, error) {
	sp, err := r.solve(q)
	r.metrics.countOutcome(err)

	return sp, err
}

func (r *Runner) solve(q Query) (*dijkstra.ShortestPaths, error) {
	// 1) Clone + extend.
	t0 := time.Now()
	g := r.template.Clone()
	if err := q.Apply(g); err != nil {
		return nil, err
	}
	r.metrics.observeClone(time.Since(t0), g)

	// 2) Solve.
	t1 := time.Now()
	sp, err := dijkstra.CalculateFor(g, q.Start, r.solverOpts...)
	if err != nil {
		return nil, err
	}
	r.metrics.observeSolve(time.Since(t1))

	return sp, nil
}

// Run solves every query with at most Workers() concurrent solves.
// results[i] belongs to queries[i]. The first failure cancels the queries
// that have not started yet and is returned wrapped with its index; ctx
// cancellation is observed between queries.
func (r *Runner) Run(ctx context.Context, queries []Query) ([]*dijkstra.ShortestPaths, error) {
	logger := r.logger.With("run", uuid.NewString())
	logger.Debug("run started", "queries", len(queries), "workers", r.workers)
	start := time.Now()

	results := make([]*dijkstra.ShortestPaths, len(queries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sp, err := r.Solve(q)
			if err != nil {
				return fmt.Errorf("query %d: %w", i, err)
			}
			results[i] = sp

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.Error("run failed", "err", err, "elapsed", time.Since(start))
		return nil, err
	}
	logger.Info("run complete", "queries", len(queries), "elapsed", time.Since(start))

	return results, nil
}
