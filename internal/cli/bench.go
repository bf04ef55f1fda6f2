// SPDX-License-Identifier: MIT
package cli

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/internal/config"
	"github.com/katalvlaran/lvroute/reuse"
)

func newBenchCmd() *cobra.Command {
	var metricsFile string

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Solve many extended clones of the template graph concurrently",
		Example: `  # Default grid, 1000 queries
  lvroute bench

  # Export Prometheus metrics for node_exporter's textfile collector
  lvroute bench -c lvroute.toml --metrics-file /var/lib/node_exporter/lvroute.prom`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			cfg := configFromContext(ctx)

			prog := newProgress(logger)
			tpl, err := cfg.BuildTemplate()
			if err != nil {
				return fmt.Errorf("build template: %w", err)
			}
			prog.done(fmt.Sprintf("Built %s template: %s nodes, %s edges",
				cfg.Template.Kind, humanize.Comma(int64(tpl.NodeCount())), humanize.Comma(int64(tpl.EdgeCount()))))

			reg := prometheus.NewRegistry()
			opts := []reuse.RunnerOption{
				reuse.WithLogger(logger),
				reuse.WithMetrics(reuse.NewMetrics(reg)),
				reuse.WithSolverOptions(cfg.SolverOptions()...),
			}
			if cfg.Bench.Workers > 0 {
				opts = append(opts, reuse.WithWorkers(cfg.Bench.Workers))
			}
			runner, err := reuse.NewRunner(tpl, opts...)
			if err != nil {
				return err
			}

			if cfg.Bench.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, cfg.Bench.Timeout)
				defer cancel()
			}

			queries := benchQueries(cfg, tpl.NodeCount())
			start := time.Now()
			if _, err = runner.Run(ctx, queries); err != nil {
				return err
			}
			elapsed := time.Since(start)

			rate := float64(len(queries)) / elapsed.Seconds()
			fmt.Fprintf(cmd.OutOrStdout(), "solved %s queries with %d workers in %s (%s queries/s)\n",
				humanize.Comma(int64(len(queries))), runner.Workers(),
				elapsed.Round(time.Millisecond), humanize.CommafWithDigits(rate, 1))

			if metricsFile != "" {
				if err := prometheus.WriteToTextfile(metricsFile, reg); err != nil {
					return fmt.Errorf("write metrics: %w", err)
				}
				logger.Info("Wrote metrics", "file", metricsFile)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&metricsFile, "metrics-file", "", "write Prometheus metrics in textfile format")

	return cmd
}

// benchQueries draws cfg.Bench.Queries seeded queries over a template of
// n nodes. Each query appends NewNodes nodes and ExtraEdges edges whose
// endpoints prefer the new nodes so that they take part in the solve.
func benchQueries(cfg *config.Config, n int) []reuse.Query {
	b := cfg.Bench
	rng := rand.New(rand.NewSource(b.Seed))
	weight := cfg.Template.WeightFn()

	queries := make([]reuse.Query, b.Queries)
	var (
		i, k     int
		from, to core.NodeID
	)
	for i = range queries {
		edges := make([]reuse.ExtraEdge, b.ExtraEdges)
		for k = range edges {
			from = core.NodeID(rng.Intn(n))
			if b.NewNodes > 0 {
				to = core.NodeID(n + rng.Intn(b.NewNodes))
			} else {
				to = core.NodeID(rng.Intn(n))
			}
			edges[k] = reuse.ExtraEdge{
				From:          from,
				To:            to,
				Weight:        weight(rng),
				Bidirectional: !cfg.Template.Directed,
			}
		}
		queries[i] = reuse.Query{
			Start:    core.NodeID(rng.Intn(n)),
			NewNodes: b.NewNodes,
			Edges:    edges,
		}
	}

	return queries
}
