// SPDX-License-Identifier: MIT
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dijkstra"
)

func newRouteCmd() *cobra.Command {
	var from, to int

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Shortest path between two nodes of the configured template graph",
		Example: `  # Corner to corner on the default 64×64 grid
  lvroute route --from 0 --to 4095

  # Custom template
  lvroute route -c lvroute.toml --from 3 --to 17`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			cfg := configFromContext(ctx)

			prog := newProgress(logger)
			g, err := cfg.BuildTemplate()
			if err != nil {
				return fmt.Errorf("build template: %w", err)
			}
			prog.done(fmt.Sprintf("Built %s template: %s nodes, %s edges",
				cfg.Template.Kind, humanize.Comma(int64(g.NodeCount())), humanize.Comma(int64(g.EdgeCount()))))

			prog = newProgress(logger)
			sp, err := dijkstra.CalculateFor(g, core.NodeID(from), cfg.SolverOptions()...)
			if err != nil {
				return err
			}
			prog.done("Solved")

			path, err := sp.ShortestPathTo(core.NodeID(to))
			if err != nil {
				return err
			}
			total, err := sp.TotalWeight(core.NodeID(to))
			if err != nil {
				return err
			}

			ids := make([]string, len(path))
			for i, id := range path {
				ids[i] = strconv.Itoa(int(id))
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, strings.Join(ids, " → "))
			fmt.Fprintf(out, "hops: %d\ntotal weight: %g\n", len(path)-1, total)

			return nil
		},
	}

	cmd.Flags().IntVar(&from, "from", 0, "start node id")
	cmd.Flags().IntVar(&to, "to", 1, "destination node id")

	return cmd
}
