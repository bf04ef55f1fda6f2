// SPDX-License-Identifier: MIT
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/builder"
	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dijkstra"
)

func newCafeCmd() *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "cafe",
		Short: "Walk the café graph from one café to the others",
		Example: `  # Every café from FULLSTACK
  lvroute cafe

  # One route
  lvroute cafe --from diginn --to starbucks`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			start, ok := builder.CafeByName(from)
			if !ok {
				return fmt.Errorf("unknown café %q (known: %s)", from, strings.Join(builder.CafeNames[:], ", "))
			}
			targets := make([]core.NodeID, 0, builder.CafeCount)
			if to != "" {
				end, ok := builder.CafeByName(to)
				if !ok {
					return fmt.Errorf("unknown café %q (known: %s)", to, strings.Join(builder.CafeNames[:], ", "))
				}
				targets = append(targets, end)
			} else {
				for id := core.NodeID(0); id < builder.CafeCount; id++ {
					targets = append(targets, id)
				}
			}

			g, err := builder.BuildGraph(nil, builder.Cafe())
			if err != nil {
				return err
			}
			sp, err := dijkstra.CalculateFor(g, start)
			if err != nil {
				return err
			}
			logger.Debug("solved café graph", "from", builder.CafeNames[start], "edges", g.EdgeCount())

			for _, id := range targets {
				if err := printCafeRoute(cmd.OutOrStdout(), sp, id); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", builder.CafeNames[builder.CafeFullStack], "starting café")
	cmd.Flags().StringVar(&to, "to", "", "destination café (all cafés if empty)")

	return cmd
}

// printCafeRoute writes "A → B → C (N min)".
func printCafeRoute(w io.Writer, sp *dijkstra.ShortestPaths, end core.NodeID) error {
	path, err := sp.ShortestPathTo(end)
	if err != nil {
		return err
	}
	total, err := sp.TotalWeight(end)
	if err != nil {
		return err
	}
	names := make([]string, len(path))
	for i, id := range path {
		names[i] = builder.CafeNames[id]
	}
	_, err = fmt.Fprintf(w, "%s (%g min)\n", strings.Join(names, " → "), total)

	return err
}
