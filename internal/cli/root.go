// SPDX-License-Identifier: MIT
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/internal/config"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// Typically called from main with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the lvroute CLI against os.Args.
//
// Logging:
//   - Default: the configured level (info unless [log] says otherwise)
//   - With --verbose (-v): debug level
func Execute(ctx context.Context) error {
	return newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
}

// newRootCmd wires the command tree. Results go to out, logs to errOut.
func newRootCmd(out, errOut io.Writer) *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:           "lvroute",
		Short:         "lvroute computes single-source shortest paths on indexed graphs",
		Long:          `lvroute builds indexed template graphs, extends clones of them per query and answers shortest-path queries with a binary-heap Dijkstra.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			level, err := cfg.LogLevel()
			if err != nil {
				return err
			}
			if verbose {
				level = log.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(errOut, level))
			cmd.SetContext(withConfig(ctx, cfg))

			return nil
		},
	}

	root.SetOut(out)
	root.SetErr(errOut)
	root.SetVersionTemplate(fmt.Sprintf("lvroute %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "TOML configuration file")

	root.AddCommand(newCafeCmd())
	root.AddCommand(newRouteCmd())
	root.AddCommand(newBenchCmd())

	return root
}
