package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/gridpath/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "gridpath",
	Short: "gridpath enumerates constrained paths on a grid",
	Long: `gridpath runs an exhaustive depth-first search between two cells of a grid,
honouring per-cell revisit limits and an optional full-coverage rule, and
reports the shortest path found. Results go to stdout, logs to stderr.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// newLogger builds the stderr logger from the persistent --log-level flag.
func newLogger(cmd *cobra.Command) (*zap.Logger, error) {
	level, _ := cmd.Flags().GetString("log-level")

	return logging.New(level)
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
}
