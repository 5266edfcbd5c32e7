package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/cli"
)

// coordinateFlag is a pflag.Value holding an optional "x,y" coordinate.
type coordinateFlag struct {
	c *grid.Coordinate
}

func (f *coordinateFlag) String() string {
	if f.c == nil {
		return ""
	}

	return f.c.String()
}

func (f *coordinateFlag) Set(s string) error {
	c, err := grid.ParseCoordinate(s)
	if err != nil {
		return err
	}
	f.c = &c

	return nil
}

func (f *coordinateFlag) Type() string { return "x,y" }

var (
	runStart coordinateFlag
	runGoal  coordinateFlag
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Search a scenario and print the shortest path",
	Long: `Runs the scenario given by --file (YAML or JSON), or the built-in driver
scenario when no file is given, and prints the shortest accepted path.
"[]" is printed when no path satisfies the constraints.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		opts := cli.RunOptions{Start: runStart.c, Goal: runGoal.c}
		opts.File, _ = cmd.Flags().GetString("file")
		opts.All, _ = cmd.Flags().GetBool("all")
		opts.MaxSteps, _ = cmd.Flags().GetInt("max-steps")
		opts.Timeout, _ = cmd.Flags().GetDuration("timeout")

		return cli.Run(cmd.Context(), cmd.OutOrStdout(), log, opts)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringP("file", "f", "", "Scenario file (.yaml, .yml or .json)")
	runCmd.Flags().Var(&runStart, "start", "Override the scenario start cell")
	runCmd.Flags().Var(&runGoal, "goal", "Override the scenario goal cell")
	runCmd.Flags().Bool("all", false, "Print every accepted path in discovery order")
	runCmd.Flags().Int("max-steps", 0, "Abort after this many search steps (0 keeps the scenario value)")
	runCmd.Flags().Duration("timeout", 0, "Abort the search after this long (0 disables)")
}
