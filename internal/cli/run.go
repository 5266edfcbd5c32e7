// Package cli implements the gridpath commands independently of cobra so
// they can be exercised with plain writers in tests.
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/gridpath/finder"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/scenario"
)

// NoPath is printed when a search accepts nothing.
const NoPath = "[]"

// RunOptions configures a single search run.
type RunOptions struct {
	File     string           // scenario file; empty selects scenario.Default
	Start    *grid.Coordinate // overrides the scenario start when non-nil
	Goal     *grid.Coordinate // overrides the scenario goal when non-nil
	All      bool             // print every accepted path instead of the shortest
	MaxSteps int              // overrides the scenario step budget when positive
	Timeout  time.Duration    // bounds the search when positive
}

// LoadScenario returns the scenario at file, or the driver default for "".
func LoadScenario(file string) (*scenario.Scenario, error) {
	if file == "" {
		return scenario.Default(), nil
	}

	return scenario.Load(file)
}

// Run executes one search and writes the result to w: the shortest path on
// one line ("[]" when none), or with All every accepted path in discovery
// order, one per line.
func Run(ctx context.Context, w io.Writer, log *zap.Logger, opts RunOptions) error {
	sc, err := LoadScenario(opts.File)
	if err != nil {
		return err
	}
	if opts.Start != nil {
		sc.Start = *opts.Start
	}
	if opts.Goal != nil {
		sc.Goal = *opts.Goal
	}
	maxSteps := sc.MaxSteps
	if opts.MaxSteps > 0 {
		maxSteps = opts.MaxSteps
	}
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	f, err := finder.New(sc.Config(),
		finder.WithContext(ctx),
		finder.WithMaxSteps(maxSteps),
		finder.WithLogger(log),
	)
	if err != nil {
		return fmt.Errorf("scenario %q: %w", sc.Name, err)
	}
	if err = f.GeneratePaths(sc.Start, sc.Goal); err != nil {
		return fmt.Errorf("scenario %q: %w", sc.Name, err)
	}

	stats := f.Stats()
	log.Info("search complete",
		zap.String("scenario", sc.Name),
		zap.Int("accepted", stats.Accepted),
		zap.Int("steps", stats.Steps),
		zap.Duration("elapsed", stats.Elapsed),
	)

	if opts.All {
		for _, p := range f.AllPaths() {
			if _, err = fmt.Fprintln(w, p); err != nil {
				return err
			}
		}

		return nil
	}
	if p, ok := f.ShortestPath(); ok {
		_, err = fmt.Fprintln(w, p)
	} else {
		_, err = fmt.Fprintln(w, NoPath)
	}

	return err
}
