package finder

import (
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/route"
)

// Finder holds a validated configuration and the results of its most recent
// search. Results are owned by the Finder and replaced by every call to
// GeneratePaths.
type Finder struct {
	available   grid.Set
	duplicates  grid.Set
	required    grid.Set
	limit       int
	requireFull bool
	opts        Options

	goal  grid.Coordinate
	paths []*route.Path
	stats Stats
}

// New validates cfg and returns a Finder ready to search.
// Returns a *ConfigError (matching ErrInvalidConfig) on inconsistent input.
func New(cfg Config, opts ...Option) (*Finder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	fopts := DefaultOptions()
	for _, fn := range opts {
		fn(&fopts)
	}

	f := &Finder{
		available:   grid.NewSet(cfg.Available...),
		duplicates:  grid.NewSet(cfg.DuplicateAllowed...),
		required:    grid.NewSet(),
		limit:       cfg.DuplicateLimit,
		requireFull: cfg.RequireFullCoverage,
		opts:        fopts,
	}
	if cfg.RequireFullCoverage {
		f.required = grid.NewSet(cfg.Required...)
	}

	return f, nil
}

// GeneratePaths discards previous results and enumerates every accepted path
// from start to goal in depth-first N, S, E, W order.
//
// A start or goal outside Available fails fast with a *ConfigError. An
// unreachable goal is not an error: the search completes with no results.
// When the search is aborted (context, step budget, hook error), the results
// keep the paths accepted before the abort.
func (f *Finder) GeneratePaths(start, goal grid.Coordinate) (err error) {
	f.goal = goal
	f.paths = nil
	f.stats = Stats{}

	began := time.Now()
	log := f.opts.Logger.With(zap.Stringer("start", start), zap.Stringer("goal", goal))
	defer func() {
		f.stats.Elapsed = time.Since(began)
		log.Debug("search finished",
			zap.Int("steps", f.stats.Steps),
			zap.Int("accepted", f.stats.Accepted),
			zap.Int("max_depth", f.stats.MaxDepth),
			zap.Duration("elapsed", f.stats.Elapsed),
			zap.Error(err),
		)
		if f.opts.Observer != nil {
			f.opts.Observer(f.stats, err)
		}
	}()

	if !f.available.Contains(start) {
		return &ConfigError{Field: "start", Reason: start.String() + " is not available", Err: ErrStartNotAvailable}
	}
	if !f.available.Contains(goal) {
		return &ConfigError{Field: "goal", Reason: goal.String() + " is not available", Err: ErrGoalNotAvailable}
	}
	if err = f.opts.Ctx.Err(); err != nil {
		return err
	}

	log.Debug("search started",
		zap.Int("available", f.available.Len()),
		zap.Int("duplicate_allowed", f.duplicates.Len()),
		zap.Int("duplicate_limit", f.limit),
		zap.Bool("require_full_coverage", f.requireFull),
	)

	reach := grid.Reachable(f.available, start)
	if !reach.Contains(goal) || (f.requireFull && !f.required.IsSubsetOf(reach)) {
		f.stats.ShortCircuited = true
		log.Debug("search short-circuited: goal or required cells unreachable")

		return nil
	}

	s := newSearcher(f, goal, log)

	return s.run(start)
}

// ShortestPath returns a copy of the first accepted path of minimal length,
// or (nil, false) if the last search accepted nothing.
func (f *Finder) ShortestPath() (*route.Path, bool) {
	if len(f.paths) == 0 {
		return nil, false
	}
	best := f.paths[0]
	for _, p := range f.paths[1:] {
		if p.Len() < best.Len() {
			best = p
		}
	}

	return best.Clone(), true
}

// AllPaths returns copies of every accepted path in discovery order.
func (f *Finder) AllPaths() []*route.Path {
	out := make([]*route.Path, len(f.paths))
	for i, p := range f.paths {
		out[i] = p.Clone()
	}

	return out
}

// Len returns the number of accepted paths.
func (f *Finder) Len() int { return len(f.paths) }

// Goal returns the goal of the most recent search.
func (f *Finder) Goal() grid.Coordinate { return f.goal }

// Stats returns the diagnostics of the most recent search.
func (f *Finder) Stats() Stats { return f.stats }
