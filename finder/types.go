// Package finder defines configuration, options, diagnostics and sentinel
// errors for the path search.
package finder

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/route"
)

var (
	// ErrInvalidConfig is matched by every *ConfigError.
	ErrInvalidConfig = errors.New("finder: invalid configuration")

	// ErrStartNotAvailable indicates the start coordinate is not in Available.
	ErrStartNotAvailable = errors.New("finder: start not in available cells")

	// ErrGoalNotAvailable indicates the goal coordinate is not in Available.
	ErrGoalNotAvailable = errors.New("finder: goal not in available cells")

	// ErrStepBudgetExceeded indicates the WithMaxSteps limit was reached
	// before the search space was exhausted.
	ErrStepBudgetExceeded = errors.New("finder: step budget exceeded")
)

// ConfigError describes a configuration that cannot be searched.
// errors.Is(err, ErrInvalidConfig) holds for every ConfigError, and
// errors.Is also matches Err when set.
type ConfigError struct {
	Field  string // offending field, e.g. "DuplicateLimit" or "start"
	Reason string // human readable detail
	Err    error  // optional specific sentinel
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("finder: invalid %s: %s", e.Field, e.Reason)
}

// Unwrap exposes both ErrInvalidConfig and the specific sentinel.
func (e *ConfigError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrInvalidConfig, e.Err}
	}

	return []error{ErrInvalidConfig}
}

// Config is the search configuration. It is read once by New and is not
// retained, so callers may reuse or mutate the slices afterwards.
type Config struct {
	// Available lists the cells legal to occupy. Order and repeats are irrelevant.
	Available []grid.Coordinate

	// DuplicateAllowed lists the cells that may be revisited; must be a
	// subset of Available.
	DuplicateAllowed []grid.Coordinate

	// DuplicateLimit counts additional visits beyond the first: a
	// duplicate-allowed cell appears at most DuplicateLimit+1 times per path.
	DuplicateLimit int

	// RequireFullCoverage gates acceptance on Required being fully visited.
	RequireFullCoverage bool

	// Required lists the cells an accepted path must contain when
	// RequireFullCoverage is set; must be a subset of Available.
	Required []grid.Coordinate
}

// Validate checks the internal consistency of c.
func (c Config) Validate() error {
	if c.DuplicateLimit < 0 {
		return &ConfigError{Field: "DuplicateLimit", Reason: fmt.Sprintf("must be >= 0, got %d", c.DuplicateLimit)}
	}
	if len(c.Available) == 0 {
		return &ConfigError{Field: "Available", Reason: "no cells"}
	}
	avail := grid.NewSet(c.Available...)
	if missing := grid.NewSet(c.DuplicateAllowed...).Missing(avail); len(missing) > 0 {
		return &ConfigError{Field: "DuplicateAllowed", Reason: "cells outside Available: " + joinCoords(missing)}
	}
	if c.RequireFullCoverage {
		if missing := grid.NewSet(c.Required...).Missing(avail); len(missing) > 0 {
			return &ConfigError{Field: "Required", Reason: "cells outside Available: " + joinCoords(missing)}
		}
	}

	return nil
}

func joinCoords(cs []grid.Coordinate) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.String()
	}

	return strings.Join(parts, " ")
}

// Option configures optional behavior of a Finder.
// Use with New(cfg, opts...).
type Option func(*Options)

// Options holds the optional capabilities of a search. None of them change
// which paths are accepted or their order; they only bound or observe the run.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// MaxSteps, if positive, bounds the number of search steps (one step per
	// frame push). Default 0 means unbounded.
	MaxSteps int

	// OnAccept, if non-nil, is invoked with a private copy of each accepted path.
	// Returning an error aborts the search with that error.
	OnAccept func(p *route.Path) error

	// Logger receives debug tracing. Defaults to a no-op logger.
	Logger *zap.Logger

	// Observer, if non-nil, is called once at the end of every search with
	// its diagnostics and outcome (nil on success).
	Observer func(Stats, error)
}

// DefaultOptions returns Options with a background context, no step limit,
// no hooks, and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxSteps: 0,
		OnAccept: nil,
		Logger:   zap.NewNop(),
		Observer: nil,
	}
}

// WithContext sets the Context for cancellation.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxSteps bounds the search to n steps; n <= 0 means unbounded.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		o.MaxSteps = n
	}
}

// WithOnAccept installs fn as the per-accepted-path hook.
func WithOnAccept(fn func(p *route.Path) error) Option {
	return func(o *Options) {
		o.OnAccept = fn
	}
}

// WithLogger sets the logger; nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithObserver installs fn to receive per-search diagnostics.
func WithObserver(fn func(Stats, error)) Option {
	return func(o *Options) {
		o.Observer = fn
	}
}

// Stats reports diagnostics of the most recent search.
type Stats struct {
	// Steps counts frames pushed, the start frame included.
	Steps int `json:"steps"`

	// Pruned counts neighbours skipped for lying outside Available.
	Pruned int `json:"pruned"`

	// Rejected counts neighbours skipped by the duplicate policy.
	Rejected int `json:"rejected"`

	// Completed counts paths that reached the goal, accepted or not.
	Completed int `json:"completed"`

	// Accepted counts paths kept in the results.
	Accepted int `json:"accepted"`

	// MaxDepth is the longest partial path seen, in coordinates.
	MaxDepth int `json:"max_depth"`

	// ShortCircuited is set when reachability proved no path can be accepted.
	ShortCircuited bool `json:"short_circuited"`

	// Elapsed is the wall time of the search.
	Elapsed time.Duration `json:"elapsed_ns"`
}
