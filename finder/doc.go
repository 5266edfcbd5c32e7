// Package finder enumerates every path between two coordinates on a
// 4-connected grid, under a whitelist of traversable cells, a bounded repeat
// allowance for selected cells, and an optional full-coverage requirement.
//
// What:
//
//   - Exhaustive depth-first enumeration: from the start coordinate, extend
//     the current path by each neighbour in the fixed order North, South,
//     East, West; a path that reaches the goal is complete and never extended.
//   - Pruning: neighbours outside Config.Available are skipped; a neighbour in
//     Config.DuplicateAllowed is admitted while it already occurs at most
//     Config.DuplicateLimit times (so a path holds it at most DuplicateLimit+1
//     times); any other neighbour is admitted only if absent from the path.
//   - Acceptance: a complete path is kept when RequireFullCoverage is false,
//     or when it contains every Config.Required coordinate.
//   - ShortestPath returns the first accepted path of minimal length, so ties
//     go to discovery order.
//
// Why:
//
//   - Route planning where some cells (corridors, side rows) may be walked
//     more than once but the main area must be swept exactly once.
//
// Implementation:
//
//   - The recursion is an explicit stack of frames, each remembering the next
//     neighbour index; depth is bounded by memory, not by the goroutine stack.
//   - One working buffer plus per-cell occurrence counts replace per-branch
//     cloning; a path is copied only when accepted. Discovery order is the
//     same as the recursive formulation.
//   - Searches whose goal (or, under coverage, any required cell) is
//     unreachable from the start return immediately with no results.
//
// Options:
//
//   - WithContext(ctx)     cancellation, checked every 1024 steps.
//   - WithMaxSteps(n)      abort with ErrStepBudgetExceeded after n steps.
//   - WithOnAccept(fn)     hook per accepted path; an error aborts the search.
//   - WithLogger(l)        *zap.Logger for debug tracing.
//   - WithObserver(fn)     receives Stats and the outcome once per search.
//
// Complexity:
//
//   - Time:   exponential in grid size and repeat allowance in the worst case;
//     O(1) work per step.
//   - Memory: O(L) for the stack (L = longest admissible path) plus the
//     accepted paths.
//
// Errors:
//
//   - ErrInvalidConfig        any *ConfigError (bad limit, subset violations,
//     start or goal outside Available).
//   - ErrStartNotAvailable    start not in Available (wrapped in *ConfigError).
//   - ErrGoalNotAvailable     goal not in Available (wrapped in *ConfigError).
//   - ErrStepBudgetExceeded   WithMaxSteps limit reached.
//   - context.Canceled / context.DeadlineExceeded from WithContext.
//   - any error returned by the OnAccept hook.
//
// A Finder is not safe for concurrent use; build one per goroutine.
package finder
