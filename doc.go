// Package gridpath enumerates every simple-or-bounded path between two cells
// of a 4-connected integer grid, under per-cell revisit limits and an
// optional full-coverage requirement, and picks the shortest.
//
// 🚀 What is gridpath?
//
//	A small, deterministic search engine for grid routes:
//		• Grid primitives: coordinates, sets, rectangles, reachability
//		• Routes: immutable-by-copy ordered cell sequences
//		• Finder: exhaustive depth-first enumeration with duplicate and coverage rules
//		• Scenarios: YAML/JSON problem files plus the built-in driver scenario
//		• Metrics: Prometheus collectors fed by finder observers
//
// ✨ Why gridpath?
//
//   - Deterministic: neighbours are tried North, South, East, West, and the
//     first shortest path discovered wins ties
//   - Bounded: step budgets and context cancellation stop long searches
//   - Observable: zap logging and per-search statistics
//
// Packages:
//
//	grid/       Coordinate, Set, Rect/Union and BFS reachability
//	route/      Path, the ordered cell sequence a search produces
//	finder/     Config validation and the path enumeration itself
//	scenario/   named problem definitions, file loading, the default driver
//	metrics/    Prometheus collectors for finished searches
//
// The gridpath command (cmd/gridpath) runs a scenario from the terminal or
// serves searches over HTTP.
//
// Quick example:
//
//	f, _ := finder.New(finder.Config{Available: grid.Rect(0, 0, 2, 2)})
//	_ = f.GeneratePaths(grid.C(0, 0), grid.C(2, 2))
//	p, _ := f.ShortestPath()
//	fmt.Println(p) // [(0,0) (0,1) (0,2) (1,2) (2,2)]
package gridpath

// Version is the release of the gridpath module.
const Version = "0.1.0"
