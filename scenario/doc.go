// Package scenario describes a path search as data: the regions that make
// up the available, duplicate-allowed and required cells, the repeat limit,
// the coverage flag and the endpoints.
//
// Scenarios load from YAML (default) or JSON (".json" extension):
//
//	name: driver
//	start: {x: 2, y: 0}
//	goal:  {x: 2, y: 4}
//	available:
//	  - rect: {x_min: 0, y_min: 0, x_max: 4, y_max: 4}
//	  - cells: [{x: 5, y: 5}]
//	duplicate_allowed: []
//	duplicate_limit: 0
//	require_full_coverage: false
//
// Default returns the built-in driver scenario: a 5×5 square flanked by two
// 3-wide rows, one below and one above, that may be revisited.
//
// Errors:
//
//   - ErrUnknownFormat: Parse called with an unsupported Format.
//   - ErrNoName:        Validate on a scenario without a name.
//   - finder.ErrInvalidConfig (via Validate) for inconsistent cell sets.
package scenario
