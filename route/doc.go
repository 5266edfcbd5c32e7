// Package route provides Path, an ordered, append-only sequence of grid
// coordinates with independent-copy semantics.
//
// What:
//
//   - New copies its arguments, so every Path owns its storage.
//   - Clone returns a Path whose later appends never affect the original
//     and vice versa.
//   - Contains and Count are linear scans; paths here are short.
//
// Complexity:
//
//   - Append:          amortised O(1).
//   - Clone, Cells:    O(n).
//   - Contains, Count: O(n).
//
// Errors:
//
//   - ErrEmptyPath: Last on a path with no elements. The search always seeds
//     its path with the start coordinate, so this signals a programming error.
package route
