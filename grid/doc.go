// Package grid models the integer plane the path search runs on:
// coordinates with cardinal neighbours, coordinate sets, rectangular regions
// and 4-connected reachability.
//
// What:
//
//   - Coordinate is an immutable (X, Y) value; North/South/East/West derive
//     new values and Surrounding yields them in the fixed order N, S, E, W.
//   - Set is an order-independent whitelist of coordinates.
//   - Rect generates the inclusive rectangle xMin..xMax × yMin..yMax,
//     X in the outer loop and Y in the inner loop, both ascending.
//   - Reachable floods a Set from a seed with 4-connectivity.
//
// Why:
//
//   - The N, S, E, W order is what makes the search deterministic: it decides
//     which of several equal-length paths is discovered first.
//   - Regions are plain data; a caller unions rectangles and cell lists to
//     describe arbitrary shapes.
//
// Complexity:
//
//   - Surrounding:  O(1).
//   - Rect:         O(W×H), Memory: O(W×H).
//   - Reachable:    O(|available|), Memory: O(|available|).
//
// Errors:
//
//   - ErrBadCoordinate: ParseCoordinate input is not "x,y".
package grid
