package grid

import (
	"math"
	"math/bits"
)

// Rect returns every coordinate of the inclusive rectangle
// [xMin..xMax] × [yMin..yMax]. X varies in the outer loop and Y in the inner
// loop, both ascending, so Rect(0,0,1,1) is (0,0) (0,1) (1,0) (1,1).
// An inverted bound on either axis yields an empty slice.
// Bounds from untrusted input should be checked with RectArea first.
// Complexity: O(W×H) time and memory.
func Rect(xMin, yMin, xMax, yMax int) []Coordinate {
	n, ok := RectArea(xMin, yMin, xMax, yMax)
	if !ok {
		panic("grid: Rect area overflows int")
	}
	out := make([]Coordinate, 0, n)
	if n == 0 {
		return out
	}
	// x == xMax ends each loop so bounds at math.MaxInt cannot wrap
	for x := xMin; ; x++ {
		for y := yMin; ; y++ {
			out = append(out, Coordinate{X: x, Y: y})
			if y == yMax {
				break
			}
		}
		if x == xMax {
			break
		}
	}

	return out
}

// Union concatenates groups in order into a freshly allocated slice.
// Repeated coordinates are kept; Set construction collapses them.
func Union(groups ...[]Coordinate) []Coordinate {
	n := 0
	for _, g := range groups {
		n += len(g)
	}
	out := make([]Coordinate, 0, n)
	for _, g := range groups {
		out = append(out, g...)
	}

	return out
}

// RectArea returns the number of coordinates Rect would generate for the
// same bounds. ok is false when that count does not fit in an int.
func RectArea(xMin, yMin, xMax, yMax int) (n int, ok bool) {
	if xMax < xMin || yMax < yMin {
		return 0, true
	}
	w, wok := span(xMin, xMax)
	h, hok := span(yMin, yMax)
	if !wok || !hok {
		return 0, false
	}
	hi, lo := bits.Mul64(w, h)
	if hi != 0 || lo > math.MaxInt {
		return 0, false
	}

	return int(lo), true
}

// span returns hi-lo+1 for lo <= hi without overflowing.
func span(lo, hi int) (uint64, bool) {
	d := uint64(hi) - uint64(lo)
	if d == math.MaxUint64 {
		return 0, false
	}

	return d + 1, true
}
