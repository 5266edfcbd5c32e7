package grid_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/gridpath/grid"
)

//----------------------------------------------------------------------------//
// Rect and Union Tests
//----------------------------------------------------------------------------//

// TestRect_Order verifies X-outer, Y-inner ascending generation order.
func TestRect_Order(t *testing.T) {
	got := grid.Rect(1, -1, 2, 0)
	want := []grid.Coordinate{
		grid.C(1, -1), grid.C(1, 0),
		grid.C(2, -1), grid.C(2, 0),
	}
	assert.Equal(t, want, got)
}

func TestRect_Shapes(t *testing.T) {
	cases := []struct {
		name                   string
		xMin, yMin, xMax, yMax int
		want                   int
	}{
		{"Single", 3, 3, 3, 3, 1},
		{"Square5", 0, 0, 4, 4, 25},
		{"Row", 1, 5, 3, 5, 3},
		{"InvertedX", 2, 0, 1, 0, 0},
		{"InvertedY", 0, 2, 0, 1, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := grid.Rect(tc.xMin, tc.yMin, tc.xMax, tc.yMax)
			assert.Len(t, got, tc.want)
			assert.NotNil(t, got)
			for _, c := range got {
				assert.GreaterOrEqual(t, c.X, tc.xMin)
				assert.LessOrEqual(t, c.X, tc.xMax)
				assert.GreaterOrEqual(t, c.Y, tc.yMin)
				assert.LessOrEqual(t, c.Y, tc.yMax)
			}
		})
	}
}

// TestRectArea covers agreement with Rect and the overflow cases.
func TestRectArea(t *testing.T) {
	cases := []struct {
		name                   string
		xMin, yMin, xMax, yMax int
		want                   int
		ok                     bool
	}{
		{"Square5", 0, 0, 4, 4, 25, true},
		{"Negative", -2, -1, 0, 0, 6, true},
		{"Inverted", 2, 0, 1, 0, 0, true},
		{"Huge", 0, 0, 1 << 32, 1 << 32, 0, false},
		{"FullAxis", math.MinInt, 0, math.MaxInt, 0, 0, false},
		{"HalfAxis", 0, 0, math.MaxInt, 0, 0, false},
		{"EdgeCell", math.MaxInt, math.MinInt, math.MaxInt, math.MinInt, 1, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n, ok := grid.RectArea(tc.xMin, tc.yMin, tc.xMax, tc.yMax)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, n)
		})
	}
}

// TestRect_Edges: bounds at the int limits neither wrap nor loop forever.
func TestRect_Edges(t *testing.T) {
	got := grid.Rect(math.MaxInt-1, math.MaxInt, math.MaxInt, math.MaxInt)
	assert.Equal(t, []grid.Coordinate{grid.C(math.MaxInt-1, math.MaxInt), grid.C(math.MaxInt, math.MaxInt)}, got)

	assert.Panics(t, func() { grid.Rect(0, 0, 1<<32, 1<<32) })
}

// TestUnion_FreshStorage ensures Union neither aliases its inputs nor drops repeats.
func TestUnion_FreshStorage(t *testing.T) {
	a := []grid.Coordinate{grid.C(0, 0)}
	b := []grid.Coordinate{grid.C(0, 0), grid.C(1, 0)}

	u := grid.Union(a, b)
	assert.Equal(t, []grid.Coordinate{grid.C(0, 0), grid.C(0, 0), grid.C(1, 0)}, u)

	u[0] = grid.C(9, 9)
	assert.Equal(t, grid.C(0, 0), a[0], "input must not be aliased")
	assert.Empty(t, grid.Union())
}
