package route

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
)

// ErrEmptyPath is returned by Last when the path holds no coordinates.
var ErrEmptyPath = errors.New("route: path is empty")

// Path is an ordered sequence of coordinates. The zero value is an empty path
// ready for use, and a nil *Path reads as an empty path in every method but
// Append. A Path is not safe for concurrent mutation.
type Path struct {
	cells []grid.Coordinate
}

// New returns a Path holding a private copy of cells.
func New(cells ...grid.Coordinate) *Path {
	p := &Path{cells: make([]grid.Coordinate, len(cells))}
	copy(p.cells, cells)

	return p
}

// Append adds c to the end of p.
func (p *Path) Append(c grid.Coordinate) {
	p.cells = append(p.cells, c)
}

// Clone returns an independent copy of p. Capacity is trimmed to the length
// so an append on either side reallocates instead of sharing a backing array.
func (p *Path) Clone() *Path {
	if p == nil {
		return New()
	}

	return New(p.cells...)
}

// Last returns the most recently appended coordinate.
func (p *Path) Last() (grid.Coordinate, error) {
	if p.Len() == 0 {
		return grid.Coordinate{}, ErrEmptyPath
	}

	return p.cells[len(p.cells)-1], nil
}

// Len returns the number of coordinates, repeats included.
func (p *Path) Len() int {
	if p == nil {
		return 0
	}

	return len(p.cells)
}

// Contains reports whether some element equals c.
func (p *Path) Contains(c grid.Coordinate) bool {
	if p == nil {
		return false
	}
	for _, x := range p.cells {
		if x == c {
			return true
		}
	}

	return false
}

// Count returns how many elements equal c.
func (p *Path) Count(c grid.Coordinate) int {
	if p == nil {
		return 0
	}
	n := 0
	for _, x := range p.cells {
		if x == c {
			n++
		}
	}

	return n
}

// Cells returns a copy of the coordinates in order.
func (p *Path) Cells() []grid.Coordinate {
	out := make([]grid.Coordinate, p.Len())
	if p == nil {
		return out
	}
	copy(out, p.cells)

	return out
}

// Equal reports whether p and o hold the same coordinates in the same order.
// A nil path equals an empty one.
func (p *Path) Equal(o *Path) bool {
	if p.Len() != o.Len() {
		return false
	}
	if p.Len() == 0 {
		return true
	}
	for i := range p.cells {
		if p.cells[i] != o.cells[i] {
			return false
		}
	}

	return true
}

// String formats p as "[(x1,y1) (x2,y2) ...]"; an empty path is "[]".
func (p *Path) String() string {
	if p == nil {
		return "[]"
	}
	var b strings.Builder
	b.WriteByte('[')
	for i, c := range p.cells {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c.String())
	}
	b.WriteByte(']')

	return b.String()
}

// MarshalJSON encodes p as an array of {"x":..,"y":..} objects.
func (p *Path) MarshalJSON() ([]byte, error) {
	if p == nil || p.cells == nil {
		return []byte("[]"), nil
	}

	return json.Marshal(p.cells)
}
