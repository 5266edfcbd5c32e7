// Package grid defines the Coordinate value, coordinate sets, and sentinel
// errors for the grid subpackage of github.com/katalvlaran/gridpath.
package grid

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Sentinel errors for grid operations.
var (
	// ErrBadCoordinate indicates a textual coordinate is not of the form "x,y".
	ErrBadCoordinate = errors.New("grid: coordinate must be of the form \"x,y\"")
)

// Coordinate is a point on the integer plane. Y increases towards North.
// It is a plain comparable value: two coordinates are equal iff X and Y match.
type Coordinate struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// C is shorthand for Coordinate{X: x, Y: y}.
func C(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

// North returns the coordinate one unit towards +Y.
func (c Coordinate) North() Coordinate { return Coordinate{X: c.X, Y: c.Y + 1} }

// South returns the coordinate one unit towards -Y.
func (c Coordinate) South() Coordinate { return Coordinate{X: c.X, Y: c.Y - 1} }

// East returns the coordinate one unit towards +X.
func (c Coordinate) East() Coordinate { return Coordinate{X: c.X + 1, Y: c.Y} }

// West returns the coordinate one unit towards -X.
func (c Coordinate) West() Coordinate { return Coordinate{X: c.X - 1, Y: c.Y} }

// Surrounding returns the four cardinal neighbours in the order
// North, South, East, West. Search order depends on it; do not reorder.
func (c Coordinate) Surrounding() [4]Coordinate {
	return [4]Coordinate{c.North(), c.South(), c.East(), c.West()}
}

// ManhattanDistance returns |dx| + |dy| between c and o.
func (c Coordinate) ManhattanDistance(o Coordinate) int {
	return abs(c.X-o.X) + abs(c.Y-o.Y)
}

// String formats the coordinate as "(x,y)".
func (c Coordinate) String() string {
	return "(" + strconv.Itoa(c.X) + "," + strconv.Itoa(c.Y) + ")"
}

// ParseCoordinate parses "x,y" (surrounding parentheses and spaces allowed).
func ParseCoordinate(s string) (Coordinate, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrBadCoordinate, s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrBadCoordinate, s)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrBadCoordinate, s)
	}

	return Coordinate{X: x, Y: y}, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// Set is an unordered collection of distinct coordinates.
// The zero value is not usable; create sets with NewSet.
type Set struct {
	m map[Coordinate]struct{}
}

// NewSet builds a Set holding cells; duplicates collapse.
func NewSet(cells ...Coordinate) Set {
	s := Set{m: make(map[Coordinate]struct{}, len(cells))}
	for _, c := range cells {
		s.m[c] = struct{}{}
	}

	return s
}

// Add inserts c.
func (s Set) Add(c Coordinate) {
	s.m[c] = struct{}{}
}

// Contains reports whether c is a member.
func (s Set) Contains(c Coordinate) bool {
	_, ok := s.m[c]

	return ok
}

// Len returns the number of distinct members.
func (s Set) Len() int {
	return len(s.m)
}

// IsSubsetOf reports whether every member of s is also in o.
func (s Set) IsSubsetOf(o Set) bool {
	for c := range s.m {
		if !o.Contains(c) {
			return false
		}
	}

	return true
}

// Missing returns the members of s absent from o, sorted.
func (s Set) Missing(o Set) []Coordinate {
	var out []Coordinate
	for c := range s.m {
		if !o.Contains(c) {
			out = append(out, c)
		}
	}
	sortCoordinates(out)

	return out
}

// Slice returns the members sorted by X, then Y.
func (s Set) Slice() []Coordinate {
	out := make([]Coordinate, 0, len(s.m))
	for c := range s.m {
		out = append(out, c)
	}
	sortCoordinates(out)

	return out
}

func sortCoordinates(cs []Coordinate) {
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].X != cs[j].X {
			return cs[i].X < cs[j].X
		}

		return cs[i].Y < cs[j].Y
	})
}
