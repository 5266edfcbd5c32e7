package scenario

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/finder"
	"github.com/katalvlaran/gridpath/grid"
)

var (
	// ErrUnknownFormat indicates Parse was given a Format it cannot decode.
	ErrUnknownFormat = errors.New("scenario: unknown format")

	// ErrNoName indicates a scenario without a name.
	ErrNoName = errors.New("scenario: name is required")

	// ErrTooManyCells indicates regions that expand past MaxCells coordinates.
	ErrTooManyCells = errors.New("scenario: too many cells")
)

// MaxCells bounds the coordinates a scenario's regions may expand to,
// counting repeats across regions.
const MaxCells = 1 << 20

// Format selects the decoder used by Parse.
type Format int

const (
	// YAML decodes with gopkg.in/yaml.v3.
	YAML Format = iota
	// JSON decodes with encoding/json.
	JSON
)

// FormatFromPath picks JSON for a ".json" extension and YAML otherwise.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return JSON
	}

	return YAML
}

// Rect is an inclusive rectangle of cells.
type Rect struct {
	XMin int `yaml:"x_min" json:"x_min"`
	YMin int `yaml:"y_min" json:"y_min"`
	XMax int `yaml:"x_max" json:"x_max"`
	YMax int `yaml:"y_max" json:"y_max"`
}

// Region is a rectangle, an explicit cell list, or both.
type Region struct {
	Rect  *Rect             `yaml:"rect,omitempty" json:"rect,omitempty"`
	Cells []grid.Coordinate `yaml:"cells,omitempty" json:"cells,omitempty"`
}

// RectRegion returns a Region covering the given rectangle.
func RectRegion(xMin, yMin, xMax, yMax int) Region {
	return Region{Rect: &Rect{XMin: xMin, YMin: yMin, XMax: xMax, YMax: yMax}}
}

// size returns the number of coordinates r expands to; ok is false past limit.
func (r Region) size(limit int) (int, bool) {
	n := len(r.Cells)
	if r.Rect != nil {
		area, ok := grid.RectArea(r.Rect.XMin, r.Rect.YMin, r.Rect.XMax, r.Rect.YMax)
		if !ok || area > limit {
			return 0, false
		}
		n += area
	}

	return n, n <= limit
}

// Coordinates returns the rectangle's cells (grid.Rect order) followed by
// the explicit cells.
func (r Region) Coordinates() []grid.Coordinate {
	var out []grid.Coordinate
	if r.Rect != nil {
		out = grid.Rect(r.Rect.XMin, r.Rect.YMin, r.Rect.XMax, r.Rect.YMax)
	}

	return grid.Union(out, r.Cells)
}

// Scenario is a complete, serialisable search description.
type Scenario struct {
	Name                string          `yaml:"name" json:"name"`
	Start               grid.Coordinate `yaml:"start" json:"start"`
	Goal                grid.Coordinate `yaml:"goal" json:"goal"`
	Available           []Region        `yaml:"available" json:"available"`
	DuplicateAllowed    []Region        `yaml:"duplicate_allowed,omitempty" json:"duplicate_allowed,omitempty"`
	DuplicateLimit      int             `yaml:"duplicate_limit" json:"duplicate_limit"`
	RequireFullCoverage bool            `yaml:"require_full_coverage" json:"require_full_coverage"`
	Required            []Region        `yaml:"required,omitempty" json:"required,omitempty"`

	// MaxSteps, if positive, bounds the search (see finder.WithMaxSteps).
	MaxSteps int `yaml:"max_steps,omitempty" json:"max_steps,omitempty"`
}

// Default returns the driver scenario: a 5×5 square plus a 3-wide row one
// below and one above it; the side rows may be revisited up to three extra
// times, every square cell must be covered, and the search runs from (2,0)
// to (2,4).
func Default() *Scenario {
	square := RectRegion(0, 0, 4, 4)
	lower := RectRegion(1, -1, 3, -1)
	upper := RectRegion(1, 5, 3, 5)

	return &Scenario{
		Name:                "driver",
		Start:               grid.C(2, 0),
		Goal:                grid.C(2, 4),
		Available:           []Region{square, lower, upper},
		DuplicateAllowed:    []Region{lower, upper},
		DuplicateLimit:      3,
		RequireFullCoverage: true,
		Required:            []Region{square},
	}
}

// Config flattens the regions into a finder.Config.
func (s *Scenario) Config() finder.Config {
	return finder.Config{
		Available:           flatten(s.Available),
		DuplicateAllowed:    flatten(s.DuplicateAllowed),
		DuplicateLimit:      s.DuplicateLimit,
		RequireFullCoverage: s.RequireFullCoverage,
		Required:            flatten(s.Required),
	}
}

func flatten(rs []Region) []grid.Coordinate {
	groups := make([][]grid.Coordinate, len(rs))
	for i, r := range rs {
		groups[i] = r.Coordinates()
	}

	return grid.Union(groups...)
}

// Validate checks the name, the expanded size of the regions, and the
// derived finder.Config. The size check runs first so oversized rectangles
// are rejected before they are expanded.
func (s *Scenario) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return ErrNoName
	}
	if err := s.checkSize(); err != nil {
		return fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	if err := s.Config().Validate(); err != nil {
		return fmt.Errorf("scenario %q: %w", s.Name, err)
	}

	return nil
}

func (s *Scenario) checkSize() error {
	total := 0
	for _, group := range [][]Region{s.Available, s.DuplicateAllowed, s.Required} {
		for _, r := range group {
			n, ok := r.size(MaxCells - total)
			if !ok {
				return fmt.Errorf("%w: regions exceed %d coordinates", ErrTooManyCells, MaxCells)
			}
			total += n
		}
	}

	return nil
}

// Parse decodes data in the given format. The result is not validated.
func Parse(data []byte, format Format) (*Scenario, error) {
	var s Scenario
	switch format {
	case YAML:
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("scenario: parse yaml: %w", err)
		}
	case JSON:
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("scenario: parse json: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, format)
	}

	return &s, nil
}

// Load reads and validates the scenario at path. A missing name defaults to
// the file's base name.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	s, err := Parse(data, FormatFromPath(path))
	if err != nil {
		return nil, err
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if err = s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}
