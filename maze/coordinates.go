package maze

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var ErrInvalidCoordinates = errors.New("invalid coordinates")

// Coordinates is a position on the maze lattice. X grows to the east and Y
// grows to the south.
type Coordinates struct {
	X int64 `json:"x"`
	Y int64 `json:"y"`
}

// NewCoordinates creates a coordinate pair.
func NewCoordinates(x, y int64) Coordinates {
	return Coordinates{X: x, Y: y}
}

// Next returns the coordinates displaced by one unit in the given direction.
func (c Coordinates) Next(d Direction) Coordinates {
	delta := d.delta()
	return Coordinates{X: c.X + delta.X, Y: c.Y + delta.Y}
}

// EuclideanDist returns the straight line distance between c and o.
func (c Coordinates) EuclideanDist(o Coordinates) float32 {
	dx := float64(c.X - o.X)
	dy := float64(c.Y - o.Y)
	return float32(math.Sqrt(dx*dx + dy*dy))
}

// Compare orders coordinates lexicographically, X first.
func (c Coordinates) Compare(o Coordinates) int {
	if r := cmp.Compare(c.X, o.X); r != 0 {
		return r
	}
	return cmp.Compare(c.Y, o.Y)
}

// Less reports whether c sorts before o.
func (c Coordinates) Less(o Coordinates) bool {
	return c.Compare(o) < 0
}

func (c Coordinates) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// ParseCoordinates reads an "x,y" pair. Surrounding parentheses and spaces are
// ignored, so the output of String parses back.
func ParseCoordinates(s string) (Coordinates, error) {
	trimmed := strings.Trim(strings.TrimSpace(s), "()")
	parts := strings.Split(trimmed, ",")
	if len(parts) != 2 {
		return Coordinates{}, fmt.Errorf("%w: %q", ErrInvalidCoordinates, s)
	}

	x, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("%w: %q", ErrInvalidCoordinates, s)
	}
	y, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("%w: %q", ErrInvalidCoordinates, s)
	}

	return Coordinates{X: x, Y: y}, nil
}
