package maze

import (
	"slices"
	"strings"
)

// Path is an ordered, nonempty sequence of coordinates. Paths are values:
// Walk and every accessor leave the receiver untouched.
type Path struct {
	coords []Coordinates
}

// NewPath creates a path starting at first.
func NewPath(first Coordinates, rest ...Coordinates) Path {
	coords := make([]Coordinates, 0, len(rest)+1)
	coords = append(coords, first)
	coords = append(coords, rest...)
	return Path{coords: coords}
}

// Last returns the tail of the path.
func (p Path) Last() Coordinates {
	return p.coords[len(p.coords)-1]
}

// First returns the head of the path.
func (p Path) First() Coordinates {
	return p.coords[0]
}

// Len returns the number of coordinates in the path.
func (p Path) Len() int {
	return len(p.coords)
}

// IsZero reports whether the path was never initialised.
func (p Path) IsZero() bool {
	return len(p.coords) == 0
}

// Coordinates returns a copy of the path's coordinates.
func (p Path) Coordinates() []Coordinates {
	return slices.Clone(p.coords)
}

// Walk returns a new path extended by one step in direction d.
func (p Path) Walk(d Direction) Path {
	next := make([]Coordinates, len(p.coords), len(p.coords)+1)
	copy(next, p.coords)
	next = append(next, p.Last().Next(d))
	return Path{coords: next}
}

// Contains reports whether c appears anywhere on the path.
func (p Path) Contains(c Coordinates) bool {
	return slices.Contains(p.coords, c)
}

// IsCycle reports whether the tail already appears earlier in the path.
func (p Path) IsCycle() bool {
	if len(p.coords) < 2 {
		return false
	}
	return slices.Contains(p.coords[:len(p.coords)-1], p.Last())
}

// Equal reports whether both paths visit the same coordinates in order.
func (p Path) Equal(o Path) bool {
	return slices.Equal(p.coords, o.coords)
}

// Cost is the sum of the Euclidean lengths of every step.
func (p Path) Cost() float32 {
	var cost float32
	for i := 1; i < len(p.coords); i++ {
		cost += p.coords[i-1].EuclideanDist(p.coords[i])
	}
	return cost
}

// IsContiguous reports whether every consecutive pair differs by exactly one
// cardinal step.
func (p Path) IsContiguous() bool {
	for i := 1; i < len(p.coords); i++ {
		dx := p.coords[i].X - p.coords[i-1].X
		dy := p.coords[i].Y - p.coords[i-1].Y
		if dx*dx+dy*dy != 1 {
			return false
		}
	}
	return true
}

func (p Path) String() string {
	parts := make([]string, len(p.coords))
	for i, c := range p.coords {
		parts[i] = c.String()
	}
	return strings.Join(parts, "→")
}
