/*
Package maze provides the square grid mazes explored by the path finding agents.

A maze is an N×N matrix of Ground cells. Construction fills the matrix with
walls by independent Bernoulli trials, frees both endpoints, carves passages
with the recursive-backtracking algorithm starting at the target and finally
opens the fewest walls needed so the target is always reachable from the
initial position.

The maze also plays the environment role for the agents: it reports stimuli
(the current path, the goal and the free neighbors of the path's tail) and
records every path an agent commits to.
*/
package maze

import (
	"errors"
	"fmt"
	"strings"
)

const (
	maxSize = 256
)

var (
	ErrInvalidSize    = errors.New("invalid maze size")
	ErrInvalidDensity = errors.New("density must be between 0 and 100")
	ErrOutOfBounds    = errors.New("coordinates out of bounds")
)

// Maze is a square grid of cells with an initial position, a target position
// and the path an agent currently proposes.
type Maze struct {
	size            int
	grid            [][]Ground // indexed grid[y][x]
	initialPosition Coordinates
	targetPosition  Coordinates
	currentPath     Path
	seed            int64
}

type options struct {
	seed      int64
	generator *Generator
}

// Option configures maze construction.
type Option func(*options)

// WithSeed makes generation deterministic. Seeds that are not positive are
// replaced by one drawn from system entropy.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithGenerator uses g for both the random fill and the carving. It takes
// precedence over WithSeed.
func WithGenerator(g *Generator) Option {
	return func(o *options) {
		o.generator = g
	}
}

// New builds a size×size maze whose cells are walls with probability
// density/100, then carves it so that goal is reachable from start.
func New(size int, start, goal Coordinates, density int, opts ...Option) (*Maze, error) {
	if size < 1 || size > maxSize {
		return nil, fmt.Errorf("%w: %d (allowed 1..%d)", ErrInvalidSize, size, maxSize)
	}
	if density < 0 || density > 100 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDensity, density)
	}

	m := allocate(size, start, goal)
	if !m.InBounds(start) {
		return nil, fmt.Errorf("%w: start %s", ErrOutOfBounds, start)
	}
	if !m.InBounds(goal) {
		return nil, fmt.Errorf("%w: goal %s", ErrOutOfBounds, goal)
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	gen := o.generator
	if gen == nil {
		gen = NewGenerator(o.seed)
	}
	m.seed = gen.Seed()

	gen.Fill(m, density)

	// Both endpoints must be traversable regardless of the fill.
	*m.Cell(start) = GroundFree
	*m.Cell(goal) = GroundFree

	gen.Carve(m, goal)
	Connect(m)

	return m, nil
}

// allocate creates a maze with every cell free.
func allocate(size int, start, goal Coordinates) *Maze {
	grid := make([][]Ground, size)
	for y := range grid {
		grid[y] = make([]Ground, size)
		for x := range grid[y] {
			grid[y][x] = GroundFree
		}
	}

	return &Maze{
		size:            size,
		grid:            grid,
		initialPosition: start,
		targetPosition:  goal,
		currentPath:     NewPath(start),
	}
}

// Size returns N, the side length of the maze.
func (m *Maze) Size() int {
	return m.size
}

// Seed returns the seed the maze was generated from, zero for parsed mazes.
func (m *Maze) Seed() int64 {
	return m.seed
}

// InitialPosition returns the agent's starting cell.
func (m *Maze) InitialPosition() Coordinates {
	return m.initialPosition
}

// TargetPosition returns the goal cell.
func (m *Maze) TargetPosition() Coordinates {
	return m.targetPosition
}

// CurrentPath returns the last path recorded through Update.
func (m *Maze) CurrentPath() Path {
	return m.currentPath
}

// InBounds reports whether c lies on the lattice.
func (m *Maze) InBounds(c Coordinates) bool {
	n := int64(m.size)
	return c.X >= 0 && c.Y >= 0 && c.X < n && c.Y < n
}

// Get returns the cell at c. The boolean is false when c is out of bounds.
func (m *Maze) Get(c Coordinates) (Ground, bool) {
	if !m.InBounds(c) {
		return GroundBlocked, false
	}
	return m.grid[c.Y][c.X], true
}

// Cell returns a pointer to the cell at c for in-place edits, or nil when c
// is out of bounds.
func (m *Maze) Cell(c Coordinates) *Ground {
	if !m.InBounds(c) {
		return nil
	}
	return &m.grid[c.Y][c.X]
}

// Neighbors returns the cardinal directions leading from c to a free cell.
func (m *Maze) Neighbors(c Coordinates) []Direction {
	neighbors := make([]Direction, 0, 4)
	for _, d := range [...]Direction{East, North, South, West} {
		if ground, ok := m.Get(c.Next(d)); ok && ground == GroundFree {
			neighbors = append(neighbors, d)
		}
	}
	return neighbors
}

// Equal compares two mazes cell for cell, including their endpoints.
func (m *Maze) Equal(o *Maze) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.size != o.size || m.initialPosition != o.initialPosition || m.targetPosition != o.targetPosition {
		return false
	}
	for y := range m.grid {
		for x := range m.grid[y] {
			if m.grid[y][x] != o.grid[y][x] {
				return false
			}
		}
	}
	return true
}

// Rows returns a copy of the grid, row by row, with the current path marked
// as GroundPath.
func (m *Maze) Rows() [][]Ground {
	rows := make([][]Ground, m.size)
	for y := range m.grid {
		rows[y] = make([]Ground, m.size)
		copy(rows[y], m.grid[y])
	}
	for _, c := range m.currentPath.coords {
		if m.InBounds(c) {
			rows[c.Y][c.X] = GroundPath
		}
	}
	return rows
}

// FreeCells counts the traversable cells of the grid.
func (m *Maze) FreeCells() int {
	count := 0
	for y := range m.grid {
		for x := range m.grid[y] {
			if m.grid[y][x] == GroundFree {
				count++
			}
		}
	}
	return count
}

// String draws the maze with the current path overlaid.
func (m *Maze) String() string {
	var b strings.Builder
	for _, row := range m.Rows() {
		for _, cell := range row {
			b.WriteString(cell.Glyph())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
