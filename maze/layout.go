package maze

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Layout characters understood by Parse.
const (
	layoutWall  = '#'
	layoutFree  = '.'
	layoutSpace = ' '
	layoutStart = 'S'
	layoutGoal  = 'G'
)

var ErrInvalidLayout = errors.New("invalid maze layout")

// Parse builds a maze from a square text layout. '#' is a wall, '.' or a
// space is free, 'S' marks the initial position and 'G' the target. Parsed
// mazes are used exactly as drawn: nothing is carved.
func Parse(rows []string) (*Maze, error) {
	size := len(rows)
	if size == 0 || size > maxSize {
		return nil, fmt.Errorf("%w: %d rows", ErrInvalidLayout, size)
	}

	var (
		start, goal       Coordinates
		hasStart, hasGoal bool
		grid              = make([][]Ground, size)
	)

	for y, row := range rows {
		cells := []rune(row)
		if len(cells) != size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidLayout, y, len(cells), size)
		}

		grid[y] = make([]Ground, size)
		for x, r := range cells {
			here := NewCoordinates(int64(x), int64(y))
			switch r {
			case layoutWall:
				grid[y][x] = GroundBlocked
			case layoutFree, layoutSpace:
				grid[y][x] = GroundFree
			case layoutStart:
				if hasStart {
					return nil, fmt.Errorf("%w: second start at %s", ErrInvalidLayout, here)
				}
				start, hasStart = here, true
				grid[y][x] = GroundFree
			case layoutGoal:
				if hasGoal {
					return nil, fmt.Errorf("%w: second goal at %s", ErrInvalidLayout, here)
				}
				goal, hasGoal = here, true
				grid[y][x] = GroundFree
			default:
				return nil, fmt.Errorf("%w: unexpected %q at %s", ErrInvalidLayout, r, here)
			}
		}
	}

	if !hasStart || !hasGoal {
		return nil, fmt.Errorf("%w: layout needs one %q and one %q", ErrInvalidLayout, layoutStart, layoutGoal)
	}

	m := allocate(size, start, goal)
	m.grid = grid
	return m, nil
}

// Load reads a layout from r and parses it.
func Load(r io.Reader) (*Maze, error) {
	rows, err := ReadLayout(r)
	if err != nil {
		return nil, err
	}
	return Parse(rows)
}

// ReadLayout reads the rows of a layout, one per line. Blank trailing lines
// are dropped.
func ReadLayout(r io.Reader) ([]string, error) {
	var rows []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		rows = append(rows, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading layout: %w", err)
	}

	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}
	return rows, nil
}

// Layout renders the maze in the format Parse reads. When start and goal
// share a cell it is written as 'S'.
func (m *Maze) Layout() []string {
	rows := make([]string, m.size)
	for y := range m.grid {
		var b strings.Builder
		for x, cell := range m.grid[y] {
			here := NewCoordinates(int64(x), int64(y))
			switch {
			case here == m.initialPosition:
				b.WriteRune(layoutStart)
			case here == m.targetPosition:
				b.WriteRune(layoutGoal)
			case cell == GroundBlocked:
				b.WriteRune(layoutWall)
			default:
				b.WriteRune(layoutFree)
			}
		}
		rows[y] = b.String()
	}
	return rows
}
