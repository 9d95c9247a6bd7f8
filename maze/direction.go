package maze

import "math/rand/v2"

// Direction is one of the eight compass points. Maze generation and neighbor
// enumeration only use the four cardinals.
type Direction uint8

const (
	North Direction = iota
	Northeast
	East
	Southeast
	South
	Southwest
	West
	Northwest
)

var (
	directionNames = [...]string{
		North:     "North",
		Northeast: "Northeast",
		East:      "East",
		Southeast: "Southeast",
		South:     "South",
		Southwest: "Southwest",
		West:      "West",
		Northwest: "Northwest",
	}

	directionDeltas = [...]Coordinates{
		North:     {X: 0, Y: -1},
		Northeast: {X: 1, Y: -1},
		East:      {X: 1, Y: 0},
		Southeast: {X: 1, Y: 1},
		South:     {X: 0, Y: 1},
		Southwest: {X: -1, Y: 1},
		West:      {X: -1, Y: 0},
		Northwest: {X: -1, Y: -1},
	}
)

// Directions returns all eight compass points, clockwise from North.
func Directions() [8]Direction {
	return [8]Direction{North, Northeast, East, Southeast, South, Southwest, West, Northwest}
}

// Cardinals returns the four cardinal directions.
func Cardinals() [4]Direction {
	return [4]Direction{North, East, South, West}
}

// RandomOrder returns the four cardinals in a uniformly random permutation
// drawn from rng.
func RandomOrder(rng *rand.Rand) [4]Direction {
	dirs := Cardinals()
	rng.Shuffle(len(dirs), func(i, j int) {
		dirs[i], dirs[j] = dirs[j], dirs[i]
	})
	return dirs
}

// Opposite returns the direction rotated by 180 degrees.
func (d Direction) Opposite() Direction {
	return (d + 4) % 8
}

// IsCardinal reports whether d is one of North, East, South or West.
func (d Direction) IsCardinal() bool {
	return d%2 == 0
}

func (d Direction) delta() Coordinates {
	if int(d) >= len(directionDeltas) {
		return Coordinates{}
	}
	return directionDeltas[d]
}

func (d Direction) String() string {
	if int(d) >= len(directionNames) {
		return "Unknown"
	}
	return directionNames[d]
}
