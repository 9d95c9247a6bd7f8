package maze

// Ground is the content of a single maze cell.
type Ground uint8

const (
	GroundBlocked Ground = iota // wall
	GroundFree                  // traversable
	GroundPath                  // traversable and on the current solution, rendering only
)

// Glyph returns the character the terminal renderer draws for the cell.
func (g Ground) Glyph() string {
	switch g {
	case GroundBlocked:
		return "◼"
	case GroundPath:
		return "★"
	default:
		return " "
	}
}

// IsTraversable reports whether an agent may stand on the cell.
func (g Ground) IsTraversable() bool {
	return g == GroundFree || g == GroundPath
}

func (g Ground) String() string {
	switch g {
	case GroundBlocked:
		return "Blocked"
	case GroundFree:
		return "Free"
	case GroundPath:
		return "Path"
	}
	return "Unknown"
}

// groundFromTrial maps a Bernoulli outcome to a cell, true meaning wall.
func groundFromTrial(blocked bool) Ground {
	if blocked {
		return GroundBlocked
	}
	return GroundFree
}
