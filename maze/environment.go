package maze

import (
	"errors"
	"fmt"
)

var ErrInvalidAction = errors.New("invalid action")

// Stimulus is what the maze reports back to an agent after every update.
type Stimulus struct {
	CurrentPath    Path
	TargetPosition Coordinates
	Neighbors      []Direction // free cardinal neighbors of CurrentPath.Last()
}

// InitialStimulus reports the starting path, the goal and the free neighbors
// of the initial position.
func (m *Maze) InitialStimulus() Stimulus {
	return Stimulus{
		CurrentPath:    NewPath(m.initialPosition),
		TargetPosition: m.targetPosition,
		Neighbors:      m.Neighbors(m.initialPosition),
	}
}

// Update records action as the current path and reports the stimulus for its
// tail. The tail must be an in-bounds free cell. Whether action extends the
// previous path is the agent's business, not the maze's.
func (m *Maze) Update(action Path) (Stimulus, error) {
	if action.IsZero() {
		return Stimulus{}, fmt.Errorf("%w: empty path", ErrInvalidAction)
	}

	tail := action.Last()
	ground, ok := m.Get(tail)
	if !ok {
		return Stimulus{}, fmt.Errorf("%w: %s is outside the maze", ErrInvalidAction, tail)
	}
	if ground != GroundFree {
		return Stimulus{}, fmt.Errorf("%w: %s is %s", ErrInvalidAction, tail, ground)
	}

	m.currentPath = action

	return Stimulus{
		CurrentPath:    action,
		TargetPosition: m.targetPosition,
		Neighbors:      m.Neighbors(tail),
	}, nil
}
