// Package agent implements the path finding agent that drives a search over
// a maze environment one step at a time.
package agent

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/vinom-pathfinder/agent/frontier"
	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
)

var ErrFrontierEmpty = errors.New("frontier is empty")

// Environment is anything that accepts a whole path as action and answers
// with a maze stimulus.
type Environment = i.Environment[maze.Path, maze.Stimulus]

// PathFinder searches for a path from the environment's initial position to
// its target. The frontier policy decides the order of expansion; pruning of
// visited tails and self-intersecting paths is done here so it is identical
// for every policy.
type PathFinder[E Environment] struct {
	currentSolution maze.Path
	goal            maze.Coordinates
	frontier        frontier.Policy
	visited         map[maze.Coordinates]struct{}
	steps           int
}

var _ i.Agent[*maze.Maze] = (*PathFinder[*maze.Maze])(nil)

// New reads the initial stimulus of env and seeds a frontier built by factory
// with the starting path.
func New[E Environment](env E, factory frontier.Factory) *PathFinder[E] {
	stimulus := env.InitialStimulus()
	return &PathFinder[E]{
		currentSolution: stimulus.CurrentPath,
		goal:            stimulus.TargetPosition,
		frontier:        factory(stimulus.CurrentPath, stimulus.TargetPosition),
		visited:         make(map[maze.Coordinates]struct{}),
	}
}

// Act pops the next candidate, commits it to the environment and pushes its
// unexplored one step extensions back on the frontier.
func (p *PathFinder[E]) Act(env E) error {
	candidate, ok := p.frontier.Pop()
	if !ok {
		return ErrFrontierEmpty
	}
	p.currentSolution = candidate

	stimulus, err := env.Update(candidate)
	if err != nil {
		return fmt.Errorf("step %d: %w", p.steps+1, err)
	}

	next := make([]maze.Path, 0, len(stimulus.Neighbors))
	for _, d := range stimulus.Neighbors {
		extended := candidate.Walk(d)
		if _, seen := p.visited[extended.Last()]; seen {
			continue
		}
		if extended.IsCycle() {
			continue
		}
		next = append(next, extended)
	}

	p.visited[candidate.Last()] = struct{}{}
	p.frontier.PushBatch(next)
	p.steps++

	return nil
}

// ShouldStop reports whether the goal was reached or there is nothing left to
// explore.
func (p *PathFinder[E]) ShouldStop() bool {
	return p.Found() || p.frontier.IsEmpty()
}

// CurrentSolution returns the path most recently popped from the frontier.
func (p *PathFinder[E]) CurrentSolution() maze.Path {
	return p.currentSolution
}

func (p *PathFinder[E]) Goal() maze.Coordinates {
	return p.goal
}

// Found reports whether the current solution ends at the goal.
func (p *PathFinder[E]) Found() bool {
	return p.currentSolution.Last() == p.goal
}

// Steps returns the number of successful Act calls.
func (p *PathFinder[E]) Steps() int {
	return p.steps
}

func (p *PathFinder[E]) VisitedCount() int {
	return len(p.visited)
}

func (p *PathFinder[E]) IsVisited(c maze.Coordinates) bool {
	_, ok := p.visited[c]
	return ok
}

func (p *PathFinder[E]) FrontierLen() int {
	return p.frontier.Len()
}
