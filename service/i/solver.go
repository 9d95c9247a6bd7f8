package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/maze"
)

// Solver runs complete searches.
type Solver interface {
	// Solve builds the maze described by req, searches it with the requested
	// policy and reports the result. renderer may be nil.
	Solve(ctx context.Context, req dmn.SolveRequest, renderer Renderer[*maze.Maze]) (*dmn.SearchReport, error)

	// Policies lists the policy names Solve accepts.
	Policies() []string
}
