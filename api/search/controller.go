package searchapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/beka-birhanu/vinom-pathfinder/service"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/gin-gonic/gin"
)

// DefaultMaxSteps caps a request when Defaults.MaxSteps is unset.
const DefaultMaxSteps = 200_000

var ErrNilSolver = errors.New("solver is nil")

// Defaults fill the fields a request leaves out.
type Defaults struct {
	Size     int
	Density  int
	Policy   string
	MaxSteps int           // upper bound on a request's max_steps
	Timeout  time.Duration // per request; zero means no limit
}

// SearchController serves maze searches.
type SearchController struct {
	solver   i.Solver
	defaults Defaults
}

// NewSearchController initializes a SearchController.
func NewSearchController(solver i.Solver, defaults Defaults) (*SearchController, error) {
	if solver == nil {
		return nil, ErrNilSolver
	}
	if defaults.Size <= 0 {
		defaults.Size = 20
	}
	if defaults.MaxSteps <= 0 {
		defaults.MaxSteps = DefaultMaxSteps
	}
	return &SearchController{
		solver:   solver,
		defaults: defaults,
	}, nil
}

// RegisterPublic registers public routes.
func (sc *SearchController) RegisterPublic(route *gin.RouterGroup) {
	route.POST("/solve", sc.solve)
	route.GET("/policies", sc.policies)
}

// solve runs a single search and answers with its report.
func (sc *SearchController) solve(ctx *gin.Context) {
	var request SolveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reqCtx := ctx.Request.Context()
	if sc.defaults.Timeout > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(reqCtx, sc.defaults.Timeout)
		defer cancel()
	}

	report, err := sc.solver.Solve(reqCtx, sc.toDomain(request), nil)
	switch {
	case errors.Is(err, service.ErrInvalidRequest):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case errors.Is(err, context.DeadlineExceeded):
		ctx.JSON(http.StatusGatewayTimeout, gin.H{"error": "search timed out"})
		return
	case err != nil:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}

	ctx.JSON(http.StatusOK, newSolveResponse(report))
}

// policies lists the available frontier policies.
func (sc *SearchController) policies(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, PoliciesResponse{
		Policies: sc.solver.Policies(),
		Default:  sc.defaults.Policy,
	})
}

func (sc *SearchController) toDomain(r SolveRequest) dmn.SolveRequest {
	size := r.Size
	if size == 0 {
		size = sc.defaults.Size
	}

	density := sc.defaults.Density
	if r.Density != nil {
		density = *r.Density
	}

	start := maze.NewCoordinates(0, 0)
	if r.Start != nil {
		start = r.Start.toDomain()
	}

	goal := maze.NewCoordinates(int64(size-1), int64(size-1))
	if r.Goal != nil {
		goal = r.Goal.toDomain()
	}

	policy := r.Policy
	if policy == "" {
		policy = sc.defaults.Policy
	}

	maxSteps := r.MaxSteps
	if maxSteps <= 0 || maxSteps > sc.defaults.MaxSteps {
		maxSteps = sc.defaults.MaxSteps
	}

	return dmn.SolveRequest{
		Size:     size,
		Start:    start,
		Goal:     goal,
		Density:  density,
		Seed:     r.Seed,
		Policy:   policy,
		MaxSteps: maxSteps,
		Layout:   r.Layout,
	}
}
