package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/agent"
	"github.com/beka-birhanu/vinom-pathfinder/agent/frontier"
	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/beka-birhanu/vinom-pathfinder/simulator"
	"github.com/google/uuid"
)

const (
	defaultPolicy  = frontier.Greedy
	defaultMaxSize = 256
)

var (
	ErrInvalidRequest = errors.New("invalid solve request")
	ErrStepFailed     = errors.New("search step failed")
	ErrNilLogger      = errors.New("logger is nil")
)

type Options struct {
	DefaultPolicy string
	MaxSize       int // largest accepted maze side
	MaxSteps      int // applied when a request sets none; zero is unlimited
}

// Solver builds a maze, runs a path finder on it and reports the result.
type Solver struct {
	logger   i.Logger
	recorder i.SearchRecorder
	opts     *Options
}

var _ i.Solver = (*Solver)(nil)

// NewSolver creates a solver. recorder may be nil.
func NewSolver(logger i.Logger, recorder i.SearchRecorder, opts *Options) (*Solver, error) {
	if logger == nil {
		return nil, ErrNilLogger
	}

	if opts == nil {
		opts = &Options{}
	}

	if opts.DefaultPolicy == "" {
		opts.DefaultPolicy = string(defaultPolicy)
	}
	if _, err := frontier.ParseKind(opts.DefaultPolicy); err != nil {
		return nil, err
	}

	if opts.MaxSize <= 0 || opts.MaxSize > defaultMaxSize {
		opts.MaxSize = defaultMaxSize
	}

	if opts.MaxSteps < 0 {
		opts.MaxSteps = 0
	}

	return &Solver{
		logger:   logger,
		recorder: recorder,
		opts:     opts,
	}, nil
}

func (s *Solver) Policies() []string {
	kinds := frontier.Kinds()
	names := make([]string, len(kinds))
	for idx, k := range kinds {
		names[idx] = string(k)
	}
	return names
}

// Solve runs one search. Invalid requests fail with ErrInvalidRequest and a
// failing step with ErrStepFailed. An exhausted frontier or a reached step
// limit are not errors: the report tells them apart from success.
func (s *Solver) Solve(ctx context.Context, req dmn.SolveRequest, renderer i.Renderer[*maze.Maze]) (*dmn.SearchReport, error) {
	id := uuid.New()

	m, err := s.buildMaze(req)
	if err != nil {
		s.logger.Warning(fmt.Sprintf("Rejected request %s: %s", id, err))
		return nil, err
	}

	policyName := req.Policy
	if policyName == "" {
		policyName = s.opts.DefaultPolicy
	}
	kind, err := frontier.ParseKind(policyName)
	if err != nil {
		s.logger.Warning(fmt.Sprintf("Rejected request %s: %s", id, err))
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	factory, err := frontier.NewFactory(kind, frontier.WithSeed(req.Seed))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	maxSteps := req.MaxSteps
	if maxSteps <= 0 {
		maxSteps = s.opts.MaxSteps
	}

	finder := agent.New(m, factory)
	simOpts := []simulator.Option[*maze.Maze]{
		simulator.WithLogger[*maze.Maze](s.logger),
		simulator.WithMaxSteps[*maze.Maze](maxSteps),
	}
	if renderer != nil {
		simOpts = append(simOpts, simulator.WithRenderer(renderer))
	}
	sim := simulator.New[*maze.Maze](finder, m, simOpts...)

	s.logger.Info(fmt.Sprintf("Search %s started: policy=%s size=%d start=%s goal=%s seed=%d",
		id, kind, m.Size(), m.InitialPosition(), m.TargetPosition(), m.Seed()))

	began := time.Now()
	steps, simErr := sim.Simulate(ctx)
	elapsed := time.Since(began)

	report := &dmn.SearchReport{
		ID:          id,
		Policy:      string(kind),
		Found:       finder.Found(),
		Steps:       steps,
		Visited:     finder.VisitedCount(),
		FrontierLen: finder.FrontierLen(),
		Path:        finder.CurrentSolution().Coordinates(),
		Cost:        finder.CurrentSolution().Cost(),
		Duration:    elapsed,
		Seed:        m.Seed(),
		Size:        m.Size(),
		Start:       m.InitialPosition(),
		Goal:        m.TargetPosition(),
		Grid:        m.Layout(),
	}

	switch {
	case simErr == nil && report.Found:
		report.Outcome = dmn.OutcomeFound
	case simErr == nil:
		report.Outcome = dmn.OutcomeExhausted
	case errors.Is(simErr, simulator.ErrStepLimit):
		report.Outcome = dmn.OutcomeStepLimit
	case errors.Is(simErr, context.Canceled), errors.Is(simErr, context.DeadlineExceeded):
		s.logger.Warning(fmt.Sprintf("Search %s cancelled after %d steps", id, steps))
		s.record(report, dmn.OutcomeFailed)
		return nil, simErr
	default:
		s.logger.Error(fmt.Sprintf("Search %s failed after %d steps: %s", id, steps, simErr))
		s.record(report, dmn.OutcomeFailed)
		return nil, fmt.Errorf("%w: %w", ErrStepFailed, simErr)
	}

	s.record(report, report.Outcome)
	s.logger.Info(fmt.Sprintf("Search %s %s: steps=%d visited=%d path=%d cost=%.3f in %s",
		id, report.Outcome, report.Steps, report.Visited, len(report.Path), report.Cost, elapsed))

	return report, nil
}

func (s *Solver) buildMaze(req dmn.SolveRequest) (*maze.Maze, error) {
	if len(req.Layout) > 0 {
		if len(req.Layout) > s.opts.MaxSize {
			return nil, fmt.Errorf("%w: layout has %d rows, limit is %d", ErrInvalidRequest, len(req.Layout), s.opts.MaxSize)
		}
		m, err := maze.Parse(req.Layout)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
		}
		return m, nil
	}

	if req.Size > s.opts.MaxSize {
		return nil, fmt.Errorf("%w: size %d exceeds limit %d", ErrInvalidRequest, req.Size, s.opts.MaxSize)
	}
	m, err := maze.New(req.Size, req.Start, req.Goal, req.Density, maze.WithSeed(req.Seed))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	return m, nil
}

func (s *Solver) record(report *dmn.SearchReport, outcome string) {
	if s.recorder == nil {
		return
	}
	s.recorder.ObserveSearch(report.Policy, outcome, report.Steps, report.Visited, report.Duration)
}
