package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/agent/frontier"
	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memLogger struct {
	mu   sync.Mutex
	msgs []string
}

func (l *memLogger) add(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.msgs = append(l.msgs, msg)
}

func (l *memLogger) Debug(msg string) { l.add(msg) }
func (l *memLogger) Info(msg string) { l.add(msg) }
func (l *memLogger) Warning(msg string) { l.add(msg) }
func (l *memLogger) Error(msg string) { l.add(msg) }

type observation struct {
	policy, outcome string
	steps, visited  int
}

type memRecorder struct {
	seen []observation
}

func (r *memRecorder) ObserveSearch(policy, outcome string, steps, visited int, _ time.Duration) {
	r.seen = append(r.seen, observation{policy: policy, outcome: outcome, steps: steps, visited: visited})
}

type countingRenderer struct {
	setups, frames, teardowns int
}

func (c *countingRenderer) Setup() error { c.setups++; return nil }
func (c *countingRenderer) Render(*maze.Maze) error { c.frames++; return nil }
func (c *countingRenderer) Teardown() error { c.teardowns++; return nil }

func newSolver(t *testing.T, opts *Options) (*Solver, *memRecorder) {
	t.Helper()
	rec := &memRecorder{}
	s, err := NewSolver(&memLogger{}, rec, opts)
	require.NoError(t, err)
	return s, rec
}

func TestNewSolver(t *testing.T) {
	_, err := NewSolver(nil, nil, nil)
	assert.ErrorIs(t, err, ErrNilLogger)

	_, err = NewSolver(&memLogger{}, nil, &Options{DefaultPolicy: "dijkstra"})
	assert.ErrorIs(t, err, frontier.ErrUnknownPolicy)

	s, err := NewSolver(&memLogger{}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"bfs", "dfs", "random", "greedy", "astar"}, s.Policies())
}

func TestSolve(t *testing.T) {
	ctx := context.Background()

	t.Run("generated maze is solved by every policy", func(t *testing.T) {
		s, rec := newSolver(t, nil)
		for _, policy := range s.Policies() {
			report, err := s.Solve(ctx, dmn.SolveRequest{
				Size:    12,
				Start:   maze.NewCoordinates(0, 0),
				Goal:    maze.NewCoordinates(11, 11),
				Density: 30,
				Seed:    21,
				Policy:  policy,
			}, nil)
			require.NoError(t, err, policy)

			assert.Equal(t, dmn.OutcomeFound, report.Outcome)
			assert.True(t, report.Found)
			assert.Equal(t, policy, report.Policy)
			assert.Equal(t, maze.NewCoordinates(0, 0), report.Path[0])
			assert.Equal(t, maze.NewCoordinates(11, 11), report.Path[len(report.Path)-1])
			assert.Equal(t, int64(21), report.Seed)
			assert.Len(t, report.Grid, 12)
			assert.NotEmpty(t, report.ID)
		}
		assert.Len(t, rec.seen, 5)
	})

	t.Run("default policy applies", func(t *testing.T) {
		s, _ := newSolver(t, &Options{DefaultPolicy: "bfs"})
		report, err := s.Solve(ctx, dmn.SolveRequest{
			Size: 5,
			Goal: maze.NewCoordinates(4, 4),
			Seed: 1,
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, "bfs", report.Policy)
		assert.Len(t, report.Path, 9)
	})

	t.Run("unreachable layout is a normal report", func(t *testing.T) {
		s, rec := newSolver(t, nil)
		report, err := s.Solve(ctx, dmn.SolveRequest{
			Policy: "astar",
			Layout: []string{"S##", "###", "##G"},
		}, nil)
		require.NoError(t, err)

		assert.False(t, report.Found)
		assert.Equal(t, dmn.OutcomeExhausted, report.Outcome)
		assert.Equal(t, 1, report.Steps)
		require.Len(t, rec.seen, 1)
		assert.Equal(t, dmn.OutcomeExhausted, rec.seen[0].outcome)
	})

	t.Run("step limit is reported", func(t *testing.T) {
		s, rec := newSolver(t, &Options{MaxSteps: 3})
		r := &countingRenderer{}
		report, err := s.Solve(ctx, dmn.SolveRequest{
			Size:   20,
			Goal:   maze.NewCoordinates(19, 19),
			Seed:   2,
			Policy: "bfs",
		}, r)
		require.NoError(t, err)
		assert.Equal(t, dmn.OutcomeStepLimit, report.Outcome)
		assert.Equal(t, 3, report.Steps)
		assert.False(t, report.Found)
		assert.Equal(t, 5, r.frames, "initial, one per step and the final frame")

		require.Len(t, rec.seen, 1)
		assert.Equal(t, "step_limit", rec.seen[0].outcome)
	})

	t.Run("renderer sees every frame", func(t *testing.T) {
		s, _ := newSolver(t, nil)
		r := &countingRenderer{}
		report, err := s.Solve(ctx, dmn.SolveRequest{
			Size:   6,
			Goal:   maze.NewCoordinates(5, 5),
			Seed:   4,
			Policy: "greedy",
		}, r)
		require.NoError(t, err)

		assert.Equal(t, 1, r.setups)
		assert.Equal(t, 1, r.teardowns)
		assert.Equal(t, report.Steps+2, r.frames)
	})

	t.Run("invalid requests", func(t *testing.T) {
		s, rec := newSolver(t, &Options{MaxSize: 10})
		tests := []struct {
			name string
			req  dmn.SolveRequest
		}{
			{name: "density", req: dmn.SolveRequest{Size: 5, Density: 101}},
			{name: "goal outside", req: dmn.SolveRequest{Size: 5, Goal: maze.NewCoordinates(5, 5)}},
			{name: "too large", req: dmn.SolveRequest{Size: 11, Goal: maze.NewCoordinates(10, 10)}},
			{name: "policy", req: dmn.SolveRequest{Size: 5, Goal: maze.NewCoordinates(4, 4), Policy: "dijkstra"}},
			{name: "layout", req: dmn.SolveRequest{Layout: []string{"S.", ".."}}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				report, err := s.Solve(ctx, tt.req, nil)
				assert.ErrorIs(t, err, ErrInvalidRequest)
				assert.Nil(t, report)
			})
		}
		assert.Empty(t, rec.seen, "rejected requests are not recorded")
	})

	t.Run("cancelled context", func(t *testing.T) {
		s, rec := newSolver(t, nil)
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := s.Solve(cctx, dmn.SolveRequest{Size: 5, Goal: maze.NewCoordinates(4, 4), Seed: 1}, nil)
		assert.ErrorIs(t, err, context.Canceled)
		require.Len(t, rec.seen, 1)
		assert.Equal(t, dmn.OutcomeFailed, rec.seen[0].outcome)
	})
}
