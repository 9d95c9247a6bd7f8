// Package simulator runs an agent against an environment until the agent
// decides to stop, rendering a frame after every step.
package simulator

import (
	"context"
	"errors"
	"fmt"

	"github.com/beka-birhanu/vinom-pathfinder/service/i"
)

var ErrStepLimit = errors.New("step limit reached")

// Simulator owns the loop for a single run. It is synchronous: each Act call
// is one discrete step and nothing runs in the background.
type Simulator[E any] struct {
	agent    i.Agent[E]
	env      E
	renderer i.Renderer[E]
	logger   i.Logger
	maxSteps int
	onStep   func(step int)
}

// Option configures a Simulator.
type Option[E any] func(*Simulator[E])

// WithRenderer draws a frame before the first step, after every step and once
// more when the run ends.
func WithRenderer[E any](r i.Renderer[E]) Option[E] {
	return func(s *Simulator[E]) {
		s.renderer = r
	}
}

func WithLogger[E any](l i.Logger) Option[E] {
	return func(s *Simulator[E]) {
		s.logger = l
	}
}

// WithMaxSteps stops the run with ErrStepLimit after n steps. Zero means no
// limit.
func WithMaxSteps[E any](n int) Option[E] {
	return func(s *Simulator[E]) {
		s.maxSteps = n
	}
}

// WithStepHook calls fn with the step number after every successful step.
func WithStepHook[E any](fn func(step int)) Option[E] {
	return func(s *Simulator[E]) {
		s.onStep = fn
	}
}

// New creates a simulator for agent acting on env.
func New[E any](agent i.Agent[E], env E, opts ...Option[E]) *Simulator[E] {
	s := &Simulator[E]{
		agent: agent,
		env:   env,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Simulate runs the loop and returns the number of steps performed. Errors
// from Act terminate the run. The renderer is torn down on every exit path
// once its setup succeeded.
func (s *Simulator[E]) Simulate(ctx context.Context) (steps int, err error) {
	if s.renderer != nil {
		if err := s.renderer.Setup(); err != nil {
			return 0, fmt.Errorf("renderer setup: %w", err)
		}
		defer func() {
			if tdErr := s.renderer.Teardown(); tdErr != nil && err == nil {
				err = fmt.Errorf("renderer teardown: %w", tdErr)
			}
		}()
	}

	if err := s.render(); err != nil {
		return 0, err
	}

	for !s.agent.ShouldStop() {
		if err := ctx.Err(); err != nil {
			return steps, err
		}
		if s.maxSteps > 0 && steps >= s.maxSteps {
			s.log(fmt.Sprintf("stopping after %d steps", steps))
			// The best path so far still gets its final frame.
			if err := s.render(); err != nil {
				return steps, err
			}
			return steps, fmt.Errorf("%w: %d", ErrStepLimit, s.maxSteps)
		}

		if err := s.agent.Act(s.env); err != nil {
			s.logError(fmt.Sprintf("step %d failed: %s", steps+1, err))
			return steps, err
		}
		steps++

		if s.onStep != nil {
			s.onStep(steps)
		}
		if err := s.render(); err != nil {
			return steps, err
		}
	}

	// Final solution frame.
	if err := s.render(); err != nil {
		return steps, err
	}
	s.log(fmt.Sprintf("finished after %d steps", steps))

	return steps, nil
}

func (s *Simulator[E]) render() error {
	if s.renderer == nil {
		return nil
	}
	if err := s.renderer.Render(s.env); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

func (s *Simulator[E]) log(msg string) {
	if s.logger != nil {
		s.logger.Debug(msg)
	}
}

func (s *Simulator[E]) logError(msg string) {
	if s.logger != nil {
		s.logger.Error(msg)
	}
}
