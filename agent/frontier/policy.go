// Package frontier holds the scheduling policies a path finder uses to pick
// the next candidate path. Policies are black boxes to the agent: ordering is
// the only thing that tells BFS, DFS, Random, Greedy and A* apart.
package frontier

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beka-birhanu/vinom-pathfinder/maze"
)

var ErrUnknownPolicy = errors.New("unknown frontier policy")

// Policy is a container of candidate paths.
type Policy interface {
	// IsEmpty reports whether no candidate is left.
	IsEmpty() bool

	// Pop removes and returns the next candidate. The boolean is false when
	// the frontier is empty.
	Pop() (maze.Path, bool)

	// PushBatch adds zero or more candidates.
	PushBatch(paths []maze.Path)

	// Len returns the number of candidates held.
	Len() int
}

// Factory builds a frontier seeded with the starting path.
type Factory func(start maze.Path, goal maze.Coordinates) Policy

// Kind names a frontier policy.
type Kind string

const (
	BFS    Kind = "bfs"
	DFS    Kind = "dfs"
	Random Kind = "random"
	Greedy Kind = "greedy"
	AStar  Kind = "astar"
)

// Kinds lists every supported policy.
func Kinds() []Kind {
	return []Kind{BFS, DFS, Random, Greedy, AStar}
}

// ParseKind resolves a policy name, case insensitively. "a*" is accepted for A*.
func ParseKind(name string) (Kind, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "a*" {
		return AStar, nil
	}
	for _, k := range Kinds() {
		if string(k) == normalized {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}

type factoryOptions struct {
	seed int64
}

// FactoryOption tunes NewFactory.
type FactoryOption func(*factoryOptions)

// WithSeed fixes the permutation source of the Random policy. Seeds that are
// not positive draw from system entropy.
func WithSeed(seed int64) FactoryOption {
	return func(o *factoryOptions) {
		o.seed = seed
	}
}

// NewFactory returns the constructor for the given policy kind.
func NewFactory(kind Kind, opts ...FactoryOption) (Factory, error) {
	o := &factoryOptions{}
	for _, opt := range opts {
		opt(o)
	}

	switch kind {
	case BFS:
		return NewBFS, nil
	case DFS:
		return NewDFS, nil
	case Random:
		seed := o.seed
		return func(start maze.Path, goal maze.Coordinates) Policy {
			return NewRandom(start, goal, seed)
		}, nil
	case Greedy:
		return NewGreedy, nil
	case AStar:
		return NewAStar, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, kind)
}
