package domain

import (
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/google/uuid"
)

// Search outcomes.
const (
	OutcomeFound     = "found"
	OutcomeExhausted = "exhausted"
	OutcomeStepLimit = "step_limit"
	OutcomeFailed    = "failed"
)

// SolveRequest describes one search run. When Layout is set the maze is
// parsed from it and Size, Start, Goal, Density and Seed are ignored.
type SolveRequest struct {
	Size     int
	Start    maze.Coordinates
	Goal     maze.Coordinates
	Density  int
	Seed     int64
	Policy   string
	MaxSteps int
	Layout   []string
}

// SearchReport summarizes a finished search.
type SearchReport struct {
	ID          uuid.UUID          `json:"id"`
	Policy      string             `json:"policy"`
	Outcome     string             `json:"outcome"`
	Found       bool               `json:"found"`
	Steps       int                `json:"steps"`
	Visited     int                `json:"visited"`
	FrontierLen int                `json:"frontier_len"`
	Path        []maze.Coordinates `json:"path"`
	Cost        float32            `json:"cost"`
	Duration    time.Duration      `json:"duration_ns"`
	Seed        int64              `json:"seed"`
	Size        int                `json:"size"`
	Start       maze.Coordinates   `json:"start"`
	Goal        maze.Coordinates   `json:"goal"`
	Grid        []string           `json:"grid"`
}
