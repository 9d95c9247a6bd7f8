// Package searchapi provides structures and utilities for running searches over HTTP.
package searchapi

import (
	"time"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/maze"
)

// CoordinatesDTO is a grid cell in requests and responses.
type CoordinatesDTO struct {
	X int64 `json:"x" binding:"min=0"`
	Y int64 `json:"y" binding:"min=0"`
}

// SolveRequest represents a request to search a maze. Omitted fields take the
// server defaults; a missing goal means the bottom right corner.
type SolveRequest struct {
	Size     int             `json:"size" binding:"omitempty,min=1"`
	Start    *CoordinatesDTO `json:"start"`
	Goal     *CoordinatesDTO `json:"goal"`
	Density  *int            `json:"density" binding:"omitempty,min=0,max=100"`
	Seed     int64           `json:"seed"`
	Policy   string          `json:"policy"`
	MaxSteps int             `json:"max_steps" binding:"omitempty,min=0"`
	Layout   []string        `json:"layout"`
}

// SolveResponse represents the outcome of a search.
type SolveResponse struct {
	ID          string           `json:"id"`
	Policy      string           `json:"policy"`
	Outcome     string           `json:"outcome"`
	Found       bool             `json:"found"`
	Steps       int              `json:"steps"`
	Visited     int              `json:"visited"`
	FrontierLen int              `json:"frontier_len"`
	Path        []CoordinatesDTO `json:"path"`
	Cost        float32          `json:"cost"`
	DurationMS  float64          `json:"duration_ms"`
	Seed        int64            `json:"seed"`
	Size        int              `json:"size"`
	Start       CoordinatesDTO   `json:"start"`
	Goal        CoordinatesDTO   `json:"goal"`
	Grid        []string         `json:"grid"`
}

// PoliciesResponse lists the accepted policy names.
type PoliciesResponse struct {
	Policies []string `json:"policies"`
	Default  string   `json:"default"`
}

func (c CoordinatesDTO) toDomain() maze.Coordinates {
	return maze.NewCoordinates(c.X, c.Y)
}

func fromCoordinates(c maze.Coordinates) CoordinatesDTO {
	return CoordinatesDTO{X: c.X, Y: c.Y}
}

func newSolveResponse(r *dmn.SearchReport) SolveResponse {
	path := make([]CoordinatesDTO, len(r.Path))
	for idx, c := range r.Path {
		path[idx] = fromCoordinates(c)
	}

	return SolveResponse{
		ID:          r.ID.String(),
		Policy:      r.Policy,
		Outcome:     r.Outcome,
		Found:       r.Found,
		Steps:       r.Steps,
		Visited:     r.Visited,
		FrontierLen: r.FrontierLen,
		Path:        path,
		Cost:        r.Cost,
		DurationMS:  float64(r.Duration) / float64(time.Millisecond),
		Seed:        r.Seed,
		Size:        r.Size,
		Start:       fromCoordinates(r.Start),
		Goal:        fromCoordinates(r.Goal),
		Grid:        r.Grid,
	}
}
