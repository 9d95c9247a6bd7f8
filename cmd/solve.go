package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/config"
	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/beka-birhanu/vinom-pathfinder/render"
	"github.com/beka-birhanu/vinom-pathfinder/service"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

type solveFlags struct {
	start    string
	goal     string
	layout   string
	delay    time.Duration
	noRender bool
	animate  bool
	json     bool
}

func newSolveCommand(a *app) *cobra.Command {
	f := &solveFlags{}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Generate (or load) a maze and search it.",
		Long: `Generate a maze, or load one with --layout, and run a path finding agent on it.

The command exits with status 0 whether or not a path exists; it fails only
when the maze cannot be built or a search step fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSolve(cmd, f)
		},
	}

	flags := cmd.Flags()
	flags.Int("size", 20, "side length of the square maze")
	flags.Int("density", 5, "wall density in percent before carving")
	flags.Int64("seed", 0, "generator seed, 0 picks a random one")
	flags.String("policy", "greedy", "frontier policy: bfs, dfs, random, greedy or astar")
	flags.Int("max-steps", 0, "abort after this many steps, 0 means no limit")
	flags.StringVar(&f.start, "start", "0,0", "initial position as x,y")
	flags.StringVar(&f.goal, "goal", "", "target position as x,y (default bottom right corner)")
	flags.StringVar(&f.layout, "layout", "", "read the maze from a text layout file instead of generating it")
	flags.DurationVar(&f.delay, "delay", render.DefaultFrameDelay, "pause between animation frames")
	flags.BoolVar(&f.noRender, "no-render", false, "do not draw the maze")
	flags.BoolVar(&f.animate, "animate", false, "animate even when stdout is not a terminal")
	flags.BoolVar(&f.json, "json", false, "print the report as JSON")

	bindFlag(a.v, "solve.size", flags.Lookup("size"))
	bindFlag(a.v, "solve.density", flags.Lookup("density"))
	bindFlag(a.v, "solve.seed", flags.Lookup("seed"))
	bindFlag(a.v, "solve.policy", flags.Lookup("policy"))
	bindFlag(a.v, "solve.max_steps", flags.Lookup("max-steps"))

	return cmd
}

func (a *app) runSolve(cmd *cobra.Command, f *solveFlags) error {
	req, err := buildSolveRequest(a.cfg.Solve, f)
	if err != nil {
		return err
	}

	solverLogger, err := a.newLogger("SOLVER", config.ColorCyan, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("creating solver logger: %w", err)
	}
	defer func() {
		_ = solverLogger.Sync()
	}()

	solver, err := service.NewSolver(solverLogger, nil, &service.Options{
		DefaultPolicy: a.cfg.Solve.Policy,
		MaxSteps:      a.cfg.Solve.MaxSteps,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var renderer i.Renderer[*maze.Maze]
	if !f.noRender && !f.json {
		opts := []render.Option{render.WithFrameDelay(f.delay)}
		if f.animate {
			opts = append(opts, render.WithAnimation(true))
		}
		renderer = render.NewTerminal(out, opts...)
	}

	report, err := solver.Solve(cmd.Context(), req, renderer)
	if err != nil {
		return err
	}

	if f.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	printSummary(out, report)
	return nil
}

func buildSolveRequest(defaults config.SolveConfig, f *solveFlags) (dmn.SolveRequest, error) {
	req := dmn.SolveRequest{
		Size:     defaults.Size,
		Density:  defaults.Density,
		Seed:     defaults.Seed,
		Policy:   defaults.Policy,
		MaxSteps: defaults.MaxSteps,
	}

	if f.layout != "" {
		rows, err := readLayout(f.layout)
		if err != nil {
			return dmn.SolveRequest{}, err
		}
		if len(rows) == 0 {
			return dmn.SolveRequest{}, fmt.Errorf("%w: %s is empty", maze.ErrInvalidLayout, f.layout)
		}
		req.Layout = rows
		return req, nil
	}

	start, err := maze.ParseCoordinates(f.start)
	if err != nil {
		return dmn.SolveRequest{}, fmt.Errorf("--start: %w", err)
	}
	req.Start = start

	req.Goal = maze.NewCoordinates(int64(req.Size-1), int64(req.Size-1))
	if f.goal != "" {
		goal, err := maze.ParseCoordinates(f.goal)
		if err != nil {
			return dmn.SolveRequest{}, fmt.Errorf("--goal: %w", err)
		}
		req.Goal = goal
	}

	return req, nil
}

// readLayout returns the rows of a layout file.
func readLayout(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening layout: %w", err)
	}
	defer f.Close()

	return maze.ReadLayout(f)
}

func printSummary(w io.Writer, r *dmn.SearchReport) {
	title := lipgloss.NewRenderer(w).NewStyle().Bold(true)
	var headline string
	switch r.Outcome {
	case dmn.OutcomeFound:
		headline = fmt.Sprintf("found a path of %d cells from %s to %s", len(r.Path), r.Start, r.Goal)
	case dmn.OutcomeStepLimit:
		headline = fmt.Sprintf("gave up after %d steps", r.Steps)
	default:
		headline = fmt.Sprintf("no path from %s to %s", r.Start, r.Goal)
	}

	fmt.Fprintln(w, title.Render(headline))
	fmt.Fprintf(w, "policy:   %s\n", r.Policy)
	fmt.Fprintf(w, "seed:     %d\n", r.Seed)
	fmt.Fprintf(w, "steps:    %d\n", r.Steps)
	fmt.Fprintf(w, "visited:  %d\n", r.Visited)
	if r.Outcome == dmn.OutcomeFound {
		fmt.Fprintf(w, "cost:     %.3f\n", r.Cost)
	}
	fmt.Fprintf(w, "duration: %s\n", r.Duration.Round(time.Microsecond))
}
