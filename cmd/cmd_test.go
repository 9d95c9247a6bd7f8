package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/beka-birhanu/vinom-pathfinder/config"
	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root := NewRootCommand()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestPoliciesCommand(t *testing.T) {
	stdout, _, err := execute(t, "policies")
	require.NoError(t, err)

	assert.Contains(t, stdout, "  bfs\n")
	assert.Contains(t, stdout, "* greedy\n")
	assert.Contains(t, stdout, "  astar\n")
}

func TestSolveCommand(t *testing.T) {
	t.Run("summary", func(t *testing.T) {
		stdout, _, err := execute(t, "solve", "--size", "6", "--density", "0", "--policy", "bfs", "--no-render")
		require.NoError(t, err)
		assert.Contains(t, stdout, "found a path of 11 cells from (0,0) to (5,5)")
		assert.Contains(t, stdout, "policy:   bfs")
	})

	t.Run("json report", func(t *testing.T) {
		stdout, _, err := execute(t, "solve", "--size", "10", "--seed", "3", "--policy", "astar", "--json")
		require.NoError(t, err)

		var report dmn.SearchReport
		require.NoError(t, json.Unmarshal([]byte(stdout), &report))
		assert.True(t, report.Found)
		assert.Equal(t, int64(3), report.Seed)
		assert.Equal(t, maze.NewCoordinates(9, 9), report.Goal)
	})

	t.Run("final frame is printed when not a terminal", func(t *testing.T) {
		stdout, _, err := execute(t, "solve", "--size", "4", "--density", "0", "--goal", "3,0", "--policy", "greedy")
		require.NoError(t, err)
		assert.Contains(t, stdout, "★★★★")
		assert.Contains(t, stdout, "path length 4")
	})

	t.Run("unreachable layout still succeeds", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "maze.txt")
		require.NoError(t, os.WriteFile(path, []byte("S##\n###\n##G\n"), 0o600))

		stdout, _, err := execute(t, "solve", "--layout", path, "--no-render")
		require.NoError(t, err)
		assert.Contains(t, stdout, "no path from (0,0) to (2,2)")
	})

	t.Run("invalid arguments fail", func(t *testing.T) {
		_, _, err := execute(t, "solve", "--density", "150", "--no-render")
		assert.ErrorIs(t, err, config.ErrInvalidConfig)

		_, _, err = execute(t, "solve", "--start", "nowhere", "--no-render")
		assert.ErrorIs(t, err, maze.ErrInvalidCoordinates)

		_, _, err = execute(t, "solve", "--size", "5", "--goal", "7,7", "--no-render")
		assert.ErrorIs(t, err, maze.ErrOutOfBounds)

		_, _, err = execute(t, "solve", "--layout", filepath.Join(t.TempDir(), "missing.txt"))
		assert.Error(t, err)
	})

	t.Run("logs go to stderr", func(t *testing.T) {
		_, stderr, err := execute(t, "solve", "--size", "3", "--no-render", "--log-level", "debug")
		require.NoError(t, err)
		assert.Contains(t, stderr, "[SOLVER]")
	})
}

func TestLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vinom.log")
	_, _, err := execute(t, "solve", "--size", "3", "--no-render", "--log-file", path)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"logger":"SOLVER"`)
}

func TestPrintSummary(t *testing.T) {
	// Styling follows the writer, not the process stdout.
	previous := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.TrueColor)
	t.Cleanup(func() { lipgloss.SetColorProfile(previous) })

	var out bytes.Buffer
	printSummary(&out, &dmn.SearchReport{
		Outcome: dmn.OutcomeStepLimit,
		Policy:  "bfs",
		Steps:   50,
	})

	assert.NotContains(t, out.String(), "\x1b[")
	assert.Contains(t, out.String(), "gave up after 50 steps")
	assert.Contains(t, out.String(), "policy:   bfs")
}
