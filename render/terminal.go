// Package render draws mazes to a terminal.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

const DefaultFrameDelay = 100 * time.Millisecond

// Terminal renders one frame per call to Render. In animated mode every frame
// is drawn over the previous one; otherwise only the last frame is printed,
// when the renderer is torn down.
type Terminal struct {
	w          io.Writer
	out        *termenv.Output
	animate    bool
	frameDelay time.Duration
	sleep      func(time.Duration)

	wall  lipgloss.Style
	trail lipgloss.Style
	start lipgloss.Style
	goal  lipgloss.Style
	info  lipgloss.Style

	lastFrame string
	frames    int
}

var _ i.Renderer[*maze.Maze] = (*Terminal)(nil)

// Option configures a Terminal.
type Option func(*Terminal)

// WithAnimation forces animated mode on or off.
func WithAnimation(on bool) Option {
	return func(t *Terminal) {
		t.animate = on
	}
}

// WithFrameDelay sets the pause after each animated frame.
func WithFrameDelay(d time.Duration) Option {
	return func(t *Terminal) {
		t.frameDelay = d
	}
}

// WithColor toggles ANSI styling. Styling is on by default only for
// terminals.
func WithColor(on bool) Option {
	return func(t *Terminal) {
		if on {
			t.out = termenv.NewOutput(t.w, termenv.WithProfile(termenv.ANSI256))
		} else {
			t.out = termenv.NewOutput(t.w, termenv.WithProfile(termenv.Ascii))
		}
	}
}

// NewTerminal creates a renderer writing to w. Animation is enabled when w is
// a terminal.
func NewTerminal(w io.Writer, opts ...Option) *Terminal {
	t := &Terminal{
		w:          w,
		out:        termenv.NewOutput(w),
		animate:    IsTerminal(w),
		frameDelay: DefaultFrameDelay,
		sleep:      time.Sleep,
	}
	for _, opt := range opts {
		opt(t)
	}

	r := lipgloss.NewRenderer(t.out)
	r.SetColorProfile(t.out.Profile)
	t.wall = r.NewStyle().Foreground(lipgloss.Color("8"))
	t.trail = r.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	t.start = r.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	t.goal = r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	t.info = r.NewStyle().Faint(true)

	return t
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (t *Terminal) Setup() error {
	t.frames = 0
	t.lastFrame = ""
	if t.animate {
		t.out.HideCursor()
		t.out.SaveCursorPosition()
	}
	return nil
}

// Render draws env. The maze is only read.
func (t *Terminal) Render(env *maze.Maze) error {
	frame := t.Frame(env)
	t.lastFrame = frame
	t.frames++

	if !t.animate {
		return nil
	}

	t.out.RestoreCursorPosition()
	if _, err := io.WriteString(t.out, frame); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	if t.frameDelay > 0 {
		t.sleep(t.frameDelay)
	}
	return nil
}

func (t *Terminal) Teardown() error {
	if t.animate {
		t.out.ShowCursor()
		return nil
	}
	if t.lastFrame == "" {
		return nil
	}
	if _, err := io.WriteString(t.out, t.lastFrame); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// Frames returns how many frames were rendered since Setup.
func (t *Terminal) Frames() int {
	return t.frames
}

// Frame builds the text of a single frame: the grid followed by a status
// line.
func (t *Terminal) Frame(env *maze.Maze) string {
	var b strings.Builder

	start, goal := env.InitialPosition(), env.TargetPosition()
	for y, row := range env.Rows() {
		for x, cell := range row {
			c := maze.NewCoordinates(int64(x), int64(y))
			glyph := cell.Glyph()
			switch {
			case c == start:
				b.WriteString(t.start.Render(glyphOrMark(glyph, "S")))
			case c == goal:
				b.WriteString(t.goal.Render(glyphOrMark(glyph, "G")))
			case cell == maze.GroundBlocked:
				b.WriteString(t.wall.Render(glyph))
			case cell == maze.GroundPath:
				b.WriteString(t.trail.Render(glyph))
			default:
				b.WriteString(glyph)
			}
		}
		b.WriteByte('\n')
	}

	path := env.CurrentPath()
	status := fmt.Sprintf("goal %s", goal)
	if !path.IsZero() {
		status = fmt.Sprintf("path length %d, tail %s, goal %s", path.Len(), path.Last(), goal)
	}
	// Pad so a shorter status fully covers the previous one.
	b.WriteString(t.info.Render(fmt.Sprintf("%-60s", status)))
	b.WriteByte('\n')

	return b.String()
}

// glyphOrMark keeps the trail glyph on an endpoint once the path covers it.
func glyphOrMark(glyph, mark string) string {
	if glyph == maze.GroundPath.Glyph() {
		return glyph
	}
	return mark
}
