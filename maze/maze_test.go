package maze

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("rejects invalid construction", func(t *testing.T) {
		tests := []struct {
			name    string
			size    int
			start   Coordinates
			goal    Coordinates
			density int
			wantErr error
		}{
			{name: "zero size", size: 0, wantErr: ErrInvalidSize},
			{name: "too large", size: maxSize + 1, wantErr: ErrInvalidSize},
			{name: "negative density", size: 5, density: -1, wantErr: ErrInvalidDensity},
			{name: "density above 100", size: 5, density: 101, wantErr: ErrInvalidDensity},
			{name: "start outside", size: 5, start: NewCoordinates(5, 0), goal: NewCoordinates(4, 4), wantErr: ErrOutOfBounds},
			{name: "goal outside", size: 5, goal: NewCoordinates(0, -1), wantErr: ErrOutOfBounds},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				m, err := New(tt.size, tt.start, tt.goal, tt.density, WithSeed(1))
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, m)
			})
		}
	})

	t.Run("density zero leaves every cell free", func(t *testing.T) {
		m, err := New(10, NewCoordinates(0, 0), NewCoordinates(9, 9), 0, WithSeed(3))
		require.NoError(t, err)
		assert.Equal(t, 100, m.FreeCells())
	})

	t.Run("endpoints are free and connected", func(t *testing.T) {
		for _, density := range []int{0, 5, 30, 60, 90, 100} {
			for seed := int64(1); seed <= 20; seed++ {
				start, goal := NewCoordinates(0, 0), NewCoordinates(14, 14)
				m, err := New(15, start, goal, density, WithSeed(seed))
				require.NoError(t, err)

				g, _ := m.Get(start)
				assert.Equal(t, GroundFree, g)
				g, _ = m.Get(goal)
				assert.Equal(t, GroundFree, g)
				assert.True(t, Reachable(m, start, goal), "density %d seed %d", density, seed)
			}
		}
	})

	t.Run("same seed yields identical mazes", func(t *testing.T) {
		a, err := New(20, NewCoordinates(0, 0), NewCoordinates(19, 19), 30, WithSeed(99))
		require.NoError(t, err)
		b, err := New(20, NewCoordinates(0, 0), NewCoordinates(19, 19), 30, WithSeed(99))
		require.NoError(t, err)

		assert.True(t, a.Equal(b))
		assert.Equal(t, a.String(), b.String())
		assert.Equal(t, int64(99), a.Seed())
	})

	t.Run("different seeds usually differ", func(t *testing.T) {
		a, err := New(20, NewCoordinates(0, 0), NewCoordinates(19, 19), 30, WithSeed(1))
		require.NoError(t, err)
		b, err := New(20, NewCoordinates(0, 0), NewCoordinates(19, 19), 30, WithSeed(2))
		require.NoError(t, err)
		assert.False(t, a.Equal(b))
	})

	t.Run("entropy seed is reported", func(t *testing.T) {
		m, err := New(4, NewCoordinates(0, 0), NewCoordinates(3, 3), 10)
		require.NoError(t, err)
		assert.Positive(t, m.Seed())
	})

	t.Run("start equals goal", func(t *testing.T) {
		m, err := New(5, NewCoordinates(2, 2), NewCoordinates(2, 2), 50, WithSeed(7))
		require.NoError(t, err)
		g, _ := m.Get(NewCoordinates(2, 2))
		assert.Equal(t, GroundFree, g)
	})

	t.Run("single cell maze", func(t *testing.T) {
		m, err := New(1, NewCoordinates(0, 0), NewCoordinates(0, 0), 100, WithSeed(1))
		require.NoError(t, err)
		assert.Equal(t, 1, m.FreeCells())
	})
}

func TestMazeQueries(t *testing.T) {
	m, err := Parse([]string{
		"S.#",
		".##",
		"..G",
	})
	require.NoError(t, err)

	t.Run("bounds", func(t *testing.T) {
		assert.True(t, m.InBounds(NewCoordinates(2, 2)))
		assert.False(t, m.InBounds(NewCoordinates(3, 0)))
		assert.False(t, m.InBounds(NewCoordinates(0, -1)))
		assert.Nil(t, m.Cell(NewCoordinates(-1, 0)))

		g, ok := m.Get(NewCoordinates(9, 9))
		assert.False(t, ok)
		assert.Equal(t, GroundBlocked, g)
	})

	t.Run("neighbors are free cardinals in east north south west order", func(t *testing.T) {
		assert.Equal(t, []Direction{East, South}, m.Neighbors(NewCoordinates(0, 0)))
		assert.Equal(t, []Direction{East, North}, m.Neighbors(NewCoordinates(0, 2)))
		assert.Equal(t, []Direction{West}, m.Neighbors(NewCoordinates(2, 2)))
	})

	t.Run("rows overlay the current path", func(t *testing.T) {
		_, err := m.Update(NewPath(NewCoordinates(0, 0)).Walk(South).Walk(South))
		require.NoError(t, err)

		rows := m.Rows()
		assert.Equal(t, GroundPath, rows[0][0])
		assert.Equal(t, GroundPath, rows[2][0])
		assert.Equal(t, GroundFree, rows[2][1])

		g, _ := m.Get(NewCoordinates(0, 1))
		assert.Equal(t, GroundFree, g, "the grid itself is not modified")

		lines := strings.Split(strings.TrimSuffix(m.String(), "\n"), "\n")
		assert.Equal(t, []string{"★ ◼", "★◼◼", "★  "}, lines)
	})
}

func TestGlyphs(t *testing.T) {
	assert.Equal(t, "◼", GroundBlocked.Glyph())
	assert.Equal(t, " ", GroundFree.Glyph())
	assert.Equal(t, "★", GroundPath.Glyph())
	assert.True(t, GroundPath.IsTraversable())
	assert.False(t, GroundBlocked.IsTraversable())
}
