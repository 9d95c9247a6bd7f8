package frontier

import (
	"testing"

	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	origin = maze.NewCoordinates(0, 0)
	goal   = maze.NewCoordinates(5, 5)
)

func start() maze.Path {
	return maze.NewPath(origin)
}

// drain pops every candidate and returns the tails in pop order.
func drain(t *testing.T, f Policy) []maze.Coordinates {
	t.Helper()
	var tails []maze.Coordinates
	for !f.IsEmpty() {
		p, ok := f.Pop()
		require.True(t, ok)
		tails = append(tails, p.Last())
	}
	_, ok := f.Pop()
	assert.False(t, ok, "popping an empty frontier reports false")
	return tails
}

func TestBFS(t *testing.T) {
	f := NewBFS(start(), goal)
	assert.Equal(t, 1, f.Len())

	p, ok := f.Pop()
	require.True(t, ok)
	assert.Equal(t, origin, p.Last())

	f.PushBatch([]maze.Path{p.Walk(maze.East), p.Walk(maze.South)})
	f.PushBatch([]maze.Path{p.Walk(maze.East).Walk(maze.East)})
	assert.Equal(t, 3, f.Len())

	assert.Equal(t, []maze.Coordinates{
		maze.NewCoordinates(1, 0),
		maze.NewCoordinates(0, 1),
		maze.NewCoordinates(2, 0),
	}, drain(t, f))
}

func TestDFS(t *testing.T) {
	f := NewDFS(start(), goal)
	p, ok := f.Pop()
	require.True(t, ok)

	f.PushBatch([]maze.Path{p.Walk(maze.East), p.Walk(maze.South)})
	f.PushBatch([]maze.Path{p.Walk(maze.East).Walk(maze.East)})

	assert.Equal(t, []maze.Coordinates{
		maze.NewCoordinates(2, 0),
		maze.NewCoordinates(0, 1),
		maze.NewCoordinates(1, 0),
	}, drain(t, f))
}

func TestRandom(t *testing.T) {
	batch := func(p maze.Path) []maze.Path {
		return []maze.Path{
			p.Walk(maze.East),
			p.Walk(maze.South),
			p.Walk(maze.East).Walk(maze.East),
			p.Walk(maze.South).Walk(maze.South),
		}
	}

	t.Run("same seed gives the same order", func(t *testing.T) {
		a := NewRandom(start(), goal, 9)
		b := NewRandom(start(), goal, 9)
		pa, _ := a.Pop()
		pb, _ := b.Pop()
		a.PushBatch(batch(pa))
		b.PushBatch(batch(pb))

		assert.Equal(t, drain(t, a), drain(t, b))
	})

	t.Run("every candidate comes out once", func(t *testing.T) {
		f := NewRandom(start(), goal, 0)
		p, _ := f.Pop()
		f.PushBatch(batch(p))
		assert.Equal(t, 4, f.Len())

		assert.ElementsMatch(t, []maze.Coordinates{
			maze.NewCoordinates(1, 0),
			maze.NewCoordinates(0, 1),
			maze.NewCoordinates(2, 0),
			maze.NewCoordinates(0, 2),
		}, drain(t, f))
	})

	t.Run("newest batch is popped before older ones", func(t *testing.T) {
		f := NewRandom(start(), goal, 3)
		p, _ := f.Pop()
		f.PushBatch([]maze.Path{p.Walk(maze.East)})
		f.PushBatch([]maze.Path{p.Walk(maze.South)})

		assert.Equal(t, []maze.Coordinates{
			maze.NewCoordinates(0, 1),
			maze.NewCoordinates(1, 0),
		}, drain(t, f))
	})
}

func TestGreedy(t *testing.T) {
	f := NewGreedy(start(), goal)
	p, ok := f.Pop()
	require.True(t, ok)

	far := maze.NewPath(origin).Walk(maze.North)
	near := p.Walk(maze.East).Walk(maze.South).Walk(maze.East)
	mid := p.Walk(maze.East)
	f.PushBatch([]maze.Path{far, near, mid})

	assert.Equal(t, []maze.Coordinates{near.Last(), mid.Last(), far.Last()}, drain(t, f))
}

func TestAStar(t *testing.T) {
	t.Run("orders by cost plus distance", func(t *testing.T) {
		f := NewAStar(start(), goal)
		p, _ := f.Pop()

		// g=1, h=dist((1,0),(5,5))≈6.40 → 7.40
		short := p.Walk(maze.East)
		// g=5, h=dist((0,1),(5,5))≈6.40 → 11.40
		detour := p.Walk(maze.South).Walk(maze.East).Walk(maze.West).Walk(maze.East).Walk(maze.West)
		// g=2, h=dist((1,1),(5,5))≈5.66 → 7.66
		diagonalish := p.Walk(maze.East).Walk(maze.South)
		f.PushBatch([]maze.Path{detour, diagonalish, short})

		got, _ := f.Pop()
		assert.True(t, got.Equal(short))
		got, _ = f.Pop()
		assert.True(t, got.Equal(diagonalish))
		got, _ = f.Pop()
		assert.True(t, got.Equal(detour))
		assert.True(t, f.IsEmpty())
	})

	t.Run("ties are broken in insertion order", func(t *testing.T) {
		f := NewAStar(maze.NewPath(maze.NewCoordinates(2, 2)), maze.NewCoordinates(2, 4))
		p, _ := f.Pop()
		east := p.Walk(maze.East)
		west := p.Walk(maze.West)
		f.PushBatch([]maze.Path{east, west})

		got, _ := f.Pop()
		assert.True(t, got.Equal(east))
		got, _ = f.Pop()
		assert.True(t, got.Equal(west))
	})
}

func TestRegistry(t *testing.T) {
	t.Run("parse kind", func(t *testing.T) {
		tests := []struct {
			input string
			want  Kind
		}{
			{"bfs", BFS},
			{"DFS", DFS},
			{" random ", Random},
			{"Greedy", Greedy},
			{"astar", AStar},
			{"A*", AStar},
		}
		for _, tt := range tests {
			t.Run(tt.input, func(t *testing.T) {
				got, err := ParseKind(tt.input)
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			})
		}

		_, err := ParseKind("dijkstra")
		assert.ErrorIs(t, err, ErrUnknownPolicy)
	})

	t.Run("every kind has a factory", func(t *testing.T) {
		for _, k := range Kinds() {
			factory, err := NewFactory(k, WithSeed(1))
			require.NoError(t, err, k)

			f := factory(start(), goal)
			assert.Equal(t, 1, f.Len())
			p, ok := f.Pop()
			require.True(t, ok)
			assert.Equal(t, origin, p.Last())
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := NewFactory(Kind("dijkstra"))
		assert.ErrorIs(t, err, ErrUnknownPolicy)
	})
}
