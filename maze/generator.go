package maze

import (
	"encoding/binary"
	"math"
	"math/rand/v2"

	"github.com/emirpasic/gods/lists/doublylinkedlist"
	"github.com/emirpasic/gods/queues/linkedlistqueue"
)

// Generator carves mazes with the recursive-backtracking algorithm. It owns
// its random source for the whole carving lifetime.
type Generator struct {
	rng  *rand.Rand
	seed int64
}

// NewGenerator creates a generator backed by a ChaCha8 stream. A positive
// seed yields identical mazes across runs; any other value is replaced by a
// seed drawn from system entropy, which Seed then reports.
func NewGenerator(seed int64) *Generator {
	if seed <= 0 {
		seed = rand.Int64N(math.MaxInt64) + 1
	}

	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], uint64(seed))

	return &Generator{
		rng:  rand.New(rand.NewChaCha8(key)),
		seed: seed,
	}
}

// Seed returns the seed in use.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Fill sets every cell by an independent Bernoulli trial: a wall with
// probability density/100, free otherwise.
func (g *Generator) Fill(m *Maze, density int) {
	for y := range m.grid {
		for x := range m.grid[y] {
			m.grid[y][x] = groundFromTrial(g.rng.IntN(100) < density)
		}
	}
}

// Carve visits cells depth first from current. At every cell the four
// cardinals are tried in random order and each neighbor that is still a wall
// is opened and carved from recursively. Cells that are already free count
// as visited.
//
// It returns the deepest cell reached by the first branch carved, or current
// when nothing around it could be carved.
func (g *Generator) Carve(m *Maze, current Coordinates) Coordinates {
	deepest := current
	branched := false

	for _, d := range RandomOrder(g.rng) {
		next := current.Next(d)
		cell := m.Cell(next)
		if cell == nil || *cell != GroundBlocked {
			continue
		}

		*cell = GroundFree
		leaf := g.Carve(m, next)
		if !branched {
			deepest = leaf
			branched = true
		}
	}

	return deepest
}

// Connect opens the fewest walls needed to join the initial position to the
// target position and returns how many it opened. Walls cost one and free
// cells cost nothing, so a 0-1 breadth-first search from the start finds the
// cheapest corridor.
func Connect(m *Maze) int {
	start, goal := m.initialPosition, m.targetPosition
	if Reachable(m, start, goal) {
		return 0
	}

	dist := map[Coordinates]int{start: 0}
	parent := make(map[Coordinates]Coordinates)
	// Free cells go to the front of the deque and walls to the back.
	deque := doublylinkedlist.New(start)

	for !deque.Empty() {
		v, _ := deque.Get(0)
		deque.Remove(0)
		c := v.(Coordinates)

		for _, d := range Cardinals() {
			n := c.Next(d)
			ground, ok := m.Get(n)
			if !ok {
				continue
			}

			weight := 0
			if ground == GroundBlocked {
				weight = 1
			}
			candidate := dist[c] + weight
			if known, seen := dist[n]; seen && known <= candidate {
				continue
			}

			dist[n] = candidate
			parent[n] = c
			if weight == 0 {
				deque.Prepend(n)
			} else {
				deque.Append(n)
			}
		}
	}

	opened := 0
	for c := goal; c != start; c = parent[c] {
		if cell := m.Cell(c); *cell == GroundBlocked {
			*cell = GroundFree
			opened++
		}
	}

	return opened
}

// Reachable reports whether to can be reached from from by cardinal steps over
// traversable cells.
func Reachable(m *Maze, from, to Coordinates) bool {
	if ground, ok := m.Get(from); !ok || !ground.IsTraversable() {
		return false
	}

	seen := map[Coordinates]struct{}{from: {}}
	queue := linkedlistqueue.New()
	queue.Enqueue(from)
	for !queue.Empty() {
		v, _ := queue.Dequeue()
		c := v.(Coordinates)
		if c == to {
			return true
		}

		for _, d := range Cardinals() {
			n := c.Next(d)
			if _, ok := seen[n]; ok {
				continue
			}
			if ground, ok := m.Get(n); ok && ground.IsTraversable() {
				seen[n] = struct{}{}
				queue.Enqueue(n)
			}
		}
	}

	return false
}
