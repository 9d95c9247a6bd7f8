package frontier

import (
	"cmp"

	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/emirpasic/gods/queues/priorityqueue"
)

// scored is a heap entry. seq breaks ties between equal scores in insertion
// order.
type scored struct {
	score float32
	seq   uint64
	path  maze.Path
}

func byScore(a, b interface{}) int {
	x, y := a.(scored), b.(scored)
	if c := cmp.Compare(x.score, y.score); c != 0 {
		return c
	}
	return cmp.Compare(x.seq, y.seq)
}

// informed is a min-priority queue of paths keyed by an evaluation function.
type informed struct {
	heap *priorityqueue.Queue
	eval func(maze.Path) float32
	seq  uint64
}

func newInformed(start maze.Path, eval func(maze.Path) float32) *informed {
	f := &informed{
		heap: priorityqueue.NewWith(byScore),
		eval: eval,
	}
	f.push(start)
	return f
}

func (f *informed) push(p maze.Path) {
	f.heap.Enqueue(scored{score: f.eval(p), seq: f.seq, path: p})
	f.seq++
}

func (f *informed) IsEmpty() bool {
	return f.heap.Empty()
}

func (f *informed) Len() int {
	return f.heap.Size()
}

func (f *informed) Pop() (maze.Path, bool) {
	v, ok := f.heap.Dequeue()
	if !ok {
		return maze.Path{}, false
	}
	return v.(scored).path, true
}

func (f *informed) PushBatch(paths []maze.Path) {
	for _, p := range paths {
		f.push(p)
	}
}

// GreedyFrontier expands the candidate whose tail is closest to the goal,
// h = EuclideanDist(tail, goal).
type GreedyFrontier struct {
	*informed
}

// NewGreedy seeds a greedy best-first frontier with the starting path.
func NewGreedy(start maze.Path, goal maze.Coordinates) Policy {
	return &GreedyFrontier{
		informed: newInformed(start, func(p maze.Path) float32 {
			return p.Last().EuclideanDist(goal)
		}),
	}
}

// AStarFrontier expands the candidate with the lowest g + h, g being the
// Euclidean length walked so far and h the Euclidean distance left. On a unit
// grid h never overestimates, so the first goal popped is optimal.
type AStarFrontier struct {
	*informed
}

// NewAStar seeds an A* frontier with the starting path.
func NewAStar(start maze.Path, goal maze.Coordinates) Policy {
	return &AStarFrontier{
		informed: newInformed(start, func(p maze.Path) float32 {
			return p.Cost() + p.Last().EuclideanDist(goal)
		}),
	}
}
