package frontier

import (
	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/emirpasic/gods/queues/linkedlistqueue"
)

// BFSFrontier is a FIFO queue: the oldest candidate is expanded first, which
// makes the search complete and optimal in edge count.
type BFSFrontier struct {
	queue *linkedlistqueue.Queue
}

// NewBFS seeds a queue with the starting path.
func NewBFS(start maze.Path, _ maze.Coordinates) Policy {
	f := &BFSFrontier{queue: linkedlistqueue.New()}
	f.queue.Enqueue(start)
	return f
}

func (f *BFSFrontier) IsEmpty() bool {
	return f.queue.Empty()
}

func (f *BFSFrontier) Len() int {
	return f.queue.Size()
}

func (f *BFSFrontier) Pop() (maze.Path, bool) {
	v, ok := f.queue.Dequeue()
	if !ok {
		return maze.Path{}, false
	}
	return v.(maze.Path), true
}

func (f *BFSFrontier) PushBatch(paths []maze.Path) {
	for _, p := range paths {
		f.queue.Enqueue(p)
	}
}
