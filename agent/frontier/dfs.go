package frontier

import (
	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/emirpasic/gods/stacks/arraystack"
)

// DFSFrontier is a LIFO stack: the newest candidate is expanded first.
type DFSFrontier struct {
	stack *arraystack.Stack
}

// NewDFS seeds a stack with the starting path.
func NewDFS(start maze.Path, _ maze.Coordinates) Policy {
	f := &DFSFrontier{stack: arraystack.New()}
	f.stack.Push(start)
	return f
}

func (f *DFSFrontier) IsEmpty() bool {
	return f.stack.Empty()
}

func (f *DFSFrontier) Len() int {
	return f.stack.Size()
}

func (f *DFSFrontier) Pop() (maze.Path, bool) {
	v, ok := f.stack.Pop()
	if !ok {
		return maze.Path{}, false
	}
	return v.(maze.Path), true
}

// PushBatch pushes in the given order, so the last path of the batch is the
// next one popped.
func (f *DFSFrontier) PushBatch(paths []maze.Path) {
	for _, p := range paths {
		f.stack.Push(p)
	}
}
