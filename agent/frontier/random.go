package frontier

import (
	"encoding/binary"
	"math"
	"math/rand/v2"

	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/emirpasic/gods/lists/arraylist"
)

// RandomFrontier shuffles every batch before inserting each path at the front
// of the list. Pop takes the front, so the newest insertion is expanded next.
type RandomFrontier struct {
	list *arraylist.List
	rng  *rand.Rand
}

// NewRandom seeds the list with the starting path. A positive seed makes the
// permutations reproducible.
func NewRandom(start maze.Path, _ maze.Coordinates, seed int64) Policy {
	if seed <= 0 {
		seed = rand.Int64N(math.MaxInt64) + 1
	}
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], uint64(seed))

	return &RandomFrontier{
		list: arraylist.New(start),
		rng:  rand.New(rand.NewChaCha8(key)),
	}
}

func (f *RandomFrontier) IsEmpty() bool {
	return f.list.Empty()
}

func (f *RandomFrontier) Len() int {
	return f.list.Size()
}

func (f *RandomFrontier) Pop() (maze.Path, bool) {
	v, ok := f.list.Get(0)
	if !ok {
		return maze.Path{}, false
	}
	f.list.Remove(0)
	return v.(maze.Path), true
}

func (f *RandomFrontier) PushBatch(paths []maze.Path) {
	for _, idx := range f.rng.Perm(len(paths)) {
		f.list.Insert(0, paths[idx])
	}
}
