package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPath(t *testing.T) {
	origin := NewCoordinates(1, 1)

	t.Run("walk extends by one without touching the receiver", func(t *testing.T) {
		p := NewPath(origin)
		for _, d := range Cardinals() {
			walked := p.Walk(d)
			assert.Equal(t, p.Len()+1, walked.Len())
			assert.Equal(t, p.Last().Next(d), walked.Last())
			assert.Equal(t, 1, p.Len())
		}
	})

	t.Run("siblings do not share storage", func(t *testing.T) {
		base := NewPath(origin).Walk(East).Walk(East)
		a := base.Walk(South)
		b := base.Walk(North)
		assert.Equal(t, origin.Next(East).Next(East).Next(South), a.Last())
		assert.Equal(t, origin.Next(East).Next(East).Next(North), b.Last())
	})

	t.Run("cycle detection", func(t *testing.T) {
		p := NewPath(origin).Walk(East).Walk(South).Walk(West)
		assert.False(t, p.IsCycle())
		assert.True(t, p.Walk(North).IsCycle())
		assert.False(t, NewPath(origin).IsCycle())
	})

	t.Run("cost sums step lengths", func(t *testing.T) {
		p := NewPath(origin).Walk(East).Walk(East).Walk(South)
		assert.Equal(t, float32(3), p.Cost())
		assert.Equal(t, float32(0), NewPath(origin).Cost())
	})

	t.Run("contiguity", func(t *testing.T) {
		assert.True(t, NewPath(origin).Walk(South).Walk(East).IsContiguous())
		assert.False(t, NewPath(origin, NewCoordinates(3, 1)).IsContiguous())
		assert.False(t, NewPath(origin).Walk(Southeast).IsContiguous())
	})

	t.Run("accessors", func(t *testing.T) {
		p := NewPath(origin).Walk(East)
		assert.Equal(t, origin, p.First())
		assert.True(t, p.Contains(origin))
		assert.False(t, p.Contains(NewCoordinates(9, 9)))
		assert.True(t, p.Equal(NewPath(origin, NewCoordinates(2, 1))))
		assert.Equal(t, "(1,1)→(2,1)", p.String())
		assert.True(t, Path{}.IsZero())

		coords := p.Coordinates()
		coords[0] = NewCoordinates(7, 7)
		assert.Equal(t, origin, p.First())
	})
}
