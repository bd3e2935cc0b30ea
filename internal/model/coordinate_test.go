package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordinate_Up(t *testing.T) {
	c := NewCoordinate(10, 64, -3)

	assert.Equal(t, NewCoordinate(10, 68, -3), c.Up(4))
	assert.Equal(t, NewCoordinate(10, 60, -3), c.Down(4))
	// original is not mutated
	assert.Equal(t, int32(64), c.Y)
}

func TestCoordinate_Distances(t *testing.T) {
	a := NewCoordinate(0, 0, 0)
	b := NewCoordinate(3, -4, 12)

	assert.Equal(t, int64(169), a.DistanceSquared(b))
	assert.Equal(t, int32(19), a.ManhattanDistance(b))
	assert.Equal(t, int32(19), b.ManhattanDistance(a))
}

func TestLocation_WithPos(t *testing.T) {
	loc := NewLocation(1, 2, 3, 90)
	moved := loc.WithPos(NewCoordinate(5, 6, 7))

	assert.Equal(t, NewCoordinate(5, 6, 7), moved.Pos)
	assert.InDelta(t, float32(90), moved.Yaw, 0.0001)
	assert.Equal(t, NewCoordinate(1, 2, 3), loc.Pos)
}
