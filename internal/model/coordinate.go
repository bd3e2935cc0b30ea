package model

import "fmt"

// Coordinate identifies a single grid cell in the voxel world.
// Value type, passed by value (immutable).
type Coordinate struct {
	X int32 `json:"x"`
	Y int32 `json:"y"`
	Z int32 `json:"z"`
}

// NewCoordinate creates a Coordinate.
func NewCoordinate(x, y, z int32) Coordinate {
	return Coordinate{X: x, Y: y, Z: z}
}

// Up returns the coordinate n cells above.
func (c Coordinate) Up(n int32) Coordinate {
	c.Y += n
	return c
}

// Down returns the coordinate n cells below.
func (c Coordinate) Down(n int32) Coordinate {
	c.Y -= n
	return c
}

// Offset returns a copy shifted by (dx, dy, dz).
func (c Coordinate) Offset(dx, dy, dz int32) Coordinate {
	c.X += dx
	c.Y += dy
	c.Z += dz
	return c
}

// DistanceSquared returns the squared distance to other (no sqrt on the hot path).
func (c Coordinate) DistanceSquared(other Coordinate) int64 {
	dx := int64(c.X - other.X)
	dy := int64(c.Y - other.Y)
	dz := int64(c.Z - other.Z)
	return dx*dx + dy*dy + dz*dz
}

// ManhattanDistance returns |dx|+|dy|+|dz|.
func (c Coordinate) ManhattanDistance(other Coordinate) int32 {
	return abs32(c.X-other.X) + abs32(c.Y-other.Y) + abs32(c.Z-other.Z)
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.X, c.Y, c.Z)
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// Location is a coordinate plus facing. Actors carry a Location.
type Location struct {
	Pos   Coordinate `json:"pos"`
	Yaw   float32    `json:"yaw"` // degrees, 0-360
	Pitch float32    `json:"pitch,omitempty"`
}

// NewLocation creates a Location at (x, y, z) with the given yaw.
func NewLocation(x, y, z int32, yaw float32) Location {
	return Location{Pos: NewCoordinate(x, y, z), Yaw: yaw}
}

// WithPos returns a copy of the location moved to pos, keeping facing.
func (l Location) WithPos(pos Coordinate) Location {
	l.Pos = pos
	return l
}

// WithYaw returns a copy of the location with a new yaw.
func (l Location) WithYaw(yaw float32) Location {
	l.Yaw = yaw
	return l
}

// LightSample is the light reading at a coordinate. Derived on demand, never stored.
type LightSample struct {
	Sky   int32
	Block int32
}
