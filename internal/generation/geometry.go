package generation

// Direction represents the cardinal facings used for doors, stairs and
// wall fixtures.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Opposite returns the opposite direction.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Delta returns the x,z offset for moving one cell in this direction.
// North is -Z, matching the block facing convention.
func (d Direction) Delta() (int, int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	}
	return 0, 0
}

// String returns the facing name used in block-state properties.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	}
	return "west"
}

// Rect is a rectangular footprint on the XZ plane.
type Rect struct {
	MinX, MinZ, MaxX, MaxZ int
}

// Width returns the rect extent along X.
func (r Rect) Width() int {
	return r.MaxX - r.MinX + 1
}

// Length returns the rect extent along Z.
func (r Rect) Length() int {
	return r.MaxZ - r.MinZ + 1
}

// Contains checks if a column is inside the rect.
func (r Rect) Contains(x, z int) bool {
	return x >= r.MinX && x <= r.MaxX && z >= r.MinZ && z <= r.MaxZ
}

// Overlaps checks if two rects intersect.
func (r Rect) Overlaps(other Rect) bool {
	return r.MinX <= other.MaxX && r.MaxX >= other.MinX &&
		r.MinZ <= other.MaxZ && r.MaxZ >= other.MinZ
}

// Expand returns the rect grown by n cells on every side.
func (r Rect) Expand(n int) Rect {
	return Rect{r.MinX - n, r.MinZ - n, r.MaxX + n, r.MaxZ + n}
}

// Center returns the center column of the rect.
func (r Rect) Center() (int, int) {
	return (r.MinX + r.MaxX) / 2, (r.MinZ + r.MaxZ) / 2
}

// Anchor is a connection point a structure exposes to the outside, such
// as the cell in front of a door. The village compositor routes paths
// between anchors.
type Anchor struct {
	X, Y, Z int
	Facing  Direction
}

// RoomBounds is the interior volume handed to a room furnisher: a floor
// rectangle at height Y with Height cells of headroom.
type RoomBounds struct {
	X1, Z1 int
	X2, Z2 int
	Y      int
	Height int
}

// Width returns the room extent along X.
func (b RoomBounds) Width() int {
	return b.X2 - b.X1 + 1
}

// Length returns the room extent along Z.
func (b RoomBounds) Length() int {
	return b.Z2 - b.Z1 + 1
}

// Center returns the center column of the room.
func (b RoomBounds) Center() (int, int) {
	return (b.X1 + b.X2) / 2, (b.Z1 + b.Z2) / 2
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
