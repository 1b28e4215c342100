package voxel

import (
	"errors"
	"fmt"
)

// Air is the block state used for empty cells.
const Air = "air"

// MaxVolume caps grid allocations at 16,777,216 cells (a 256^3 cube).
const MaxVolume = 1 << 24

// ErrGridTooLarge is returned when requested dimensions exceed MaxVolume.
var ErrGridTooLarge = errors.New("voxel: grid volume exceeds maximum")

// Item is a single inventory slot inside a block entity.
type Item struct {
	Slot  int    `json:"slot"`
	ID    string `json:"id"`
	Count int    `json:"count"`
}

// BlockEntity is extra data attached to a container block (chest, barrel).
type BlockEntity struct {
	X, Y, Z int
	ID      string
	Items   []Item
}

// Grid is a dense 3D block-state grid. Writes outside the bounds are
// silently ignored and reads outside the bounds return Air, so builders
// can draw shapes that overhang the edges without bounds checks.
type Grid struct {
	width, height, length int
	blocks                []string
	entities              []BlockEntity
}

// NewGrid allocates a width x height x length grid filled with Air.
func NewGrid(width, height, length int) (*Grid, error) {
	if width <= 0 || height <= 0 || length <= 0 {
		return nil, fmt.Errorf("voxel: invalid grid dimensions %dx%dx%d", width, height, length)
	}
	volume := width * height * length
	if volume > MaxVolume {
		return nil, fmt.Errorf("%w: %dx%dx%d = %d cells (max %d)", ErrGridTooLarge, width, height, length, volume, MaxVolume)
	}

	blocks := make([]string, volume)
	for i := range blocks {
		blocks[i] = Air
	}
	return &Grid{width: width, height: height, length: length, blocks: blocks}, nil
}

// Width returns the grid extent along X.
func (g *Grid) Width() int { return g.width }

// Height returns the grid extent along Y.
func (g *Grid) Height() int { return g.height }

// Length returns the grid extent along Z.
func (g *Grid) Length() int { return g.length }

// InBounds checks whether a coordinate is inside the grid.
func (g *Grid) InBounds(x, y, z int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height && z >= 0 && z < g.length
}

// index assumes the coordinate is in bounds. Layout is YZX so the flat
// slice matches the schematic block-data order.
func (g *Grid) index(x, y, z int) int {
	return x + g.width*(z+g.length*y)
}

// Set writes a block state. Out-of-bounds writes are no-ops. Setting a
// cell to Air also removes any block entity recorded there.
func (g *Grid) Set(x, y, z int, block string) {
	if !g.InBounds(x, y, z) {
		return
	}
	g.blocks[g.index(x, y, z)] = block
	if IsAir(block) {
		g.removeEntityAt(x, y, z)
	}
}

// Get returns the block state at a coordinate, or Air out of bounds.
func (g *Grid) Get(x, y, z int) string {
	if !g.InBounds(x, y, z) {
		return Air
	}
	return g.blocks[g.index(x, y, z)]
}

// Fill writes a block into every cell of an inclusive box. Corner order
// does not matter; the box is clipped to the grid.
func (g *Grid) Fill(x1, y1, z1, x2, y2, z2 int, block string) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	if z1 > z2 {
		z1, z2 = z2, z1
	}
	for y := y1; y <= y2; y++ {
		for z := z1; z <= z2; z++ {
			for x := x1; x <= x2; x++ {
				g.Set(x, y, z, block)
			}
		}
	}
}

// Clear fills an inclusive box with Air.
func (g *Grid) Clear(x1, y1, z1, x2, y2, z2 int) {
	g.Fill(x1, y1, z1, x2, y2, z2, Air)
}

// SetEntity records a block entity at its coordinate. The call is a no-op
// when the coordinate is out of bounds or the cell holds Air, keeping the
// invariant that entities only exist at non-air cells. A second entity at
// the same cell replaces the first.
func (g *Grid) SetEntity(e BlockEntity) {
	if !g.InBounds(e.X, e.Y, e.Z) {
		return
	}
	if IsAir(g.blocks[g.index(e.X, e.Y, e.Z)]) {
		return
	}
	g.removeEntityAt(e.X, e.Y, e.Z)
	g.entities = append(g.entities, e)
}

// AddChest places a chest opening toward facing and registers its
// inventory as a block entity in one call.
func (g *Grid) AddChest(x, y, z int, facing string, items []Item) {
	g.addContainer("chest", x, y, z, facing, items)
}

// AddBarrel is AddChest for barrel containers.
func (g *Grid) AddBarrel(x, y, z int, facing string, items []Item) {
	g.addContainer("barrel", x, y, z, facing, items)
}

func (g *Grid) addContainer(id string, x, y, z int, facing string, items []Item) {
	g.Set(x, y, z, With(id, "facing="+facing))
	g.SetEntity(BlockEntity{X: x, Y: y, Z: z, ID: id, Items: items})
}

// EntityAt returns the block entity at a coordinate, if any.
func (g *Grid) EntityAt(x, y, z int) (BlockEntity, bool) {
	for _, e := range g.entities {
		if e.X == x && e.Y == y && e.Z == z {
			return e, true
		}
	}
	return BlockEntity{}, false
}

// Entities returns all recorded block entities in insertion order.
func (g *Grid) Entities() []BlockEntity {
	return g.entities
}

func (g *Grid) removeEntityAt(x, y, z int) {
	for i, e := range g.entities {
		if e.X == x && e.Y == y && e.Z == z {
			g.entities = append(g.entities[:i], g.entities[i+1:]...)
			return
		}
	}
}

// CountNonAir returns the number of cells holding a non-air state.
func (g *Grid) CountNonAir() int {
	count := 0
	for _, b := range g.blocks {
		if !IsAir(b) {
			count++
		}
	}
	return count
}

// To3D copies the grid into a nested slice indexed [y][z][x], the layout
// web clients consume.
func (g *Grid) To3D() [][][]string {
	out := make([][][]string, g.height)
	for y := 0; y < g.height; y++ {
		out[y] = make([][]string, g.length)
		for z := 0; z < g.length; z++ {
			row := make([]string, g.width)
			copy(row, g.blocks[g.index(0, y, z):g.index(0, y, z)+g.width])
			out[y][z] = row
		}
	}
	return out
}
