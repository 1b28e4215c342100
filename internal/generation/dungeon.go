package generation

import (
	"voxelforge.dev/internal/voxel"
)

// levelHeight is the vertical span of one dungeon level: floor, three
// cells of headroom, shared ceiling.
const levelHeight = 5

// dimsDungeon reports the grid size a dungeon build will allocate.
func dimsDungeon(o GenerationOptions) (int, int, int) {
	return o.Width, o.Floors*levelHeight + 7, o.Length
}

// generateDungeon digs a multi-level dungeon below grade. The volume
// starts solid and every space is carved out of it: a wide north-south
// corridor crossed by a narrower east-west one, two large and two small
// quadrant rooms per level, stairwells between levels and a surface
// entrance hut over the shaft.
func generateDungeon(o GenerationOptions, p *Palette, rng *RNG) (*voxel.Grid, error) {
	w, h, l := dimsDungeon(o)
	g, err := voxel.NewGrid(w, h, l)
	if err != nil {
		return nil, err
	}

	cx, cz := w/2, l/2
	surfaceY := o.Floors * levelHeight

	// 1. Solid rock below grade, ground plane on top.
	g.Fill(0, 0, 0, w-1, surfaceY-1, l-1, p.Foundation)
	g.Fill(0, surfaceY, 0, w-1, surfaceY, l-1, p.Ground)

	// 2. Carve each level; the room plan slots one cell block per level.
	plan := PlanRooms(StructureDungeon, o.Rooms, o.Floors, 4)
	for lvl := 0; lvl < o.Floors; lvl++ {
		y0 := lvl * levelHeight
		if err := carveDungeonLevel(g, y0, w, l, plan[lvl], p, rng); err != nil {
			return nil, err
		}
	}

	// 3. Stairwells: one shaft per level boundary, rising southward
	// along the main corridor. The shaft alternates between the north
	// and south arms of the corridor, so every run sits at the same
	// two in-bounds spots no matter how deep the dungeon goes.
	for lvl := 0; lvl < o.Floors-1; lvl++ {
		yl := lvl * levelHeight
		z0 := cz - 4 - (levelHeight - 1)
		if lvl%2 == 1 {
			z0 = cz + 4
		}
		for s := 0; s <= levelHeight-1; s++ {
			y := yl + 1 + s
			z := z0 + s
			g.Clear(cx, y, z, cx, y+2, z)
			g.Set(cx, y, z, p.Stair(South))
		}
	}

	// 4. Shaft from the surface into the top level's corridor.
	top := (o.Floors - 1) * levelHeight
	for s := 0; s <= levelHeight-1; s++ {
		y := top + 1 + s
		z := cz - 2 + s
		g.Clear(cx, y, z, cx, y+2, z)
		if y <= surfaceY {
			g.Set(cx, y, z, p.Stair(South))
		}
	}

	// 5. Entrance hut over the shaft mouth.
	hut := Rect{cx - 3, cz + 1, cx + 3, cz + 6}
	buildWalls(g, hut, surfaceY+1, storyHeight, p, true)
	buildFlatRoof(g, hut, surfaceY+1+storyHeight, p)
	placeDoorway(g, cx, surfaceY+1, hut.MaxZ, South, p)
	g.Set(cx-1, surfaceY+2, hut.MaxZ+1, p.WallTorch(South))
	g.Set(cx+1, surfaceY+2, hut.MaxZ+1, p.WallTorch(South))
	g.Clear(cx, surfaceY+1, hut.MinZ, cx, surfaceY+2, hut.MinZ)
	return g, nil
}

// carveDungeonLevel cuts one level's corridors and quadrant rooms, then
// furnishes the rooms in fixed quadrant order: NW large, SE large, NE
// small, SW small.
func carveDungeonLevel(g *voxel.Grid, y0, w, l int, rooms []RoomType, p *Palette, rng *RNG) error {
	cx, cz := w/2, l/2

	// Corridors: 3 across N-S, 2 across E-W.
	g.Clear(cx-1, y0+1, 3, cx+1, y0+3, l-4)
	g.Clear(3, y0+1, cz-1, w-4, y0+3, cz)

	// Quadrant extents, kept clear of the corridors and the shell.
	qx1, qx2 := 4, cx-3
	qx3, qx4 := cx+3, w-5
	qz1, qz2 := 4, cz-3
	qz3, qz4 := cz+2, l-5

	sw := (qx4 - qx3) / 2
	sl := (qz2 - qz1) / 2
	quads := [4]Rect{
		{qx1, qz1, qx2, qz2},           // NW, large
		{qx3, qz3, qx4, qz4},           // SE, large
		{qx3, qz1, qx3 + sw, qz1 + sl}, // NE, small
		{qx2 - sw, qz4 - sl, qx2, qz4}, // SW, small
	}

	for i, r := range quads {
		g.Clear(r.MinX, y0+1, r.MinZ, r.MaxX, y0+3, r.MaxZ)
		g.Fill(r.MinX, y0, r.MinZ, r.MaxX, y0, r.MaxZ, p.FloorAlt)

		// Doorway tunnel to the nearest corridor.
		_, zc := r.Center()
		switch i {
		case 0: // NW reaches east to the main corridor
			g.Clear(r.MaxX+1, y0+1, zc, cx-2, y0+2, zc)
		case 1: // SE reaches west
			g.Clear(cx+2, y0+1, zc, r.MinX-1, y0+2, zc)
		case 2: // NE reaches west
			g.Clear(cx+2, y0+1, zc, r.MinX-1, y0+2, zc)
		case 3: // SW reaches east
			g.Clear(r.MaxX+1, y0+1, zc, cx-2, y0+2, zc)
		}

		b := RoomBounds{r.MinX, r.MinZ, r.MaxX, r.MaxZ, y0 + 1, 3}
		if err := FurnishRoom(g, rooms[i], b, p, rng); err != nil {
			return err
		}
	}

	// Corridor torches on the main corridor walls.
	for z := 6; z <= l-7; z += 6 {
		g.Set(cx-1, y0+2, z, p.WallTorch(East))
		g.Set(cx+1, y0+2, z, p.WallTorch(West))
	}
	return nil
}
