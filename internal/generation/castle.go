package generation

import (
	"voxelforge.dev/internal/voxel"
)

// dimsCastle reports the grid size a castle build will allocate. Height
// is driven by whichever is taller, the corner towers or the keep.
func dimsCastle(o GenerationOptions) (int, int, int) {
	h := max(18, o.Floors*storyHeight+7)
	return o.Width, h, o.Length
}

// generateCastle builds a walled castle: curtain walls with a walkway,
// four round corner towers, a south gatehouse, a multi-story keep and a
// furnished courtyard.
func generateCastle(o GenerationOptions, p *Palette, rng *RNG) (*voxel.Grid, error) {
	w, h, l := dimsCastle(o)
	g, err := voxel.NewGrid(w, h, l)
	if err != nil {
		return nil, err
	}

	const wallH = 8
	wall := Rect{3, 3, w - 4, l - 4}
	cx, cz := wall.Center()

	// 1. Grounds.
	g.Fill(0, 0, 0, w-1, 0, l-1, p.Ground)

	// 2. Curtain walls: two concentric shells, walkway, merlons.
	buildCurtainWall(g, wall, 1, wallH, p)

	// 3. Round towers on the four wall corners.
	for _, c := range [4][2]int{
		{wall.MinX, wall.MinZ}, {wall.MaxX, wall.MinZ},
		{wall.MinX, wall.MaxZ}, {wall.MaxX, wall.MaxZ},
	} {
		buildCastleTower(g, c[0], c[1], p)
	}

	// 4. Gatehouse piercing the south wall.
	buildGatehouse(g, cx, wall.MaxZ, p)

	// 5. Keep in the courtyard center.
	half := w / 5
	keep := Rect{cx - half, cz - half, cx + half, cz + half}
	if err := buildKeep(g, keep, o, p, rng); err != nil {
		return nil, err
	}

	// 6. Courtyard: path from gate to keep, well, training posts, stalls.
	for z := keep.MaxZ + 1; z <= wall.MaxZ+2; z++ {
		g.Set(cx, 0, z, p.Path)
	}
	buildWell(g, wall.MinX+5, 1, wall.MaxZ-5, p)
	for i := 0; i < 3; i++ {
		tx, tz := wall.MaxX-4, wall.MinZ+4+i*3
		g.Set(tx, 1, tz, p.Fence)
		g.Set(tx, 2, tz, p.Fence)
		g.Set(tx, 3, tz, p.Carpet)
	}
	buildStall(g, wall.MinX+2, 1, wall.MinZ+4, 3, 4, p)
	buildStall(g, wall.MinX+2, 1, wall.MinZ+10, 3, 4, p)

	// 7. Walkway torches.
	for x := wall.MinX + 3; x <= wall.MaxX-3; x += 6 {
		g.Set(x, wallH+1, wall.MinZ+1, p.Torch)
		g.Set(x, wallH+1, wall.MaxZ-1, p.Torch)
	}
	for z := wall.MinZ + 3; z <= wall.MaxZ-3; z += 6 {
		g.Set(wall.MinX+1, wallH+1, z, p.Torch)
		g.Set(wall.MaxX-1, wallH+1, z, p.Torch)
	}
	return g, nil
}

// buildCurtainWall raises a two-shell wall with a slab walkway on the
// inner shell and merlons alternating along the outer rim.
func buildCurtainWall(g *voxel.Grid, r Rect, y0, wallH int, p *Palette) {
	inner := Rect{r.MinX + 1, r.MinZ + 1, r.MaxX - 1, r.MaxZ - 1}
	for y := y0; y < y0+wallH; y++ {
		for x := r.MinX; x <= r.MaxX; x++ {
			g.Set(x, y, r.MinZ, p.Wall)
			g.Set(x, y, r.MaxZ, p.Wall)
			g.Set(x, y, inner.MinZ, p.Wall)
			g.Set(x, y, inner.MaxZ, p.Wall)
		}
		for z := r.MinZ; z <= r.MaxZ; z++ {
			g.Set(r.MinX, y, z, p.Wall)
			g.Set(r.MaxX, y, z, p.Wall)
			g.Set(inner.MinX, y, z, p.Wall)
			g.Set(inner.MaxX, y, z, p.Wall)
		}
	}
	topY := y0 + wallH
	for x := r.MinX; x <= r.MaxX; x++ {
		g.Set(x, topY, inner.MinZ, p.SlabBottom)
		g.Set(x, topY, inner.MaxZ, p.SlabBottom)
		if x%2 == 0 {
			g.Set(x, topY, r.MinZ, p.Wall)
			g.Set(x, topY, r.MaxZ, p.Wall)
		}
	}
	for z := r.MinZ; z <= r.MaxZ; z++ {
		g.Set(inner.MinX, topY, z, p.SlabBottom)
		g.Set(inner.MaxX, topY, z, p.SlabBottom)
		if z%2 == 0 {
			g.Set(r.MinX, topY, z, p.Wall)
			g.Set(r.MaxX, topY, z, p.Wall)
		}
	}
}

// buildCastleTower raises one round corner tower with a conical cap.
func buildCastleTower(g *voxel.Grid, cx, cz int, p *Palette) {
	const towerH = 12
	radius := 3.5
	fillDisk(g, cx, 0, cz, radius+1, p.Foundation)
	for y := 1; y <= towerH; y++ {
		fillDisk(g, cx, y, cz, radius, p.Wall)
		clearDisk(g, cx, y, cz, radius-2)
	}
	for y := 3; y <= towerH; y += 4 {
		g.Set(cx+3, y, cz, p.Window)
		g.Set(cx-3, y, cz, p.Window)
		g.Set(cx, y, cz+3, p.Window)
		g.Set(cx, y, cz-3, p.Window)
	}
	buildConicalRoof(g, cx, towerH+1, cz, radius-1, p)
}

// buildGatehouse cuts the south gate passage and builds the block above
// it, with bars hanging portcullis-fashion in the upper half.
func buildGatehouse(g *voxel.Grid, cx, wallZ int, p *Palette) {
	g.Clear(cx-1, 1, wallZ-2, cx+1, 4, wallZ+1)
	for x := cx - 1; x <= cx+1; x++ {
		g.Set(x, 4, wallZ, p.Bars)
	}
	g.Fill(cx-2, 5, wallZ-2, cx+2, 9, wallZ-1, p.Wall)
	g.Fill(cx-2, 5, wallZ, cx+2, 9, wallZ, p.WallAccent)
	for x := cx - 2; x <= cx+2; x++ {
		if (x-cx)%2 == 0 {
			g.Set(x, 10, wallZ, p.Wall)
			g.Set(x, 10, wallZ-2, p.Wall)
		}
	}
	g.Set(cx-2, 5, wallZ+1, p.WallTorch(South))
	g.Set(cx+2, 5, wallZ+1, p.WallTorch(South))
}

// buildKeep raises the central keep, one furnished room per story and a
// parapet on the flat roof. The ground floor always holds the throne.
func buildKeep(g *voxel.Grid, r Rect, o GenerationOptions, p *Palette, rng *RNG) error {
	const base = 2
	buildFoundation(g, r, 1, p)
	for f := 0; f < o.Floors; f++ {
		fy := base + f*storyHeight
		if f > 0 {
			buildFloor(g, Rect{r.MinX + 1, r.MinZ + 1, r.MaxX - 1, r.MaxZ - 1}, fy-1, p.Wall)
		}
		buildWalls(g, r, fy, storyHeight, p, false)
		punchWindows(g, r, fy+1, 4, p)
	}
	roofY := base + o.Floors*storyHeight
	g.Fill(r.MinX, roofY-1, r.MinZ, r.MaxX, roofY-1, r.MaxZ, p.Wall)
	for x := r.MinX; x <= r.MaxX; x += 2 {
		g.Set(x, roofY, r.MinZ, p.Wall)
		g.Set(x, roofY, r.MaxZ, p.Wall)
	}
	for z := r.MinZ; z <= r.MaxZ; z += 2 {
		g.Set(r.MinX, roofY, z, p.Wall)
		g.Set(r.MaxX, roofY, z, p.Wall)
	}

	cx, _ := r.Center()
	placeDoorway(g, cx, base, r.MaxZ, South, p)
	g.Set(cx-1, base+1, r.MaxZ+1, p.WallTorch(South))
	g.Set(cx+1, base+1, r.MaxZ+1, p.WallTorch(South))
	for f := 0; f < o.Floors-1; f++ {
		sy := base + f*storyHeight
		buildStairRun(g, r.MaxX-1, sy, r.MaxZ-1, North, storyHeight, p)
		g.Set(r.MaxX-1, sy+storyHeight-1, r.MaxZ-1, voxel.Air)
		g.Set(r.MaxX-1, sy+storyHeight-1, r.MaxZ-2, voxel.Air)
		g.Set(r.MaxX-1, sy+storyHeight-1, r.MaxZ-3, voxel.Air)
	}

	plan := PlanRooms(StructureCastle, o.Rooms, o.Floors, 1)
	for f := 0; f < o.Floors; f++ {
		fy := base + f*storyHeight
		b := RoomBounds{r.MinX + 1, r.MinZ + 1, r.MaxX - 1, r.MaxZ - 1, fy, storyHeight - 1}
		if err := FurnishRoom(g, plan[f][0], b, p, rng); err != nil {
			return err
		}
	}
	return nil
}
