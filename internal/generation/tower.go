package generation

import (
	"math"

	"voxelforge.dev/internal/voxel"
)

// dimsTower reports the grid size a tower build will allocate.
func dimsTower(o GenerationOptions) (int, int, int) {
	ri := (o.Width - 1) / 2
	w := o.Width + 2
	h := 2 + o.Floors*storyHeight + ri + 3
	return w, h, w
}

// generateTower raises a round wizard tower. Each story fills a full
// disk and hollows a smaller one, which guarantees a gap-free two-thick
// wall where a single-pass ring would leave diagonal holes.
func generateTower(o GenerationOptions, p *Palette, rng *RNG) (*voxel.Grid, error) {
	w, h, l := dimsTower(o)
	g, err := voxel.NewGrid(w, h, l)
	if err != nil {
		return nil, err
	}

	cx, cz := w/2, l/2
	radius := float64(o.Width-1) / 2
	ri := int(radius)
	const base = 2
	topY := base + o.Floors*storyHeight

	// 1. Ground and a foundation disk one block wider than the wall.
	g.Fill(0, 0, 0, w-1, 0, l-1, p.Ground)
	fillDisk(g, cx, 1, cz, radius+1, p.Foundation)

	// 2. Stories: interior floor disk, then the fill/hollow wall pass.
	for f := 0; f < o.Floors; f++ {
		fy := base + f*storyHeight
		if f > 0 {
			fillDisk(g, cx, fy-1, cz, radius-1, p.Floor)
		}
		for y := fy; y < fy+storyHeight; y++ {
			fillDisk(g, cx, y, cz, radius, p.Wall)
			clearDisk(g, cx, y, cz, radius-2)
		}
		// Arrow slits at the cardinal points, two cells tall.
		for _, d := range [4][2]int{{0, -ri}, {0, ri}, {-ri, 0}, {ri, 0}} {
			g.Set(cx+d[0], fy+1, cz+d[1], p.Window)
			g.Set(cx+d[0], fy+2, cz+d[1], p.Window)
		}
	}

	// 3. Spiral stair hugging the inner wall. The entry angle advances
	// by the flight's sweep each floor so flights chain continuously.
	for f := 0; f < o.Floors-1; f++ {
		fy := base + f*storyHeight
		buildSpiralStairs(g, cx, cz, radius-2.5, fy, fy+storyHeight, float64(f)*3*math.Pi, p)
	}

	// 4. Entrance through the south wall.
	g.Set(cx, base, cz+ri-1, voxel.Air)
	g.Set(cx, base+1, cz+ri-1, voxel.Air)
	placeDoorway(g, cx, base, cz+ri, South, p)
	g.Set(cx, 1, cz+ri+1, p.Stair(North))
	g.Set(cx-1, base+1, cz+ri+1, p.WallTorch(South))
	g.Set(cx+1, base+1, cz+ri+1, p.WallTorch(South))

	// 5. Parapet ring with alternating merlons, then the conical cap.
	fillDisk(g, cx, topY, cz, radius, p.Wall)
	clearDisk(g, cx, topY, cz, radius-1)
	for dx := -ri; dx <= ri; dx++ {
		for dz := -ri; dz <= ri; dz++ {
			d2 := float64(dx*dx + dz*dz)
			if d2 <= radius*radius+0.5 && d2 > (radius-1)*(radius-1)+0.5 && (dx+dz)%2 == 0 {
				g.Set(cx+dx, topY+1, cz+dz, p.Wall)
			}
		}
	}
	buildConicalRoof(g, cx, topY+1, cz, radius-1, p)

	// 6. Furnish each story; the top story is always the observatory.
	plan := PlanRooms(StructureTower, o.Rooms, o.Floors, 1)
	ib := int(float64(ri-2) * 0.7)
	if ib < 1 {
		ib = 1
	}
	for f := 0; f < o.Floors; f++ {
		fy := base + f*storyHeight
		b := RoomBounds{cx - ib, cz - ib, cx + ib, cz + ib, fy, storyHeight - 1}
		if err := FurnishRoom(g, plan[f][0], b, p, rng); err != nil {
			return nil, err
		}
	}
	return g, nil
}
