package generation

import (
	"voxelforge.dev/internal/voxel"
)

// dimsWindmill reports the grid size a windmill build will allocate.
// The blade sweep, not the body, usually sets the width.
func dimsWindmill(o GenerationOptions) (int, int, int) {
	bladeLen := o.Floors*2 + 3
	bodyTop := 2 + o.Floors*storyHeight
	w := max(o.Width, 2*bladeLen+1) + 2
	h := max(bodyTop+4, bodyTop+bladeLen+1)
	return w, h, o.Width + 4
}

// generateWindmill raises a tapered round mill with four diagonal sail
// blades on the south face and a drive shaft running down to the
// millstone on the ground floor.
func generateWindmill(o GenerationOptions, p *Palette, rng *RNG) (*voxel.Grid, error) {
	w, h, l := dimsWindmill(o)
	g, err := voxel.NewGrid(w, h, l)
	if err != nil {
		return nil, err
	}

	cx, cz := w/2, l/2
	baseR := float64(o.Width-1) / 2
	const base = 2
	bodyTop := base + o.Floors*storyHeight

	// 1. Ground and foundation.
	g.Fill(0, 0, 0, w-1, 0, l-1, p.Ground)
	fillDisk(g, cx, 1, cz, baseR+1, p.Foundation)

	// 2. Tapering body, two-thick walls, one window per story.
	topR := baseR
	for f := 0; f < o.Floors; f++ {
		rf := baseR - 0.7*float64(f)
		if rf < 3.5 {
			rf = 3.5
		}
		topR = rf
		fy := base + f*storyHeight
		if f > 0 {
			fillDisk(g, cx, fy-1, cz, rf-1, p.Floor)
			g.Set(cx-1, fy-1, cz, voxel.Air)
		}
		for y := fy; y < fy+storyHeight; y++ {
			fillDisk(g, cx, y, cz, rf, p.Wall)
			clearDisk(g, cx, y, cz, rf-2)
		}
		g.Set(cx+int(rf), fy+2, cz, p.Window)
		g.Set(cx-int(rf), fy+2, cz, p.Window)
	}
	buildConicalRoof(g, cx, bodyTop, cz, topR-1, p)

	// 3. Drive shaft and ground-floor millstone.
	fillDisk(g, cx, base, cz, 1.5, p.FloorAlt)
	for y := base; y < bodyTop; y++ {
		g.Set(cx, y, cz, p.PillarY)
	}

	// 4. Ladder shaft beside the drive column.
	for y := base; y < bodyTop-1; y++ {
		g.Set(cx-1, y, cz, p.Ladder(East))
	}

	// 5. Door on the east face, away from the sails.
	ri := int(baseR)
	g.Set(cx+ri-1, base, cz, voxel.Air)
	g.Set(cx+ri-1, base+1, cz, voxel.Air)
	placeDoorway(g, cx+ri, base, cz, East, p)
	g.Set(cx+ri+1, 1, cz, p.Stair(West))

	// 6. Hub and the four diagonal blades, sails trailing each arm.
	bladeLen := o.Floors*2 + 3
	hubY := bodyTop - 1
	hz := cz + int(topR) + 2
	for z := cz; z <= hz; z++ {
		g.Set(cx, hubY, z, p.TimberZ)
	}
	g.Set(cx, hubY, hz, p.Accent)
	for i := 1; i <= bladeLen; i++ {
		g.Set(cx+i, hubY+i, hz, p.Planks)
		g.Set(cx-i, hubY-i, hz, p.Planks)
		g.Set(cx+i, hubY-i, hz, p.Planks)
		g.Set(cx-i, hubY+i, hz, p.Planks)
		if i >= 2 {
			g.Set(cx+i, hubY+i-1, hz, p.Sail)
			g.Set(cx-i, hubY-i+1, hz, p.Sail)
			g.Set(cx+i, hubY-i+1, hz, p.Sail)
			g.Set(cx-i, hubY+i-1, hz, p.Sail)
		}
	}

	// 7. Furnish the stories.
	plan := PlanRooms(StructureWindmill, o.Rooms, o.Floors, 1)
	for f := 0; f < o.Floors; f++ {
		rf := baseR - 0.7*float64(f)
		if rf < 3.5 {
			rf = 3.5
		}
		ib := max(1, int((rf-2)*0.7))
		fy := base + f*storyHeight
		b := RoomBounds{cx - ib, cz - ib, cx + ib, cz + ib, fy, storyHeight - 1}
		if err := FurnishRoom(g, plan[f][0], b, p, rng); err != nil {
			return nil, err
		}
	}
	return g, nil
}
