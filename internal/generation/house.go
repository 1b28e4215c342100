package generation

import (
	"voxelforge.dev/internal/voxel"
)

// dimsHouse reports the grid size a house build will allocate. Wings,
// annexes and yard margins all grow the footprint; the roof shape and
// chimney grow the height.
func dimsHouse(o GenerationOptions) (int, int, int) {
	bw, bl := o.Width, o.Length
	wingW := bw/2 + 2

	w := bw
	switch o.Plan {
	case PlanL:
		w = bw + wingW - 1
	case PlanU:
		w = bw + 2*(wingW-1)
	}

	margin := 1
	if o.Features.Garden || o.Features.Fence {
		margin = 4
	}
	if o.Features.Garage {
		w += 6
	}
	length := bl + 2*margin
	if o.Features.Porch {
		length += 4
	}

	roofH := 2
	if o.Roof != RoofFlat {
		roofH = bw/2 + 2
	}
	height := 2 + o.Floors*storyHeight + roofH
	if o.Features.Chimney {
		height += 3
	}
	return w + 2*margin, height, length
}

// houseFootprint lays out the building rects for a plan shape. The main
// rect comes first; wings share their inner wall column with it.
func houseFootprint(o GenerationOptions, x0, z0 int) []Rect {
	bw, bl := o.Width, o.Length
	wingW := bw/2 + 2
	wingL := (bl+1)/2 + 1

	switch o.Plan {
	case PlanL:
		main := Rect{x0, z0, x0 + bw - 1, z0 + bl - 1}
		wing := Rect{main.MaxX, z0 + bl - wingL, main.MaxX + wingW - 1, z0 + bl - 1}
		return []Rect{main, wing}
	case PlanU:
		main := Rect{x0 + wingW - 1, z0, x0 + wingW + bw - 2, z0 + bl - 1}
		east := Rect{main.MaxX, z0 + bl - wingL, main.MaxX + wingW - 1, z0 + bl - 1}
		west := Rect{x0, z0 + bl - wingL, main.MinX, z0 + bl - 1}
		return []Rect{main, east, west}
	}
	return []Rect{{x0, z0, x0 + bw - 1, z0 + bl - 1}}
}

// generateHouse builds a framed residential structure.
//
// Build order:
//  1. Ground plane, foundation, then per-floor shells (slab, walls, windows).
//  2. Openings: front door, wing passages, stairwells.
//  3. Roof over the main rect, flat caps over wings.
//  4. Optional features, then room furnishing per floor and rect.
func generateHouse(o GenerationOptions, p *Palette, rng *RNG) (*voxel.Grid, error) {
	w, h, l := dimsHouse(o)
	g, err := voxel.NewGrid(w, h, l)
	if err != nil {
		return nil, err
	}

	margin := 1
	if o.Features.Garden || o.Features.Fence {
		margin = 4
	}
	const base = 2 // ground-floor walking level
	rects := houseFootprint(o, margin, margin)
	main := rects[0]
	bbox := main
	for _, r := range rects[1:] {
		bbox = Rect{min(bbox.MinX, r.MinX), min(bbox.MinZ, r.MinZ), max(bbox.MaxX, r.MaxX), max(bbox.MaxZ, r.MaxZ)}
	}
	roofBase := base + o.Floors*storyHeight

	// 1. Terrain and foundation.
	g.Fill(0, 0, 0, w-1, 0, l-1, p.Ground)
	for _, r := range rects {
		buildFoundation(g, r, 1, p)
	}

	// 2. Shells, floor by floor.
	for f := 0; f < o.Floors; f++ {
		fy := base + f*storyHeight
		for _, r := range rects {
			if f > 0 {
				buildFloor(g, Rect{r.MinX + 1, r.MinZ + 1, r.MaxX - 1, r.MaxZ - 1}, fy-1, p.Floor)
			}
			buildWalls(g, r, fy, storyHeight, p, true)
			punchWindows(g, r, fy+1, 3, p)
		}
		// Passages through the shared wall into each wing.
		for _, wing := range rects[1:] {
			sharedX := wing.MinX
			if wing.MaxX <= main.MinX {
				sharedX = wing.MaxX
			}
			wz := (wing.MinZ + wing.MaxZ) / 2
			g.Set(sharedX, fy, wz, voxel.Air)
			g.Set(sharedX, fy+1, wz, voxel.Air)
		}
	}

	// 3. Front door on the main south wall, with step and torches.
	doorX, _ := main.Center()
	placeDoorway(g, doorX, base, main.MaxZ, South, p)
	g.Set(doorX, 1, main.MaxZ+1, p.Stair(North))
	g.Set(doorX-1, base+1, main.MaxZ+1, p.WallTorch(South))
	g.Set(doorX+1, base+1, main.MaxZ+1, p.WallTorch(South))
	for z := main.MaxZ + 1; z < l; z++ {
		g.Set(doorX, 0, z, p.Path)
	}

	// 4. Stairwells between floors, along the main east wall.
	for f := 0; f < o.Floors-1; f++ {
		sy := base + f*storyHeight
		sx, sz := main.MaxX-1, main.MaxZ-1
		buildStairRun(g, sx, sy, sz, North, storyHeight, p)
		g.Set(sx, sy+storyHeight-1, sz, voxel.Air)
		g.Set(sx, sy+storyHeight-1, sz-1, voxel.Air)
		g.Set(sx, sy+storyHeight-1, sz-2, voxel.Air)
	}

	// 5. Roof: the chosen shape over the main rect, flat caps on wings.
	switch o.Roof {
	case RoofFlat:
		buildFlatRoof(g, main, roofBase, p)
	case RoofHip:
		buildHipRoof(g, main, roofBase, p)
	default:
		buildGableRoof(g, main, roofBase, p)
	}
	for _, wing := range rects[1:] {
		buildFlatRoof(g, wing, roofBase, p)
	}

	// 6. Optional features.
	if o.Features.Porch {
		buildHousePorch(g, doorX, base, main.MaxZ, p)
	}
	if o.Features.Balcony && o.Floors > 1 {
		buildHouseBalcony(g, doorX, base+(o.Floors-1)*storyHeight, main.MaxZ, p)
	}
	if o.Features.Garage {
		buildHouseGarage(g, Rect{bbox.MaxX, main.MinZ, bbox.MaxX + 6, main.MinZ + 6}, base, p, rng)
	}
	if o.Features.Chimney {
		peak := roofBase + 3
		if o.Roof != RoofFlat {
			peak = roofBase + (o.Width-1)/2 + 2
		}
		buildChimney(g, main.MinX+2, base, main.MinZ+2, peak-base, p)
	}
	if o.Features.Fence {
		buildFencePerimeter(g, Rect{1, 1, w - 2, l - 2}, 1, p)
	}
	if o.Features.Garden {
		noise := newNoise(rng)
		scatterGarden(g, Rect{1, 1, w - 2, l - 2}, 1, p, rng, noise)
		if rng.Chance(0.8) {
			buildTree(g, 3, 1, 3, p, rng)
		}
		if rng.Chance(0.8) {
			buildTree(g, w-4, 1, 3, p, rng)
		}
	}

	// 7. Furnish every floor, one room slot per rect.
	plan := PlanRooms(StructureHouse, o.Rooms, o.Floors, len(rects))
	for f := 0; f < o.Floors; f++ {
		fy := base + f*storyHeight
		for s, r := range rects {
			b := RoomBounds{r.MinX + 1, r.MinZ + 1, r.MaxX - 1, r.MaxZ - 1, fy, storyHeight - 1}
			if err := FurnishRoom(g, plan[f][s], b, p, rng); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// buildHousePorch decks the entrance with a covered landing.
func buildHousePorch(g *voxel.Grid, doorX, base, wallZ int, p *Palette) {
	deck := Rect{doorX - 2, wallZ + 1, doorX + 2, wallZ + 3}
	g.Fill(deck.MinX, 1, deck.MinZ, deck.MaxX, 1, deck.MaxZ, p.Planks)
	for _, cx := range [2]int{deck.MinX, deck.MaxX} {
		g.Set(cx, base, deck.MaxZ, p.Fence)
		g.Set(cx, base+1, deck.MaxZ, p.Fence)
	}
	g.Fill(deck.MinX, base+2, deck.MinZ, deck.MaxX, base+2, deck.MaxZ, p.RoofSlabBottom)
	g.Set(doorX, 1, deck.MaxZ+1, p.Stair(North))
}

// buildHouseBalcony hangs a railed deck off the top floor above the door.
func buildHouseBalcony(g *voxel.Grid, doorX, fy, wallZ int, p *Palette) {
	deck := Rect{doorX - 2, wallZ + 1, doorX + 2, wallZ + 2}
	g.Fill(deck.MinX, fy-1, deck.MinZ, deck.MaxX, fy-1, deck.MaxZ, p.Planks)
	for x := deck.MinX; x <= deck.MaxX; x++ {
		g.Set(x, fy, deck.MaxZ, p.Fence)
	}
	g.Set(deck.MinX, fy, deck.MinZ, p.Fence)
	g.Set(deck.MaxX, fy, deck.MinZ, p.Fence)
	g.Set(doorX, fy, wallZ, voxel.Air)
	g.Set(doorX, fy+1, wallZ, voxel.Air)
}

// buildHouseGarage attaches a one-story annex with a wide south opening.
func buildHouseGarage(g *voxel.Grid, r Rect, base int, p *Palette, rng *RNG) {
	buildFoundation(g, r, 1, p)
	buildWalls(g, r, base, storyHeight, p, true)
	buildFlatRoof(g, r, base+storyHeight, p)
	cx, _ := r.Center()
	g.Clear(cx-1, base, r.MaxZ, cx+1, base+2, r.MaxZ)
	furnishGarage(g, RoomBounds{r.MinX + 1, r.MinZ + 1, r.MaxX - 1, r.MaxZ - 1, base, storyHeight - 1}, p, rng)
}
