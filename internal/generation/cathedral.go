package generation

import (
	"math"

	"voxelforge.dev/internal/voxel"
)

// dimsCathedral reports the grid size a cathedral build will allocate.
// The belfry tower, not the nave roof, sets the height.
func dimsCathedral(o GenerationOptions) (int, int, int) {
	naveH := 10 + o.Width/4
	return o.Width, naveH + 11, o.Length
}

// generateCathedral builds a gothic hall on a nave-and-aisles plan. The
// nave rises a full clerestory above the aisle roofs, the north end
// closes with a semicircular apse filled by radius threshold, and the
// south facade carries the entrance under a rose window of concentric
// glass bands.
func generateCathedral(o GenerationOptions, p *Palette, rng *RNG) (*voxel.Grid, error) {
	w, h, l := dimsCathedral(o)
	g, err := voxel.NewGrid(w, h, l)
	if err != nil {
		return nil, err
	}

	cx := w / 2
	nw2 := o.Width / 5 // nave half-width
	naveH := 10 + o.Width/4
	aisleH := naveH * 3 / 5
	apseR := nw2 + 2
	ac := 2 + apseR     // apse center Z
	southZ := l - 3     // facade plane
	naveW := Rect{cx - nw2, ac, cx + nw2, southZ}
	body := Rect{2, ac, w - 3, southZ}

	// 1. Ground and the stone floor slab.
	g.Fill(0, 0, 0, w-1, 0, l-1, p.Ground)
	buildFloor(g, body, 1, p.Floor)

	// 2. Aisle outer walls with lancet windows.
	for y := 1; y < aisleH; y++ {
		for z := body.MinZ; z <= body.MaxZ; z++ {
			g.Set(body.MinX, y, z, p.Wall)
			g.Set(body.MaxX, y, z, p.Wall)
		}
	}
	for z := body.MinZ + 2; z <= body.MaxZ-2; z += 3 {
		for y := 2; y <= 3; y++ {
			g.Set(body.MinX, y, z, p.Window)
			g.Set(body.MaxX, y, z, p.Window)
		}
	}

	// 3. Nave boundary: open arcade below, clerestory wall above.
	for z := naveW.MinZ; z <= naveW.MaxZ; z++ {
		for y := aisleH; y < naveH; y++ {
			g.Set(naveW.MinX, y, z, p.Wall)
			g.Set(naveW.MaxX, y, z, p.Wall)
		}
	}
	for z := naveW.MinZ + 1; z <= naveW.MaxZ-1; z += 4 {
		for y := 1; y < aisleH; y++ {
			g.Set(naveW.MinX, y, z, p.PillarY)
			g.Set(naveW.MaxX, y, z, p.PillarY)
		}
	}
	for z := naveW.MinZ + 2; z <= naveW.MaxZ-2; z += 3 {
		g.Set(naveW.MinX, aisleH+2, z, p.Window)
		g.Set(naveW.MaxX, aisleH+2, z, p.Window)
	}

	// 4. Roofs: flat aisle slabs, gabled nave.
	g.Fill(body.MinX, aisleH, body.MinZ, naveW.MinX-1, aisleH, body.MaxZ, p.RoofSlabBottom)
	g.Fill(naveW.MaxX+1, aisleH, body.MinZ, body.MaxX, aisleH, body.MaxZ, p.RoofSlabBottom)
	buildGableRoof(g, Rect{naveW.MinX, naveW.MinZ, naveW.MaxX, naveW.MaxZ}, naveH, p)

	// 5. South facade: solid faces, then the portal and rose window.
	for x := body.MinX; x <= body.MaxX; x++ {
		top := aisleH
		if x >= naveW.MinX && x <= naveW.MaxX {
			top = naveH
		}
		for y := 1; y < top; y++ {
			g.Set(x, y, southZ, p.Wall)
		}
	}
	g.Clear(cx-1, 1, southZ, cx, 3, southZ)
	placeDoorway(g, cx-1, 1, southZ, South, p)
	placeDoorway(g, cx, 1, southZ, South, p)
	g.Set(cx-2, 2, southZ+1, p.WallTorch(South))
	g.Set(cx+1, 2, southZ+1, p.WallTorch(South))
	for z := southZ + 1; z < l; z++ {
		g.Set(cx-1, 0, z, p.Path)
		g.Set(cx, 0, z, p.Path)
	}
	buildRoseWindow(g, cx, aisleH+(naveH-aisleH)/2, southZ, nw2-1, p)

	// 6. Apse: a semicircular shell closing the north end, domed by
	// shrinking half-rings.
	apseH := naveH - 3
	for dx := -apseR; dx <= apseR; dx++ {
		for dz := -apseR; dz <= 0; dz++ {
			d := math.Sqrt(float64(dx*dx + dz*dz))
			if d > float64(apseR) {
				continue
			}
			g.Set(cx+dx, 1, ac+dz, p.Floor)
			if d > float64(apseR)-1.2 {
				for y := 1; y < apseH; y++ {
					g.Set(cx+dx, y, ac+dz, p.Wall)
				}
			}
		}
	}
	for i := 0; i <= apseR; i++ {
		r := apseR - i
		for dx := -r; dx <= r; dx++ {
			for dz := -r; dz <= 0; dz++ {
				d := math.Sqrt(float64(dx*dx + dz*dz))
				if d <= float64(r) && d > float64(r)-1.5 {
					g.Set(cx+dx, apseH+i, ac+dz, p.RoofBlock)
				}
			}
		}
	}
	for x := naveW.MinX; x <= naveW.MaxX; x++ {
		for y := apseH; y < naveH; y++ {
			g.Set(x, y, ac, p.Wall)
		}
	}

	// 7. Flying buttresses down both flanks.
	for z := body.MinZ + 4; z <= body.MaxZ-4; z += 5 {
		buildButtress(g, body.MinX-1, z, aisleH, East, p)
		buildButtress(g, body.MaxX+1, z, aisleH, West, p)
	}

	// 8. Belfry tower on the southwest corner.
	belfryTop := naveH + 8
	tower := Rect{2, southZ - 6, 6, southZ - 2}
	buildWalls(g, tower, 1, belfryTop, p, false)
	for y := belfryTop - 3; y <= belfryTop-2; y++ {
		tcx, tcz := tower.Center()
		g.Set(tower.MinX, y, tcz, p.Window)
		g.Set(tower.MaxX, y, tcz, p.Window)
		g.Set(tcx, y, tower.MinZ, p.Window)
		g.Set(tcx, y, tower.MaxZ, p.Window)
	}
	buildHipRoof(g, tower, belfryTop, p)

	// 9. Furnish: nave pews, apse chapel, belfry chamber.
	plan := PlanRooms(StructureCathedral, o.Rooms, 1, 3)
	naveRoom := RoomBounds{naveW.MinX + 1, naveW.MinZ + 1, naveW.MaxX - 1, naveW.MaxZ - 1, 2, 4}
	chapel := RoomBounds{cx - apseR + 2, ac - apseR + 2, cx + apseR - 2, ac, 2, 4}
	belfry := RoomBounds{tower.MinX + 1, tower.MinZ + 1, tower.MaxX - 1, tower.MaxZ - 1, belfryTop - 4, 4}
	for i, b := range [3]RoomBounds{naveRoom, chapel, belfry} {
		if err := FurnishRoom(g, plan[0][i], b, p, rng); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// buildRoseWindow sets a disk of stained glass on a Z-facing wall plane,
// colored in concentric bands.
func buildRoseWindow(g *voxel.Grid, cx, cy, z, radius int, p *Palette) {
	if radius < 1 || len(p.RoseGlass) == 0 {
		return
	}
	for dx := -radius; dx <= radius; dx++ {
		for dy := -radius; dy <= radius; dy++ {
			d := math.Sqrt(float64(dx*dx + dy*dy))
			if d > float64(radius) {
				continue
			}
			band := int(d) % len(p.RoseGlass)
			g.Set(cx+dx, cy+dy, z, p.RoseGlass[band])
		}
	}
}

// buildButtress raises one stepped pier-and-arch motif leaning toward
// the nave. in is the direction from the pier toward the building.
func buildButtress(g *voxel.Grid, x, z, aisleH int, in Direction, p *Palette) {
	dx, _ := in.Delta()
	for y := 1; y <= aisleH+1; y++ {
		g.Set(x, y, z, p.WallAccent)
	}
	g.Set(x, aisleH+2, z, p.SlabBottom)
	g.Set(x+dx, aisleH+2, z, p.Stair(in))
	g.Set(x+2*dx, aisleH+3, z, p.Stair(in))
}
