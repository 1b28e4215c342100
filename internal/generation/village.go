package generation

import (
	"math"

	"voxelforge.dev/internal/voxel"
)

// buildingSpot is one slot in the village ring: where a sub-build gets
// pasted, whether it is mirrored, and where its door meets the ground.
// Spots live only within a single village generation call.
type buildingSpot struct {
	typ    StructureType
	x, z   int // paste offset, min corner
	w, l   int
	door   Anchor
	mirror bool
}

// dimsVillage reports the grid size a village build will allocate. The
// footprint is fixed by the layout geometry, never by the RNG, so the
// estimate stays exact.
func dimsVillage(o GenerationOptions) (int, int, int) {
	size := max(o.Width, o.Length)
	return size, 36, size
}

// generateVillage composes six independently generated buildings around
// a central plaza. One RNG stream is threaded sequentially through the
// slots in ring order; each sub-build runs on its own private grid and
// is pasted non-air-only into the master. Buildings in the south half
// of the ring are mirrored along Z so their doors face the plaza.
func generateVillage(o GenerationOptions, p *Palette, rng *RNG) (*voxel.Grid, error) {
	size, h, _ := dimsVillage(o)
	g, err := voxel.NewGrid(size, h, size)
	if err != nil {
		return nil, err
	}

	cx, cz := size/2, size/2

	// 1. Common ground and the plaza.
	g.Fill(0, 0, 0, size-1, 0, size-1, p.Ground)
	fillDisk(g, cx, 0, cz, 8, p.Path)
	buildWell(g, cx, 1, cz, p)
	buildLampPost(g, cx-5, 1, cz-5, p)
	buildLampPost(g, cx+5, 1, cz-5, p)
	buildLampPost(g, cx-5, 1, cz+5, p)
	buildLampPost(g, cx+5, 1, cz+5, p)

	// 2. Six ring slots, 60 degrees apart starting due north. Each
	// slot draws from its own candidate set.
	ringR := float64(size)/2 - 14
	types := chooseSlotTypes(rng)
	spots := make([]buildingSpot, 0, 6)
	for i := 0; i < 6; i++ {
		a := -math.Pi/2 + float64(i)*math.Pi/3
		sx := cx + int(math.Round(ringR*math.Cos(a)))
		sz := cz + int(math.Round(ringR*math.Sin(a)))

		typ := types[i]
		sub := villageSubOptions(typ, o.Style, rng)

		var sg *voxel.Grid
		switch typ {
		case StructureTower:
			sg, err = generateTower(sub, p, rng)
		case StructureWindmill:
			sg, err = generateWindmill(sub, p, rng)
		case StructureMarket:
			sg, err = generateMarket(sub, p, rng)
		default:
			sg, err = generateHouse(sub, p, rng)
		}
		if err != nil {
			return nil, err
		}

		sw, sl := sg.Width(), sg.Length()
		spot := buildingSpot{
			typ:    typ,
			x:      sx - sw/2,
			z:      sz - sl/2,
			w:      sw,
			l:      sl,
			mirror: sz > cz,
		}
		spot.door = spotDoor(spot, sub)
		pasteGrid(g, sg, spot.x, 0, spot.z, spot.mirror)
		spots = append(spots, spot)
	}

	// 3. L-shaped paths from every door to the plaza.
	for _, s := range spots {
		carvePath(g, s.door.X, s.door.Z, cx, cz, p.Path)
	}

	// 4. Perimeter fence with the gate on the south road.
	buildFencePerimeter(g, Rect{1, 1, size - 2, size - 2}, 1, p)
	carvePath(g, cx, cz+8, cx, size-1, p.Path)
	g.Set(cx, 1, size-2, p.GateNS)
	return g, nil
}

// slotCandidates fixes which structures may occupy each ring slot, in
// ring order from due north. Houses dominate; the tower, windmill and
// market are each bound to a single slot, so no village ever holds
// more than one of any of them.
var slotCandidates = [6][]StructureType{
	{StructureHouse, StructureTower},
	{StructureHouse},
	{StructureHouse, StructureWindmill},
	{StructureHouse},
	{StructureHouse, StructureMarket},
	{StructureHouse},
}

// chooseSlotTypes draws one structure per ring slot from that slot's
// candidate set, in slot order, off the shared stream.
func chooseSlotTypes(rng *RNG) [6]StructureType {
	var types [6]StructureType
	for i, cands := range slotCandidates {
		types[i] = cands[rng.Intn(len(cands))]
	}
	return types
}

// villageSubOptions builds the options for one ring building. Draw
// order is fixed so the shared stream stays reproducible.
func villageSubOptions(typ StructureType, style string, rng *RNG) GenerationOptions {
	sub := GenerationOptions{
		Type:   typ,
		Style:  style,
		Width:  9,
		Length: 9,
		Plan:   PlanRect,
		Roof:   RoofGable,
	}
	switch typ {
	case StructureTower:
		sub.Floors = rng.IntRange(3, 4)
	case StructureWindmill:
		sub.Floors = 2
	case StructureMarket:
		sub.Floors = 1
		sub.Width = 21
		sub.Length = 21
	default:
		sub.Floors = rng.IntRange(1, 2)
		sub.Features = Features{Chimney: true}
	}
	return sub
}

// spotDoor computes the world cell just outside a pasted building's
// door, flipping it to the opposite face when the build is mirrored.
func spotDoor(s buildingSpot, sub GenerationOptions) Anchor {
	var local Anchor
	switch s.typ {
	case StructureTower:
		ri := (sub.Width - 1) / 2
		local = Anchor{s.w / 2, 0, s.l/2 + ri + 1, South}
	case StructureWindmill:
		ri := (sub.Width - 1) / 2
		local = Anchor{s.w/2 + ri + 1, 0, s.l / 2, East}
	default:
		local = Anchor{s.w / 2, 0, s.l - 1, South}
	}
	if s.mirror {
		local.Z = s.l - 1 - local.Z
		if local.Facing == North || local.Facing == South {
			local.Facing = local.Facing.Opposite()
		}
	}
	return Anchor{s.x + local.X, 0, s.z + local.Z, local.Facing}
}

// pasteGrid copies every non-air cell of src into dst at the given
// offset. A mirrored paste flips the Z axis and rewrites north/south
// facing states so doors and stairs stay physically oriented.
func pasteGrid(dst, src *voxel.Grid, ox, oy, oz int, mirrorZ bool) {
	sw, sh, sl := src.Width(), src.Height(), src.Length()
	for y := 0; y < sh; y++ {
		for z := 0; z < sl; z++ {
			for x := 0; x < sw; x++ {
				b := src.Get(x, y, z)
				if voxel.IsAir(b) {
					continue
				}
				tz := z
				if mirrorZ {
					tz = sl - 1 - z
					b = voxel.FlipNorthSouth(b)
				}
				dst.Set(ox+x, oy+y, oz+tz, b)
			}
		}
	}
	for _, e := range src.Entities() {
		tz := e.Z
		if mirrorZ {
			tz = sl - 1 - e.Z
		}
		dst.SetEntity(voxel.BlockEntity{X: ox + e.X, Y: oy + e.Y, Z: oz + tz, ID: e.ID, Items: e.Items})
	}
}

// carvePath lays an L-shaped path in the ground layer: the X leg first,
// then the Z leg.
func carvePath(g *voxel.Grid, x0, z0, x1, z1 int, block string) {
	sx := 1
	if x1 < x0 {
		sx = -1
	}
	for x := x0; x != x1+sx; x += sx {
		g.Set(x, 0, z0, block)
	}
	sz := 1
	if z1 < z0 {
		sz = -1
	}
	for z := z0; z != z1+sz; z += sz {
		g.Set(x1, 0, z, block)
	}
}
