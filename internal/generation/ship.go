package generation

import (
	"math"

	"voxelforge.dev/internal/voxel"
)

// dimsShip reports the grid size a ship build will allocate: hull plus
// sea margin, bowsprit room and mast height.
func dimsShip(o GenerationOptions) (int, int, int) {
	deckY := o.Floors*4 + 2
	mastH := max(12, o.Length*45/100)
	return o.Width + 6, deckY + mastH + 3, o.Length + 6
}

// hullHalfWidth returns the hull half-width for one Z slice. Both ends
// taper on a sine curve; the bow takes a sharper exponent and the stern
// keeps a flat transom floor.
func hullHalfWidth(z, length, bowLen, sternLen int, maxHalf float64) float64 {
	switch {
	case z < bowLen:
		u := float64(z) / float64(bowLen)
		return maxHalf * math.Pow(math.Sin(u*math.Pi/2), 1.5)
	case z >= length-sternLen:
		u := float64(length-1-z) / float64(sternLen)
		return maxHalf * (0.55 + 0.45*math.Sin(u*math.Pi/2))
	default:
		return maxHalf
	}
}

// generateShip builds a three-masted sailing ship afloat on a water
// plane, bow to the north. The hull is swept slice by slice: each Z gets
// a half-width from the taper envelope and a V cross-section blended
// from keel to deck by smoothstep, filled solid and then hollowed to
// leave a one-block shell around the below-deck cabins.
func generateShip(o GenerationOptions, p *Palette, rng *RNG) (*voxel.Grid, error) {
	w, h, l := dimsShip(o)
	g, err := voxel.NewGrid(w, h, l)
	if err != nil {
		return nil, err
	}

	cx := w / 2
	const z0 = 5 // bow slice; cells north of it hold the bowsprit
	shipLen := o.Length
	maxHalf := float64(o.Width-1) / 2
	const keelY = 1
	deckY := o.Floors*4 + 2
	bowLen := shipLen / 3
	sternLen := shipLen / 4

	// 1. Sea surface.
	g.Fill(0, 0, 0, w-1, 2, l-1, p.Water)

	// 2. Hull sweep: fill the V section, hollow the interior, keel line.
	for zi := 0; zi < shipLen; zi++ {
		z := z0 + zi
		halfW := hullHalfWidth(zi, shipLen, bowLen, sternLen, maxHalf)
		for y := keelY; y <= deckY; y++ {
			t := float64(y-keelY) / float64(deckY-keelY)
			wy := lerp(0.6, halfW, smoothstep(t))
			wi := int(wy)
			for dx := -wi; dx <= wi; dx++ {
				g.Set(cx+dx, y, z, p.Planks)
			}
			if y >= keelY+2 && y < deckY && wi > 1 {
				for dx := -(wi - 1); dx <= wi-1; dx++ {
					g.Set(cx+dx, y, z, voxel.Air)
				}
			}
		}
		g.Set(cx, keelY, z, p.TimberZ)

		// Bulwark rail along the deck edge.
		wi := int(halfW)
		if wi >= 1 {
			g.Set(cx-wi, deckY+1, z, p.Fence)
			g.Set(cx+wi, deckY+1, z, p.Fence)
		}
	}

	// 3. Below-deck floors and their cabins. Slot 0 is the aft cabin,
	// which keeps the captain's quarters astern on floor 0.
	plan := PlanRooms(StructureShip, o.Rooms, o.Floors, 2)
	midZ := z0 + shipLen/2
	ib := max(1, int(maxHalf*0.5)-1)
	for f := 0; f < o.Floors; f++ {
		sy := keelY + 1 + f*4
		if f > 0 {
			for zi := 0; zi < shipLen; zi++ {
				halfW := hullHalfWidth(zi, shipLen, bowLen, sternLen, maxHalf)
				t := float64(sy-keelY) / float64(deckY-keelY)
				wi := int(lerp(0.6, halfW, smoothstep(t))) - 1
				for dx := -wi; dx <= wi; dx++ {
					g.Set(cx+dx, sy, z0+zi, p.Planks)
				}
			}
		}
		aft := RoomBounds{cx - ib, midZ + 2, cx + ib, z0 + shipLen - 6, sy + 1, 3}
		fore := RoomBounds{cx - ib, z0 + 4, cx + ib, midZ - 2, sy + 1, 3}
		if err := FurnishRoom(g, plan[f][0], aft, p, rng); err != nil {
			return nil, err
		}
		if err := FurnishRoom(g, plan[f][1], fore, p, rng); err != nil {
			return nil, err
		}
	}

	// 4. Deck hatch with a ladder down through every floor.
	hz := midZ + 2
	g.Set(cx, deckY, hz, voxel.Air)
	for y := keelY + 2; y < deckY; y++ {
		g.Set(cx, y, hz, p.Ladder(North))
	}

	// 5. Masts at quarter points, main mast tallest, with yards and
	// cosine-tapered sail rows hanging fore of each yard.
	mastH := max(12, shipLen*45/100)
	fracs := [3]float64{0.25, 0.5, 0.75}
	scale := [3]float64{0.85, 1.0, 0.75}
	for i := 0; i < 3; i++ {
		mz := z0 + int(float64(shipLen)*fracs[i])
		mh := int(float64(mastH) * scale[i])
		for y := deckY; y < deckY+mh; y++ {
			g.Set(cx, y, mz, p.TimberY)
		}
		yardHalf := int(maxHalf*0.9) + 1
		for _, yf := range [2]float64{0.55, 0.85} {
			yy := deckY + int(float64(mh)*yf)
			for dx := -yardHalf; dx <= yardHalf; dx++ {
				g.Set(cx+dx, yy, mz, p.TimberX)
			}
			rows := mh / 4
			for r := 1; r <= rows; r++ {
				sw := int(float64(yardHalf) * math.Cos(float64(r)/float64(rows+1)*math.Pi/3))
				for dx := -sw; dx <= sw; dx++ {
					g.Set(cx+dx, yy-r, mz-1, p.Sail)
				}
			}
		}
	}

	// 6. Bowsprit raking up and out over the bow.
	for i := 1; i <= 4; i++ {
		g.Set(cx, deckY+i/2, z0-i, p.TimberZ)
	}

	// 7. Stern cabin with its door toward the bow.
	cabHalf := max(2, int(maxHalf*0.7))
	cab := Rect{cx - cabHalf, z0 + shipLen - sternLen, cx + cabHalf, z0 + shipLen - 3}
	buildWalls(g, cab, deckY+1, 3, p, false)
	g.Fill(cab.MinX, deckY+4, cab.MinZ, cab.MaxX, deckY+4, cab.MaxZ, p.SlabBottom)
	placeDoorway(g, cx, deckY+1, cab.MinZ, North, p)
	g.Set(cab.MinX+1, deckY+2, cab.MinZ, p.Window)
	g.Set(cab.MaxX-1, deckY+2, cab.MinZ, p.Window)
	g.Set(cx, deckY+5, cab.MinZ+1, p.Lantern)
	return g, nil
}
