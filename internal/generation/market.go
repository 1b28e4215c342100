package generation

import (
	"voxelforge.dev/internal/voxel"
)

// dimsMarket reports the grid size a marketplace build will allocate.
func dimsMarket(o GenerationOptions) (int, int, int) {
	return o.Width, 8, o.Length
}

// marketGoods is the item pool traders stock their crates from.
var marketGoods = []string{"bread", "apple", "emerald", "wheat", "leather", "string"}

// generateMarket paves a plaza ringed by canopied stalls, with a well
// at the center, lamp posts on the corners and crates of goods between
// the stalls.
func generateMarket(o GenerationOptions, p *Palette, rng *RNG) (*voxel.Grid, error) {
	w, h, l := dimsMarket(o)
	g, err := voxel.NewGrid(w, h, l)
	if err != nil {
		return nil, err
	}

	cx, cz := w/2, l/2
	plaza := Rect{3, 3, w - 4, l - 4}

	// 1. Grass apron around a paved plaza.
	g.Fill(0, 0, 0, w-1, 0, l-1, p.Ground)
	g.Fill(plaza.MinX, 0, plaza.MinZ, plaza.MaxX, 0, plaza.MaxZ, p.Path)

	// 2. Well and corner lamps.
	buildWell(g, cx, 1, cz, p)
	buildLampPost(g, plaza.MinX+1, 1, plaza.MinZ+1, p)
	buildLampPost(g, plaza.MaxX-1, 1, plaza.MinZ+1, p)
	buildLampPost(g, plaza.MinX+1, 1, plaza.MaxZ-1, p)
	buildLampPost(g, plaza.MaxX-1, 1, plaza.MaxZ-1, p)

	// 3. Stall rows: west and east columns face the well, a north row
	// faces south. Most stalls get a stocked counter chest.
	for z := plaza.MinZ + 3; z+4 <= plaza.MaxZ-3; z += 6 {
		buildStall(g, plaza.MinX+1, 1, z, 3, 4, p)
		if rng.Chance(0.8) {
			placeChest(g, p, plaza.MinX+2, 1, z+1, East, chestItems(rng, marketGoods, rng.IntRange(2, 6)))
		}
		buildStall(g, plaza.MaxX-3, 1, z, 3, 4, p)
		if rng.Chance(0.8) {
			placeChest(g, p, plaza.MaxX-2, 1, z+1, West, chestItems(rng, marketGoods, rng.IntRange(2, 6)))
		}
	}
	for x := plaza.MinX + 6; x+4 <= plaza.MaxX-6; x += 6 {
		buildStall(g, x, 1, plaza.MinZ+1, 4, 3, p)
		if rng.Chance(0.8) {
			placeChest(g, p, x+1, 1, plaza.MinZ+2, South, chestItems(rng, marketGoods, rng.IntRange(2, 6)))
		}
	}

	// 4. Loose crates stacked along the south edge.
	crates := rng.IntRange(3, 6)
	for i := 0; i < crates; i++ {
		x := rng.IntRange(plaza.MinX+2, plaza.MaxX-2)
		placeChest(g, p, x, 1, plaza.MaxZ-1, North, chestItems(rng, marketGoods, rng.IntRange(1, 4)))
	}

	// 5. Shade trees outside the paving.
	buildTree(g, 2, 1, 2, p, rng)
	buildTree(g, w-3, 1, 2, p, rng)
	buildTree(g, 2, 1, l-3, p, rng)
	buildTree(g, w-3, 1, l-3, p, rng)
	return g, nil
}
