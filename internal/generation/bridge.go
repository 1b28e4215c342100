package generation

import (
	"voxelforge.dev/internal/voxel"
)

// dimsBridge reports the grid size a bridge build will allocate.
func dimsBridge(o GenerationOptions) (int, int, int) {
	return o.Width + 2, o.Length/6 + 14, o.Length
}

// generateBridge spans a river with a stone arch bridge. The underside
// of the masonry follows archHeight*(1-t*t) per Z slice, so the span is
// solid pier at both banks and thins to the bare deck at midspan. End
// towers flank the deck and a gatehouse guards the south approach.
func generateBridge(o GenerationOptions, p *Palette, rng *RNG) (*voxel.Grid, error) {
	w, h, l := dimsBridge(o)
	g, err := voxel.NewGrid(w, h, l)
	if err != nil {
		return nil, err
	}

	cx := w / 2
	deckHalf := (o.Width - 1) / 2
	archH := o.Length / 6
	deckY := archH + 2
	x1, x2 := cx-deckHalf, cx+deckHalf

	// 1. The river.
	g.Fill(0, 0, 0, w-1, 1, l-1, p.Water)

	// 2. Arch sweep: masonry from the parabola up to the deck.
	mid := float64(l-1) / 2
	for z := 0; z < l; z++ {
		t := (float64(z) - mid) / mid
		y0 := int(float64(archH) * (1 - t*t))
		for x := x1; x <= x2; x++ {
			for y := y0; y < deckY; y++ {
				g.Set(x, y, z, p.Foundation)
			}
			g.Set(x, deckY, z, p.FloorAlt)
		}
		g.Set(x1, deckY+1, z, p.Fence)
		g.Set(x2, deckY+1, z, p.Fence)
	}

	// 3. Lamps along both rails.
	for z := 6; z < l-6; z += 8 {
		buildLampPost(g, x1, deckY+1, z, p)
		buildLampPost(g, x2, deckY+1, z, p)
	}

	// 4. End towers on all four deck corners.
	towerTop := deckY + 6
	for _, c := range [4][2]int{{x1, 0}, {x2 - 2, 0}, {x1, l - 3}, {x2 - 2, l - 3}} {
		g.Fill(c[0], 2, c[1], c[0]+2, towerTop, c[1]+2, p.Wall)
		for _, m := range [4][2]int{{0, 0}, {2, 0}, {0, 2}, {2, 2}} {
			g.Set(c[0]+m[0], towerTop+1, c[1]+m[1], p.Wall)
		}
	}

	// 5. Gatehouse over the south approach with a barred passage crown.
	gz := l - 6
	g.Fill(x1, deckY+1, gz, x2, deckY+6, gz+2, p.Wall)
	g.Clear(cx-1, deckY+1, gz, cx+1, deckY+4, gz+2)
	for x := cx - 1; x <= cx+1; x++ {
		g.Set(x, deckY+4, gz+1, p.Bars)
	}
	for x := x1; x <= x2; x += 2 {
		g.Set(x, deckY+7, gz, p.Wall)
		g.Set(x, deckY+7, gz+2, p.Wall)
	}
	g.Set(cx-2, deckY+2, gz+3, p.WallTorch(South))
	g.Set(cx+2, deckY+2, gz+3, p.WallTorch(South))
	return g, nil
}
