package generation

import (
	"math"

	"github.com/aquilax/go-perlin"

	"voxelforge.dev/internal/voxel"
)

// storyHeight is the vertical span of one story: floor slab plus three
// air blocks of headroom.
const storyHeight = 4

// buildFoundation lays a solid slab of foundation material under a footprint.
func buildFoundation(g *voxel.Grid, r Rect, y int, p *Palette) {
	g.Fill(r.MinX, y, r.MinZ, r.MaxX, y, r.MaxZ, p.Foundation)
}

// buildFloor lays one flooring layer across a footprint.
func buildFloor(g *voxel.Grid, r Rect, y int, block string) {
	g.Fill(r.MinX, y, r.MinZ, r.MaxX, y, r.MaxZ, block)
}

// buildWalls raises the perimeter of a footprint by h blocks. With
// framed set, corners become vertical timber posts.
func buildWalls(g *voxel.Grid, r Rect, y0, h int, p *Palette, framed bool) {
	for y := y0; y < y0+h; y++ {
		for x := r.MinX; x <= r.MaxX; x++ {
			g.Set(x, y, r.MinZ, p.Wall)
			g.Set(x, y, r.MaxZ, p.Wall)
		}
		for z := r.MinZ; z <= r.MaxZ; z++ {
			g.Set(r.MinX, y, z, p.Wall)
			g.Set(r.MaxX, y, z, p.Wall)
		}
		if framed {
			g.Set(r.MinX, y, r.MinZ, p.TimberY)
			g.Set(r.MaxX, y, r.MinZ, p.TimberY)
			g.Set(r.MinX, y, r.MaxZ, p.TimberY)
			g.Set(r.MaxX, y, r.MaxZ, p.TimberY)
		}
	}
}

// punchWindows cuts window panes into all four walls at one height,
// spaced evenly and kept clear of the corners.
func punchWindows(g *voxel.Grid, r Rect, y, spacing int, p *Palette) {
	for x := r.MinX + 2; x <= r.MaxX-2; x += spacing {
		g.Set(x, y, r.MinZ, p.Window)
		g.Set(x, y, r.MaxZ, p.Window)
	}
	for z := r.MinZ + 2; z <= r.MaxZ-2; z += spacing {
		g.Set(r.MinX, y, z, p.Window)
		g.Set(r.MaxX, y, z, p.Window)
	}
}

// placeDoorway cuts a doorway into a wall cell and hangs a door facing d.
func placeDoorway(g *voxel.Grid, x, y, z int, d Direction, p *Palette) {
	lower, upper := p.Door(d)
	g.Set(x, y, z, lower)
	g.Set(x, y+1, z, upper)
}

// buildStairRun places a straight run of steps ascending toward d, with
// solid risers filled in underneath.
func buildStairRun(g *voxel.Grid, x, y, z int, d Direction, steps int, p *Palette) {
	dx, dz := d.Delta()
	for i := 0; i < steps; i++ {
		sx, sz := x+dx*i, z+dz*i
		g.Set(sx, y+i, sz, p.Stair(d))
		for yy := y; yy < y+i; yy++ {
			g.Set(sx, yy, sz, p.Planks)
		}
	}
}

// buildSpiralStairs winds alternating bottom/top slabs around a center
// column between two heights. startAngle rotates the entry point so
// stacked flights line up floor to floor.
func buildSpiralStairs(g *voxel.Grid, cx, cz int, radius float64, y0, y1 int, startAngle float64, p *Palette) {
	steps := (y1 - y0) * 2
	if steps <= 0 {
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		ang := startAngle + t*3*math.Pi
		x := cx + int(math.Round(math.Cos(ang)*radius))
		z := cz + int(math.Round(math.Sin(ang)*radius))
		y := y0 + i/2
		if i%2 == 0 {
			g.Set(x, y, z, p.SlabBottom)
		} else {
			g.Set(x, y, z, p.SlabTop)
		}
	}
}

// fillDisk fills one horizontal disk of the given radius. The half-cell
// slack keeps cardinal-point cells inside the circle.
func fillDisk(g *voxel.Grid, cx, y, cz int, r float64, block string) {
	ri := int(math.Ceil(r))
	for dx := -ri; dx <= ri; dx++ {
		for dz := -ri; dz <= ri; dz++ {
			if float64(dx*dx+dz*dz) <= r*r+0.5 {
				g.Set(cx+dx, y, cz+dz, block)
			}
		}
	}
}

// clearDisk carves one horizontal disk back to air.
func clearDisk(g *voxel.Grid, cx, y, cz int, r float64) {
	ri := int(math.Ceil(r))
	for dx := -ri; dx <= ri; dx++ {
		for dz := -ri; dz <= ri; dz++ {
			if float64(dx*dx+dz*dz) <= r*r+0.5 {
				g.Set(cx+dx, y, cz+dz, voxel.Air)
			}
		}
	}
}

// buildFlatRoof caps a footprint with a single slab layer.
func buildFlatRoof(g *voxel.Grid, r Rect, y int, p *Palette) {
	g.Fill(r.MinX, y, r.MinZ, r.MaxX, y, r.MaxZ, p.RoofSlabBottom)
}

// buildGableRoof raises stair rows from the east and west eaves until
// they meet at a ridge running along Z, closing the north and south ends
// with gable walls.
func buildGableRoof(g *voxel.Grid, r Rect, y int, p *Palette) {
	half := (r.Width() - 1) / 2
	for i := 0; i <= half; i++ {
		yy := y + i
		x1 := r.MinX + i
		x2 := r.MaxX - i
		for z := r.MinZ; z <= r.MaxZ; z++ {
			if x1 == x2 {
				g.Set(x1, yy, z, p.RoofSlabBottom)
			} else {
				g.Set(x1, yy, z, p.RoofStairs(East))
				g.Set(x2, yy, z, p.RoofStairs(West))
			}
		}
		for x := x1 + 1; x <= x2-1; x++ {
			g.Set(x, yy, r.MinZ, p.Wall)
			g.Set(x, yy, r.MaxZ, p.Wall)
		}
	}
}

// buildHipRoof shrinks stair rings inward on all four sides until the
// remaining cap closes with slabs.
func buildHipRoof(g *voxel.Grid, r Rect, y int, p *Palette) {
	for i := 0; ; i++ {
		x1, x2 := r.MinX+i, r.MaxX-i
		z1, z2 := r.MinZ+i, r.MaxZ-i
		if x1 > x2 || z1 > z2 {
			return
		}
		yy := y + i
		if x2-x1 <= 1 || z2-z1 <= 1 {
			g.Fill(x1, yy, z1, x2, yy, z2, p.RoofSlabBottom)
			return
		}
		for x := x1; x <= x2; x++ {
			g.Set(x, yy, z1, p.RoofStairs(South))
			g.Set(x, yy, z2, p.RoofStairs(North))
		}
		for z := z1; z <= z2; z++ {
			g.Set(x1, yy, z, p.RoofStairs(East))
			g.Set(x2, yy, z, p.RoofStairs(West))
		}
	}
}

// buildConicalRoof stacks shrinking rings into a cone, finishing with a
// single cap block.
func buildConicalRoof(g *voxel.Grid, cx, y, cz int, radius float64, p *Palette) {
	levels := int(radius) + 1
	for i := 0; i < levels; i++ {
		r := radius - float64(i)
		if r < 0.5 {
			break
		}
		fillDisk(g, cx, y+i, cz, r, p.RoofBlock)
		if r > 1.5 {
			clearDisk(g, cx, y+i, cz, r-1)
		}
	}
	g.Set(cx, y+levels, cz, p.RoofBlock)
}

// buildChimney raises a chimney column with slab shoulders at the flue.
func buildChimney(g *voxel.Grid, x, y0, z, h int, p *Palette) {
	for y := y0; y < y0+h; y++ {
		g.Set(x, y, z, p.Foundation)
	}
	g.Set(x+1, y0+h-1, z, p.SlabBottom)
	g.Set(x-1, y0+h-1, z, p.SlabBottom)
}

// buildFencePerimeter rings a footprint with fencing, leaving a gate at
// the south-center cell.
func buildFencePerimeter(g *voxel.Grid, r Rect, y int, p *Palette) {
	gateX, _ := r.Center()
	for x := r.MinX; x <= r.MaxX; x++ {
		g.Set(x, y, r.MinZ, p.Fence)
		if x == gateX {
			g.Set(x, y, r.MaxZ, p.GateNS)
		} else {
			g.Set(x, y, r.MaxZ, p.Fence)
		}
	}
	for z := r.MinZ; z <= r.MaxZ; z++ {
		g.Set(r.MinX, y, z, p.Fence)
		g.Set(r.MaxX, y, z, p.Fence)
	}
}

// buildLampPost raises a fence post with a lantern on top.
func buildLampPost(g *voxel.Grid, x, y, z int, p *Palette) {
	g.Set(x, y, z, p.Fence)
	g.Set(x, y+1, z, p.Fence)
	g.Set(x, y+2, z, p.Fence)
	g.Set(x, y+3, z, p.Lantern)
}

// buildTree grows a small tree with a random trunk height and a leaf
// blob shaped by taxicab distance.
func buildTree(g *voxel.Grid, x, y, z int, p *Palette, rng *RNG) {
	h := rng.IntRange(4, 6)
	for dy := 0; dy < 2; dy++ {
		ly := y + h - 2 + dy
		for dx := -2; dx <= 2; dx++ {
			for dz := -2; dz <= 2; dz++ {
				if abs(dx)+abs(dz) <= 3 {
					g.Set(x+dx, ly, z+dz, p.Leaves)
				}
			}
		}
	}
	for dx := -1; dx <= 1; dx++ {
		for dz := -1; dz <= 1; dz++ {
			if abs(dx)+abs(dz) <= 1 {
				g.Set(x+dx, y+h, z+dz, p.Leaves)
			}
		}
	}
	for dy := 0; dy < h; dy++ {
		g.Set(x, y+dy, z, p.TimberY)
	}
}

// scatterGarden sows flowers over open ground, shaped by a noise field
// so beds cluster instead of speckling uniformly.
func scatterGarden(g *voxel.Grid, r Rect, y int, p *Palette, rng *RNG, noise *perlin.Perlin) {
	if len(p.Flowers) == 0 {
		return
	}
	for x := r.MinX; x <= r.MaxX; x++ {
		for z := r.MinZ; z <= r.MaxZ; z++ {
			if g.Get(x, y, z) != voxel.Air || g.Get(x, y-1, z) != p.Ground {
				continue
			}
			n := noise.Noise2D(float64(x)/7.0, float64(z)/7.0)
			if n > 0.18 && rng.Chance(0.6) {
				g.Set(x, y, z, rng.Pick(p.Flowers))
			}
		}
	}
}

// buildWell sinks a 3x3 well: stone rim around water, corner posts and a
// slab canopy.
func buildWell(g *voxel.Grid, cx, y, cz int, p *Palette) {
	for dx := -1; dx <= 1; dx++ {
		for dz := -1; dz <= 1; dz++ {
			if dx == 0 && dz == 0 {
				g.Set(cx, y, cz, p.Water)
			} else {
				g.Set(cx+dx, y, cz+dz, p.Foundation)
			}
		}
	}
	for _, c := range [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}} {
		g.Set(cx+c[0], y+1, cz+c[1], p.Fence)
		g.Set(cx+c[0], y+2, cz+c[1], p.Fence)
	}
	g.Fill(cx-1, y+3, cz-1, cx+1, y+3, cz+1, p.SlabBottom)
}

// buildStall raises a market stall: corner posts, a striped canopy and a
// counter along the front.
func buildStall(g *voxel.Grid, x, y, z, w, l int, p *Palette) {
	x2, z2 := x+w-1, z+l-1
	for _, c := range [4][2]int{{x, z}, {x2, z}, {x, z2}, {x2, z2}} {
		g.Set(c[0], y, c[1], p.Fence)
		g.Set(c[0], y+1, c[1], p.Fence)
	}
	for cx := x; cx <= x2; cx++ {
		for cz := z; cz <= z2; cz++ {
			if (cx+cz)%2 == 0 {
				g.Set(cx, y+2, cz, p.Carpet)
			} else {
				g.Set(cx, y+2, cz, p.SlabBottom)
			}
		}
	}
	for cx := x + 1; cx <= x2-1; cx++ {
		g.Set(cx, y, z2, p.SlabTop)
	}
}

// lerp interpolates linearly between a and b.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// smoothstep is the cubic ease curve used for hull cross-sections.
func smoothstep(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t * t * (3 - 2*t)
}

// newNoise builds a perlin field whose seed comes off the generation
// RNG, keeping the noise deterministic per request.
func newNoise(rng *RNG) *perlin.Perlin {
	return perlin.NewPerlin(2, 2, 3, int64(rng.Intn(1<<30)))
}
