package generation

import (
	"testing"

	"voxelforge.dev/internal/voxel"
)

func newTestGrid(t *testing.T, w, h, l int) *voxel.Grid {
	t.Helper()
	g, err := voxel.NewGrid(w, h, l)
	if err != nil {
		t.Fatalf("new grid: %v", err)
	}
	return g
}

func TestBuildWallsFramed(t *testing.T) {
	g := newTestGrid(t, 12, 8, 12)
	p := testPalette(t)
	r := Rect{2, 2, 8, 8}
	buildWalls(g, r, 1, 3, p, true)

	for y := 1; y <= 3; y++ {
		if got := g.Get(2, y, 2); got != p.TimberY {
			t.Errorf("corner at y=%d: got %q, want timber post", y, got)
		}
		if got := g.Get(5, y, 2); got != p.Wall {
			t.Errorf("north face at y=%d: got %q, want wall", y, got)
		}
	}
	if got := g.Get(5, 1, 5); got != voxel.Air {
		t.Errorf("interior cell filled: %q", got)
	}
	if got := g.Get(2, 4, 2); got != voxel.Air {
		t.Errorf("wall overshot height: %q", got)
	}
}

func TestPunchWindowsKeepsCorners(t *testing.T) {
	g := newTestGrid(t, 14, 8, 14)
	p := testPalette(t)
	r := Rect{2, 2, 10, 10}
	buildWalls(g, r, 1, 4, p, false)
	punchWindows(g, r, 3, 3, p)

	if got := g.Get(4, 3, 2); got != p.Window {
		t.Errorf("north wall window: got %q", got)
	}
	if got := g.Get(2, 3, 4); got != p.Window {
		t.Errorf("west wall window: got %q", got)
	}
	if got := g.Get(2, 3, 2); got != p.Wall {
		t.Errorf("corner punched: got %q", got)
	}
}

func TestBuildStairRunClimbs(t *testing.T) {
	g := newTestGrid(t, 12, 8, 12)
	p := testPalette(t)
	buildStairRun(g, 2, 1, 5, East, 4, p)

	for i := 0; i < 4; i++ {
		if got := g.Get(2+i, 1+i, 5); got != p.Stair(East) {
			t.Errorf("step %d: got %q, want east stair", i, got)
		}
	}
	// Risers under the last step are filled solid.
	for y := 1; y < 4; y++ {
		if got := g.Get(5, y, 5); got != p.Planks {
			t.Errorf("riser at y=%d: got %q, want planks", y, got)
		}
	}
}

func TestSpiralStairsStayInRadius(t *testing.T) {
	g := newTestGrid(t, 18, 10, 18)
	p := testPalette(t)
	const cx, cz, radius = 8, 8, 3.0
	buildSpiralStairs(g, cx, cz, radius, 1, 5, 0, p)

	perLevel := make(map[int]int)
	for y := 0; y < g.Height(); y++ {
		for z := 0; z < g.Length(); z++ {
			for x := 0; x < g.Width(); x++ {
				if g.Get(x, y, z) == voxel.Air {
					continue
				}
				if y < 1 || y > 5 {
					t.Fatalf("step outside height range at (%d,%d,%d)", x, y, z)
				}
				if abs(x-cx) > 3 || abs(z-cz) > 3 {
					t.Fatalf("step outside radius at (%d,%d,%d)", x, y, z)
				}
				perLevel[y]++
			}
		}
	}
	for y := 1; y <= 5; y++ {
		if perLevel[y] == 0 {
			t.Errorf("no step at level y=%d", y)
		}
	}
}

func TestGableRoofRidgeAndCoverage(t *testing.T) {
	g := newTestGrid(t, 14, 10, 14)
	p := testPalette(t)
	r := Rect{2, 2, 8, 10}
	buildGableRoof(g, r, 1, p)

	// Odd 7-wide span peaks in a single slab ridge along Z.
	for z := r.MinZ; z <= r.MaxZ; z++ {
		if got := g.Get(5, 4, z); got != p.RoofSlabBottom {
			t.Errorf("ridge at z=%d: got %q", z, got)
		}
	}
	if got := g.Get(2, 1, 5); got != p.RoofStairs(East) {
		t.Errorf("west eave: got %q", got)
	}
	if got := g.Get(8, 1, 5); got != p.RoofStairs(West) {
		t.Errorf("east eave: got %q", got)
	}
	if got := g.Get(4, 2, 2); got != p.Wall {
		t.Errorf("north gable wall: got %q", got)
	}
	// Every footprint column is sheltered by at least one roof block.
	for x := r.MinX; x <= r.MaxX; x++ {
		for z := r.MinZ; z <= r.MaxZ; z++ {
			covered := false
			for y := 1; y <= 4; y++ {
				if g.Get(x, y, z) != voxel.Air {
					covered = true
					break
				}
			}
			if !covered {
				t.Fatalf("column (%d,%d) has no roof above it", x, z)
			}
		}
	}
}

func TestHipRoofClosesWithCap(t *testing.T) {
	g := newTestGrid(t, 10, 8, 10)
	p := testPalette(t)
	buildHipRoof(g, Rect{0, 0, 6, 6}, 0, p)

	if got := g.Get(3, 3, 3); got != p.RoofSlabBottom {
		t.Errorf("cap: got %q, want slab", got)
	}
	if got := g.Get(3, 0, 0); got != p.RoofStairs(South) {
		t.Errorf("north eave: got %q", got)
	}
	if got := g.Get(0, 0, 3); got != p.RoofStairs(East) {
		t.Errorf("west eave: got %q", got)
	}
	for y := 4; y < g.Height(); y++ {
		if g.Get(3, y, 3) != voxel.Air {
			t.Errorf("roof overshot cap at y=%d", y)
		}
	}
}

func TestConicalRoofHollowWithCap(t *testing.T) {
	g := newTestGrid(t, 12, 10, 12)
	p := testPalette(t)
	buildConicalRoof(g, 5, 2, 5, 3, p)

	if got := g.Get(5, 6, 5); got != p.RoofBlock {
		t.Errorf("cap: got %q", got)
	}
	if got := g.Get(8, 2, 5); got != p.RoofBlock {
		t.Errorf("base ring edge: got %q", got)
	}
	if got := g.Get(5, 2, 5); got != voxel.Air {
		t.Errorf("base ring center not hollowed: %q", got)
	}
}

func TestFencePerimeterGate(t *testing.T) {
	g := newTestGrid(t, 14, 6, 14)
	p := testPalette(t)
	r := Rect{2, 2, 10, 10}
	buildFencePerimeter(g, r, 1, p)

	if got := g.Get(6, 1, 10); got != p.GateNS {
		t.Errorf("south-center gate: got %q", got)
	}
	if got := g.Get(2, 1, 2); got != p.Fence {
		t.Errorf("corner: got %q", got)
	}
	if got := g.Get(6, 1, 2); got != p.Fence {
		t.Errorf("north run: got %q", got)
	}
}

func TestBuildWell(t *testing.T) {
	g := newTestGrid(t, 10, 8, 10)
	p := testPalette(t)
	buildWell(g, 4, 1, 4, p)

	if got := g.Get(4, 1, 4); got != p.Water {
		t.Errorf("well water: got %q", got)
	}
	if got := g.Get(3, 1, 4); got != p.Foundation {
		t.Errorf("well rim: got %q", got)
	}
	if got := g.Get(4, 4, 4); got != p.SlabBottom {
		t.Errorf("well canopy: got %q", got)
	}
}

func TestFillDiskCardinals(t *testing.T) {
	g := newTestGrid(t, 12, 4, 12)
	fillDisk(g, 5, 1, 5, 2, "stone")

	if got := g.Get(7, 1, 5); got != "stone" {
		t.Errorf("cardinal point at radius: got %q", got)
	}
	if got := g.Get(7, 1, 7); got != voxel.Air {
		t.Errorf("corner outside circle filled: %q", got)
	}
}

func TestTreeShape(t *testing.T) {
	p := testPalette(t)
	g1 := newTestGrid(t, 12, 12, 12)
	g2 := newTestGrid(t, 12, 12, 12)
	buildTree(g1, 5, 1, 5, p, NewRNG(13))
	buildTree(g2, 5, 1, 5, p, NewRNG(13))

	if got := g1.Get(5, 1, 5); got != p.TimberY {
		t.Errorf("trunk base: got %q", got)
	}
	crown := false
	for y := 0; y < g1.Height(); y++ {
		if g1.Get(5, y, 5) == p.Leaves {
			crown = true
		}
		for z := 0; z < g1.Length(); z++ {
			for x := 0; x < g1.Width(); x++ {
				if g1.Get(x, y, z) != g2.Get(x, y, z) {
					t.Fatalf("tree not deterministic at (%d,%d,%d)", x, y, z)
				}
			}
		}
	}
	if !crown {
		t.Error("no leaf crown above the trunk")
	}
}

func TestScatterGardenRespectsGround(t *testing.T) {
	g := newTestGrid(t, 20, 5, 20)
	p := testPalette(t)
	// Ground only on the west half; flowers must never land on bare air.
	g.Fill(0, 0, 0, 9, 0, 19, p.Ground)
	rng := NewRNG(4)
	scatterGarden(g, Rect{0, 0, 19, 19}, 1, p, rng, newNoise(rng))

	found := 0
	for z := 0; z < 20; z++ {
		for x := 0; x < 20; x++ {
			b := g.Get(x, 1, z)
			if b == voxel.Air {
				continue
			}
			found++
			if g.Get(x, 0, z) != p.Ground {
				t.Errorf("flower %q at (%d,%d) not rooted in ground", b, x, z)
			}
			if x > 9 {
				t.Errorf("flower on the bare half at (%d,%d)", x, z)
			}
		}
	}
	if found == 0 {
		t.Log("noise field left the garden empty for this seed")
	}
}

func TestSmoothstepAndLerp(t *testing.T) {
	if got := smoothstep(-0.5); got != 0 {
		t.Errorf("smoothstep(-0.5) = %v, want 0", got)
	}
	if got := smoothstep(1.5); got != 1 {
		t.Errorf("smoothstep(1.5) = %v, want 1", got)
	}
	if got := smoothstep(0.5); got != 0.5 {
		t.Errorf("smoothstep(0.5) = %v, want 0.5", got)
	}
	if got := lerp(2, 6, 0.5); got != 4 {
		t.Errorf("lerp(2,6,0.5) = %v, want 4", got)
	}
	if lerp(2, 6, 0) != 2 || lerp(2, 6, 1) != 6 {
		t.Error("lerp endpoints off")
	}
}
