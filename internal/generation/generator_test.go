package generation

import (
	"errors"
	"math"
	"testing"

	"voxelforge.dev/internal/voxel"
)

func assertGridsEqual(t *testing.T, a, b *voxel.Grid) {
	t.Helper()
	if a.Width() != b.Width() || a.Height() != b.Height() || a.Length() != b.Length() {
		t.Fatalf("dims differ: %dx%dx%d vs %dx%dx%d",
			a.Width(), a.Height(), a.Length(), b.Width(), b.Height(), b.Length())
	}
	for y := 0; y < a.Height(); y++ {
		for z := 0; z < a.Length(); z++ {
			for x := 0; x < a.Width(); x++ {
				if a.Get(x, y, z) != b.Get(x, y, z) {
					t.Fatalf("cell (%d,%d,%d): %q vs %q", x, y, z, a.Get(x, y, z), b.Get(x, y, z))
				}
			}
		}
	}
	if len(a.Entities()) != len(b.Entities()) {
		t.Fatalf("entity count: %d vs %d", len(a.Entities()), len(b.Entities()))
	}
}

func TestGenerateDeterministic(t *testing.T) {
	for _, st := range StructureTypes() {
		t.Run(string(st), func(t *testing.T) {
			opts := DefaultOptions(st)
			opts.Seed = 42
			first, err := Generate(opts)
			if err != nil {
				t.Fatalf("first run: %v", err)
			}
			second, err := Generate(opts)
			if err != nil {
				t.Fatalf("second run: %v", err)
			}
			assertGridsEqual(t, first, second)
			if first.CountNonAir() == 0 {
				t.Error("generator produced an empty grid")
			}
		})
	}
}

func TestEstimateDimsMatchesGenerate(t *testing.T) {
	for _, st := range StructureTypes() {
		t.Run(string(st), func(t *testing.T) {
			opts := DefaultOptions(st)
			opts.Seed = 7
			w, h, l, err := EstimateDims(opts)
			if err != nil {
				t.Fatalf("estimate: %v", err)
			}
			g, err := Generate(opts)
			if err != nil {
				t.Fatalf("generate: %v", err)
			}
			if g.Width() != w || g.Height() != h || g.Length() != l {
				t.Errorf("estimate %dx%dx%d, actual %dx%dx%d",
					w, h, l, g.Width(), g.Height(), g.Length())
			}
		})
	}
}

func TestEstimateDimsIgnoresSeed(t *testing.T) {
	for _, st := range StructureTypes() {
		a := DefaultOptions(st)
		a.Seed = 1
		b := DefaultOptions(st)
		b.Seed = 999999
		aw, ah, al, err := EstimateDims(a)
		if err != nil {
			t.Fatalf("%s: %v", st, err)
		}
		bw, bh, bl, err := EstimateDims(b)
		if err != nil {
			t.Fatalf("%s: %v", st, err)
		}
		if aw != bw || ah != bh || al != bl {
			t.Errorf("%s: dims depend on seed: %dx%dx%d vs %dx%dx%d", st, aw, ah, al, bw, bh, bl)
		}
	}
}

func TestGenerateRejectsBadTags(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*GenerationOptions)
		wantErr error
	}{
		{"structure", func(o *GenerationOptions) { o.Type = "skyscraper" }, ErrUnknownStructure},
		{"style", func(o *GenerationOptions) { o.Style = "vaporwave" }, ErrUnknownStyle},
		{"room", func(o *GenerationOptions) { o.Rooms = []RoomType{"ballroom"} }, ErrUnknownRoom},
		{"plan", func(o *GenerationOptions) { o.Plan = "octagon" }, nil},
		{"roof", func(o *GenerationOptions) { o.Roof = "dome" }, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions(StructureHouse)
			tt.mutate(&opts)
			g, err := Generate(opts)
			if err == nil {
				t.Fatal("expected an error, got none")
			}
			if g != nil {
				t.Error("grid returned alongside error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error %v does not wrap %v", err, tt.wantErr)
			}
		})
	}
}

func TestGenerateZeroOptions(t *testing.T) {
	g, err := Generate(GenerationOptions{Seed: 3})
	if err != nil {
		t.Fatalf("zero options should normalize to a house: %v", err)
	}
	if g.CountNonAir() == 0 {
		t.Error("normalized default build is empty")
	}
}

func TestNormalizeClampsFloors(t *testing.T) {
	low := DefaultOptions(StructureTower)
	low.Floors = 1 // below the tower minimum of 3
	min := DefaultOptions(StructureTower)
	min.Floors = 3
	lw, lh, ll, err := EstimateDims(low)
	if err != nil {
		t.Fatalf("estimate low: %v", err)
	}
	mw, mh, ml, err := EstimateDims(min)
	if err != nil {
		t.Fatalf("estimate min: %v", err)
	}
	if lw != mw || lh != mh || ll != ml {
		t.Errorf("floors=1 not clamped to minimum: %dx%dx%d vs %dx%dx%d", lw, lh, ll, mw, mh, ml)
	}
}

func TestVillageScale(t *testing.T) {
	opts := DefaultOptions(StructureVillage)
	opts.Style = "medieval"
	opts.Seed = 42
	g, err := Generate(opts)
	if err != nil {
		t.Fatalf("generate village: %v", err)
	}
	if g.Width() < 80 || g.Length() < 80 {
		t.Errorf("village footprint %dx%d, want at least 80x80", g.Width(), g.Length())
	}
	if n := g.CountNonAir(); n < 10000 {
		t.Errorf("village non-air cells = %d, want a settlement-sized build (>= 10000)", n)
	}
}

func TestBridgeSpansLengthwise(t *testing.T) {
	opts := DefaultOptions(StructureBridge)
	opts.Seed = 1
	g, err := Generate(opts)
	if err != nil {
		t.Fatalf("generate bridge: %v", err)
	}
	if g.Length() <= g.Width() {
		t.Errorf("bridge length %d not greater than width %d", g.Length(), g.Width())
	}
}

func TestHouseRoofShapesOrdered(t *testing.T) {
	flat := DefaultOptions(StructureHouse)
	flat.Seed = 11
	flat.Roof = RoofFlat
	gable := flat
	gable.Roof = RoofGable

	fg, err := Generate(flat)
	if err != nil {
		t.Fatalf("flat: %v", err)
	}
	gg, err := Generate(gable)
	if err != nil {
		t.Fatalf("gable: %v", err)
	}
	if fg.Height() >= gg.Height() {
		t.Errorf("flat roof height %d not below gable height %d", fg.Height(), gg.Height())
	}
	if fg.CountNonAir() >= gg.CountNonAir() {
		t.Errorf("flat roof block count %d not below gable count %d", fg.CountNonAir(), gg.CountNonAir())
	}
}

func TestHousePlanWidthsOrdered(t *testing.T) {
	rect := DefaultOptions(StructureHouse)
	lshape := rect
	lshape.Plan = PlanL
	ushape := rect
	ushape.Plan = PlanU

	rw, _, _, err := EstimateDims(rect)
	if err != nil {
		t.Fatalf("rect: %v", err)
	}
	lw, _, _, err := EstimateDims(lshape)
	if err != nil {
		t.Fatalf("lshape: %v", err)
	}
	uw, _, _, err := EstimateDims(ushape)
	if err != nil {
		t.Fatalf("ushape: %v", err)
	}
	if !(uw >= lw && lw >= rw) {
		t.Errorf("plan widths not ordered: ushape %d, lshape %d, rect %d", uw, lw, rw)
	}
}

func TestHouseFeaturesOnlyAdd(t *testing.T) {
	bare := DefaultOptions(StructureHouse)
	bare.Seed = 8
	bare.Features = Features{}
	full := bare
	full.Features = Features{Porch: true, Garage: true, Chimney: true, Garden: true, Fence: true, Balcony: true}

	bg, err := Generate(bare)
	if err != nil {
		t.Fatalf("bare: %v", err)
	}
	fg, err := Generate(full)
	if err != nil {
		t.Fatalf("full: %v", err)
	}
	if bg.CountNonAir() >= fg.CountNonAir() {
		t.Errorf("all features on produced %d blocks, bare house %d; features must only add",
			fg.CountNonAir(), bg.CountNonAir())
	}
}

func TestSeedFromString(t *testing.T) {
	a := SeedFromString("123 Main Street")
	b := SeedFromString("123 Main Street")
	c := SeedFromString("124 Main Street")
	if a != b {
		t.Errorf("same address gave different seeds: %d vs %d", a, b)
	}
	if a == c {
		t.Errorf("distinct addresses gave the same seed: %d", a)
	}
	if SeedFromString("") != 0 {
		t.Errorf("empty string seed = %d, want 0", SeedFromString(""))
	}
}

func TestHullHalfWidthProfile(t *testing.T) {
	const length, maxHalf = 40, 5.0
	bowLen, sternLen := length/3, length/4

	bow := hullHalfWidth(0, length, bowLen, sternLen, maxHalf)
	mid := hullHalfWidth(length/2, length, bowLen, sternLen, maxHalf)
	stern := hullHalfWidth(length-1, length, bowLen, sternLen, maxHalf)
	if bow != 0 {
		t.Errorf("hull half-width at bow tip = %v, want 0", bow)
	}
	if mid != maxHalf {
		t.Errorf("hull half-width amidships = %v, want %v", mid, maxHalf)
	}
	// The transom floor keeps the stern tip at 0.55 of the beam.
	if got, want := stern, 0.55*maxHalf; math.Abs(got-want) > 1e-9 {
		t.Errorf("stern tip half-width = %v, want %v", got, want)
	}
	prev := -1.0
	for z := 0; z < bowLen; z++ {
		w := hullHalfWidth(z, length, bowLen, sternLen, maxHalf)
		if w < prev {
			t.Fatalf("bow taper not monotonic at z=%d: %v after %v", z, w, prev)
		}
		prev = w
	}
}

func TestDungeonDeepStairwellsInBounds(t *testing.T) {
	opts := GenerationOptions{Type: StructureDungeon, Style: "fantasy", Seed: 9, Floors: 12}
	g, err := Generate(opts)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	p, err := ResolveStyle("fantasy")
	if err != nil {
		t.Fatalf("resolve style: %v", err)
	}
	want := p.Stair(South)

	cx, cz := g.Width()/2, g.Length()/2
	for lvl := 0; lvl < 11; lvl++ {
		z0 := cz - 4 - (levelHeight - 1)
		if lvl%2 == 1 {
			z0 = cz + 4
		}
		for s := 0; s < levelHeight; s++ {
			y := lvl*levelHeight + 1 + s
			z := z0 + s
			if !g.InBounds(cx, y, z) {
				t.Fatalf("level %d step %d at (%d,%d,%d) is outside the grid", lvl, s, cx, y, z)
			}
			if got := g.Get(cx, y, z); got != want {
				t.Errorf("level %d step %d at (%d,%d,%d): got %q, want %q", lvl, s, cx, y, z, got, want)
			}
		}
	}
}
