package generation

import (
	"errors"
	"strings"
	"testing"
)

func TestAllStylesResolve(t *testing.T) {
	names := StyleNames()
	if len(names) != 9 {
		t.Fatalf("registered styles: got %d, want 9 (%v)", len(names), names)
	}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			p, err := ResolveStyle(name)
			if err != nil {
				t.Fatalf("ResolveStyle(%q): %v", name, err)
			}
			if p.Style != name {
				t.Errorf("palette style: got %q", p.Style)
			}
			// Every core slot must be populated.
			for field, v := range map[string]string{
				"Wall":       p.Wall,
				"Foundation": p.Foundation,
				"Floor":      p.Floor,
				"RoofNorth":  p.RoofNorth,
				"Window":     p.Window,
				"TimberY":    p.TimberY,
				"DoorLowerS": p.DoorLowerSouth,
				"TorchNorth": p.TorchNorth,
				"Chest":      p.Chest,
			} {
				if v == "" {
					t.Errorf("style %q: empty %s", name, field)
				}
			}
			if len(p.Flowers) == 0 || len(p.RoseGlass) == 0 {
				t.Errorf("style %q: empty flower or glass set", name)
			}
		})
	}
}

func TestUnknownStyleFails(t *testing.T) {
	_, err := ResolveStyle("brutalist")
	if !errors.Is(err, ErrUnknownStyle) {
		t.Fatalf("got %v, want ErrUnknownStyle", err)
	}
	if !strings.Contains(err.Error(), "brutalist") {
		t.Errorf("error should name the bad style: %v", err)
	}
}

func TestResolvedVariants(t *testing.T) {
	p, err := ResolveStyle("medieval")
	if err != nil {
		t.Fatal(err)
	}
	if p.TimberZ != "oak_log[axis=z]" {
		t.Errorf("TimberZ: got %q", p.TimberZ)
	}
	if p.RoofNorth != "dark_oak_stairs[facing=north]" {
		t.Errorf("RoofNorth: got %q", p.RoofNorth)
	}
	if p.SlabTop != "oak_slab[type=top]" {
		t.Errorf("SlabTop: got %q", p.SlabTop)
	}
	if p.DoorLowerEast != "oak_door[facing=east,half=lower]" {
		t.Errorf("DoorLowerEast: got %q", p.DoorLowerEast)
	}
	if p.TorchWest != "wall_torch[facing=west]" {
		t.Errorf("TorchWest: got %q", p.TorchWest)
	}
	if p.BedHeadNorth != "red_bed[facing=north,part=head]" {
		t.Errorf("BedHeadNorth: got %q", p.BedHeadNorth)
	}

	// Axis-less timber passes through without an axis property.
	uw, err := ResolveStyle("underwater")
	if err != nil {
		t.Fatal(err)
	}
	if uw.TimberY != "dark_prismarine" {
		t.Errorf("axis-less TimberY: got %q", uw.TimberY)
	}

	// Soul torches derive the right wall variant.
	g, err := ResolveStyle("gothic")
	if err != nil {
		t.Fatal(err)
	}
	if g.TorchNorth != "soul_wall_torch[facing=north]" {
		t.Errorf("gothic TorchNorth: got %q", g.TorchNorth)
	}
}

func TestPaletteAccessors(t *testing.T) {
	p, err := ResolveStyle("fantasy")
	if err != nil {
		t.Fatal(err)
	}
	lower, upper := p.Door(East)
	if lower != p.DoorLowerEast || upper != p.DoorUpperEast {
		t.Error("Door(East) mismatch")
	}
	if p.Stair(South) != p.StairSouth || p.RoofStairs(West) != p.RoofWest {
		t.Error("stair accessor mismatch")
	}
	if p.WallTorch(North) != p.TorchNorth {
		t.Error("WallTorch(North) mismatch")
	}
	if got := p.ChestFacing(South); got != "chest[facing=south]" {
		t.Errorf("ChestFacing(South): got %q", got)
	}
}
