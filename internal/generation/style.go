package generation

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"voxelforge.dev/internal/voxel"
)

// ErrUnknownStyle is returned when a style name is not in the registry.
var ErrUnknownStyle = errors.New("generation: unknown style")

// StyleSpec is the compact per-style block selection. Specs hold bare
// block ids; ResolveStyle expands them into the full Palette with facing,
// half and axis variants precomputed.
type StyleSpec struct {
	Foundation string
	Wall       string
	WallAccent string
	Floor      string
	FloorAlt   string
	Timber     string
	Planks     string

	RoofStairs string
	RoofSlab   string
	RoofBlock  string

	Window    string
	Door      string
	Fence     string
	FenceGate string
	Stairs    string
	Slab      string
	Pillar    string

	Path   string
	Ground string
	Leaves string

	Torch         string
	Lantern       string
	PressurePlate string
	Bed           string
	Carpet        string
	Bookshelf     string
	Chest         string
	Banner        string

	Flowers   []string
	RoseGlass []string

	Water  string
	Bars   string
	Ladder string
	Sail   string
	Accent string
}

// Palette is a fully resolved style: every block state a builder places
// is precomputed here, so structure code never assembles property strings.
type Palette struct {
	Style string

	Foundation string
	Wall       string
	WallAccent string
	Floor      string
	FloorAlt   string
	Planks     string
	RoofBlock  string
	Window     string
	Fence      string
	Path       string
	Ground     string
	Leaves     string
	Torch      string
	Lantern    string
	Plate      string
	Carpet     string
	Bookshelf  string
	Chest      string
	Water      string
	Bars       string
	Sail       string
	Accent     string

	Flowers   []string
	RoseGlass []string

	TimberX, TimberY, TimberZ string
	PillarX, PillarY, PillarZ string

	RoofNorth, RoofSouth, RoofEast, RoofWest     string
	StairNorth, StairSouth, StairEast, StairWest string
	SlabBottom, SlabTop                          string
	RoofSlabBottom, RoofSlabTop                  string

	TorchNorth, TorchSouth, TorchEast, TorchWest string

	DoorLowerNorth, DoorLowerSouth, DoorLowerEast, DoorLowerWest string
	DoorUpperNorth, DoorUpperSouth, DoorUpperEast, DoorUpperWest string

	GateNS, GateEW string

	LadderNorth, LadderSouth, LadderEast, LadderWest string

	BannerNorth, BannerSouth string

	BedHeadNorth, BedFootNorth string
	BedHeadSouth, BedFootSouth string
}

// ResolveStyle expands a style name into its Palette. Unknown names fail
// here, before any grid is allocated.
func ResolveStyle(name string) (*Palette, error) {
	spec, ok := styleSpecs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known styles: %s)", ErrUnknownStyle, name, strings.Join(StyleNames(), ", "))
	}
	return resolve(name, spec), nil
}

// StyleNames returns the registered style names in sorted order.
func StyleNames() []string {
	names := make([]string, 0, len(styleSpecs))
	for name := range styleSpecs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func resolve(name string, s StyleSpec) *Palette {
	wallTorch := strings.Replace(s.Torch, "torch", "wall_torch", 1)

	p := &Palette{
		Style: name,

		Foundation: s.Foundation,
		Wall:       s.Wall,
		WallAccent: s.WallAccent,
		Floor:      s.Floor,
		FloorAlt:   s.FloorAlt,
		Planks:     s.Planks,
		RoofBlock:  s.RoofBlock,
		Window:     s.Window,
		Fence:      s.Fence,
		Path:       s.Path,
		Ground:     s.Ground,
		Leaves:     s.Leaves,
		Torch:      s.Torch,
		Lantern:    s.Lantern,
		Plate:      s.PressurePlate,
		Carpet:     s.Carpet,
		Bookshelf:  s.Bookshelf,
		Chest:      s.Chest,
		Water:      s.Water,
		Bars:       s.Bars,
		Sail:       s.Sail,
		Accent:     s.Accent,

		Flowers:   s.Flowers,
		RoseGlass: s.RoseGlass,

		TimberX: voxel.AxisVariant(s.Timber, "x"),
		TimberY: voxel.AxisVariant(s.Timber, "y"),
		TimberZ: voxel.AxisVariant(s.Timber, "z"),
		PillarX: voxel.AxisVariant(s.Pillar, "x"),
		PillarY: voxel.AxisVariant(s.Pillar, "y"),
		PillarZ: voxel.AxisVariant(s.Pillar, "z"),

		RoofNorth: voxel.With(s.RoofStairs, "facing=north"),
		RoofSouth: voxel.With(s.RoofStairs, "facing=south"),
		RoofEast:  voxel.With(s.RoofStairs, "facing=east"),
		RoofWest:  voxel.With(s.RoofStairs, "facing=west"),

		StairNorth: voxel.With(s.Stairs, "facing=north"),
		StairSouth: voxel.With(s.Stairs, "facing=south"),
		StairEast:  voxel.With(s.Stairs, "facing=east"),
		StairWest:  voxel.With(s.Stairs, "facing=west"),

		SlabBottom:     voxel.With(s.Slab, "type=bottom"),
		SlabTop:        voxel.With(s.Slab, "type=top"),
		RoofSlabBottom: voxel.With(s.RoofSlab, "type=bottom"),
		RoofSlabTop:    voxel.With(s.RoofSlab, "type=top"),

		TorchNorth: voxel.With(wallTorch, "facing=north"),
		TorchSouth: voxel.With(wallTorch, "facing=south"),
		TorchEast:  voxel.With(wallTorch, "facing=east"),
		TorchWest:  voxel.With(wallTorch, "facing=west"),

		DoorLowerNorth: voxel.With(s.Door, "facing=north", "half=lower"),
		DoorLowerSouth: voxel.With(s.Door, "facing=south", "half=lower"),
		DoorLowerEast:  voxel.With(s.Door, "facing=east", "half=lower"),
		DoorLowerWest:  voxel.With(s.Door, "facing=west", "half=lower"),
		DoorUpperNorth: voxel.With(s.Door, "facing=north", "half=upper"),
		DoorUpperSouth: voxel.With(s.Door, "facing=south", "half=upper"),
		DoorUpperEast:  voxel.With(s.Door, "facing=east", "half=upper"),
		DoorUpperWest:  voxel.With(s.Door, "facing=west", "half=upper"),

		GateNS: voxel.With(s.FenceGate, "facing=south"),
		GateEW: voxel.With(s.FenceGate, "facing=east"),

		LadderNorth: voxel.With(s.Ladder, "facing=north"),
		LadderSouth: voxel.With(s.Ladder, "facing=south"),
		LadderEast:  voxel.With(s.Ladder, "facing=east"),
		LadderWest:  voxel.With(s.Ladder, "facing=west"),

		BannerNorth: voxel.With(s.Banner, "facing=north"),
		BannerSouth: voxel.With(s.Banner, "facing=south"),

		BedHeadNorth: voxel.With(s.Bed, "facing=north", "part=head"),
		BedFootNorth: voxel.With(s.Bed, "facing=north", "part=foot"),
		BedHeadSouth: voxel.With(s.Bed, "facing=south", "part=head"),
		BedFootSouth: voxel.With(s.Bed, "facing=south", "part=foot"),
	}
	return p
}

// RoofStairs returns the roof stair state ascending toward d.
func (p *Palette) RoofStairs(d Direction) string {
	switch d {
	case North:
		return p.RoofNorth
	case South:
		return p.RoofSouth
	case East:
		return p.RoofEast
	}
	return p.RoofWest
}

// Stair returns the interior stair state ascending toward d.
func (p *Palette) Stair(d Direction) string {
	switch d {
	case North:
		return p.StairNorth
	case South:
		return p.StairSouth
	case East:
		return p.StairEast
	}
	return p.StairWest
}

// WallTorch returns the wall torch state facing d.
func (p *Palette) WallTorch(d Direction) string {
	switch d {
	case North:
		return p.TorchNorth
	case South:
		return p.TorchSouth
	case East:
		return p.TorchEast
	}
	return p.TorchWest
}

// Door returns the lower and upper door states facing d.
func (p *Palette) Door(d Direction) (lower, upper string) {
	switch d {
	case North:
		return p.DoorLowerNorth, p.DoorUpperNorth
	case South:
		return p.DoorLowerSouth, p.DoorUpperSouth
	case East:
		return p.DoorLowerEast, p.DoorUpperEast
	}
	return p.DoorLowerWest, p.DoorUpperWest
}

// Ladder returns the ladder state mounted on the wall behind d.
func (p *Palette) Ladder(d Direction) string {
	switch d {
	case North:
		return p.LadderNorth
	case South:
		return p.LadderSouth
	case East:
		return p.LadderEast
	}
	return p.LadderWest
}

// ChestFacing returns the container state opening toward d.
func (p *Palette) ChestFacing(d Direction) string {
	return voxel.With(p.Chest, "facing="+d.String())
}
