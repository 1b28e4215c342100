package generation

import (
	"errors"
	"fmt"
	"sort"
)

// StructureType selects which generator a request runs.
type StructureType string

const (
	StructureHouse     StructureType = "house"
	StructureTower     StructureType = "tower"
	StructureCastle    StructureType = "castle"
	StructureDungeon   StructureType = "dungeon"
	StructureShip      StructureType = "ship"
	StructureCathedral StructureType = "cathedral"
	StructureBridge    StructureType = "bridge"
	StructureWindmill  StructureType = "windmill"
	StructureMarket    StructureType = "market"
	StructureVillage   StructureType = "village"
)

// PlanShape picks the house footprint outline.
type PlanShape string

const (
	PlanRect PlanShape = "rect"
	PlanL    PlanShape = "lshape"
	PlanU    PlanShape = "ushape"
)

// RoofShape picks the house roof construction.
type RoofShape string

const (
	RoofFlat  RoofShape = "flat"
	RoofGable RoofShape = "gable"
	RoofHip   RoofShape = "hip"
)

// Features toggles the optional house additions. Every enabled feature
// only ever adds blocks, so enabling more never shrinks the build.
type Features struct {
	Porch   bool `json:"porch"`
	Garage  bool `json:"garage"`
	Chimney bool `json:"chimney"`
	Garden  bool `json:"garden"`
	Fence   bool `json:"fence"`
	Balcony bool `json:"balcony"`
}

// ErrUnknownStructure is returned for a structure tag outside the closed set.
var ErrUnknownStructure = errors.New("generation: unknown structure type")

// GenerationOptions is the full request for one generation run. It is
// pure input: generators never mutate it, and identical options always
// reproduce the identical grid.
type GenerationOptions struct {
	Type   StructureType
	Style  string
	Seed   int64
	Floors int

	// Footprint hints. Zero means the structure's own default; positive
	// values are clamped to the per-type minimum, never rejected.
	Width  int
	Length int

	// Rooms overrides the per-floor furnishing rotation when non-empty.
	Rooms []RoomType

	// House-only shape controls. Other structures ignore them.
	Plan     PlanShape
	Roof     RoofShape
	Features Features
}

// structureDims carries the default and minimum footprint per structure
// type. Requested dimensions below the minimum are raised to it.
type structureDims struct {
	floors    int
	minFloors int
	width     int
	length    int
	minWidth  int
	minLength int
}

var dimsTable = map[StructureType]structureDims{
	StructureHouse:     {floors: 2, minFloors: 1, width: 11, length: 9, minWidth: 7, minLength: 7},
	StructureTower:     {floors: 4, minFloors: 3, width: 11, length: 11, minWidth: 9, minLength: 9},
	StructureCastle:    {floors: 3, minFloors: 2, width: 51, length: 51, minWidth: 31, minLength: 31},
	StructureDungeon:   {floors: 2, minFloors: 1, width: 41, length: 41, minWidth: 25, minLength: 25},
	StructureShip:      {floors: 2, minFloors: 1, width: 13, length: 40, minWidth: 9, minLength: 25},
	StructureCathedral: {floors: 1, minFloors: 1, width: 25, length: 41, minWidth: 17, minLength: 29},
	StructureBridge:    {floors: 1, minFloors: 1, width: 9, length: 33, minWidth: 5, minLength: 17},
	StructureWindmill:  {floors: 3, minFloors: 2, width: 11, length: 11, minWidth: 9, minLength: 9},
	StructureMarket:    {floors: 1, minFloors: 1, width: 31, length: 31, minWidth: 21, minLength: 21},
	StructureVillage:   {floors: 1, minFloors: 1, width: 96, length: 96, minWidth: 80, minLength: 80},
}

// StructureTypes returns all structure tags in sorted order.
func StructureTypes() []StructureType {
	types := make([]StructureType, 0, len(dimsTable))
	for st := range dimsTable {
		types = append(types, st)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// ValidStructure reports whether a tag is in the closed structure set.
func ValidStructure(st StructureType) bool {
	_, ok := dimsTable[st]
	return ok
}

// DefaultOptions returns the documented defaults for a structure type:
// fantasy style, per-type floor count and footprint, gable roof on a
// rectangular plan with porch, chimney and garden enabled.
func DefaultOptions(st StructureType) GenerationOptions {
	d := dimsTable[st]
	return GenerationOptions{
		Type:     st,
		Style:    "fantasy",
		Floors:   d.floors,
		Width:    d.width,
		Length:   d.length,
		Plan:     PlanRect,
		Roof:     RoofGable,
		Features: Features{Porch: true, Chimney: true, Garden: true},
	}
}

// normalized fills defaults and clamps floors and footprint hints to the
// per-type minimums. Unknown structure tags pass through untouched so
// validation can report them.
func (o GenerationOptions) normalized() GenerationOptions {
	if o.Type == "" {
		o.Type = StructureHouse
	}
	if o.Style == "" {
		o.Style = "fantasy"
	}
	d, ok := dimsTable[o.Type]
	if !ok {
		return o
	}
	if o.Floors <= 0 {
		o.Floors = d.floors
	}
	if o.Floors < d.minFloors {
		o.Floors = d.minFloors
	}
	if o.Width <= 0 {
		o.Width = d.width
	} else if o.Width < d.minWidth {
		o.Width = d.minWidth
	}
	if o.Length <= 0 {
		o.Length = d.length
	} else if o.Length < d.minLength {
		o.Length = d.minLength
	}
	if o.Plan == "" {
		o.Plan = PlanRect
	}
	if o.Roof == "" {
		o.Roof = RoofGable
	}
	return o
}

// validate rejects unknown tags before any grid is allocated. Style is
// checked separately by ResolveStyle so its error can list known names.
func (o GenerationOptions) validate() error {
	if !ValidStructure(o.Type) {
		return fmt.Errorf("%w: %q", ErrUnknownStructure, o.Type)
	}
	for _, rt := range o.Rooms {
		if !ValidRoom(rt) {
			return fmt.Errorf("%w: %q", ErrUnknownRoom, rt)
		}
	}
	switch o.Plan {
	case PlanRect, PlanL, PlanU:
	default:
		return fmt.Errorf("generation: unknown plan shape %q", o.Plan)
	}
	switch o.Roof {
	case RoofFlat, RoofGable, RoofHip:
	default:
		return fmt.Errorf("generation: unknown roof shape %q", o.Roof)
	}
	return nil
}

// SeedFromString derives a stable seed from an external identifier such
// as a street address. Same string, same seed, on every platform.
func SeedFromString(s string) int64 {
	var h uint32
	for _, c := range []byte(s) {
		h = h*31 + uint32(c)
	}
	return int64(h)
}
