package generation

import (
	"errors"
	"fmt"
	"sort"

	"voxelforge.dev/internal/voxel"
)

// RoomType tags an interior volume with the furnishing it receives.
type RoomType string

const (
	RoomBedroom     RoomType = "bedroom"
	RoomKitchen     RoomType = "kitchen"
	RoomLibrary     RoomType = "library"
	RoomStudy       RoomType = "study"
	RoomDining      RoomType = "dining"
	RoomStorage     RoomType = "storage"
	RoomArmory      RoomType = "armory"
	RoomForge       RoomType = "forge"
	RoomChapel      RoomType = "chapel"
	RoomVault       RoomType = "vault"
	RoomThrone      RoomType = "throne"
	RoomBarracks    RoomType = "barracks"
	RoomCell        RoomType = "cell"
	RoomObservatory RoomType = "observatory"
	RoomCaptains    RoomType = "captains_quarters"
	RoomCargoHold   RoomType = "cargo_hold"
	RoomGalley      RoomType = "galley"
	RoomWorkshop    RoomType = "workshop"
	RoomNave        RoomType = "nave"
	RoomBelfry      RoomType = "belfry"
	RoomGarage      RoomType = "garage"
)

// ErrUnknownRoom is returned when a room tag is not in the registry.
var ErrUnknownRoom = errors.New("generation: unknown room type")

// roomFunc decorates a room volume. Furnishers write only inside their
// bounds; identical bounds, palette and RNG state produce identical
// output.
type roomFunc func(g *voxel.Grid, b RoomBounds, p *Palette, rng *RNG)

// roomGenerators is the closed furnisher registry, built once. Iteration
// always goes through the sorted RoomTypes slice, never the map.
var roomGenerators = map[RoomType]roomFunc{
	RoomBedroom:     furnishBedroom,
	RoomKitchen:     furnishKitchen,
	RoomLibrary:     furnishLibrary,
	RoomStudy:       furnishStudy,
	RoomDining:      furnishDining,
	RoomStorage:     furnishStorage,
	RoomArmory:      furnishArmory,
	RoomForge:       furnishForge,
	RoomChapel:      furnishChapel,
	RoomVault:       furnishVault,
	RoomThrone:      furnishThrone,
	RoomBarracks:    furnishBarracks,
	RoomCell:        furnishCell,
	RoomObservatory: furnishObservatory,
	RoomCaptains:    furnishCaptains,
	RoomCargoHold:   furnishCargoHold,
	RoomGalley:      furnishGalley,
	RoomWorkshop:    furnishWorkshop,
	RoomNave:        furnishNave,
	RoomBelfry:      furnishBelfry,
	RoomGarage:      furnishGarage,
}

// RoomTypes returns all registered room tags in sorted order.
func RoomTypes() []RoomType {
	types := make([]RoomType, 0, len(roomGenerators))
	for rt := range roomGenerators {
		types = append(types, rt)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// ValidRoom reports whether a tag is registered.
func ValidRoom(rt RoomType) bool {
	_, ok := roomGenerators[rt]
	return ok
}

// FurnishRoom decorates the volume b as the given room type. Unknown
// tags fail rather than silently leaving the room bare.
func FurnishRoom(g *voxel.Grid, rt RoomType, b RoomBounds, p *Palette, rng *RNG) error {
	fn, ok := roomGenerators[rt]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownRoom, rt)
	}
	fn(g, b, p, rng)
	return nil
}

// defaultRooms is the per-structure room rotation used when the caller
// does not supply one.
var defaultRooms = map[StructureType][]RoomType{
	StructureHouse:     {RoomBedroom, RoomKitchen, RoomLibrary, RoomStudy, RoomDining, RoomStorage},
	StructureTower:     {RoomStudy, RoomLibrary, RoomArmory, RoomStorage},
	StructureCastle:    {RoomThrone, RoomBarracks, RoomArmory, RoomDining, RoomLibrary, RoomChapel, RoomVault},
	StructureDungeon:   {RoomCell, RoomVault, RoomStorage, RoomArmory},
	StructureShip:      {RoomCaptains, RoomCargoHold, RoomGalley},
	StructureCathedral: {RoomNave, RoomChapel, RoomBelfry},
	StructureWindmill:  {RoomWorkshop, RoomStorage},
}

// PlanRooms builds the floor-by-slot room matrix for a structure. The
// requested list (or the structure's default rotation) is cycled across
// slots, then the per-structure rules are applied: castles keep a throne
// room on the ground floor, ships a captain's quarters on the lowest
// deck, dungeons a cell on every level, towers an observatory on top.
func PlanRooms(st StructureType, requested []RoomType, floors, perFloor int) [][]RoomType {
	if floors < 1 {
		floors = 1
	}
	if perFloor < 1 {
		perFloor = 1
	}
	rotation := requested
	if len(rotation) == 0 {
		rotation = defaultRooms[st]
	}
	if len(rotation) == 0 {
		rotation = []RoomType{RoomStorage}
	}

	plan := make([][]RoomType, floors)
	i := 0
	for f := 0; f < floors; f++ {
		plan[f] = make([]RoomType, perFloor)
		for s := 0; s < perFloor; s++ {
			plan[f][s] = rotation[i%len(rotation)]
			i++
		}
	}

	enforceRequiredRooms(st, plan)
	return plan
}

// enforceRequiredRooms patches a plan in place so the structural rules
// hold regardless of what the caller asked for.
func enforceRequiredRooms(st StructureType, plan [][]RoomType) {
	contains := func(floor []RoomType, rt RoomType) bool {
		for _, r := range floor {
			if r == rt {
				return true
			}
		}
		return false
	}

	switch st {
	case StructureCastle:
		if !contains(plan[0], RoomThrone) {
			plan[0][0] = RoomThrone
		}
	case StructureShip:
		if !contains(plan[0], RoomCaptains) {
			plan[0][0] = RoomCaptains
		}
	case StructureDungeon:
		for f := range plan {
			if !contains(plan[f], RoomCell) {
				plan[f][0] = RoomCell
			}
		}
	case StructureTower:
		top := len(plan) - 1
		if !contains(plan[top], RoomObservatory) {
			plan[top][0] = RoomObservatory
		}
	}
}

// ---- Furnishers ----

// chestItems builds a deterministic inventory from an item pool.
func chestItems(rng *RNG, pool []string, slots int) []voxel.Item {
	items := make([]voxel.Item, 0, slots)
	for i := 0; i < slots; i++ {
		items = append(items, voxel.Item{
			Slot:  i,
			ID:    pool[rng.Intn(len(pool))],
			Count: rng.IntRange(1, 12),
		})
	}
	return items
}

// placeChest puts the style's container down: a barrel for styles that
// stock barrels, a chest otherwise.
func placeChest(g *voxel.Grid, p *Palette, x, y, z int, facing Direction, items []voxel.Item) {
	if voxel.BaseID(p.Chest) == "barrel" {
		g.AddBarrel(x, y, z, facing.String(), items)
		return
	}
	g.AddChest(x, y, z, facing.String(), items)
}

// placeTableAt builds a one-cell table: fence leg with a pressure-plate top.
func placeTableAt(g *voxel.Grid, p *Palette, x, y, z int) {
	g.Set(x, y, z, p.Fence)
	g.Set(x, y+1, z, p.Plate)
}

func furnishBedroom(g *voxel.Grid, b RoomBounds, p *Palette, rng *RNG) {
	// Bed against the north wall, head at the wall.
	bx := b.X1 + 1
	g.Set(bx, b.Y, b.Z1, p.BedHeadNorth)
	g.Set(bx, b.Y, b.Z1+1, p.BedFootNorth)

	placeChest(g, p, b.X2-1, b.Y, b.Z1, South, chestItems(rng, []string{"leather", "book", "bread"}, 3))
	cx, cz := b.Center()
	g.Set(cx, b.Y, cz, p.Carpet)
	g.Set(b.X1+1, b.Y+2, b.Z2-1, p.WallTorch(North))
}

func furnishKitchen(g *voxel.Grid, b RoomBounds, p *Palette, rng *RNG) {
	// Counter run along the west wall.
	for z := b.Z1; z <= b.Z2-1 && z < b.Z1+4; z++ {
		g.Set(b.X1, b.Y, z, p.SlabTop)
	}
	placeChest(g, p, b.X1, b.Y, b.Z2, East, chestItems(rng, []string{"bread", "apple", "potato", "carrot"}, 5))
	placeTableAt(g, p, b.X2-1, b.Y, b.Z2-1)
	g.Set(b.X2, b.Y+2, b.Z1+1, p.Lantern)
}

func furnishLibrary(g *voxel.Grid, b RoomBounds, p *Palette, rng *RNG) {
	// Shelf stacks two high along the north wall.
	for x := b.X1; x <= b.X2; x++ {
		g.Set(x, b.Y, b.Z1, p.Bookshelf)
		g.Set(x, b.Y+1, b.Z1, p.Bookshelf)
	}
	cx, cz := b.Center()
	placeTableAt(g, p, cx, b.Y, cz)
	g.Set(cx-1, b.Y, cz, p.Stair(East))
	g.Set(cx+1, b.Y, cz, p.Stair(West))
	g.Set(b.X1, b.Y+2, b.Z2, p.WallTorch(East))
}

func furnishStudy(g *voxel.Grid, b RoomBounds, p *Palette, rng *RNG) {
	placeTableAt(g, p, b.X1+1, b.Y, b.Z1+1)
	g.Set(b.X1+1, b.Y, b.Z1+2, p.Stair(North))
	g.Set(b.X2, b.Y, b.Z1, p.Bookshelf)
	g.Set(b.X2, b.Y+1, b.Z1, p.Bookshelf)
	cx, cz := b.Center()
	g.Set(cx, b.Y, cz, p.Carpet)
	g.Set(b.X2, b.Y+2, b.Z2-1, p.WallTorch(West))
}

func furnishDining(g *voxel.Grid, b RoomBounds, p *Palette, rng *RNG) {
	// Long table down the middle with chairs on both sides.
	cx, _ := b.Center()
	for z := b.Z1 + 1; z <= b.Z2-1; z++ {
		placeTableAt(g, p, cx, b.Y, z)
		if (z-b.Z1)%2 == 1 {
			g.Set(cx-1, b.Y, z, p.Stair(East))
			g.Set(cx+1, b.Y, z, p.Stair(West))
		}
	}
	g.Set(b.X1, b.Y+2, b.Z1, p.BannerSouth)
	g.Set(b.X2, b.Y+2, b.Z2, p.BannerNorth)
}

func furnishStorage(g *voxel.Grid, b RoomBounds, p *Palette, rng *RNG) {
	pool := []string{"bread", "wheat", "coal", "iron_ingot", "paper", "string"}
	for x := b.X1; x <= b.X2; x += 2 {
		placeChest(g, p, x, b.Y, b.Z1, South, chestItems(rng, pool, rng.IntRange(2, 6)))
	}
	if b.Length() > 3 {
		placeChest(g, p, b.X1, b.Y, b.Z2, North, chestItems(rng, pool, 4))
	}
	g.Set(b.X2, b.Y+2, b.Z2, p.WallTorch(West))
}

func furnishArmory(g *voxel.Grid, b RoomBounds, p *Palette, rng *RNG) {
	pool := []string{"iron_sword", "bow", "arrow", "shield", "iron_helmet", "iron_chestplate"}
	placeChest(g, p, b.X1, b.Y, b.Z1, South, chestItems(rng, pool, 6))
	placeChest(g, p, b.X2, b.Y, b.Z1, South, chestItems(rng, pool, 6))
	// Rack of bars along the south wall.
	for x := b.X1 + 1; x <= b.X2-1; x++ {
		g.Set(x, b.Y, b.Z2, p.Bars)
		g.Set(x, b.Y+1, b.Z2, p.Bars)
	}
	g.Set(b.X1, b.Y+2, b.Z1, p.BannerSouth)
}

func furnishForge(g *voxel.Grid, b RoomBounds, p *Palette, rng *RNG) {
	// Stone hearth in the corner with a work counter beside it.
	g.Set(b.X1, b.Y, b.Z1, p.Foundation)
	g.Set(b.X1+1, b.Y, b.Z1, p.Foundation)
	g.Set(b.X1, b.Y+1, b.Z1, p.Foundation)
	g.Set(b.X1, b.Y+2, b.Z1, p.Torch)
	for z := b.Z1 + 2; z <= b.Z1+3 && z <= b.Z2; z++ {
		g.Set(b.X1, b.Y, z, p.SlabTop)
	}
	placeChest(g, p, b.X2, b.Y, b.Z1, South, chestItems(rng, []string{"iron_ingot", "coal", "flint"}, 4))
}

func furnishChapel(g *voxel.Grid, b RoomBounds, p *Palette, rng *RNG) {
	// Altar step at the north end, pews facing it.
	cx, _ := b.Center()
	g.Set(cx, b.Y, b.Z1, p.Foundation)
	g.Set(cx, b.Y+1, b.Z1, p.Accent)
	for z := b.Z1 + 2; z <= b.Z2-1; z += 2 {
		for x := b.X1 + 1; x <= b.X2-1; x++ {
			if x != cx {
				g.Set(x, b.Y, z, p.Stair(North))
			}
		}
	}
	g.Set(cx-1, b.Y+2, b.Z1, p.BannerSouth)
	g.Set(cx+1, b.Y+2, b.Z1, p.BannerSouth)
}

func furnishVault(g *voxel.Grid, b RoomBounds, p *Palette, rng *RNG) {
	treasure := []string{"gold_ingot", "emerald", "diamond", "gold_nugget", "amethyst_shard"}
	for x := b.X1; x <= b.X2; x += 2 {
		placeChest(g, p, x, b.Y, b.Z1, South, chestItems(rng, treasure, rng.IntRange(3, 8)))
	}
	for x := b.X1 + 1; x <= b.X2; x += 2 {
		placeChest(g, p, x, b.Y, b.Z2, North, chestItems(rng, treasure, rng.IntRange(3, 8)))
	}
	cx, cz := b.Center()
	g.Set(cx, b.Y, cz, p.Accent)
	g.Set(cx, b.Y+2, cz, p.Lantern)
}

func furnishThrone(g *voxel.Grid, b RoomBounds, p *Palette, rng *RNG) {
	// Two-step dais against the north wall with the throne on top.
	cx, _ := b.Center()
	for x := cx - 2; x <= cx+2; x++ {
		g.Set(x, b.Y, b.Z1+1, p.Foundation)
	}
	for x := cx - 1; x <= cx+1; x++ {
		g.Set(x, b.Y, b.Z1, p.Foundation)
		g.Set(x, b.Y+1, b.Z1, p.Foundation)
	}
	g.Set(cx, b.Y+2, b.Z1, p.Stair(North))
	g.Set(cx-1, b.Y+2, b.Z1, p.Accent)
	g.Set(cx+1, b.Y+2, b.Z1, p.Accent)
	g.Set(cx-2, b.Y+2, b.Z1, p.BannerSouth)
	g.Set(cx+2, b.Y+2, b.Z1, p.BannerSouth)
	// Carpet runner from the dais toward the entrance.
	for z := b.Z1 + 2; z <= b.Z2; z++ {
		g.Set(cx, b.Y, z, p.Carpet)
	}
}

func furnishBarracks(g *voxel.Grid, b RoomBounds, p *Palette, rng *RNG) {
	for x := b.X1 + 1; x <= b.X2-1; x += 2 {
		g.Set(x, b.Y, b.Z1, p.BedHeadNorth)
		g.Set(x, b.Y, b.Z1+1, p.BedFootNorth)
		if b.Length() > 4 {
			placeChest(g, p, x, b.Y, b.Z1+2, South, chestItems(rng, []string{"leather", "arrow", "bread"}, 2))
		}
	}
	g.Set(b.X1, b.Y+2, b.Z2, p.WallTorch(East))
}

func furnishCell(g *voxel.Grid, b RoomBounds, p *Palette, rng *RNG) {
	// Bar wall across the room with a one-cell gap as the cell door.
	cx, _ := b.Center()
	barZ := b.Z1 + 1
	if b.Length() < 3 {
		barZ = b.Z1
	}
	for x := b.X1; x <= b.X2; x++ {
		if x == cx {
			continue
		}
		for y := b.Y; y < b.Y+b.Height && y < b.Y+3; y++ {
			g.Set(x, y, barZ, p.Bars)
		}
	}
	g.Set(b.X1, b.Y, b.Z1, p.SlabBottom)
	g.Set(b.X2, b.Y+2, b.Z2, p.WallTorch(West))
}

func furnishObservatory(g *voxel.Grid, b RoomBounds, p *Palette, rng *RNG) {
	// Telescope pillar at the center, aimed through the roof.
	cx, cz := b.Center()
	g.Set(cx, b.Y, cz, p.PillarY)
	g.Set(cx, b.Y+1, cz, p.PillarY)
	g.Set(cx, b.Y+2, cz, p.Accent)
	placeTableAt(g, p, b.X1, b.Y, b.Z1)
	g.Set(b.X1, b.Y, b.Z1+1, p.Bookshelf)
	g.Set(b.X2, b.Y+2, b.Z1, p.Lantern)
}

func furnishCaptains(g *voxel.Grid, b RoomBounds, p *Palette, rng *RNG) {
	g.Set(b.X1, b.Y, b.Z2-1, p.BedHeadSouth)
	g.Set(b.X1, b.Y, b.Z2-2, p.BedFootSouth)
	cx, cz := b.Center()
	placeTableAt(g, p, cx, b.Y, cz)
	placeChest(g, p, b.X2, b.Y, b.Z2, North, chestItems(rng, []string{"map", "compass", "paper", "spyglass"}, 4))
	g.Set(b.X2, b.Y+2, b.Z1, p.BannerSouth)
	g.Set(cx, b.Y, cz-1, p.Carpet)
}

func furnishCargoHold(g *voxel.Grid, b RoomBounds, p *Palette, rng *RNG) {
	pool := []string{"wheat", "sugar", "gunpowder", "iron_ingot", "salmon", "string"}
	for x := b.X1; x <= b.X2; x += 2 {
		for z := b.Z1; z <= b.Z2; z += 3 {
			placeChest(g, p, x, b.Y, z, East, chestItems(rng, pool, rng.IntRange(2, 7)))
		}
	}
}

func furnishGalley(g *voxel.Grid, b RoomBounds, p *Palette, rng *RNG) {
	for x := b.X1; x <= b.X2-1 && x < b.X1+3; x++ {
		g.Set(x, b.Y, b.Z1, p.SlabTop)
	}
	placeChest(g, p, b.X2, b.Y, b.Z1, South, chestItems(rng, []string{"salmon", "bread", "potato"}, 4))
	placeTableAt(g, p, b.X1+1, b.Y, b.Z2-1)
	g.Set(b.X1, b.Y+2, b.Z2, p.Lantern)
}

func furnishWorkshop(g *voxel.Grid, b RoomBounds, p *Palette, rng *RNG) {
	for z := b.Z1; z <= b.Z2-1 && z < b.Z1+3; z++ {
		g.Set(b.X2, b.Y, z, p.SlabTop)
	}
	placeTableAt(g, p, b.X1+1, b.Y, b.Z1+1)
	placeChest(g, p, b.X1, b.Y, b.Z2, North, chestItems(rng, []string{"iron_ingot", "stick", "string", "flint"}, 5))
	g.Set(b.X1, b.Y+2, b.Z1, p.WallTorch(South))
}

func furnishNave(g *voxel.Grid, b RoomBounds, p *Palette, rng *RNG) {
	// Pew rows flanking a carpet aisle that runs the length of the hall.
	cx, _ := b.Center()
	for z := b.Z1 + 1; z <= b.Z2-1; z++ {
		g.Set(cx, b.Y, z, p.Carpet)
	}
	for z := b.Z1 + 2; z <= b.Z2-2; z += 2 {
		for x := b.X1 + 1; x <= cx-2; x++ {
			g.Set(x, b.Y, z, p.Stair(North))
		}
		for x := cx + 2; x <= b.X2-1; x++ {
			g.Set(x, b.Y, z, p.Stair(North))
		}
	}
}

func furnishBelfry(g *voxel.Grid, b RoomBounds, p *Palette, rng *RNG) {
	// The bell hangs from a beam under the ceiling.
	cx, cz := b.Center()
	top := b.Y + b.Height - 1
	g.Set(cx, top, cz, p.TimberX)
	g.Set(cx, top-1, cz, p.Accent)
	g.Set(b.X1, b.Y+1, b.Z1, p.WallTorch(South))
}

func furnishGarage(g *voxel.Grid, b RoomBounds, p *Palette, rng *RNG) {
	// Paved work pad with tool storage along the back wall.
	for x := b.X1 + 1; x <= b.X2-1; x++ {
		for z := b.Z1 + 1; z <= b.Z2-1; z++ {
			g.Set(x, b.Y, z, p.FloorAlt)
		}
	}
	placeChest(g, p, b.X1, b.Y, b.Z1, South, chestItems(rng, []string{"iron_ingot", "redstone", "stick"}, 4))
	g.Set(b.X2, b.Y, b.Z1, p.Fence)
	g.Set(b.X2, b.Y+1, b.Z1, p.Lantern)
}
