package generation

// styleSpecs is the closed style registry. It is built once and never
// mutated; lookups go through ResolveStyle.
var styleSpecs = map[string]StyleSpec{
	"fantasy": {
		Foundation: "stone_bricks",
		Wall:       "white_terracotta",
		WallAccent: "dark_oak_log",
		Floor:      "spruce_planks",
		FloorAlt:   "birch_planks",
		Timber:     "dark_oak_log",
		Planks:     "spruce_planks",

		RoofStairs: "purpur_stairs",
		RoofSlab:   "purpur_slab",
		RoofBlock:  "purpur_block",

		Window:    "glass_pane",
		Door:      "spruce_door",
		Fence:     "spruce_fence",
		FenceGate: "spruce_fence_gate",
		Stairs:    "spruce_stairs",
		Slab:      "spruce_slab",
		Pillar:    "quartz_pillar",

		Path:   "gravel",
		Ground: "grass_block",
		Leaves: "flowering_azalea_leaves",

		Torch:         "torch",
		Lantern:       "lantern",
		PressurePlate: "spruce_pressure_plate",
		Bed:           "purple_bed",
		Carpet:        "purple_carpet",
		Bookshelf:     "bookshelf",
		Chest:         "chest",
		Banner:        "purple_wall_banner",

		Flowers:   []string{"blue_orchid", "allium", "pink_tulip"},
		RoseGlass: []string{"purple_stained_glass", "magenta_stained_glass", "white_stained_glass"},

		Water:  "water",
		Bars:   "iron_bars",
		Ladder: "ladder",
		Sail:   "white_wool",
		Accent: "gold_block",
	},

	"medieval": {
		Foundation: "cobblestone",
		Wall:       "oak_planks",
		WallAccent: "oak_log",
		Floor:      "oak_planks",
		FloorAlt:   "spruce_planks",
		Timber:     "oak_log",
		Planks:     "oak_planks",

		RoofStairs: "dark_oak_stairs",
		RoofSlab:   "dark_oak_slab",
		RoofBlock:  "dark_oak_planks",

		Window:    "glass_pane",
		Door:      "oak_door",
		Fence:     "oak_fence",
		FenceGate: "oak_fence_gate",
		Stairs:    "oak_stairs",
		Slab:      "oak_slab",
		Pillar:    "stone_bricks",

		Path:   "gravel",
		Ground: "grass_block",
		Leaves: "oak_leaves",

		Torch:         "torch",
		Lantern:       "lantern",
		PressurePlate: "oak_pressure_plate",
		Bed:           "red_bed",
		Carpet:        "red_carpet",
		Bookshelf:     "bookshelf",
		Chest:         "chest",
		Banner:        "red_wall_banner",

		Flowers:   []string{"poppy", "dandelion"},
		RoseGlass: []string{"red_stained_glass", "yellow_stained_glass", "white_stained_glass"},

		Water:  "water",
		Bars:   "iron_bars",
		Ladder: "ladder",
		Sail:   "white_wool",
		Accent: "gold_block",
	},

	"modern": {
		Foundation: "gray_concrete",
		Wall:       "white_concrete",
		WallAccent: "gray_concrete",
		Floor:      "polished_diorite",
		FloorAlt:   "polished_andesite",
		Timber:     "stripped_oak_log",
		Planks:     "birch_planks",

		RoofStairs: "polished_andesite_stairs",
		RoofSlab:   "polished_andesite_slab",
		RoofBlock:  "gray_concrete",

		Window:    "glass",
		Door:      "iron_door",
		Fence:     "iron_bars",
		FenceGate: "birch_fence_gate",
		Stairs:    "quartz_stairs",
		Slab:      "quartz_slab",
		Pillar:    "quartz_pillar",

		Path:   "smooth_stone",
		Ground: "grass_block",
		Leaves: "oak_leaves",

		Torch:         "torch",
		Lantern:       "sea_lantern",
		PressurePlate: "stone_pressure_plate",
		Bed:           "light_gray_bed",
		Carpet:        "light_gray_carpet",
		Bookshelf:     "bookshelf",
		Chest:         "chest",
		Banner:        "light_gray_wall_banner",

		Flowers:   []string{"azure_bluet", "oxeye_daisy"},
		RoseGlass: []string{"light_gray_stained_glass", "white_stained_glass", "gray_stained_glass"},

		Water:  "water",
		Bars:   "iron_bars",
		Ladder: "ladder",
		Sail:   "light_gray_wool",
		Accent: "quartz_block",
	},

	"gothic": {
		Foundation: "deepslate_bricks",
		Wall:       "stone_bricks",
		WallAccent: "polished_blackstone",
		Floor:      "deepslate_tiles",
		FloorAlt:   "polished_deepslate",
		Timber:     "spruce_log",
		Planks:     "dark_oak_planks",

		RoofStairs: "polished_blackstone_brick_stairs",
		RoofSlab:   "polished_blackstone_brick_slab",
		RoofBlock:  "polished_blackstone_bricks",

		Window:    "black_stained_glass_pane",
		Door:      "dark_oak_door",
		Fence:     "deepslate_tile_wall",
		FenceGate: "dark_oak_fence_gate",
		Stairs:    "stone_brick_stairs",
		Slab:      "stone_brick_slab",
		Pillar:    "polished_basalt",

		Path:   "cobbled_deepslate",
		Ground: "grass_block",
		Leaves: "spruce_leaves",

		Torch:         "soul_torch",
		Lantern:       "soul_lantern",
		PressurePlate: "polished_blackstone_pressure_plate",
		Bed:           "black_bed",
		Carpet:        "black_carpet",
		Bookshelf:     "bookshelf",
		Chest:         "chest",
		Banner:        "black_wall_banner",

		Flowers:   []string{"wither_rose", "red_tulip"},
		RoseGlass: []string{"red_stained_glass", "purple_stained_glass", "blue_stained_glass"},

		Water:  "water",
		Bars:   "iron_bars",
		Ladder: "ladder",
		Sail:   "gray_wool",
		Accent: "gold_block",
	},

	"rustic": {
		Foundation: "mossy_cobblestone",
		Wall:       "spruce_planks",
		WallAccent: "spruce_log",
		Floor:      "spruce_planks",
		FloorAlt:   "oak_planks",
		Timber:     "spruce_log",
		Planks:     "spruce_planks",

		RoofStairs: "spruce_stairs",
		RoofSlab:   "spruce_slab",
		RoofBlock:  "spruce_planks",

		Window:    "glass_pane",
		Door:      "spruce_door",
		Fence:     "spruce_fence",
		FenceGate: "spruce_fence_gate",
		Stairs:    "spruce_stairs",
		Slab:      "spruce_slab",
		Pillar:    "stripped_spruce_log",

		Path:   "dirt_path",
		Ground: "grass_block",
		Leaves: "spruce_leaves",

		Torch:         "torch",
		Lantern:       "lantern",
		PressurePlate: "spruce_pressure_plate",
		Bed:           "green_bed",
		Carpet:        "green_carpet",
		Bookshelf:     "bookshelf",
		Chest:         "barrel",
		Banner:        "green_wall_banner",

		Flowers:   []string{"poppy", "dandelion", "cornflower"},
		RoseGlass: []string{"green_stained_glass", "brown_stained_glass", "white_stained_glass"},

		Water:  "water",
		Bars:   "iron_bars",
		Ladder: "ladder",
		Sail:   "white_wool",
		Accent: "copper_block",
	},

	"steampunk": {
		Foundation: "polished_deepslate",
		Wall:       "terracotta",
		WallAccent: "copper_block",
		Floor:      "spruce_planks",
		FloorAlt:   "polished_deepslate",
		Timber:     "stripped_spruce_log",
		Planks:     "spruce_planks",

		RoofStairs: "cut_copper_stairs",
		RoofSlab:   "cut_copper_slab",
		RoofBlock:  "cut_copper",

		Window:    "glass_pane",
		Door:      "crimson_door",
		Fence:     "spruce_fence",
		FenceGate: "spruce_fence_gate",
		Stairs:    "polished_deepslate_stairs",
		Slab:      "polished_deepslate_slab",
		Pillar:    "polished_basalt",

		Path:   "deepslate_tiles",
		Ground: "grass_block",
		Leaves: "oak_leaves",

		Torch:         "redstone_torch",
		Lantern:       "redstone_lamp",
		PressurePlate: "heavy_weighted_pressure_plate",
		Bed:           "brown_bed",
		Carpet:        "brown_carpet",
		Bookshelf:     "bookshelf",
		Chest:         "barrel",
		Banner:        "brown_wall_banner",

		Flowers:   []string{"orange_tulip", "dandelion"},
		RoseGlass: []string{"orange_stained_glass", "brown_stained_glass", "yellow_stained_glass"},

		Water:  "water",
		Bars:   "iron_bars",
		Ladder: "ladder",
		Sail:   "brown_wool",
		Accent: "cut_copper",
	},

	"elven": {
		Foundation: "mossy_stone_bricks",
		Wall:       "birch_planks",
		WallAccent: "stripped_birch_log",
		Floor:      "birch_planks",
		FloorAlt:   "moss_block",
		Timber:     "birch_log",
		Planks:     "birch_planks",

		RoofStairs: "mossy_stone_brick_stairs",
		RoofSlab:   "mossy_stone_brick_slab",
		RoofBlock:  "moss_block",

		Window:    "glass_pane",
		Door:      "birch_door",
		Fence:     "birch_fence",
		FenceGate: "birch_fence_gate",
		Stairs:    "birch_stairs",
		Slab:      "birch_slab",
		Pillar:    "stripped_birch_log",

		Path:   "dirt_path",
		Ground: "grass_block",
		Leaves: "azalea_leaves",

		Torch:         "torch",
		Lantern:       "lantern",
		PressurePlate: "birch_pressure_plate",
		Bed:           "lime_bed",
		Carpet:        "lime_carpet",
		Bookshelf:     "bookshelf",
		Chest:         "chest",
		Banner:        "lime_wall_banner",

		Flowers:   []string{"lily_of_the_valley", "allium", "azure_bluet"},
		RoseGlass: []string{"green_stained_glass", "lime_stained_glass", "white_stained_glass"},

		Water:  "water",
		Bars:   "iron_bars",
		Ladder: "ladder",
		Sail:   "lime_wool",
		Accent: "emerald_block",
	},

	"desert": {
		Foundation: "sandstone",
		Wall:       "smooth_sandstone",
		WallAccent: "cut_sandstone",
		Floor:      "terracotta",
		FloorAlt:   "orange_terracotta",
		Timber:     "acacia_log",
		Planks:     "acacia_planks",

		RoofStairs: "smooth_sandstone_stairs",
		RoofSlab:   "smooth_sandstone_slab",
		RoofBlock:  "smooth_sandstone",

		Window:    "glass_pane",
		Door:      "acacia_door",
		Fence:     "sandstone_wall",
		FenceGate: "acacia_fence_gate",
		Stairs:    "sandstone_stairs",
		Slab:      "sandstone_slab",
		Pillar:    "chiseled_sandstone",

		Path:   "smooth_sandstone",
		Ground: "sand",
		Leaves: "acacia_leaves",

		Torch:         "torch",
		Lantern:       "lantern",
		PressurePlate: "acacia_pressure_plate",
		Bed:           "orange_bed",
		Carpet:        "orange_carpet",
		Bookshelf:     "bookshelf",
		Chest:         "chest",
		Banner:        "orange_wall_banner",

		Flowers:   []string{"dead_bush"},
		RoseGlass: []string{"orange_stained_glass", "yellow_stained_glass", "red_stained_glass"},

		Water:  "water",
		Bars:   "iron_bars",
		Ladder: "ladder",
		Sail:   "white_wool",
		Accent: "gold_block",
	},

	"underwater": {
		Foundation: "prismarine",
		Wall:       "prismarine_bricks",
		WallAccent: "dark_prismarine",
		Floor:      "dark_prismarine",
		FloorAlt:   "prismarine_bricks",
		Timber:     "dark_prismarine",
		Planks:     "warped_planks",

		RoofStairs: "prismarine_brick_stairs",
		RoofSlab:   "prismarine_brick_slab",
		RoofBlock:  "prismarine_bricks",

		Window:    "glass",
		Door:      "warped_door",
		Fence:     "prismarine_wall",
		FenceGate: "warped_fence_gate",
		Stairs:    "prismarine_stairs",
		Slab:      "prismarine_slab",
		Pillar:    "dark_prismarine",

		Path:   "dark_prismarine",
		Ground: "gravel",
		Leaves: "dried_kelp_block",

		Torch:         "soul_torch",
		Lantern:       "sea_lantern",
		PressurePlate: "stone_pressure_plate",
		Bed:           "blue_bed",
		Carpet:        "light_blue_carpet",
		Bookshelf:     "bookshelf",
		Chest:         "chest",
		Banner:        "blue_wall_banner",

		Flowers:   []string{"sea_pickle"},
		RoseGlass: []string{"light_blue_stained_glass", "blue_stained_glass", "cyan_stained_glass"},

		Water:  "water",
		Bars:   "iron_bars",
		Ladder: "ladder",
		Sail:   "light_blue_wool",
		Accent: "gold_block",
	},
}
