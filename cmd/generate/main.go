// Command generate builds one structure from command-line flags and
// writes it to disk as a Sponge schematic, a JSON export, or both.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"voxelforge.dev/internal/generation"
	"voxelforge.dev/internal/schematic"
)

func main() {
	var (
		structure = flag.String("type", "house", "structure type (house, tower, castle, dungeon, ship, cathedral, bridge, windmill, market, village)")
		style     = flag.String("style", "fantasy", "material style")
		seed      = flag.Int64("seed", 0, "generation seed (0 means current time, unless -address is set)")
		address   = flag.String("address", "", "derive the seed from this address string")
		floors    = flag.Int("floors", 0, "floor count (0 means the structure default)")
		width     = flag.Int("width", 0, "footprint width override")
		length    = flag.Int("length", 0, "footprint length override")
		rooms     = flag.String("rooms", "", "comma-separated room list (empty means per-floor defaults)")
		plan      = flag.String("plan", "", "house floor plan: rect, lshape or ushape")
		roof      = flag.String("roof", "", "house roof: flat, gable or hip")
		features  = flag.String("features", "", "comma-separated house features (porch,garage,chimney,garden,fence,balcony)")
		outDir    = flag.String("out", ".", "output directory")
		format    = flag.String("format", "schem", "output format: schem, json or both")
	)
	flag.Parse()

	opts := generation.GenerationOptions{
		Type:   generation.StructureType(*structure),
		Style:  *style,
		Floors: *floors,
		Width:  *width,
		Length: *length,
		Plan:   generation.PlanShape(*plan),
		Roof:   generation.RoofShape(*roof),
	}

	switch {
	case *seed != 0:
		opts.Seed = *seed
	case *address != "":
		opts.Seed = generation.SeedFromString(*address)
	default:
		opts.Seed = time.Now().UnixNano()
	}

	for _, r := range splitCSV(*rooms) {
		opts.Rooms = append(opts.Rooms, generation.RoomType(r))
	}
	for _, f := range splitCSV(*features) {
		switch f {
		case "porch":
			opts.Features.Porch = true
		case "garage":
			opts.Features.Garage = true
		case "chimney":
			opts.Features.Chimney = true
		case "garden":
			opts.Features.Garden = true
		case "fence":
			opts.Features.Fence = true
		case "balcony":
			opts.Features.Balcony = true
		default:
			fmt.Fprintf(os.Stderr, "unknown feature %q\n", f)
			os.Exit(1)
		}
	}

	if *format != "schem" && *format != "json" && *format != "both" {
		fmt.Fprintf(os.Stderr, "unknown format %q (want schem, json or both)\n", *format)
		os.Exit(1)
	}

	fmt.Printf("Generating %s (%s, seed %d)...\n", opts.Type, opts.Style, opts.Seed)
	grid, err := generation.Generate(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("  %dx%dx%d, %d blocks, %d block entities\n",
		grid.Width(), grid.Height(), grid.Length(), grid.CountNonAir(), len(grid.Entities()))

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
	base := fmt.Sprintf("%s_%s_%d", opts.Type, opts.Style, opts.Seed)

	if *format == "schem" || *format == "both" {
		data, err := schematic.Encode(grid)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR encoding schematic: %v\n", err)
			os.Exit(1)
		}
		path := filepath.Join(*outDir, base+".schem")
		if err := os.WriteFile(path, data, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR writing %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("  Created %s (%d bytes)\n", path, len(data))
	}

	if *format == "json" || *format == "both" {
		path := filepath.Join(*outDir, base+".json")
		f, err := os.Create(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR writing %s: %v\n", path, err)
			os.Exit(1)
		}
		if err := schematic.WriteJSON(f, grid); err != nil {
			_ = f.Close()
			fmt.Fprintf(os.Stderr, "ERROR writing %s: %v\n", path, err)
			os.Exit(1)
		}
		if err := f.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR writing %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("  Created %s\n", path)
	}

	fmt.Println("Done!")
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
