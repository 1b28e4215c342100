package generation

import (
	"fmt"

	"voxelforge.dev/internal/voxel"
)

// Generate runs the generator selected by opts.Type and returns the
// finished grid. The call is pure and synchronous: it owns its grid
// exclusively, performs no I/O, and two calls with identical options
// return byte-for-byte identical grids.
//
// Pipeline:
//  1. Normalize options (defaults, per-type minimum clamps).
//  2. Validate tags, resolve the style palette (fail fast, pre-allocation).
//  3. Seed one RNG and hand everything to the structure generator.
func Generate(opts GenerationOptions) (*voxel.Grid, error) {
	opts = opts.normalized()
	if err := opts.validate(); err != nil {
		return nil, err
	}
	p, err := ResolveStyle(opts.Style)
	if err != nil {
		return nil, err
	}
	rng := NewRNG(opts.Seed)

	switch opts.Type {
	case StructureHouse:
		return generateHouse(opts, p, rng)
	case StructureTower:
		return generateTower(opts, p, rng)
	case StructureCastle:
		return generateCastle(opts, p, rng)
	case StructureDungeon:
		return generateDungeon(opts, p, rng)
	case StructureShip:
		return generateShip(opts, p, rng)
	case StructureCathedral:
		return generateCathedral(opts, p, rng)
	case StructureBridge:
		return generateBridge(opts, p, rng)
	case StructureWindmill:
		return generateWindmill(opts, p, rng)
	case StructureMarket:
		return generateMarket(opts, p, rng)
	case StructureVillage:
		return generateVillage(opts, p, rng)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStructure, opts.Type)
}

// EstimateDims reports the exact grid dimensions Generate would allocate
// for opts, without allocating anything. Callers use it to enforce voxel
// budgets before committing memory.
func EstimateDims(opts GenerationOptions) (w, h, l int, err error) {
	opts = opts.normalized()
	if err := opts.validate(); err != nil {
		return 0, 0, 0, err
	}
	switch opts.Type {
	case StructureHouse:
		w, h, l = dimsHouse(opts)
	case StructureTower:
		w, h, l = dimsTower(opts)
	case StructureCastle:
		w, h, l = dimsCastle(opts)
	case StructureDungeon:
		w, h, l = dimsDungeon(opts)
	case StructureShip:
		w, h, l = dimsShip(opts)
	case StructureCathedral:
		w, h, l = dimsCathedral(opts)
	case StructureBridge:
		w, h, l = dimsBridge(opts)
	case StructureWindmill:
		w, h, l = dimsWindmill(opts)
	case StructureMarket:
		w, h, l = dimsMarket(opts)
	case StructureVillage:
		w, h, l = dimsVillage(opts)
	}
	return w, h, l, nil
}
