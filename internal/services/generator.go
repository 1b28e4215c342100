// Package services wires the generation engine to its collaborators:
// config limits, the schematic encoder and the persistence layer.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"

	"voxelforge.dev/internal/config"
	"voxelforge.dev/internal/generation"
	"voxelforge.dev/internal/models"
	"voxelforge.dev/internal/schematic"
	"voxelforge.dev/internal/store"
	"voxelforge.dev/internal/voxel"
)

// ErrLimitExceeded is returned when a request asks for more than the
// configured service limits allow.
var ErrLimitExceeded = errors.New("service: request exceeds configured limits")

// GeneratorService runs generation requests end to end: resolve
// options, enforce limits, generate, encode and persist.
type GeneratorService struct {
	cfg   config.Config
	store *store.Store
	log   *log.Logger
}

// NewGeneratorService creates a GeneratorService.
func NewGeneratorService(cfg config.Config, st *store.Store, logger *log.Logger) *GeneratorService {
	return &GeneratorService{cfg: cfg, store: st, log: logger}
}

// Generate handles one request. Generation itself is pure CPU work, so
// it runs in its own goroutine and the call returns early if the caller
// goes away.
func (s *GeneratorService) Generate(ctx context.Context, req models.GenerateRequest) (models.GenerateResponse, error) {
	opts := s.optionsFrom(req)

	if err := s.checkLimits(opts); err != nil {
		return models.GenerateResponse{}, err
	}

	type result struct {
		grid *voxel.Grid
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		g, err := generation.Generate(opts)
		ch <- result{g, err}
	}()

	var grid *voxel.Grid
	select {
	case <-ctx.Done():
		return models.GenerateResponse{}, ctx.Err()
	case r := <-ch:
		if r.err != nil {
			return models.GenerateResponse{}, r.err
		}
		grid = r.grid
	}

	schem, err := schematic.Encode(grid)
	if err != nil {
		return models.GenerateResponse{}, err
	}
	optsJSON, err := json.Marshal(opts)
	if err != nil {
		return models.GenerateResponse{}, fmt.Errorf("service: marshal options: %w", err)
	}

	rec := store.Record{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Structure: string(opts.Type),
		Style:     opts.Style,
		Seed:      opts.Seed,
		Width:     grid.Width(),
		Height:    grid.Height(),
		Length:    grid.Length(),
		Blocks:    grid.CountNonAir(),
		Entities:  len(grid.Entities()),
		OptsJSON:  optsJSON,
		Schematic: schem,
	}
	if err := s.store.Put(rec); err != nil {
		return models.GenerateResponse{}, err
	}
	s.log.Printf("generated %s %s seed=%d %dx%dx%d blocks=%d id=%s",
		rec.Style, rec.Structure, rec.Seed, rec.Width, rec.Height, rec.Length, rec.Blocks, rec.ID)

	return models.GenerateResponse{
		ID:           rec.ID,
		Type:         rec.Structure,
		Style:        rec.Style,
		Seed:         rec.Seed,
		Width:        rec.Width,
		Height:       rec.Height,
		Length:       rec.Length,
		Blocks:       rec.Blocks,
		Entities:     rec.Entities,
		CreatedAt:    rec.CreatedAt.Format(time.RFC3339),
		SchematicURL: "/v1/generations/" + rec.ID + "/schematic",
	}, nil
}

// optionsFrom maps the wire request onto engine options. The seed falls
// back to one derived from the address so the same street address keeps
// generating the same building.
func (s *GeneratorService) optionsFrom(req models.GenerateRequest) generation.GenerationOptions {
	style := req.Style
	if style == "" {
		style = s.cfg.DefaultStyle
	}
	var seed int64
	switch {
	case req.Seed != nil:
		seed = *req.Seed
	case req.Address != "":
		seed = generation.SeedFromString(req.Address)
	}

	rooms := make([]generation.RoomType, 0, len(req.Rooms))
	for _, r := range req.Rooms {
		rooms = append(rooms, generation.RoomType(r))
	}

	return generation.GenerationOptions{
		Type:   generation.StructureType(req.Type),
		Style:  style,
		Seed:   seed,
		Floors: req.Floors,
		Width:  req.Width,
		Length: req.Length,
		Rooms:  rooms,
		Plan:   generation.PlanShape(req.Plan),
		Roof:   generation.RoofShape(req.Roof),
		Features: generation.Features{
			Porch:   req.Features.Porch,
			Garage:  req.Features.Garage,
			Chimney: req.Features.Chimney,
			Garden:  req.Features.Garden,
			Fence:   req.Features.Fence,
			Balcony: req.Features.Balcony,
		},
	}
}

// checkLimits rejects requests that exceed service policy before any
// grid memory is committed. EstimateDims also surfaces unknown-tag
// errors here, ahead of the generation goroutine.
func (s *GeneratorService) checkLimits(opts generation.GenerationOptions) error {
	lim := s.cfg.Limits
	if opts.Width > lim.MaxWidth || opts.Length > lim.MaxLength {
		return fmt.Errorf("%w: footprint %dx%d (max %dx%d)",
			ErrLimitExceeded, opts.Width, opts.Length, lim.MaxWidth, lim.MaxLength)
	}
	if opts.Floors > lim.MaxFloors {
		return fmt.Errorf("%w: %d floors (max %d)", ErrLimitExceeded, opts.Floors, lim.MaxFloors)
	}
	w, h, l, err := generation.EstimateDims(opts)
	if err != nil {
		return err
	}
	if voxels := w * h * l; voxels > lim.MaxVoxels {
		return fmt.Errorf("%w: %d voxels (max %d)", ErrLimitExceeded, voxels, lim.MaxVoxels)
	}
	return nil
}

// Generation returns stored metadata for one id.
func (s *GeneratorService) Generation(id string) (models.GenerationSummary, error) {
	rec, err := s.store.Get(id)
	if err != nil {
		return models.GenerationSummary{}, err
	}
	return models.GenerationSummary{
		ID:        rec.ID,
		Type:      rec.Structure,
		Style:     rec.Style,
		Seed:      rec.Seed,
		Width:     rec.Width,
		Height:    rec.Height,
		Length:    rec.Length,
		Blocks:    rec.Blocks,
		CreatedAt: rec.CreatedAt.Format(time.RFC3339),
	}, nil
}

// Schematic returns the stored schematic bytes for one id.
func (s *GeneratorService) Schematic(id string) ([]byte, error) {
	rec, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	return rec.Schematic, nil
}

// Recent lists the newest generations.
func (s *GeneratorService) Recent(n int) ([]models.GenerationSummary, error) {
	rows, err := s.store.Recent(n)
	if err != nil {
		return nil, err
	}
	out := make([]models.GenerationSummary, 0, len(rows))
	for _, r := range rows {
		out = append(out, models.GenerationSummary{
			ID:        r.ID,
			Type:      r.Structure,
			Style:     r.Style,
			Seed:      r.Seed,
			Width:     r.Width,
			Height:    r.Height,
			Length:    r.Length,
			Blocks:    r.Blocks,
			CreatedAt: r.CreatedAt.Format(time.RFC3339),
		})
	}
	return out, nil
}

// Catalog lists every tag a request may use.
func (s *GeneratorService) Catalog() models.CatalogResponse {
	structures := make([]string, 0)
	for _, st := range generation.StructureTypes() {
		structures = append(structures, string(st))
	}
	rooms := make([]string, 0)
	for _, rt := range generation.RoomTypes() {
		rooms = append(rooms, string(rt))
	}
	styles := generation.StyleNames()
	sort.Strings(styles)
	return models.CatalogResponse{
		Structures: structures,
		Styles:     styles,
		Rooms:      rooms,
		Plans: []string{
			string(generation.PlanRect),
			string(generation.PlanL),
			string(generation.PlanU),
		},
		Roofs: []string{
			string(generation.RoofFlat),
			string(generation.RoofGable),
			string(generation.RoofHip),
		},
	}
}
