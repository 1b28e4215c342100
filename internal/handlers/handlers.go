// Package handlers exposes the generation service over HTTP: a chi
// router with JSON-schema request validation and a websocket preview
// endpoint.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"voxelforge.dev/internal/generation"
	"voxelforge.dev/internal/middleware"
	"voxelforge.dev/internal/models"
	"voxelforge.dev/internal/services"
	"voxelforge.dev/internal/store"
)

// SetupRoutes configures all routes and returns the router.
func SetupRoutes(svc *services.GeneratorService, schemaDir string, logger *log.Logger) (http.Handler, error) {
	schema, err := jsonschema.Compile(filepath.Join(schemaDir, "generate.schema.json"))
	if err != nil {
		return nil, fmt.Errorf("handlers: compile request schema: %w", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))

	gh := NewGenerationHandler(svc, schema)
	wh := NewWSHandler(svc, schema, logger)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/generate", gh.Generate)
		r.Get("/structures", gh.Catalog)
		r.Get("/generations", gh.Recent)
		r.Get("/generations/{id}", gh.Get)
		r.Get("/generations/{id}/schematic", gh.Schematic)
		r.Get("/ws", wh.Serve)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return r, nil
}

// respondJSON writes a JSON response.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON: %v", err)
	}
}

// respondError writes an error JSON envelope.
func respondError(w http.ResponseWriter, status int, message, detail string) {
	respondJSON(w, status, models.APIError{Error: message, Detail: detail})
}

// statusFor maps service errors onto HTTP statuses: configuration
// errors are the client's fault, everything else is ours.
func statusFor(err error) int {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, generation.ErrUnknownStructure),
		errors.Is(err, generation.ErrUnknownStyle),
		errors.Is(err, generation.ErrUnknownRoom),
		errors.Is(err, services.ErrLimitExceeded):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
