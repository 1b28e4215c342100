package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"voxelforge.dev/internal/models"
	"voxelforge.dev/internal/services"
)

// maxBodyBytes bounds a generate request body. The schema caps every
// field well below this; the limit just stops hostile payloads early.
const maxBodyBytes = 64 * 1024

// GenerationHandler handles the generation endpoints.
type GenerationHandler struct {
	svc    *services.GeneratorService
	schema *jsonschema.Schema
}

// NewGenerationHandler creates a GenerationHandler.
func NewGenerationHandler(svc *services.GeneratorService, schema *jsonschema.Schema) *GenerationHandler {
	return &GenerationHandler{svc: svc, schema: schema}
}

// decodeRequest reads, schema-validates and unmarshals one generate
// request body. Schema failures come back as a detail string so the
// caller can tell the client which field was wrong.
func decodeRequest(body io.Reader, schema *jsonschema.Schema) (models.GenerateRequest, error) {
	raw, err := io.ReadAll(io.LimitReader(body, maxBodyBytes))
	if err != nil {
		return models.GenerateRequest{}, fmt.Errorf("read body: %w", err)
	}

	var loose any
	if err := json.Unmarshal(raw, &loose); err != nil {
		return models.GenerateRequest{}, fmt.Errorf("invalid JSON: %w", err)
	}
	if err := schema.Validate(loose); err != nil {
		return models.GenerateRequest{}, err
	}

	var req models.GenerateRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return models.GenerateRequest{}, fmt.Errorf("invalid JSON: %w", err)
	}
	return req, nil
}

// Generate handles POST /v1/generate.
func (h *GenerationHandler) Generate(w http.ResponseWriter, r *http.Request) {
	req, err := decodeRequest(r.Body, h.schema)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	resp, err := h.svc.Generate(r.Context(), req)
	if err != nil {
		respondError(w, statusFor(err), "generation failed", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

// Get handles GET /v1/generations/{id}.
func (h *GenerationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	sum, err := h.svc.Generation(id)
	if err != nil {
		respondError(w, statusFor(err), "lookup failed", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, sum)
}

// Schematic handles GET /v1/generations/{id}/schematic, serving the
// stored .schem bytes as a download.
func (h *GenerationHandler) Schematic(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	data, err := h.svc.Schematic(id)
	if err != nil {
		respondError(w, statusFor(err), "lookup failed", err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", id+".schem"))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// Recent handles GET /v1/generations?limit=n.
func (h *GenerationHandler) Recent(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 || n > 200 {
			respondError(w, http.StatusBadRequest, "invalid request", "limit must be 1..200")
			return
		}
		limit = n
	}
	rows, err := h.svc.Recent(limit)
	if err != nil {
		respondError(w, statusFor(err), "listing failed", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, rows)
}

// Catalog handles GET /v1/structures.
func (h *GenerationHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.svc.Catalog())
}
