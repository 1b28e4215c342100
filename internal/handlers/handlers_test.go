package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"voxelforge.dev/internal/config"
	"voxelforge.dev/internal/models"
	"voxelforge.dev/internal/services"
	"voxelforge.dev/internal/store"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "generations.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	cfg := config.Defaults()
	logger := log.New(io.Discard, "", 0)
	svc := services.NewGeneratorService(cfg, st, logger)

	router, err := SetupRoutes(svc, filepath.Join("..", "..", "schemas"), logger)
	if err != nil {
		t.Fatalf("setup routes: %v", err)
	}
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func postGenerate(t *testing.T, srv *httptest.Server, body string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Post(srv.URL+"/v1/generate", "application/json", bytes.NewBufferString(body))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	raw, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, raw
}

func TestGenerateEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, raw := postGenerate(t, srv, `{"type":"house","style":"fantasy","seed":42,"floors":2}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: got %d, body %s", resp.StatusCode, raw)
	}
	var gen models.GenerateResponse
	if err := json.Unmarshal(raw, &gen); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if gen.ID == "" || gen.Blocks == 0 {
		t.Errorf("incomplete response: %+v", gen)
	}
	if gen.Type != "house" || gen.Seed != 42 {
		t.Errorf("echo mismatch: %+v", gen)
	}

	// The response links to the schematic download.
	dl, err := http.Get(srv.URL + gen.SchematicURL)
	if err != nil {
		t.Fatalf("download: %v", err)
	}
	data, _ := io.ReadAll(dl.Body)
	_ = dl.Body.Close()
	if dl.StatusCode != http.StatusOK {
		t.Fatalf("download status: got %d", dl.StatusCode)
	}
	if len(data) == 0 {
		t.Error("empty schematic download")
	}

	// And the metadata endpoint knows it.
	meta, err := http.Get(srv.URL + "/v1/generations/" + gen.ID)
	if err != nil {
		t.Fatalf("metadata: %v", err)
	}
	_ = meta.Body.Close()
	if meta.StatusCode != http.StatusOK {
		t.Errorf("metadata status: got %d", meta.StatusCode)
	}
}

func TestGenerateSchemaViolations(t *testing.T) {
	srv := newTestServer(t)

	cases := []struct {
		name string
		body string
	}{
		{"missing type", `{"style":"fantasy"}`},
		{"unknown field", `{"type":"house","bogus":1}`},
		{"type outside enum", `{"type":"skyscraper"}`},
		{"floors out of range", `{"type":"house","floors":99}`},
		{"not json", `{"type":`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, raw := postGenerate(t, srv, tc.body)
			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("status: got %d, body %s", resp.StatusCode, raw)
			}
			var apiErr models.APIError
			if err := json.Unmarshal(raw, &apiErr); err != nil {
				t.Fatalf("decode error envelope: %v", err)
			}
			if apiErr.Error == "" {
				t.Error("error envelope missing message")
			}
		})
	}
}

func TestGenerateSemanticErrors(t *testing.T) {
	srv := newTestServer(t)

	// Schema-valid but semantically wrong: unknown style and room tags
	// pass the shape check and fail in the engine.
	for _, body := range []string{
		`{"type":"house","style":"brutalist"}`,
		`{"type":"house","rooms":["holodeck"]}`,
	} {
		resp, raw := postGenerate(t, srv, body)
		if resp.StatusCode != http.StatusUnprocessableEntity {
			t.Errorf("%s: status got %d, body %s", body, resp.StatusCode, raw)
		}
	}
}

func TestGenerateLimitEnforced(t *testing.T) {
	srv := newTestServer(t)

	resp, raw := postGenerate(t, srv, `{"type":"castle","width":500,"length":500}`)
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status: got %d, body %s", resp.StatusCode, raw)
	}
}

func TestGenerationNotFound(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/v1/generations/no-such-id")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status: got %d", resp.StatusCode)
	}
}

func TestCatalogAndRecent(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/v1/structures")
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	var cat models.CatalogResponse
	if err := json.NewDecoder(resp.Body).Decode(&cat); err != nil {
		t.Fatalf("decode catalog: %v", err)
	}
	_ = resp.Body.Close()
	if len(cat.Structures) != 10 {
		t.Errorf("structures: got %d, want 10", len(cat.Structures))
	}
	if len(cat.Styles) == 0 || len(cat.Rooms) == 0 {
		t.Errorf("catalog missing styles or rooms: %+v", cat)
	}

	// Recent is empty before any generation, then lists the new one.
	postGenerate(t, srv, `{"type":"tower","seed":7}`)
	resp, err = http.Get(srv.URL + "/v1/generations?limit=5")
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	var rows []models.GenerationSummary
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		t.Fatalf("decode recent: %v", err)
	}
	_ = resp.Body.Close()
	if len(rows) != 1 || rows[0].Type != "tower" {
		t.Errorf("recent: got %+v", rows)
	}
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("healthz: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status: got %d", resp.StatusCode)
	}
}
