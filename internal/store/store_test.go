package store

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "generations.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("close store: %v", err)
		}
	})
	return s
}

func TestPutGetRoundTrip(t *testing.T) {
	s := openTestStore(t)
	rec := Record{
		ID:        "gen-1",
		CreatedAt: time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
		Structure: "house",
		Style:     "fantasy",
		Seed:      42,
		Width:     13, Height: 14, Length: 15,
		Blocks:   1234,
		Entities: 3,
		OptsJSON: []byte(`{"type":"house","seed":42}`),
		Schematic: bytes.Repeat([]byte("schematic-bytes-"), 64),
	}
	if err := s.Put(rec); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := s.Get("gen-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Structure != "house" || got.Style != "fantasy" || got.Seed != 42 {
		t.Errorf("metadata mismatch: %+v", got)
	}
	if got.Width != 13 || got.Height != 14 || got.Length != 15 || got.Blocks != 1234 || got.Entities != 3 {
		t.Errorf("dims mismatch: %+v", got)
	}
	if !got.CreatedAt.Equal(rec.CreatedAt) {
		t.Errorf("created_at: got %v, want %v", got.CreatedAt, rec.CreatedAt)
	}
	if !bytes.Equal(got.OptsJSON, rec.OptsJSON) {
		t.Errorf("opts json: got %s", got.OptsJSON)
	}
	if !bytes.Equal(got.Schematic, rec.Schematic) {
		t.Error("schematic blob did not survive compression round trip")
	}
}

func TestGetMissing(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.Get("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing id: got %v, want ErrNotFound", err)
	}
}

func TestPutRejectsEmptyID(t *testing.T) {
	s := openTestStore(t)
	if err := s.Put(Record{}); err == nil {
		t.Error("empty id accepted")
	}
}

func TestPutDuplicateID(t *testing.T) {
	s := openTestStore(t)
	rec := Record{ID: "dup", Structure: "tower", Style: "gothic"}
	if err := s.Put(rec); err != nil {
		t.Fatalf("first put: %v", err)
	}
	if err := s.Put(rec); err == nil {
		t.Error("duplicate id accepted")
	}
}

func TestRecentOrderAndLimit(t *testing.T) {
	s := openTestStore(t)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		rec := Record{
			ID:        []string{"a", "b", "c", "d", "e"}[i],
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
			Structure: "house",
			Style:     "fantasy",
		}
		if err := s.Put(rec); err != nil {
			t.Fatalf("put %d: %v", i, err)
		}
	}

	got, err := s.Recent(3)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("recent count: got %d, want 3", len(got))
	}
	for i, want := range []string{"e", "d", "c"} {
		if got[i].ID != want {
			t.Errorf("recent[%d]: got %q, want %q", i, got[i].ID, want)
		}
	}
}

func TestRecentEmptyStore(t *testing.T) {
	s := openTestStore(t)
	got, err := s.Recent(10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("recent on empty store: got %d rows", len(got))
	}
}
