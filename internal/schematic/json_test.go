package schematic

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"voxelforge.dev/internal/voxel"
)

func TestWriteJSON(t *testing.T) {
	g := sampleGrid(t)
	var buf bytes.Buffer
	if err := WriteJSON(&buf, g); err != nil {
		t.Fatalf("write json: %v", err)
	}

	var doc Export
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc.Width != 3 || doc.Height != 2 || doc.Length != 4 {
		t.Errorf("dims: got %dx%dx%d", doc.Width, doc.Height, doc.Length)
	}
	if got := doc.Blocks[0][0][0]; got != "stone" {
		t.Errorf("blocks[0][0][0]: got %q", got)
	}
	if got := doc.Blocks[1][3][2]; got != "chest[facing=south]" {
		t.Errorf("blocks[1][3][2]: got %q", got)
	}
	if len(doc.Entities) != 1 {
		t.Fatalf("entities: got %d, want 1", len(doc.Entities))
	}
	e := doc.Entities[0]
	if e.X != 2 || e.Y != 1 || e.Z != 3 || e.ID != "chest" {
		t.Errorf("entity: got %+v", e)
	}
	if len(e.Items) != 1 || e.Items[0].ID != "bread" || e.Items[0].Count != 3 {
		t.Errorf("entity items: got %+v", e.Items)
	}
}

func TestWriteJSONEmptyEntities(t *testing.T) {
	g, err := voxel.NewGrid(1, 1, 1)
	if err != nil {
		t.Fatalf("new grid: %v", err)
	}
	var buf bytes.Buffer
	if err := WriteJSON(&buf, g); err != nil {
		t.Fatalf("write json: %v", err)
	}
	if !strings.Contains(buf.String(), `"entities":[]`) {
		t.Errorf("entities should marshal as an empty array, got: %s", buf.String())
	}
}
