package schematic

import (
	"bytes"
	"io"
	"testing"

	"github.com/klauspost/compress/gzip"

	"voxelforge.dev/internal/voxel"
)

func sampleGrid(t *testing.T) *voxel.Grid {
	t.Helper()
	g, err := voxel.NewGrid(3, 2, 4)
	if err != nil {
		t.Fatalf("new grid: %v", err)
	}
	g.Set(0, 0, 0, "stone")
	g.Set(1, 0, 0, "oak_planks")
	g.Set(2, 1, 3, "chest[facing=south]")
	g.SetEntity(voxel.BlockEntity{
		X: 2, Y: 1, Z: 3, ID: "chest",
		Items: []voxel.Item{{Slot: 0, ID: "bread", Count: 3}},
	})
	return g
}

func gunzip(t *testing.T, b []byte) []byte {
	t.Helper()
	zr, err := gzip.NewReader(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("gzip reader: %v", err)
	}
	raw, err := io.ReadAll(zr)
	if err != nil {
		t.Fatalf("decompress: %v", err)
	}
	return raw
}

// namedTag renders the byte pattern a named tag header produces, for
// searching the decompressed stream.
func namedTag(id byte, name string, payload ...byte) []byte {
	b := []byte{id, byte(len(name) >> 8), byte(len(name))}
	b = append(b, name...)
	return append(b, payload...)
}

func TestEncodeDeterministic(t *testing.T) {
	a, err := Encode(sampleGrid(t))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	b, err := Encode(sampleGrid(t))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("identical grids encoded to different bytes")
	}
}

func TestEncodeIsGzip(t *testing.T) {
	out, err := Encode(sampleGrid(t))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(out) < 2 || out[0] != 0x1f || out[1] != 0x8b {
		t.Fatalf("output does not start with the gzip magic: % x", out[:2])
	}
}

func TestEncodeHeaderFields(t *testing.T) {
	raw := gunzip(t, mustEncode(t, sampleGrid(t)))

	checks := [][]byte{
		namedTag(tagInt, "Version", 0, 0, 0, 2),
		namedTag(tagShort, "Width", 0, 3),
		namedTag(tagShort, "Height", 0, 2),
		namedTag(tagShort, "Length", 0, 4),
		// The scan starts at (0,0,0) which holds stone, so stone takes
		// palette index 0 and air is first seen two cells later.
		namedTag(tagInt, "minecraft:stone", 0, 0, 0, 0),
		namedTag(tagInt, "minecraft:oak_planks", 0, 0, 0, 1),
		namedTag(tagInt, "minecraft:air", 0, 0, 0, 2),
	}
	for _, want := range checks {
		if !bytes.Contains(raw, want) {
			t.Errorf("decompressed schematic missing tag bytes % x", want)
		}
	}
}

func TestEncodeBlockEntities(t *testing.T) {
	raw := gunzip(t, mustEncode(t, sampleGrid(t)))

	if !bytes.Contains(raw, namedTag(tagList, "BlockEntities", tagCompound, 0, 0, 0, 1)) {
		t.Error("block entity list header missing")
	}
	if !bytes.Contains(raw, namedTag(tagString, "Id", 0, 15)) {
		t.Error("entity Id tag missing")
	}
	if !bytes.Contains(raw, []byte("minecraft:chest")) {
		t.Error("entity id not namespaced")
	}
	if !bytes.Contains(raw, namedTag(tagByte, "Count", 3)) {
		t.Error("item count missing")
	}
}

func TestEncodeOmitsEmptyEntityList(t *testing.T) {
	g, err := voxel.NewGrid(2, 2, 2)
	if err != nil {
		t.Fatalf("new grid: %v", err)
	}
	raw := gunzip(t, mustEncode(t, g))
	if bytes.Contains(raw, []byte("BlockEntities")) {
		t.Error("empty grid should not carry a BlockEntities list")
	}
}

func TestAppendVarint(t *testing.T) {
	tests := []struct {
		v    int
		want []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{127, []byte{0x7f}},
		{128, []byte{0x80, 0x01}},
		{300, []byte{0xac, 0x02}},
		{16384, []byte{0x80, 0x80, 0x01}},
	}
	for _, tt := range tests {
		if got := appendVarint(nil, tt.v); !bytes.Equal(got, tt.want) {
			t.Errorf("appendVarint(%d) = % x, want % x", tt.v, got, tt.want)
		}
	}
}

func TestNamespaced(t *testing.T) {
	if got := namespaced("stone"); got != "minecraft:stone" {
		t.Errorf("bare id: got %q", got)
	}
	if got := namespaced("oak_stairs[facing=north]"); got != "minecraft:oak_stairs[facing=north]" {
		t.Errorf("bare state: got %q", got)
	}
	if got := namespaced("mymod:widget"); got != "mymod:widget" {
		t.Errorf("namespaced id rewritten: got %q", got)
	}
}

func mustEncode(t *testing.T, g *voxel.Grid) []byte {
	t.Helper()
	out, err := Encode(g)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	return out
}
