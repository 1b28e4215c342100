// Package schematic turns voxel grids into files other tools can load:
// Sponge schematic v2 for game editors and a JSON export for web
// clients. Encoding is deterministic so identical grids always produce
// identical bytes.
package schematic

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/klauspost/compress/gzip"

	"voxelforge.dev/internal/voxel"
)

// dataVersion pins palette ids to the 1.18.2 block-state report.
const dataVersion = 2975

// Encode serializes a grid as a gzip-compressed Sponge schematic v2.
// Palette indices are assigned in first-seen YZX scan order and the
// block data is varint-packed in the same order, so two identical grids
// encode to identical bytes.
func Encode(g *voxel.Grid) ([]byte, error) {
	w, h, l := g.Width(), g.Height(), g.Length()
	if w > math.MaxInt16 || h > math.MaxInt16 || l > math.MaxInt16 {
		return nil, fmt.Errorf("schematic: dimensions %dx%dx%d exceed the format's int16 limit", w, h, l)
	}

	// One scan builds both the palette and the packed block data.
	palette := make(map[string]int)
	order := make([]string, 0, 16)
	data := make([]byte, 0, w*h*l)
	for y := 0; y < h; y++ {
		for z := 0; z < l; z++ {
			for x := 0; x < w; x++ {
				state := namespaced(g.Get(x, y, z))
				idx, ok := palette[state]
				if !ok {
					idx = len(order)
					palette[state] = idx
					order = append(order, state)
				}
				data = appendVarint(data, idx)
			}
		}
	}

	var nbt nbtWriter
	nbt.beginCompound("Schematic")
	nbt.intTag("Version", 2)
	nbt.intTag("DataVersion", dataVersion)
	nbt.shortTag("Width", int16(w))
	nbt.shortTag("Height", int16(h))
	nbt.shortTag("Length", int16(l))
	nbt.intTag("PaletteMax", int32(len(order)))
	nbt.beginCompound("Palette")
	for i, state := range order {
		nbt.intTag(state, int32(i))
	}
	nbt.end()
	nbt.byteArrayTag("BlockData", data)

	if entities := g.Entities(); len(entities) > 0 {
		nbt.beginList("BlockEntities", tagCompound, len(entities))
		for _, e := range entities {
			nbt.intArrayTag("Pos", []int32{int32(e.X), int32(e.Y), int32(e.Z)})
			nbt.stringTag("Id", namespaced(e.ID))
			if len(e.Items) > 0 {
				nbt.beginList("Items", tagCompound, len(e.Items))
				for _, it := range e.Items {
					nbt.byteTag("Slot", byte(it.Slot))
					nbt.byteTag("Count", byte(it.Count))
					nbt.stringTag("id", namespaced(it.ID))
					nbt.end()
				}
			}
			nbt.end()
		}
	}
	nbt.end()

	var out bytes.Buffer
	zw := gzip.NewWriter(&out)
	if _, err := zw.Write(nbt.bytes()); err != nil {
		return nil, fmt.Errorf("schematic: compress: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("schematic: compress: %w", err)
	}
	return out.Bytes(), nil
}

// namespaced prefixes bare block ids with the minecraft namespace.
// Grid states stay short internally; files carry the full id.
func namespaced(id string) string {
	if strings.Contains(id, ":") {
		return id
	}
	return "minecraft:" + id
}

// appendVarint appends an unsigned LEB128 varint, the packing the
// schematic block-data array requires.
func appendVarint(b []byte, v int) []byte {
	u := uint32(v)
	for u >= 0x80 {
		b = append(b, byte(u)|0x80)
		u >>= 7
	}
	return append(b, byte(u))
}
