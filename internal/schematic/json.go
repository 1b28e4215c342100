package schematic

import (
	"encoding/json"
	"io"

	"voxelforge.dev/internal/voxel"
)

// Export is the JSON document web front ends load: raw dimensions, the
// full block array indexed [y][z][x] and the container inventories.
type Export struct {
	Width    int            `json:"width"`
	Height   int            `json:"height"`
	Length   int            `json:"length"`
	Blocks   [][][]string   `json:"blocks"`
	Entities []exportEntity `json:"entities"`
}

type exportEntity struct {
	X     int          `json:"x"`
	Y     int          `json:"y"`
	Z     int          `json:"z"`
	ID    string       `json:"id"`
	Items []voxel.Item `json:"items,omitempty"`
}

// WriteJSON streams the JSON export of a grid. Entities marshal as an
// empty array rather than null so clients can index without nil checks.
func WriteJSON(w io.Writer, g *voxel.Grid) error {
	entities := make([]exportEntity, 0, len(g.Entities()))
	for _, e := range g.Entities() {
		entities = append(entities, exportEntity{X: e.X, Y: e.Y, Z: e.Z, ID: e.ID, Items: e.Items})
	}
	return json.NewEncoder(w).Encode(Export{
		Width:    g.Width(),
		Height:   g.Height(),
		Length:   g.Length(),
		Blocks:   g.To3D(),
		Entities: entities,
	})
}
