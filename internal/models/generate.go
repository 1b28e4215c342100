package models

// GenerateRequest is the body of POST /v1/generate and of each
// websocket generate message. Seed is a pointer so an absent seed can
// fall back to the address-derived one.
type GenerateRequest struct {
	Type     string   `json:"type"`
	Style    string   `json:"style,omitempty"`
	Seed     *int64   `json:"seed,omitempty"`
	Address  string   `json:"address,omitempty"`
	Floors   int      `json:"floors,omitempty"`
	Width    int      `json:"width,omitempty"`
	Length   int      `json:"length,omitempty"`
	Rooms    []string `json:"rooms,omitempty"`
	Plan     string   `json:"plan,omitempty"`
	Roof     string   `json:"roof,omitempty"`
	Features Features `json:"features"`
}

// Features mirrors the optional house additions as JSON booleans.
type Features struct {
	Porch   bool `json:"porch,omitempty"`
	Garage  bool `json:"garage,omitempty"`
	Chimney bool `json:"chimney,omitempty"`
	Garden  bool `json:"garden,omitempty"`
	Fence   bool `json:"fence,omitempty"`
	Balcony bool `json:"balcony,omitempty"`
}

// GenerateResponse describes a finished generation
type GenerateResponse struct {
	ID           string `json:"id"`
	Type         string `json:"type"`
	Style        string `json:"style"`
	Seed         int64  `json:"seed"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	Length       int    `json:"length"`
	Blocks       int    `json:"blocks"`
	Entities     int    `json:"entities"`
	CreatedAt    string `json:"created_at"`
	SchematicURL string `json:"schematic_url"`
}

// GenerationSummary is one row of the recent-generations listing
type GenerationSummary struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Style     string `json:"style"`
	Seed      int64  `json:"seed"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Length    int    `json:"length"`
	Blocks    int    `json:"blocks"`
	CreatedAt string `json:"created_at"`
}

// CatalogResponse lists every tag a request may use
type CatalogResponse struct {
	Structures []string `json:"structures"`
	Styles     []string `json:"styles"`
	Rooms      []string `json:"rooms"`
	Plans      []string `json:"plans"`
	Roofs      []string `json:"roofs"`
}

// APIError is the JSON error envelope
type APIError struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}
