package handlers

import (
	"bytes"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"voxelforge.dev/internal/services"
)

// WSHandler serves the preview socket: one JSON generate request per
// message, one JSON response back. The same schema guards the socket
// and the POST endpoint.
type WSHandler struct {
	svc    *services.GeneratorService
	schema *jsonschema.Schema
	log    *log.Logger

	upgrader websocket.Upgrader
}

// NewWSHandler creates a WSHandler.
func NewWSHandler(svc *services.GeneratorService, schema *jsonschema.Schema, logger *log.Logger) *WSHandler {
	return &WSHandler{
		svc:    svc,
		schema: schema,
		log:    logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  16 * 1024,
			WriteBufferSize: 16 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true }, // dev default
		},
	}
}

// wsError is the socket-side error envelope, mirroring APIError.
type wsError struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// Serve handles GET /v1/ws. The loop is strictly request/response:
// the client waits for each result before sending the next request,
// so a single writer suffices.
func (h *WSHandler) Serve(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	for {
		_ = conn.SetReadDeadline(time.Now().Add(5 * time.Minute))
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}

		req, err := decodeRequest(bytes.NewReader(msg), h.schema)
		if err != nil {
			h.write(conn, wsError{Error: "invalid request", Detail: err.Error()})
			continue
		}

		resp, err := h.svc.Generate(r.Context(), req)
		if err != nil {
			h.write(conn, wsError{Error: "generation failed", Detail: err.Error()})
			continue
		}
		h.write(conn, resp)
	}
}

func (h *WSHandler) write(conn *websocket.Conn, v any) {
	_ = conn.SetWriteDeadline(time.Now().Add(30 * time.Second))
	if err := conn.WriteJSON(v); err != nil {
		h.log.Printf("ws write: %v", err)
	}
}
