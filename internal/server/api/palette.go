// Package api provides HTTP API handlers for the Chitra air painter.
package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ayusman/chitra/internal/paint"
)

// PaletteHandler handles HTTP requests for the toolbar palette.
type PaletteHandler struct {
	session *paint.Session
}

// NewPaletteHandler creates a new PaletteHandler for the given session.
func NewPaletteHandler(s *paint.Session) *PaletteHandler {
	return &PaletteHandler{session: s}
}

// ServeHTTP routes palette requests.
// GET /api/palette lists the swatches; POST /api/palette/select switches
// the active swatch.
func (h *PaletteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/palette")
	path = strings.TrimPrefix(path, "/")

	switch {
	case path == "" && r.Method == http.MethodGet:
		h.list(w, r)
	case path == "select" && r.Method == http.MethodPost:
		h.selectSwatch(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

type swatchResponse struct {
	HeaderIndex int    `json:"headerIndex"`
	XMin        int    `json:"xMin"`
	XMax        int    `json:"xMax"`
	Color       [3]int `json:"color"` // BGR
	Active      bool   `json:"active"`
}

type listPaletteResponse struct {
	Swatches []swatchResponse `json:"swatches"`
}

type selectSwatchRequest struct {
	Index int `json:"index"`
}

// list handles GET /api/palette.
func (h *PaletteHandler) list(w http.ResponseWriter, r *http.Request) {
	state := h.session.State()

	response := listPaletteResponse{}
	for _, s := range h.session.Palette() {
		response.Swatches = append(response.Swatches, swatchResponse{
			HeaderIndex: s.HeaderIndex,
			XMin:        s.XMin,
			XMax:        s.XMax,
			Color:       [3]int{int(s.Color.B), int(s.Color.G), int(s.Color.R)},
			Active:      s.HeaderIndex == state.HeaderIndex,
		})
	}

	writeJSON(w, http.StatusOK, response)
}

// selectSwatch handles POST /api/palette/select.
func (h *PaletteHandler) selectSwatch(w http.ResponseWriter, r *http.Request) {
	var req selectSwatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.session.Select(req.Index); err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, stateResponseFrom(h.session.State()))
}
