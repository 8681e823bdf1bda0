package api

import (
	"encoding/json"
	"net/http"

	"github.com/ayusman/chitra/internal/paint"
)

// StateHandler serves the current paint state.
type StateHandler struct {
	session *paint.Session
}

// NewStateHandler creates a new StateHandler for the given session.
func NewStateHandler(s *paint.Session) *StateHandler {
	return &StateHandler{session: s}
}

type stateResponse struct {
	Mode        string `json:"mode"`
	HeaderIndex int    `json:"headerIndex"`
	Color       [3]int `json:"color"` // BGR
	Thickness   int    `json:"thickness"`
}

func stateResponseFrom(state paint.State) stateResponse {
	return stateResponse{
		Mode:        state.Mode.String(),
		HeaderIndex: state.HeaderIndex,
		Color:       [3]int{int(state.Color.B), int(state.Color.G), int(state.Color.R)},
		Thickness:   state.Thickness,
	}
}

// ServeHTTP handles GET /api/state.
func (h *StateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, stateResponseFrom(h.session.State()))
}

// CanvasHandler handles canvas operations.
type CanvasHandler struct {
	session *paint.Session
}

// NewCanvasHandler creates a new CanvasHandler for the given session.
func NewCanvasHandler(s *paint.Session) *CanvasHandler {
	return &CanvasHandler{session: s}
}

// ServeHTTP handles POST /api/canvas/clear, the same full-canvas clear the
// open-palm gesture performs.
func (h *CanvasHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/api/canvas/clear" || r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	h.session.Clear()
	writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
