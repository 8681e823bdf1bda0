package api

import (
	"net/http"

	"github.com/ayusman/chitra/internal/store"
)

// SessionsHandler serves recorded painting sessions.
type SessionsHandler struct {
	store *store.Store
}

// NewSessionsHandler creates a new SessionsHandler with the given store.
func NewSessionsHandler(s *store.Store) *SessionsHandler {
	return &SessionsHandler{store: s}
}

type sessionResponse struct {
	ID        string `json:"id"`
	StartedAt string `json:"started_at"`
	EndedAt   string `json:"ended_at,omitempty"`
	Strokes   int    `json:"strokes"`
	Clears    int    `json:"clears"`
}

type listSessionsResponse struct {
	Sessions []sessionResponse `json:"sessions"`
}

// ServeHTTP handles GET /api/sessions.
func (h *SessionsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sessions, err := h.store.Sessions().List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list sessions")
		return
	}

	response := listSessionsResponse{
		Sessions: make([]sessionResponse, 0, len(sessions)),
	}
	for _, s := range sessions {
		resp := sessionResponse{
			ID:        s.ID,
			StartedAt: s.StartedAt.Format("2006-01-02T15:04:05Z07:00"),
			Strokes:   s.Strokes,
			Clears:    s.Clears,
		}
		if s.EndedAt.Valid {
			resp.EndedAt = s.EndedAt.Time.Format("2006-01-02T15:04:05Z07:00")
		}
		response.Sessions = append(response.Sessions, resp)
	}

	writeJSON(w, http.StatusOK, response)
}
