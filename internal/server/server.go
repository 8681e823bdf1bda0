// Package server provides the HTTP control surface for the Chitra air painter.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ayusman/chitra/internal/detector"
	"github.com/ayusman/chitra/internal/paint"
	"github.com/ayusman/chitra/internal/server/api"
	"github.com/ayusman/chitra/internal/store"
)

// FrameSource provides the most recent composited frame as JPEG bytes.
type FrameSource interface {
	Latest() ([]byte, bool)
}

// StateSource provides the current paint state and detected hands for
// broadcasting.
type StateSource interface {
	Snapshot() (paint.State, []detector.HandLandmarks)
}

// Config holds the server configuration.
type Config struct {
	StaticDir string
	Store     *store.Store
	Session   *paint.Session
	Frames    FrameSource
	State     StateSource
}

// Server represents the HTTP server for the Chitra application.
type Server struct {
	config Config
	mux    *http.ServeMux
	start  time.Time
}

// New creates a new Server with the given configuration.
func New(config Config) *Server {
	s := &Server{
		config: config,
		mux:    http.NewServeMux(),
		start:  time.Now(),
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures all HTTP routes for the server.
func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/api/health", s.handleHealth)

	if s.config.Session != nil {
		paletteHandler := api.NewPaletteHandler(s.config.Session)
		s.mux.Handle("/api/palette", paletteHandler)
		s.mux.Handle("/api/palette/", paletteHandler)

		s.mux.Handle("/api/state", api.NewStateHandler(s.config.Session))
		s.mux.Handle("/api/canvas/", api.NewCanvasHandler(s.config.Session))
	}

	if s.config.Store != nil {
		s.mux.Handle("/api/sessions", api.NewSessionsHandler(s.config.Store))
	}

	if s.config.Frames != nil {
		s.mux.Handle("/api/stream", NewStreamHandler(s.config.Frames))
	}

	if s.config.State != nil {
		s.mux.Handle("/api/events", NewEventsHandler(s.config.State))
	}

	if s.config.StaticDir != "" {
		fs := http.FileServer(http.Dir(s.config.StaticDir))
		s.mux.Handle("/", fs)
	}
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// handleHealth handles GET requests to /api/health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(s.start)

	response := map[string]interface{}{
		"status": "ok",
		"uptime": uptime.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// ListenAndServe starts the HTTP server on the given address.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}
