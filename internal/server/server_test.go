package server

import (
	"encoding/json"
	"image"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/ayusman/chitra/internal/paint"
	"github.com/ayusman/chitra/internal/store"
)

func newTestServer(t *testing.T) (*Server, *paint.Session, *store.Store) {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	session := paint.NewSession(1280, 720)
	t.Cleanup(session.Close)

	s, err := store.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })

	srv := New(Config{Session: session, Store: s})
	return srv, session, s
}

func TestServer_Health(t *testing.T) {
	srv := New(Config{})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %q, want %q", body["status"], "ok")
	}
}

func TestServer_HealthMethodNotAllowed(t *testing.T) {
	srv := New(Config{})

	req := httptest.NewRequest(http.MethodPost, "/api/health", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}

func TestServer_State(t *testing.T) {
	srv, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/state", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var body struct {
		Mode        string `json:"mode"`
		HeaderIndex int    `json:"headerIndex"`
		Color       [3]int `json:"color"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Mode != "idle" {
		t.Errorf("mode = %q, want %q", body.Mode, "idle")
	}
	if body.Color != [3]int{0, 0, 255} {
		t.Errorf("color = %v, want red (0,0,255)", body.Color)
	}
}

func TestServer_CanvasClear(t *testing.T) {
	srv, session, _ := newTestServer(t)

	session.Canvas().ContinueStroke(image.Point{X: 100, Y: 200}, paint.Red, 10)
	session.Canvas().ContinueStroke(image.Point{X: 200, Y: 300}, paint.Red, 10)

	req := httptest.NewRequest(http.MethodPost, "/api/canvas/clear", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if _, ok := session.Canvas().LastPoint(); ok {
		t.Error("canvas last point should be unset after clear")
	}
}

func TestServer_SessionsList(t *testing.T) {
	srv, _, s := newTestServer(t)

	if err := s.Sessions().Create(&store.Session{ID: "run-1"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/sessions", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var body struct {
		Sessions []struct {
			ID string `json:"id"`
		} `json:"sessions"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body.Sessions) != 1 || body.Sessions[0].ID != "run-1" {
		t.Errorf("sessions = %+v, want one session run-1", body.Sessions)
	}
}
