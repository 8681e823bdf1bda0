package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

// newTestStore creates a Store backed by a temp-dir database.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "chitra-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() {
		os.RemoveAll(tmpDir)
	})

	dbPath := filepath.Join(tmpDir, "test.db")
	s, err := New(dbPath)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() {
		s.Close()
	})

	return s
}

func TestSettingsRepository_SetGet(t *testing.T) {
	s := newTestStore(t)
	repo := s.Settings()

	if err := repo.Set(SettingHeaderIndex, "2"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	value, err := repo.Get(SettingHeaderIndex)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if value != "2" {
		t.Errorf("Get() = %q, want %q", value, "2")
	}

	// Overwrite replaces the previous value
	if err := repo.Set(SettingHeaderIndex, "3"); err != nil {
		t.Fatalf("Set() overwrite error = %v", err)
	}
	value, _ = repo.Get(SettingHeaderIndex)
	if value != "3" {
		t.Errorf("Get() after overwrite = %q, want %q", value, "3")
	}
}

func TestSettingsRepository_GetMissing(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Settings().Get("no_such_key")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestSettingsRepository_GetInt(t *testing.T) {
	s := newTestStore(t)
	repo := s.Settings()

	// Missing key falls back to the default
	got, err := repo.GetInt(SettingBrushThickness, 20)
	if err != nil {
		t.Fatalf("GetInt() error = %v", err)
	}
	if got != 20 {
		t.Errorf("GetInt() default = %d, want 20", got)
	}

	if err := repo.SetInt(SettingBrushThickness, 35); err != nil {
		t.Fatalf("SetInt() error = %v", err)
	}
	got, err = repo.GetInt(SettingBrushThickness, 20)
	if err != nil {
		t.Fatalf("GetInt() error = %v", err)
	}
	if got != 35 {
		t.Errorf("GetInt() = %d, want 35", got)
	}
}

func TestSessionRepository_CreateFinish(t *testing.T) {
	s := newTestStore(t)
	repo := s.Sessions()

	id := uuid.NewString()
	if err := repo.Create(&Session{ID: id}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	sess, err := repo.GetByID(id)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if sess.StartedAt.IsZero() {
		t.Error("StartedAt should be set on create")
	}
	if sess.EndedAt.Valid {
		t.Error("EndedAt should be null before Finish")
	}

	if err := repo.Finish(id, 12, 3); err != nil {
		t.Fatalf("Finish() error = %v", err)
	}

	sess, err = repo.GetByID(id)
	if err != nil {
		t.Fatalf("GetByID() after Finish error = %v", err)
	}
	if !sess.EndedAt.Valid {
		t.Error("EndedAt should be set after Finish")
	}
	if sess.Strokes != 12 || sess.Clears != 3 {
		t.Errorf("counters = %d strokes, %d clears, want 12, 3", sess.Strokes, sess.Clears)
	}
}

func TestSessionRepository_FinishMissing(t *testing.T) {
	s := newTestStore(t)

	err := s.Sessions().Finish("no-such-session", 0, 0)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Finish() error = %v, want ErrNotFound", err)
	}
}

func TestSessionRepository_List(t *testing.T) {
	s := newTestStore(t)
	repo := s.Sessions()

	for i := 0; i < 3; i++ {
		if err := repo.Create(&Session{ID: uuid.NewString()}); err != nil {
			t.Fatalf("Create() %d error = %v", i, err)
		}
	}

	sessions, err := repo.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(sessions) != 3 {
		t.Errorf("List() returned %d sessions, want 3", len(sessions))
	}
}
