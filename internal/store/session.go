package store

import (
	"database/sql"
	"errors"
	"time"
)

// Session represents one painting run.
type Session struct {
	ID        string
	StartedAt time.Time
	EndedAt   sql.NullTime
	Strokes   int
	Clears    int
}

// SessionRepository provides access to painting session records.
type SessionRepository struct {
	db *sql.DB
}

// Sessions returns the session repository for this store.
func (s *Store) Sessions() *SessionRepository {
	return &SessionRepository{db: s.db}
}

// Create inserts a new session record.
func (r *SessionRepository) Create(sess *Session) error {
	if sess.StartedAt.IsZero() {
		sess.StartedAt = time.Now()
	}

	_, err := r.db.Exec(
		`INSERT INTO sessions (id, started_at, strokes, clears) VALUES (?, ?, ?, ?)`,
		sess.ID, sess.StartedAt, sess.Strokes, sess.Clears,
	)
	return err
}

// Finish records the end of a session along with its final counters.
func (r *SessionRepository) Finish(id string, strokes, clears int) error {
	res, err := r.db.Exec(
		`UPDATE sessions SET ended_at = ?, strokes = ?, clears = ? WHERE id = ?`,
		time.Now(), strokes, clears, id,
	)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// GetByID retrieves a session by its id.
func (r *SessionRepository) GetByID(id string) (*Session, error) {
	sess := &Session{}
	err := r.db.QueryRow(
		`SELECT id, started_at, ended_at, strokes, clears FROM sessions WHERE id = ?`,
		id,
	).Scan(&sess.ID, &sess.StartedAt, &sess.EndedAt, &sess.Strokes, &sess.Clears)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return sess, nil
}

// List returns all sessions, most recent first.
func (r *SessionRepository) List() ([]*Session, error) {
	rows, err := r.db.Query(
		`SELECT id, started_at, ended_at, strokes, clears FROM sessions ORDER BY started_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []*Session
	for rows.Next() {
		sess := &Session{}
		if err := rows.Scan(&sess.ID, &sess.StartedAt, &sess.EndedAt, &sess.Strokes, &sess.Clears); err != nil {
			return nil, err
		}
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}
