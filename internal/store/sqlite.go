// internal/store/sqlite.go
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/wordboard/backend/internal/domain/history"
	practicesession "github.com/wordboard/backend/internal/domain/practice_session"
)

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
    id TEXT PRIMARY KEY,
    state TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS attempts (
    session_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    answered_at TEXT NOT NULL,
    question_id TEXT NOT NULL,
    type TEXT NOT NULL,
    question TEXT NOT NULL,
    user_answer TEXT NOT NULL,
    correct_answer TEXT NOT NULL,
    correct INTEGER,
    PRIMARY KEY (session_id, position),
    FOREIGN KEY (session_id) REFERENCES sessions(id)
);
`

type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	// one writer keeps SQLITE_BUSY out of concurrent requests
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveSession upserts the session state and rewrites its attempt history.
func (s *SQLiteStore) SaveSession(ctx context.Context, snap practicesession.Snapshot) error {
	state, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", snap.ID, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO sessions (id, state, created_at, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET state = excluded.state, updated_at = excluded.updated_at
	`, snap.ID, string(state), formatTime(snap.CreatedAt), formatTime(snap.UpdatedAt))
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM attempts WHERE session_id = ?", snap.ID); err != nil {
		return err
	}

	for i, a := range snap.History {
		var correct sql.NullInt64
		if a.Correct != nil {
			correct.Valid = true
			if *a.Correct {
				correct.Int64 = 1
			}
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO attempts (session_id, position, answered_at, question_id, type, question, user_answer, correct_answer, correct)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			snap.ID, i, a.Time.Format(time.RFC3339Nano), a.QuestionID, a.Type, a.Question, a.UserAnswer, a.CorrectAnswer, correct,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetSession(ctx context.Context, id string) (practicesession.Snapshot, error) {
	var state string
	err := s.db.QueryRowContext(ctx, "SELECT state FROM sessions WHERE id = ?", id).Scan(&state)
	if errors.Is(err, sql.ErrNoRows) {
		return practicesession.Snapshot{}, ErrNotFound
	}
	if err != nil {
		return practicesession.Snapshot{}, err
	}

	var snap practicesession.Snapshot
	if err := json.Unmarshal([]byte(state), &snap); err != nil {
		return practicesession.Snapshot{}, fmt.Errorf("decode session %s: %w", id, err)
	}

	snap.History, err = s.getAttempts(ctx, id)
	if err != nil {
		return practicesession.Snapshot{}, err
	}
	return snap, nil
}

func (s *SQLiteStore) getAttempts(ctx context.Context, sessionID string) ([]history.Attempt, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT answered_at, question_id, type, question, user_answer, correct_answer, correct
		FROM attempts WHERE session_id = ? ORDER BY position
	`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attempts []history.Attempt
	for rows.Next() {
		var (
			a       history.Attempt
			at      string
			correct sql.NullInt64
		)
		if err := rows.Scan(&at, &a.QuestionID, &a.Type, &a.Question, &a.UserAnswer, &a.CorrectAnswer, &correct); err != nil {
			return nil, err
		}
		// the stored offset is the zone the attempt was logged in
		if a.Time, err = time.Parse(time.RFC3339Nano, at); err != nil {
			return nil, fmt.Errorf("parse attempt time %q: %w", at, err)
		}
		if correct.Valid {
			ok := correct.Int64 == 1
			a.Correct = &ok
		}
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}

func (s *SQLiteStore) DeleteSession(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM attempts WHERE session_id = ?", id); err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, "DELETE FROM sessions WHERE id = ?", id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return tx.Commit()
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
