// Package history persists overlay activations to a sqlite database so
// users can see which breaks they actually took.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/blinktimer/blinktimer/common"
	"github.com/blinktimer/blinktimer/pkg/blinklib"
)

const schema = `
CREATE TABLE IF NOT EXISTS activations (
	id         TEXT PRIMARY KEY,
	title      TEXT NOT NULL,
	started_at INTEGER NOT NULL,
	ended_at   INTEGER NOT NULL,
	dismissed  INTEGER NOT NULL DEFAULT 0,
	skipped    INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_activations_started ON activations(started_at);
`

// Store records and lists overlay activations. It implements
// blinklib.Recorder.
type Store struct {
	db *sql.DB
}

// Open creates the database file (and its directory) if needed and
// prepares the schema.
func Open(ctx context.Context, path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record inserts one activation.
func (s *Store) Record(a blinklib.Activation) error {
	_, err := s.db.Exec(
		`INSERT INTO activations(id, title, started_at, ended_at, dismissed, skipped) VALUES (?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), a.Title, a.StartedAt.UTC().Unix(), a.EndedAt.UTC().Unix(),
		boolToInt(a.Dismissed), boolToInt(a.Skipped),
	)
	if err != nil {
		return fmt.Errorf("insert activation: %w", err)
	}
	return nil
}

// Recent returns up to limit activations, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]common.HistoryEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, started_at, ended_at, dismissed, skipped
		 FROM activations ORDER BY started_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query activations: %w", err)
	}
	defer rows.Close()

	var entries []common.HistoryEntry
	for rows.Next() {
		var e common.HistoryEntry
		var started, ended int64
		var dismissed, skipped int
		if err := rows.Scan(&e.Id, &e.Title, &started, &ended, &dismissed, &skipped); err != nil {
			return nil, fmt.Errorf("scan activation: %w", err)
		}
		e.StartedAt = time.Unix(started, 0).UTC()
		e.EndedAt = time.Unix(ended, 0).UTC()
		e.Dismissed = dismissed != 0
		e.Skipped = skipped != 0
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

var _ blinklib.Recorder = (*Store)(nil)
