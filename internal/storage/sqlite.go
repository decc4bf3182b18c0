package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// SQLiteStore is the default on-device KeyValueStore: every slot is one row
// of a single table, the payload a JSON blob written whole on each SetItem.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore opens (creating if needed) the database file and ensures the
// slots table exists.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if path == "" {
		path = "reptrack.db"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS slots (
		key TEXT PRIMARY KEY,
		payload TEXT NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create slots table: %w", err)
	}
	return &SQLiteStore{db: db, path: path}, nil
}

// Available pings the database on every call; a closed or corrupted handle
// degrades the app to memory-only instead of erroring every operation.
func (s *SQLiteStore) Available(ctx context.Context) bool {
	if s == nil || s.db == nil {
		return false
	}
	return s.db.PingContext(ctx) == nil
}

func (s *SQLiteStore) GetItem(ctx context.Context, key string) (string, bool, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM slots WHERE key = ?`, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read slot %q: %w", key, err)
	}
	return payload, true, nil
}

func (s *SQLiteStore) SetItem(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO slots (key, payload) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET payload = excluded.payload`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("write slot %q: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) RemoveItem(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM slots WHERE key = ?`, key); err != nil {
		return fmt.Errorf("remove slot %q: %w", key, err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
