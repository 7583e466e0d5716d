package slot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/coversync/coversync/internal/storage"
)

// Ensure SQLite implements Backend.
var _ Backend = (*SQLite)(nil)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS slots (
    key TEXT PRIMARY KEY,
    payload TEXT NOT NULL
);
`

// SQLite is a slot backend storing each slot as a row in a single
// key/payload table. A Put is one UPSERT, so the slot-level atomicity
// contract comes straight from SQLite.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (or creates) the database at dbPath and ensures the
// slots table exists. Parent directories are created automatically.
func NewSQLite(dbPath string) (*SQLite, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create database directory: %v", storage.ErrStorageUnavailable, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("%w: open database: %v", storage.ErrStorageUnavailable, err)
	}

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: create slots table: %v", storage.ErrStorageUnavailable, err)
	}

	return &SQLite{db: db}, nil
}

// Get returns the payload row for key.
func (s *SQLite) Get(ctx context.Context, key string) (string, bool, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, "SELECT payload FROM slots WHERE key = ?", key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: read slot %s: %v", storage.ErrStorageUnavailable, key, err)
	}
	return payload, true, nil
}

// Put upserts the payload row for key.
func (s *SQLite) Put(ctx context.Context, key, payload string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO slots (key, payload) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET payload = excluded.payload",
		key, payload,
	)
	if err != nil {
		return fmt.Errorf("%w: write slot %s: %v", storage.ErrStorageUnavailable, key, err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}
