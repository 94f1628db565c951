// Package sqlite provides a SQLite-backed implementation of the
// credentials store using the pure-Go modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/gpeople/internal/core/domain"
	"github.com/custodia-labs/gpeople/internal/core/ports/driven"
)

// schema holds the single-row credentials table. The fixed slot id
// enforces one blob per store; Save replaces it.
const schema = `
CREATE TABLE IF NOT EXISTS credentials (
	slot       INTEGER PRIMARY KEY CHECK (slot = 1),
	blob       TEXT NOT NULL,
	updated_at TEXT NOT NULL
);`

// Ensure CredentialsStore implements the port.
var _ driven.CredentialsStore = (*CredentialsStore)(nil)

// CredentialsStore persists credentials in a SQLite database.
type CredentialsStore struct {
	db   *sql.DB
	path string
}

// NewCredentialsStore opens (or creates) the store at the given
// database path. An empty path defaults to ~/.gpeople/credentials.db.
func NewCredentialsStore(path string) (*CredentialsStore, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		path = filepath.Join(home, ".gpeople", "credentials.db")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &CredentialsStore{db: db, path: path}, nil
}

// Close closes the database connection.
func (s *CredentialsStore) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *CredentialsStore) Path() string {
	return s.path
}

// Load implements driven.CredentialsStore.
func (s *CredentialsStore) Load(ctx context.Context) (*domain.Credentials, error) {
	var blob string
	err := s.db.QueryRowContext(ctx, `SELECT blob FROM credentials WHERE slot = 1`).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading credentials row: %w", err)
	}

	var creds domain.Credentials
	if err := json.Unmarshal([]byte(blob), &creds); err != nil {
		return nil, fmt.Errorf("decoding credentials blob: %w", err)
	}
	return &creds, nil
}

// Save implements driven.CredentialsStore.
func (s *CredentialsStore) Save(ctx context.Context, creds *domain.Credentials) error {
	if creds == nil {
		return fmt.Errorf("credentials must not be nil")
	}
	blob, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("encoding credentials: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO credentials (slot, blob, updated_at)
		VALUES (1, ?, ?)
		ON CONFLICT (slot) DO UPDATE SET blob = excluded.blob, updated_at = excluded.updated_at`,
		string(blob), creds.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"))
	if err != nil {
		return fmt.Errorf("writing credentials row: %w", err)
	}
	return nil
}
