// Package file provides a JSON-file implementation of the credentials
// store. One file, one credentials blob, single writer.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/gpeople/internal/core/domain"
	"github.com/custodia-labs/gpeople/internal/core/ports/driven"
)

// Ensure CredentialsStore implements the port.
var _ driven.CredentialsStore = (*CredentialsStore)(nil)

// CredentialsStore persists credentials to a JSON file with owner-only
// permissions.
type CredentialsStore struct {
	path string
}

// NewCredentialsStore creates a store at the given path. An empty path
// defaults to ~/.gpeople/credentials.json. The parent directory is
// created if missing.
func NewCredentialsStore(path string) (*CredentialsStore, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		path = filepath.Join(home, ".gpeople", "credentials.json")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("creating credentials directory: %w", err)
	}
	return &CredentialsStore{path: path}, nil
}

// Path returns the backing file path.
func (s *CredentialsStore) Path() string {
	return s.path
}

// Load implements driven.CredentialsStore. A missing file means no
// stored credentials, not an error.
func (s *CredentialsStore) Load(_ context.Context) (*domain.Credentials, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading credentials file: %w", err)
	}

	var creds domain.Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("decoding credentials file: %w", err)
	}
	return &creds, nil
}

// Save implements driven.CredentialsStore. The file is written to a
// temporary sibling first and renamed into place so a crashed write
// never leaves a truncated blob behind.
func (s *CredentialsStore) Save(_ context.Context, creds *domain.Credentials) error {
	if creds == nil {
		return fmt.Errorf("credentials must not be nil")
	}
	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding credentials: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("writing credentials file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing credentials file: %w", err)
	}
	return nil
}
