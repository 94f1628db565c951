package driven

import (
	"context"

	"github.com/custodia-labs/gpeople/internal/core/domain"
)

// CredentialsStore persists authentication state across process
// restarts so consent does not have to be repeated. Save followed by
// Load in a new process returns an equivalent blob.
//
// Stores assume a single writer; callers must not share one store
// across concurrent clients.
type CredentialsStore interface {
	// Load retrieves the persisted credentials. Returns (nil, nil)
	// when none are stored.
	Load(ctx context.Context) (*domain.Credentials, error)

	// Save persists the credentials, replacing any previous state.
	Save(ctx context.Context, creds *domain.Credentials) error
}
