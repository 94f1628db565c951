package driven

import (
	"context"

	"github.com/custodia-labs/gpeople/internal/core/domain"
)

// Authorizer obtains and renews credentials. It is the one place where
// user interaction may occur: Authorize blocks on the external consent
// flow until credentials are obtained or the flow is declined.
type Authorizer interface {
	// Authorize runs the interactive consent flow and returns fresh
	// credentials.
	Authorize(ctx context.Context) (*domain.Credentials, error)

	// Refresh exchanges the refresh material of expired credentials
	// for a new access token, without user interaction.
	Refresh(ctx context.Context, creds *domain.Credentials) (*domain.Credentials, error)
}
