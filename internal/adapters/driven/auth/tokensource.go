package auth

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2"

	"github.com/custodia-labs/gpeople/internal/core/ports/driven"
	"github.com/custodia-labs/gpeople/internal/logger"
)

// storeTokenSource adapts the credentials store and authorizer to
// oauth2.TokenSource so the API transport can pull tokens lazily,
// refreshing and persisting transparently when the stored token has
// expired.
type storeTokenSource struct {
	ctx   context.Context
	store driven.CredentialsStore
	auth  *Authorizer
}

// TokenSource creates an oauth2.TokenSource backed by the credentials
// store. The client's authentication bootstrap must have run before
// the first Token call so valid credentials are present in the store.
func TokenSource(ctx context.Context, store driven.CredentialsStore, a *Authorizer) oauth2.TokenSource {
	return &storeTokenSource{ctx: ctx, store: store, auth: a}
}

// Token implements oauth2.TokenSource.
func (s *storeTokenSource) Token() (*oauth2.Token, error) {
	creds, err := s.store.Load(s.ctx)
	if err != nil {
		return nil, fmt.Errorf("load credentials: %w", err)
	}
	if creds == nil {
		return nil, fmt.Errorf("no stored credentials; authentication required")
	}

	if creds.NeedsRefresh() {
		refreshed, err := s.auth.Refresh(s.ctx, creds)
		if err != nil {
			return nil, err
		}
		refreshed.UpdatedAt = time.Now()
		if err := s.store.Save(s.ctx, refreshed); err != nil {
			logger.Warn("saving refreshed credentials failed: %v", err)
		}
		creds = refreshed
	}

	return tokenFromCredentials(creds), nil
}
