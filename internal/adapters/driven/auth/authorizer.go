// Package auth implements the driven.Authorizer port with the OAuth
// installed-app flow: token refresh through golang.org/x/oauth2 and
// interactive consent through a local callback server.
package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/custodia-labs/gpeople/internal/core/domain"
	"github.com/custodia-labs/gpeople/internal/core/ports/driven"
	"github.com/custodia-labs/gpeople/internal/logger"
)

// ScopeContacts is the OAuth scope for full contacts access.
const ScopeContacts = "https://www.googleapis.com/auth/contacts"

// defaultConsentTimeout bounds how long the consent flow waits for the
// user to complete authorization in the browser.
const defaultConsentTimeout = 5 * time.Minute

// Ensure Authorizer implements the port.
var _ driven.Authorizer = (*Authorizer)(nil)

// Config holds the OAuth app credentials for the installed-app flow.
type Config struct {
	ClientID     string
	ClientSecret string

	// Port for the local redirect listener; 0 picks a free port.
	Port int

	// OpenURL is called with the consent URL to present it to the
	// user. Defaults to printing instructions via the logger.
	OpenURL func(url string)

	// ConsentTimeout bounds the wait for the browser flow. Zero
	// selects the default.
	ConsentTimeout time.Duration
}

// Authorizer obtains and refreshes credentials for the contacts scope.
type Authorizer struct {
	oauth   *oauth2.Config
	port    int
	openURL func(url string)
	timeout time.Duration
}

// New creates an Authorizer from the OAuth app configuration.
func New(cfg Config) (*Authorizer, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, fmt.Errorf("oauth client id and secret are required")
	}
	timeout := cfg.ConsentTimeout
	if timeout <= 0 {
		timeout = defaultConsentTimeout
	}
	return &Authorizer{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint:     google.Endpoint,
			Scopes:       []string{ScopeContacts},
		},
		port:    cfg.Port,
		openURL: cfg.OpenURL,
		timeout: timeout,
	}, nil
}

// Authorize runs the interactive consent flow: a local callback server
// is started, the user is sent to the provider's consent page, and the
// returned authorization code is exchanged for tokens. Blocks until
// credentials are obtained, the flow is declined, or the timeout
// elapses.
func (a *Authorizer) Authorize(ctx context.Context) (*domain.Credentials, error) {
	state, err := randomState()
	if err != nil {
		return nil, err
	}

	server := newCallbackServer(a.port, state)
	if err := server.Start(); err != nil {
		return nil, fmt.Errorf("start callback server: %w", err)
	}
	defer server.Stop()

	cfg := *a.oauth
	cfg.RedirectURL = server.RedirectURL()

	authURL := cfg.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
	if a.openURL != nil {
		a.openURL(authURL)
	} else {
		logger.Info("open the following URL to authorize access: %s", authURL)
	}

	code, err := server.WaitForCode(ctx, a.timeout)
	if err != nil {
		return nil, fmt.Errorf("consent flow: %w", err)
	}

	token, err := cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange authorization code: %w", err)
	}
	return credentialsFromToken(token, nil), nil
}

// Refresh exchanges the refresh token of expired credentials for a new
// access token, without user interaction.
func (a *Authorizer) Refresh(ctx context.Context, creds *domain.Credentials) (*domain.Credentials, error) {
	if creds == nil || !creds.HasRefreshToken() {
		return nil, fmt.Errorf("no refresh token available")
	}

	token, err := a.oauth.TokenSource(ctx, tokenFromCredentials(creds)).Token()
	if err != nil {
		return nil, fmt.Errorf("refresh token: %w", err)
	}
	return credentialsFromToken(token, creds), nil
}

// credentialsFromToken converts an oauth2 token to domain credentials,
// carrying identity fields over from the previous credentials when
// given. Providers may omit the refresh token on refresh responses; in
// that case the previous one is kept.
func credentialsFromToken(token *oauth2.Token, prev *domain.Credentials) *domain.Credentials {
	creds := &domain.Credentials{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		TokenType:    token.TokenType,
		Expiry:       token.Expiry,
	}
	if prev != nil {
		creds.ID = prev.ID
		creds.Account = prev.Account
		creds.CreatedAt = prev.CreatedAt
		if creds.RefreshToken == "" {
			creds.RefreshToken = prev.RefreshToken
		}
	}
	return creds
}

// tokenFromCredentials converts domain credentials back to an oauth2
// token for the refresh token source.
func tokenFromCredentials(creds *domain.Credentials) *oauth2.Token {
	return &oauth2.Token{
		AccessToken:  creds.AccessToken,
		RefreshToken: creds.RefreshToken,
		TokenType:    creds.TokenType,
		Expiry:       creds.Expiry,
	}
}

// randomState generates the state parameter tying the callback to this
// authorization request.
func randomState() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate state: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
