package domain

import "time"

// Credentials is the serialisable authentication state of one account:
// the bearer token, its expiry, and the refresh material that allows
// resuming authentication without a fresh interactive consent flow.
// It is produced and consumed by the authentication step only; no
// other component mutates it.
type Credentials struct {
	// ID is a unique identifier (UUID) assigned when the credentials
	// are first persisted.
	ID string `json:"id"`

	// Account is the authenticated account's identifier (email), when
	// known.
	Account string `json:"account,omitempty"`

	// AccessToken is the bearer token for API access.
	AccessToken string `json:"access_token"`

	// RefreshToken is used to obtain new access tokens.
	RefreshToken string `json:"refresh_token,omitempty"`

	// TokenType is typically "Bearer".
	TokenType string `json:"token_type"`

	// Expiry is when the access token expires. Zero means unknown, in
	// which case the token is treated as live.
	Expiry time.Time `json:"expiry,omitempty"`

	// CreatedAt is when the credentials were first obtained.
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is when the credentials were last refreshed or saved.
	UpdatedAt time.Time `json:"updated_at"`
}

// IsExpired reports whether the access token has expired.
func (c *Credentials) IsExpired() bool {
	if c.Expiry.IsZero() {
		return false
	}
	return time.Now().After(c.Expiry)
}

// IsValid reports whether the credentials carry a live access token.
func (c *Credentials) IsValid() bool {
	return c.AccessToken != "" && !c.IsExpired()
}

// HasRefreshToken reports whether refresh material is available.
func (c *Credentials) HasRefreshToken() bool {
	return c.RefreshToken != ""
}

// NeedsRefresh reports whether the credentials are expired but
// refreshable without user interaction.
func (c *Credentials) NeedsRefresh() bool {
	return c.AccessToken != "" && c.IsExpired() && c.HasRefreshToken()
}
