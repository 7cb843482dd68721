// Package domain defines the credential-broker entities: bearer tokens acquired
// from the identity provider and the cookie contract under which they travel.
package domain

import (
	"strings"
	"time"
)

// Cookie names are part of the external contract and must not change.
const (
	// CookieServiceAccessToken holds the encrypted service-scoped token obtained
	// via the client-credentials grant. Used for catalog lookups.
	CookieServiceAccessToken = "spotify_access_token"

	// CookieUserAccessToken holds the encrypted user-scoped access token obtained
	// via the authorization-code grant.
	CookieUserAccessToken = "spotify_user_access_token"

	// CookieUserRefreshToken holds the encrypted user refresh token.
	CookieUserRefreshToken = "spotify_user_refresh_token"
)

// BearerToken is a credential presented as-is to authorize an API call.
//
// Never persisted server-side: it exists only as an encrypted payload inside a
// client cookie whose max-age matches ExpiresAt. The server treats the cookie
// as untrusted input to be decrypted and validated on each use.
type BearerToken struct {
	Value     string    `json:"value"`
	ExpiresAt time.Time `json:"expires_at"`
	Scopes    []string  `json:"scopes,omitempty"`
}

// Expired reports whether the token's validity window has passed.
func (t *BearerToken) Expired() bool {
	return !t.ExpiresAt.After(time.Now().UTC())
}

// TTL returns the remaining lifetime, zero if already expired.
func (t *BearerToken) TTL() time.Duration {
	remaining := time.Until(t.ExpiresAt)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// HasScope reports whether the token carries the given permission scope.
func (t *BearerToken) HasScope(scope string) bool {
	for _, s := range t.Scopes {
		if strings.EqualFold(s, scope) {
			return true
		}
	}
	return false
}

// TokenPair is the result of an authorization-code exchange: a user-scoped
// access token plus the refresh token for later re-acquisition.
type TokenPair struct {
	Access  BearerToken
	Refresh string
}
