// Package http provides the HTTP surface of the credential broker: cookie
// storage, the session gate, the redirect-router middleware, and the
// acquisition handlers.
package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	authDomain "github.com/setlistify/setlistify/internal/auth/domain"
	"github.com/setlistify/setlistify/internal/auth/service"
)

// refreshTokenMaxAge is the lifetime of the refresh-token cookie. Refresh
// tokens have no provider-side expiry, so the cookie carries its own cap.
const refreshTokenMaxAge = 30 * 24 * time.Hour

// CredentialStore reads and writes encrypted bearer tokens as client cookies.
// The client holds the only copy; nothing is persisted server-side.
type CredentialStore struct {
	codec  service.TokenCodec
	secure bool
}

// NewCredentialStore creates a CredentialStore. secure marks written cookies
// HTTPS-only and should be true outside local development.
func NewCredentialStore(codec service.TokenCodec, secure bool) *CredentialStore {
	return &CredentialStore{codec: codec, secure: secure}
}

// WriteServiceToken encrypts and sets the service-scoped access token cookie.
// The cookie's max-age matches the token's remaining lifetime.
func (s *CredentialStore) WriteServiceToken(c *gin.Context, token *authDomain.BearerToken) error {
	return s.write(c, authDomain.CookieServiceAccessToken, token, token.TTL())
}

// WriteUserTokens encrypts and sets the user access and refresh token cookies.
func (s *CredentialStore) WriteUserTokens(c *gin.Context, pair *authDomain.TokenPair) error {
	if err := s.write(c, authDomain.CookieUserAccessToken, &pair.Access, pair.Access.TTL()); err != nil {
		return err
	}
	refresh := &authDomain.BearerToken{
		Value:     pair.Refresh,
		ExpiresAt: time.Now().UTC().Add(refreshTokenMaxAge),
	}
	return s.write(c, authDomain.CookieUserRefreshToken, refresh, refreshTokenMaxAge)
}

// Read decrypts the named token cookie. Returns domain.ErrNoToken when the
// cookie is absent and domain.ErrDecryptFailed on any undecryptable payload.
func (s *CredentialStore) Read(c *gin.Context, name string) (*authDomain.BearerToken, error) {
	value, err := c.Cookie(name)
	if err != nil || value == "" {
		return nil, authDomain.ErrNoToken
	}
	return s.codec.Decrypt(value, name)
}

// Has reports whether the named cookie is present. Presence only: no
// decryption, no expiry check. The middleware layer depends on this staying cheap.
func (s *CredentialStore) Has(c *gin.Context, name string) bool {
	value, err := c.Cookie(name)
	return err == nil && value != ""
}

func (s *CredentialStore) write(c *gin.Context, name string, token *authDomain.BearerToken, maxAge time.Duration) error {
	sealed, err := s.codec.Encrypt(token, name)
	if err != nil {
		return err
	}
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    sealed,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
