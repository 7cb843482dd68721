// Package service implements the token codec and the identity-provider
// acquisition client.
package service

import (
	"context"

	authDomain "github.com/setlistify/setlistify/internal/auth/domain"
)

// TokenCodec encrypts bearer tokens for storage in client-visible cookies and
// decrypts them back, failing closed on any malformed or tampered input.
type TokenCodec interface {
	// Encrypt seals the token into an opaque cookie value bound to the cookie name.
	Encrypt(token *authDomain.BearerToken, cookieName string) (string, error)
	// Decrypt opens a cookie value. Returns domain.ErrDecryptFailed on tampered,
	// malformed, or wrong-key input; it never panics on untrusted data.
	Decrypt(value string, cookieName string) (*authDomain.BearerToken, error)
}

// Exchanger acquires bearer tokens from the identity provider. One attempt per
// call; retries are a caller concern and explicitly not performed here.
type Exchanger interface {
	// AuthCodeURL builds the provider authorization URL carrying the redirect
	// state as the OAuth state parameter.
	AuthCodeURL(state string) string
	// ExchangeCode swaps a one-time authorization code for a user-scoped token pair.
	ExchangeCode(ctx context.Context, code string) (*authDomain.TokenPair, error)
	// ClientCredentialsToken obtains a service-scoped token using the
	// application's own id and secret.
	ClientCredentialsToken(ctx context.Context) (*authDomain.BearerToken, error)
}
