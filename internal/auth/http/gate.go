package http

import (
	"github.com/gin-gonic/gin"

	authDomain "github.com/setlistify/setlistify/internal/auth/domain"
	apperrors "github.com/setlistify/setlistify/internal/errors"
)

// SessionGate decides whether a caller is authorized to proceed, given current
// cookie state. Unlike the router middleware, the gate decrypts and checks
// expiry; it is consulted at the point of use, immediately before an upstream
// call.
//
// The gate never refreshes. On Expired or DecryptFailed the handler responds
// 401 and re-acquisition happens through the router's redirect on the next
// request.
type SessionGate struct {
	store *CredentialStore
}

// NewSessionGate creates a SessionGate over the given store.
func NewSessionGate(store *CredentialStore) *SessionGate {
	return &SessionGate{store: store}
}

// Check decrypts and validates the named token cookie. The reason is for
// logging and tests; all non-empty reasons are handled identically (401).
func (g *SessionGate) Check(c *gin.Context, cookieName string) (*authDomain.BearerToken, authDomain.UnauthorizedReason) {
	token, err := g.store.Read(c, cookieName)
	if err != nil {
		if apperrors.Is(err, authDomain.ErrNoToken) {
			return nil, authDomain.ReasonMissing
		}
		return nil, authDomain.ReasonDecryptFailed
	}
	if token.Expired() {
		return nil, authDomain.ReasonExpired
	}
	return token, authDomain.ReasonNone
}
