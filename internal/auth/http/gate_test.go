package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authDomain "github.com/setlistify/setlistify/internal/auth/domain"
)

func gateContext(t *testing.T, cookies ...*http.Cookie) *gin.Context {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = req
	return c
}

func TestSessionGateAuthorized(t *testing.T) {
	store := newTestStore(t)
	gate := NewSessionGate(store)

	cookie := sealCookie(t, store, authDomain.CookieServiceAccessToken, validToken())
	token, reason := gate.Check(gateContext(t, cookie), authDomain.CookieServiceAccessToken)

	require.NotNil(t, token)
	assert.Equal(t, authDomain.ReasonNone, reason)
	assert.Equal(t, "valid-access-token", token.Value)
}

func TestSessionGateMissingCookie(t *testing.T) {
	gate := NewSessionGate(newTestStore(t))

	token, reason := gate.Check(gateContext(t), authDomain.CookieServiceAccessToken)

	assert.Nil(t, token)
	assert.Equal(t, authDomain.ReasonMissing, reason)
}

func TestSessionGateDecryptFailure(t *testing.T) {
	gate := NewSessionGate(newTestStore(t))

	cookie := &http.Cookie{Name: authDomain.CookieServiceAccessToken, Value: "tampered-garbage"}
	token, reason := gate.Check(gateContext(t, cookie), authDomain.CookieServiceAccessToken)

	assert.Nil(t, token)
	assert.Equal(t, authDomain.ReasonDecryptFailed, reason)
}

func TestSessionGateExpiredToken(t *testing.T) {
	store := newTestStore(t)
	gate := NewSessionGate(store)

	expired := &authDomain.BearerToken{
		Value:     "stale",
		ExpiresAt: time.Now().UTC().Add(-time.Minute),
	}
	cookie := sealCookie(t, store, authDomain.CookieServiceAccessToken, expired)
	token, reason := gate.Check(gateContext(t, cookie), authDomain.CookieServiceAccessToken)

	assert.Nil(t, token)
	assert.Equal(t, authDomain.ReasonExpired, reason)
}
