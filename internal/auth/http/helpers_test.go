package http

import (
	"crypto/rand"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	authDomain "github.com/setlistify/setlistify/internal/auth/domain"
	"github.com/setlistify/setlistify/internal/auth/service"
	"github.com/setlistify/setlistify/internal/crypto"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newTestCodec(t *testing.T) service.TokenCodec {
	t.Helper()
	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)
	codec, err := service.NewTokenCodec(key, crypto.AESGCM)
	require.NoError(t, err)
	return codec
}

func newTestStore(t *testing.T) *CredentialStore {
	t.Helper()
	return NewCredentialStore(newTestCodec(t), false)
}

func validToken() *authDomain.BearerToken {
	return &authDomain.BearerToken{
		Value:     "valid-access-token",
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	}
}

// sealCookie encrypts a token and returns it as a cookie ready to attach to a request.
func sealCookie(t *testing.T, store *CredentialStore, name string, token *authDomain.BearerToken) *http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	require.NoError(t, store.write(c, name, token, time.Hour))
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func findCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}
