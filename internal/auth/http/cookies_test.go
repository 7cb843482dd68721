package http

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authDomain "github.com/setlistify/setlistify/internal/auth/domain"
)

func TestWriteServiceTokenCookieAttributes(t *testing.T) {
	store := NewCredentialStore(newTestCodec(t), true)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	token := &authDomain.BearerToken{
		Value:     "service-token",
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	}
	require.NoError(t, store.WriteServiceToken(c, token))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]

	assert.Equal(t, authDomain.CookieServiceAccessToken, cookie.Name)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, "/", cookie.Path)
	// max-age tracks the token's remaining lifetime
	assert.InDelta(t, 3600, cookie.MaxAge, 5)
	assert.NotContains(t, cookie.Value, "service-token")
}

func TestWriteUserTokensSetsBothCookies(t *testing.T) {
	store := newTestStore(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	pair := &authDomain.TokenPair{
		Access:  authDomain.BearerToken{Value: "access", ExpiresAt: time.Now().UTC().Add(time.Hour)},
		Refresh: "refresh",
	}
	require.NoError(t, store.WriteUserTokens(c, pair))

	cookies := w.Result().Cookies()
	access := findCookie(cookies, authDomain.CookieUserAccessToken)
	refresh := findCookie(cookies, authDomain.CookieUserRefreshToken)
	require.NotNil(t, access)
	require.NotNil(t, refresh)
	assert.Greater(t, refresh.MaxAge, access.MaxAge)
}
