package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/setlistify/setlistify/internal/auth/domain"
	"github.com/setlistify/setlistify/internal/auth/http/mocks"
	apperrors "github.com/setlistify/setlistify/internal/errors"
)

func newHandlerTestRouter(t *testing.T) (*gin.Engine, *mocks.Exchanger, *CredentialStore) {
	t.Helper()
	exchanger := &mocks.Exchanger{}
	store := newTestStore(t)
	handler := NewAuthHandler(exchanger, store, testLogger())

	router := gin.New()
	router.GET("/authorize", handler.Authorize)
	router.GET("/callback", handler.Callback)
	router.GET("/generate-access-token", handler.GenerateAccessToken)
	return router, exchanger, store
}

func TestAuthorizeRedirectsToProvider(t *testing.T) {
	router, exchanger, _ := newHandlerTestRouter(t)
	exchanger.On("AuthCodeURL", "/setlists/123").
		Return("https://accounts.spotify.com/authorize?state=%2Fsetlists%2F123")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/authorize?redirect=/setlists/123", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "https://accounts.spotify.com/authorize?state=%2Fsetlists%2F123", w.Header().Get("Location"))
	exchanger.AssertExpectations(t)
}

func TestAuthorizeRejectsAbsoluteRedirect(t *testing.T) {
	router, exchanger, _ := newHandlerTestRouter(t)
	// open-redirect attempts collapse to the site root before reaching the provider
	exchanger.On("AuthCodeURL", "/").Return("https://accounts.spotify.com/authorize?state=%2F")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/authorize?redirect=https://evil.example", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	exchanger.AssertExpectations(t)
}

func TestCallbackIssuesUserTokensAndRedirects(t *testing.T) {
	router, exchanger, store := newHandlerTestRouter(t)
	pair := &authDomain.TokenPair{
		Access: authDomain.BearerToken{
			Value:     "user-access",
			ExpiresAt: time.Now().UTC().Add(time.Hour),
			Scopes:    []string{"user-read-email"},
		},
		Refresh: "user-refresh",
	}
	exchanger.On("ExchangeCode", mock.Anything, "one-time-code").Return(pair, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/callback?code=one-time-code&state=%2Fsetlists%2F123", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "/setlists/123", w.Header().Get("Location"))

	cookies := w.Result().Cookies()
	access := findCookie(cookies, authDomain.CookieUserAccessToken)
	require.NotNil(t, access)
	assert.True(t, access.HttpOnly)

	refresh := findCookie(cookies, authDomain.CookieUserRefreshToken)
	require.NotNil(t, refresh)

	// both cookies decrypt back through the store
	replay := httptest.NewRequest(http.MethodGet, "/", nil)
	replay.AddCookie(access)
	replay.AddCookie(refresh)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = replay

	got, err := store.Read(c, authDomain.CookieUserAccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-access", got.Value)

	gotRefresh, err := store.Read(c, authDomain.CookieUserRefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "user-refresh", gotRefresh.Value)
}

func TestCallbackWithoutStateReturnsJSON(t *testing.T) {
	router, exchanger, _ := newHandlerTestRouter(t)
	pair := &authDomain.TokenPair{
		Access:  authDomain.BearerToken{Value: "user-access", ExpiresAt: time.Now().UTC().Add(time.Hour)},
		Refresh: "user-refresh",
	}
	exchanger.On("ExchangeCode", mock.Anything, "one-time-code").Return(pair, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/callback?code=one-time-code", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "expires_at")
	assert.NotContains(t, w.Body.String(), "user-access")
}

func TestCallbackMissingCode(t *testing.T) {
	router, _, _ := newHandlerTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/callback", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validationError")
}

func TestCallbackProviderDenied(t *testing.T) {
	router, _, _ := newHandlerTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/callback?error=access_denied", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Result().Cookies())
}

func TestCallbackUpstreamFailure(t *testing.T) {
	router, exchanger, _ := newHandlerTestRouter(t)
	exchanger.On("ExchangeCode", mock.Anything, "stale-code").
		Return(nil, apperrors.Wrap(apperrors.ErrUpstream, "exchange failed"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/callback?code=stale-code&state=%2Fsearch", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internalServerError")
	assert.Empty(t, w.Result().Cookies())
}

func TestGenerateAccessTokenRedirectsWithQuery(t *testing.T) {
	router, exchanger, store := newHandlerTestRouter(t)
	exchanger.On("ClientCredentialsToken", mock.Anything).Return(validToken(), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/generate-access-token?redirect=%2Fapi%2Fsearch&query=radiohead", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "/api/search?query=radiohead", w.Header().Get("Location"))

	cookie := findCookie(w.Result().Cookies(), authDomain.CookieServiceAccessToken)
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)

	replay := httptest.NewRequest(http.MethodGet, "/", nil)
	replay.AddCookie(cookie)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = replay

	got, err := store.Read(c, authDomain.CookieServiceAccessToken)
	require.NoError(t, err)
	assert.Equal(t, "valid-access-token", got.Value)
}

func TestGenerateAccessTokenWithoutRedirectReturnsJSON(t *testing.T) {
	router, exchanger, _ := newHandlerTestRouter(t)
	exchanger.On("ClientCredentialsToken", mock.Anything).Return(validToken(), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/generate-access-token", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "expires_at")
	assert.NotNil(t, findCookie(w.Result().Cookies(), authDomain.CookieServiceAccessToken))
}

func TestGenerateAccessTokenUpstreamFailureSetsNoCookie(t *testing.T) {
	router, exchanger, _ := newHandlerTestRouter(t)
	exchanger.On("ClientCredentialsToken", mock.Anything).
		Return(nil, apperrors.Wrap(apperrors.ErrUpstream, "provider returned 400"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/generate-access-token?redirect=%2Fapi%2Fsearch", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internalServerError")
	assert.Empty(t, w.Result().Cookies())
}
