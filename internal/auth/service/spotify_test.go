package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/setlistify/setlistify/internal/errors"
)

func newTestSpotifyClient(tokenURL string) Exchanger {
	return NewSpotifyClient(SpotifyClientOptions{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURI:  "http://localhost:8080/callback",
		Scopes:       "user-read-email playlist-modify-public",
		Timeout:      2 * time.Second,
		AuthURL:      "http://localhost:0/authorize",
		TokenURL:     tokenURL,
	})
}

func TestSpotifyClientAuthCodeURL(t *testing.T) {
	client := NewSpotifyClient(SpotifyClientOptions{
		ClientID:    "client-id",
		RedirectURI: "http://localhost:8080/callback",
		Scopes:      "user-read-email playlist-modify-public",
	})

	raw := client.AuthCodeURL("/search|query=radiohead")
	parsed, err := url.Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "accounts.spotify.com", parsed.Host)
	assert.Equal(t, "/authorize", parsed.Path)

	query := parsed.Query()
	assert.Equal(t, "code", query.Get("response_type"))
	assert.Equal(t, "client-id", query.Get("client_id"))
	assert.Equal(t, "http://localhost:8080/callback", query.Get("redirect_uri"))
	assert.Equal(t, "user-read-email playlist-modify-public", query.Get("scope"))
	assert.Equal(t, "/search|query=radiohead", query.Get("state"))
}

func TestSpotifyClientExchangeCode(t *testing.T) {
	var gotCode string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotCode = r.FormValue("code")
		assert.Equal(t, "authorization_code", r.FormValue("grant_type"))

		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "client-id", user)
		assert.Equal(t, "client-secret", pass)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"access_token": "user-access-token",
			"token_type": "Bearer",
			"expires_in": 3600,
			"refresh_token": "user-refresh-token"
		}`))
	}))
	defer server.Close()

	client := newTestSpotifyClient(server.URL)

	pair, err := client.ExchangeCode(context.Background(), "one-time-code")
	require.NoError(t, err)

	assert.Equal(t, "one-time-code", gotCode)
	assert.Equal(t, "user-access-token", pair.Access.Value)
	assert.Equal(t, "user-refresh-token", pair.Refresh)
	assert.False(t, pair.Access.Expired())
	assert.InDelta(t, time.Hour.Seconds(), pair.Access.TTL().Seconds(), 30)
	assert.Contains(t, pair.Access.Scopes, "user-read-email")
}

func TestSpotifyClientExchangeCodeUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": "invalid_grant", "error_description": "Invalid authorization code"}`))
	}))
	defer server.Close()

	client := newTestSpotifyClient(server.URL)

	pair, err := client.ExchangeCode(context.Background(), "stale-code")
	assert.Nil(t, pair)
	assert.ErrorIs(t, err, apperrors.ErrUpstream)
}

func TestSpotifyClientClientCredentialsToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.FormValue("grant_type"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"access_token": "service-access-token",
			"token_type": "Bearer",
			"expires_in": 3600
		}`))
	}))
	defer server.Close()

	client := newTestSpotifyClient(server.URL)

	token, err := client.ClientCredentialsToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "service-access-token", token.Value)
	assert.False(t, token.Expired())
	assert.Empty(t, token.Scopes)
}

func TestSpotifyClientClientCredentialsUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestSpotifyClient(server.URL)

	token, err := client.ClientCredentialsToken(context.Background())
	assert.Nil(t, token)
	assert.ErrorIs(t, err, apperrors.ErrUpstream)
}
