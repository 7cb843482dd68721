// Package service implements the streaming-catalog client used for search and
// playlist export.
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/setlistify/setlistify/internal/setlist/domain"

	apperrors "github.com/setlistify/setlistify/internal/errors"
)

const spotifyAPIBaseURL = "https://api.spotify.com/v1"

// Catalog performs authorized calls against the streaming catalog. The bearer
// token is supplied per call; this service holds no credentials of its own.
type Catalog interface {
	Search(ctx context.Context, token, query string) (*domain.SearchResult, error)
	CurrentUserID(ctx context.Context, token string) (string, error)
	CreatePlaylist(ctx context.Context, token, userID, name, description string) (*domain.Playlist, error)
	AddTracks(ctx context.Context, token, playlistID string, uris []string) error
}

type spotifyCatalog struct {
	baseURL string
	client  *http.Client
}

// NewSpotifyCatalog creates a Catalog backed by the Spotify Web API. baseURL
// overrides the production host; pass "" outside tests.
func NewSpotifyCatalog(timeout time.Duration, baseURL string) Catalog {
	if baseURL == "" {
		baseURL = spotifyAPIBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &spotifyCatalog{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Search looks up artists and tracks matching the query.
func (s *spotifyCatalog) Search(ctx context.Context, token, query string) (*domain.SearchResult, error) {
	endpoint := s.baseURL + "/search?type=artist,track&limit=10&q=" + url.QueryEscape(query)

	var payload struct {
		Artists struct {
			Items []struct {
				ID   string `json:"id"`
				Name string `json:"name"`
			} `json:"items"`
		} `json:"artists"`
		Tracks struct {
			Items []struct {
				ID      string `json:"id"`
				Name    string `json:"name"`
				URI     string `json:"uri"`
				Artists []struct {
					Name string `json:"name"`
				} `json:"artists"`
				Album struct {
					Name string `json:"name"`
				} `json:"album"`
			} `json:"items"`
		} `json:"tracks"`
	}

	if err := s.do(ctx, http.MethodGet, endpoint, token, nil, &payload); err != nil {
		return nil, err
	}

	result := &domain.SearchResult{}
	for _, item := range payload.Artists.Items {
		result.Artists = append(result.Artists, domain.Artist{ID: item.ID, Name: item.Name})
	}
	for _, item := range payload.Tracks.Items {
		track := domain.Track{
			ID:    item.ID,
			Name:  item.Name,
			Album: item.Album.Name,
			URI:   item.URI,
		}
		if len(item.Artists) > 0 {
			track.Artist = item.Artists[0].Name
		}
		result.Tracks = append(result.Tracks, track)
	}
	return result, nil
}

// CurrentUserID resolves the catalog user id behind a user-scoped token.
func (s *spotifyCatalog) CurrentUserID(ctx context.Context, token string) (string, error) {
	var payload struct {
		ID string `json:"id"`
	}
	if err := s.do(ctx, http.MethodGet, s.baseURL+"/me", token, nil, &payload); err != nil {
		return "", err
	}
	return payload.ID, nil
}

// CreatePlaylist creates an empty playlist owned by the given user.
func (s *spotifyCatalog) CreatePlaylist(ctx context.Context, token, userID, name, description string) (*domain.Playlist, error) {
	endpoint := fmt.Sprintf("%s/users/%s/playlists", s.baseURL, url.PathEscape(userID))

	body := map[string]any{
		"name":        name,
		"description": description,
		"public":      false,
	}

	var payload struct {
		ID           string `json:"id"`
		Name         string `json:"name"`
		ExternalURLs struct {
			Spotify string `json:"spotify"`
		} `json:"external_urls"`
	}

	if err := s.do(ctx, http.MethodPost, endpoint, token, body, &payload); err != nil {
		return nil, err
	}

	return &domain.Playlist{
		ID:   payload.ID,
		Name: payload.Name,
		URL:  payload.ExternalURLs.Spotify,
	}, nil
}

// AddTracks appends tracks to a playlist.
func (s *spotifyCatalog) AddTracks(ctx context.Context, token, playlistID string, uris []string) error {
	endpoint := fmt.Sprintf("%s/playlists/%s/tracks", s.baseURL, url.PathEscape(playlistID))

	body := map[string]any{"uris": uris}
	return s.do(ctx, http.MethodPost, endpoint, token, body, nil)
}

// do performs one authorized request. 401 from the catalog maps to the
// unauthorized sentinel so handlers answer 401 and the router re-acquires on
// the next request; any other non-2xx maps to the upstream sentinel.
func (s *spotifyCatalog) do(ctx context.Context, method, endpoint, token string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return apperrors.Wrap(err, "failed to marshal request body")
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return apperrors.Wrap(err, "failed to build catalog request")
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrUpstream, "catalog request failed: "+err.Error())
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return apperrors.Wrap(apperrors.ErrUnauthorized, "catalog rejected token")
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return apperrors.Wrap(apperrors.ErrUpstream,
			fmt.Sprintf("catalog returned status %d", resp.StatusCode))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.Wrap(apperrors.ErrUpstream, "failed to decode catalog response: "+err.Error())
	}
	return nil
}
