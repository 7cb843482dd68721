// Package mocks contains hand-written mocks for the setlist HTTP layer tests.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/setlistify/setlistify/internal/setlist/domain"
)

// Catalog is a mock implementation of service.Catalog.
type Catalog struct {
	mock.Mock
}

func (m *Catalog) Search(ctx context.Context, token, query string) (*domain.SearchResult, error) {
	args := m.Called(ctx, token, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SearchResult), args.Error(1)
}

func (m *Catalog) CurrentUserID(ctx context.Context, token string) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
}

func (m *Catalog) CreatePlaylist(ctx context.Context, token, userID, name, description string) (*domain.Playlist, error) {
	args := m.Called(ctx, token, userID, name, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Playlist), args.Error(1)
}

func (m *Catalog) AddTracks(ctx context.Context, token, playlistID string, uris []string) error {
	args := m.Called(ctx, token, playlistID, uris)
	return args.Error(0)
}
