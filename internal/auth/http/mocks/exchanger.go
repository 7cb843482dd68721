// Package mocks contains hand-written mocks for the auth HTTP layer tests.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	authDomain "github.com/setlistify/setlistify/internal/auth/domain"
)

// Exchanger is a mock implementation of service.Exchanger.
type Exchanger struct {
	mock.Mock
}

func (m *Exchanger) AuthCodeURL(state string) string {
	args := m.Called(state)
	return args.String(0)
}

func (m *Exchanger) ExchangeCode(ctx context.Context, code string) (*authDomain.TokenPair, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.TokenPair), args.Error(1)
}

func (m *Exchanger) ClientCredentialsToken(ctx context.Context) (*authDomain.BearerToken, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.BearerToken), args.Error(1)
}
