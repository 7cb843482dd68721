package mocks

import (
	"github.com/stretchr/testify/mock"

	authDomain "github.com/setlistify/setlistify/internal/auth/domain"
)

// TokenCodec is a mock implementation of service.TokenCodec.
type TokenCodec struct {
	mock.Mock
}

func (m *TokenCodec) Encrypt(token *authDomain.BearerToken, cookieName string) (string, error) {
	args := m.Called(token, cookieName)
	return args.String(0), args.Error(1)
}

func (m *TokenCodec) Decrypt(value string, cookieName string) (*authDomain.BearerToken, error) {
	args := m.Called(value, cookieName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.BearerToken), args.Error(1)
}
