// Package mocks contains hand-written mocks for the account HTTP layer tests.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/setlistify/setlistify/internal/account/domain"
	"github.com/setlistify/setlistify/internal/account/usecase"
)

// AccountUseCase is a mock implementation of usecase.UseCase.
type AccountUseCase struct {
	mock.Mock
}

func (m *AccountUseCase) Register(ctx context.Context, input usecase.RegisterInput) (*domain.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *AccountUseCase) ForgotPassword(ctx context.Context, input usecase.ForgotPasswordInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

func (m *AccountUseCase) ResetPassword(ctx context.Context, input usecase.ResetPasswordInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

func (m *AccountUseCase) ChangePassword(ctx context.Context, input usecase.ChangePasswordInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}
