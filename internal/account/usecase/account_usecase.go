// Package usecase implements the account business logic: registration and the
// password-reset code protocol.
package usecase

import (
	"context"
	"crypto/subtle"
	"strings"
	"time"

	validation "github.com/jellydator/validation"

	"github.com/allisson/go-pwdhash"
	"github.com/google/uuid"

	"github.com/setlistify/setlistify/internal/account/domain"
	"github.com/setlistify/setlistify/internal/account/service"
	"github.com/setlistify/setlistify/internal/database"
	apperrors "github.com/setlistify/setlistify/internal/errors"
	appValidation "github.com/setlistify/setlistify/internal/validation"
)

// RegisterInput contains the input data for user registration
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ForgotPasswordInput contains the input data for issuing a password-reset code
type ForgotPasswordInput struct {
	Email string `json:"email"`
}

// ResetPasswordInput contains the input data for consuming a password-reset code
type ResetPasswordInput struct {
	Email       string `json:"email"`
	OTP         string `json:"otp"`
	NewPassword string `json:"newPassword"`
}

// ChangePasswordInput contains the input data for an authenticated password change
type ChangePasswordInput struct {
	Email           string `json:"email"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// UseCase defines the interface for account business logic operations
type UseCase interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	ForgotPassword(ctx context.Context, input ForgotPasswordInput) error
	ResetPassword(ctx context.Context, input ResetPasswordInput) error
	ChangePassword(ctx context.Context, input ChangePasswordInput) error
}

// UserRepository interface defines user repository operations
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdatePassword(ctx context.Context, email, passwordHash string) error
}

// OtpRepository interface defines password-reset code repository operations
type OtpRepository interface {
	Create(ctx context.Context, record *domain.OtpRecord) error
	GetByEmail(ctx context.Context, email string) (*domain.OtpRecord, error)
	DeleteByEmail(ctx context.Context, email string) error
}

// AccountUseCase handles account-related business logic
type AccountUseCase struct {
	txManager      database.TxManager
	userRepo       UserRepository
	otpRepo        OtpRepository
	otpGenerator   service.OtpGenerator
	mailer         service.Mailer
	otpWindow      time.Duration
	passwordHasher *pwdhash.PasswordHasher
}

// NewAccountUseCase creates a new AccountUseCase. otpWindow is the rolling
// validity window of issued codes.
func NewAccountUseCase(
	txManager database.TxManager,
	userRepo UserRepository,
	otpRepo OtpRepository,
	otpGenerator service.OtpGenerator,
	mailer service.Mailer,
	otpWindow time.Duration,
) (UseCase, error) {
	hasher, err := pwdhash.New(pwdhash.WithPolicy(pwdhash.PolicyInteractive))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create password hasher")
	}

	return &AccountUseCase{
		txManager:      txManager,
		userRepo:       userRepo,
		otpRepo:        otpRepo,
		otpGenerator:   otpGenerator,
		mailer:         mailer,
		otpWindow:      otpWindow,
		passwordHasher: hasher,
	}, nil
}

var passwordRules = []validation.Rule{
	validation.Required.Error("password is required"),
	validation.Length(8, 128).Error("password must be between 8 and 128 characters"),
	appValidation.PasswordStrength{
		MinLength:      8,
		RequireUpper:   true,
		RequireLower:   true,
		RequireNumber:  true,
		RequireSpecial: true,
	},
}

func emailRules() []validation.Rule {
	return []validation.Rule{
		validation.Required.Error("email is required"),
		appValidation.NotBlank,
		appValidation.Email,
		validation.Length(5, 255).Error("email must be between 5 and 255 characters"),
	}
}

// Register registers a new user
func (uc *AccountUseCase) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Name,
			validation.Required.Error("name is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("name must be between 1 and 255 characters"),
		),
		validation.Field(&input.Email, emailRules()...),
		validation.Field(&input.Password, passwordRules...),
	)
	if err := appValidation.WrapValidationError(err); err != nil {
		return nil, err
	}

	hashedPassword, err := uc.passwordHasher.Hash([]byte(input.Password))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to hash password")
	}

	user := &domain.User{
		ID:       uuid.Must(uuid.NewV7()),
		Name:     strings.TrimSpace(input.Name),
		Email:    normalizeEmail(input.Email),
		Password: hashedPassword,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ForgotPassword issues a fresh password-reset code and delivers it by email.
// Issuance supersedes any prior code for the email: the delete and insert run
// in one transaction, so exactly one code is active afterwards.
func (uc *AccountUseCase) ForgotPassword(ctx context.Context, input ForgotPasswordInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Email, emailRules()...),
	)
	if err := appValidation.WrapValidationError(err); err != nil {
		return err
	}

	email := normalizeEmail(input.Email)

	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if apperrors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrNoAccountLinkedToEmail
		}
		return err
	}

	code, err := uc.otpGenerator.Generate()
	if err != nil {
		return apperrors.Wrap(err, "failed to generate reset code")
	}

	err = uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := uc.otpRepo.DeleteByEmail(ctx, email); err != nil {
			return err
		}
		return uc.otpRepo.Create(ctx, &domain.OtpRecord{
			Email:     email,
			OTP:       code,
			CreatedAt: time.Now().UTC(),
		})
	})
	if err != nil {
		return err
	}

	return uc.mailer.SendPasswordResetCode(ctx, user.Email, code)
}

// ResetPassword consumes a password-reset code and applies the new password.
// Consumption and the password update run in one transaction: if the update
// fails, the code is not consumed and the user can retry.
//
// Every verification failure (no code, wrong code, expired code, unknown
// account) reports the same ErrInvalidCode.
func (uc *AccountUseCase) ResetPassword(ctx context.Context, input ResetPasswordInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Email, emailRules()...),
		validation.Field(&input.OTP,
			validation.Required.Error("otp is required"),
			appValidation.SixDigitCode,
		),
		validation.Field(&input.NewPassword, passwordRules...),
	)
	if err := appValidation.WrapValidationError(err); err != nil {
		return err
	}

	email := normalizeEmail(input.Email)

	hashedPassword, err := uc.passwordHasher.Hash([]byte(input.NewPassword))
	if err != nil {
		return apperrors.Wrap(err, "failed to hash password")
	}

	return uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		record, err := uc.otpRepo.GetByEmail(ctx, email)
		if err != nil {
			return err
		}

		if subtle.ConstantTimeCompare([]byte(record.OTP), []byte(input.OTP)) != 1 {
			return domain.ErrInvalidCode
		}
		if record.ExpiredAt(time.Now().UTC(), uc.otpWindow) {
			return domain.ErrInvalidCode
		}

		if err := uc.otpRepo.DeleteByEmail(ctx, email); err != nil {
			return err
		}

		if err := uc.userRepo.UpdatePassword(ctx, email, hashedPassword); err != nil {
			if apperrors.Is(err, domain.ErrUserNotFound) {
				return domain.ErrInvalidCode
			}
			return err
		}
		return nil
	})
}

// ChangePassword applies a new password after verifying the current one.
func (uc *AccountUseCase) ChangePassword(ctx context.Context, input ChangePasswordInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Email, emailRules()...),
		validation.Field(&input.CurrentPassword,
			validation.Required.Error("current password is required"),
		),
		validation.Field(&input.NewPassword, passwordRules...),
	)
	if err := appValidation.WrapValidationError(err); err != nil {
		return err
	}

	email := normalizeEmail(input.Email)

	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if apperrors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrInvalidCredentials
		}
		return err
	}

	ok, err := uc.passwordHasher.Verify([]byte(input.CurrentPassword), user.Password)
	if err != nil {
		return apperrors.Wrap(err, "failed to verify password")
	}
	if !ok {
		return domain.ErrInvalidCredentials
	}

	hashedPassword, err := uc.passwordHasher.Hash([]byte(input.NewPassword))
	if err != nil {
		return apperrors.Wrap(err, "failed to hash password")
	}

	return uc.userRepo.UpdatePassword(ctx, email, hashedPassword)
}

func normalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}
