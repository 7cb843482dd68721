package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/setlistify/setlistify/internal/account/domain"
	"github.com/setlistify/setlistify/internal/database"

	apperrors "github.com/setlistify/setlistify/internal/errors"
)

// MySQLOtpRepository handles password-reset code persistence for MySQL
type MySQLOtpRepository struct {
	db *sql.DB
}

// NewMySQLOtpRepository creates a new MySQLOtpRepository
func NewMySQLOtpRepository(db *sql.DB) *MySQLOtpRepository {
	return &MySQLOtpRepository{
		db: db,
	}
}

// Create inserts a password-reset code. Callers delete prior rows for the
// email in the same transaction to keep a single active code per email.
func (r *MySQLOtpRepository) Create(ctx context.Context, record *domain.OtpRecord) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO password_reset_otps (email, otp, created_at)
			  VALUES (?, ?, ?)`

	_, err := querier.ExecContext(ctx, query, record.Email, record.OTP, record.CreatedAt)
	if err != nil {
		return apperrors.Wrap(err, "failed to create otp record")
	}
	return nil
}

// GetByEmail retrieves the active password-reset code for an email
func (r *MySQLOtpRepository) GetByEmail(ctx context.Context, email string) (*domain.OtpRecord, error) {
	var record domain.OtpRecord
	querier := database.GetTx(ctx, r.db)

	query := `SELECT email, otp, created_at
			  FROM password_reset_otps WHERE email = ?
			  ORDER BY created_at DESC LIMIT 1`

	err := querier.QueryRowContext(ctx, query, email).Scan(
		&record.Email, &record.OTP, &record.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInvalidCode
		}
		return nil, apperrors.Wrap(err, "failed to get otp record by email")
	}

	return &record, nil
}

// DeleteByEmail removes every password-reset code for an email
func (r *MySQLOtpRepository) DeleteByEmail(ctx context.Context, email string) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM password_reset_otps WHERE email = ?`

	if _, err := querier.ExecContext(ctx, query, email); err != nil {
		return apperrors.Wrap(err, "failed to delete otp records by email")
	}
	return nil
}
