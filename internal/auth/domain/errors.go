package domain

import apperrors "github.com/setlistify/setlistify/internal/errors"

// UnauthorizedReason explains why the session gate rejected a request.
// Decryption failure and absence are treated identically by callers (fail
// closed); the distinction exists for logging and tests only.
type UnauthorizedReason string

const (
	// ReasonNone means the caller is authorized.
	ReasonNone UnauthorizedReason = ""

	// ReasonMissing means no cookie was present.
	ReasonMissing UnauthorizedReason = "missing"

	// ReasonDecryptFailed means the cookie payload was tampered, malformed, or
	// encrypted under a different key.
	ReasonDecryptFailed UnauthorizedReason = "decrypt_failed"

	// ReasonExpired means the token decrypted fine but its window has passed.
	ReasonExpired UnauthorizedReason = "expired"
)

var (
	// ErrNoToken is returned when a request carries no usable credential.
	// Wraps the generic unauthorized sentinel so handlers map it to 401.
	ErrNoToken = apperrors.Wrap(apperrors.ErrUnauthorized, "no token")

	// ErrDecryptFailed is returned on tampered or malformed cookie payloads.
	// Treated identically to an absent token.
	ErrDecryptFailed = apperrors.Wrap(apperrors.ErrUnauthorized, "token decrypt failed")

	// ErrTokenExpired is returned when a decrypted token is past its window.
	ErrTokenExpired = apperrors.Wrap(apperrors.ErrUnauthorized, "token expired")
)

// ReasonError maps an UnauthorizedReason to its sentinel error.
func ReasonError(reason UnauthorizedReason) error {
	switch reason {
	case ReasonNone:
		return nil
	case ReasonDecryptFailed:
		return ErrDecryptFailed
	case ReasonExpired:
		return ErrTokenExpired
	default:
		return ErrNoToken
	}
}
