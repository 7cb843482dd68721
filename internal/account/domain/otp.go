package domain

import (
	"time"

	"github.com/setlistify/setlistify/internal/errors"
)

// OtpLength is the number of digits in a password-reset code.
const OtpLength = 6

// OtpRecord is a pending password-reset code. At most one active record exists
// per email: issuance supersedes any prior record, and a successful reset
// deletes every record for that email.
type OtpRecord struct {
	Email     string
	OTP       string
	CreatedAt time.Time
}

// ExpiredAt reports whether the code is stale at the given instant, relative
// to the rolling validity window.
func (o *OtpRecord) ExpiredAt(now time.Time, window time.Duration) bool {
	return o.CreatedAt.Before(now.Add(-window))
}

// ErrInvalidCode is the uniform verification failure: wrong code, expired
// code, and no code at all are indistinguishable to the caller, preventing
// enumeration of pending resets.
var ErrInvalidCode = errors.WithCode(
	"account:invalidCode",
	errors.Wrap(errors.ErrInvalidInput, "invalid code"),
)
