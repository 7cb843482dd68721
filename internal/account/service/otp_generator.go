// Package service provides the password-reset code generator and email delivery.
package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// OtpGenerator produces password-reset codes.
type OtpGenerator interface {
	Generate() (string, error)
}

type numericOtpGenerator struct{}

// NewOtpGenerator creates a generator of cryptographically secure 6-digit
// codes, uniform over 100000-999999. No leading zeros: the code is always six
// characters as typed by the user.
func NewOtpGenerator() OtpGenerator {
	return &numericOtpGenerator{}
}

func (g *numericOtpGenerator) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to generate random code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
