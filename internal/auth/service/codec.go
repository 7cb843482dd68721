package service

import (
	"encoding/base64"
	"encoding/json"

	authDomain "github.com/setlistify/setlistify/internal/auth/domain"
	"github.com/setlistify/setlistify/internal/crypto"
	apperrors "github.com/setlistify/setlistify/internal/errors"
)

// tokenCodec seals bearer tokens with an AEAD cipher under a process-wide key.
//
// Wire format: base64url(nonce || ciphertext). The cookie name is fed in as
// additional authenticated data, so a value lifted from one cookie cannot be
// replayed under another.
type tokenCodec struct {
	aead crypto.AEAD
}

// NewTokenCodec creates a TokenCodec using the named AEAD algorithm. The key is
// a process-wide secret loaded from configuration, never derived from request data.
func NewTokenCodec(key []byte, algorithm string) (TokenCodec, error) {
	aead, err := crypto.NewAEAD(key, algorithm)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create cookie cipher")
	}
	return &tokenCodec{aead: aead}, nil
}

// Encrypt seals the token into an opaque cookie value.
func (t *tokenCodec) Encrypt(token *authDomain.BearerToken, cookieName string) (string, error) {
	plaintext, err := json.Marshal(token)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to marshal token")
	}

	ciphertext, nonce, err := t.aead.Encrypt(plaintext, []byte(cookieName))
	if err != nil {
		return "", apperrors.Wrap(err, "failed to encrypt token")
	}

	payload := make([]byte, 0, len(nonce)+len(ciphertext))
	payload = append(payload, nonce...)
	payload = append(payload, ciphertext...)

	return base64.RawURLEncoding.EncodeToString(payload), nil
}

// Decrypt opens a cookie value, failing closed: every malformed, truncated, or
// tampered input maps to domain.ErrDecryptFailed so callers treat it as an
// absent token.
func (t *tokenCodec) Decrypt(value string, cookieName string) (*authDomain.BearerToken, error) {
	payload, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil, authDomain.ErrDecryptFailed
	}

	// 12-byte nonce for both supported AEADs
	const nonceSize = 12
	if len(payload) <= nonceSize {
		return nil, authDomain.ErrDecryptFailed
	}

	plaintext, err := t.aead.Decrypt(payload[nonceSize:], payload[:nonceSize], []byte(cookieName))
	if err != nil {
		return nil, authDomain.ErrDecryptFailed
	}

	var token authDomain.BearerToken
	if err := json.Unmarshal(plaintext, &token); err != nil {
		return nil, authDomain.ErrDecryptFailed
	}

	return &token, nil
}
