// Package crypto provides authenticated encryption primitives for protecting
// bearer tokens at rest in client-held cookies.
package crypto

import "errors"

// Supported AEAD algorithms.
const (
	AESGCM   = "aes-gcm"
	ChaCha20 = "chacha20-poly1305"
)

var (
	// ErrInvalidKeySize indicates the key is not exactly 32 bytes.
	ErrInvalidKeySize = errors.New("key must be exactly 32 bytes")

	// ErrUnsupportedAlgorithm indicates an unknown AEAD algorithm name.
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")
)

// AEAD provides authenticated encryption with associated data.
//
// Implementations are stateless and safe for concurrent use. Encrypt generates
// a fresh random nonce per call; Decrypt verifies the authentication tag before
// returning plaintext.
type AEAD interface {
	Encrypt(plaintext, aad []byte) (ciphertext, nonce []byte, err error)
	Decrypt(ciphertext, nonce, aad []byte) ([]byte, error)
}

// NewAEAD creates an AEAD cipher instance for the named algorithm.
// Returns ErrInvalidKeySize if key is not 32 bytes or ErrUnsupportedAlgorithm
// if the algorithm is unknown.
func NewAEAD(key []byte, algorithm string) (AEAD, error) {
	if len(key) != 32 {
		return nil, ErrInvalidKeySize
	}

	switch algorithm {
	case AESGCM:
		return NewAESGCMCipher(key)
	case ChaCha20:
		return NewChaCha20Poly1305(key)
	default:
		return nil, ErrUnsupportedAlgorithm
	}
}
