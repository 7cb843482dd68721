package commands

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
)

// RunCreateCookieKey generates a cryptographically secure 32-byte key for
// cookie encryption and prints it as an environment variable assignment.
func RunCreateCookieKey(w io.Writer) error {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return fmt.Errorf("failed to generate cookie key: %w", err)
	}

	fmt.Fprintln(w, "# Cookie Encryption Key Configuration")
	fmt.Fprintln(w, "# Copy this environment variable to your .env file or secrets manager")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "COOKIE_ENCRYPTION_KEY=\"%s\"\n", hex.EncodeToString(key))

	// Zero out the key from memory
	for i := range key {
		key[i] = 0
	}

	return nil
}
