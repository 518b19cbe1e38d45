// Package password implements the salted key derivation used for stored
// credentials: PBKDF2 with HMAC-SHA-256, 256 iterations, 32-byte keys.
// The iteration count is fixed by the existing account records; raising it
// would invalidate every stored hash.
package password

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltBytes  = 32
	iterations = 256
	keyLength  = 32
)

// GenerateSalt returns 32 cryptographically random bytes as a 64-character
// lowercase hex string.
func GenerateSalt() (string, error) {
	buf := make([]byte, saltBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// Derive computes the stored hash for a password and salt. The salt is the
// hex string itself, not its decoded bytes; existing records were derived
// that way and the two encodings produce different keys.
func Derive(password, salt string) string {
	key := pbkdf2.Key([]byte(password), []byte(salt), iterations, keyLength, sha256.New)
	return hex.EncodeToString(key)
}

// Verify recomputes the hash for password under salt and compares it to
// expectedHash in constant time. Callers never compare hashes directly.
func Verify(password, salt, expectedHash string) bool {
	derived := Derive(password, salt)
	return subtle.ConstantTimeCompare([]byte(derived), []byte(expectedHash)) == 1
}
