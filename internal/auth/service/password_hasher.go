// Package service provides the cryptographic building blocks of authentication:
// password hashing and token signing.
package service

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"

	"golang.org/x/crypto/pbkdf2"
)

// DefaultPasswordIterations is the minimum PBKDF2 iteration count.
const DefaultPasswordIterations = 100000

// PasswordHasher derives stored passwords with PBKDF2-HMAC-SHA256 under a
// fixed salt. Hashing is deterministic: the same plaintext always yields the
// same stored value, so existing records stay verifiable.
type PasswordHasher struct {
	salt       []byte
	iterations int
}

// NewPasswordHasher creates a PasswordHasher. Iteration counts below
// DefaultPasswordIterations are raised to it.
func NewPasswordHasher(salt string, iterations int) *PasswordHasher {
	if iterations < DefaultPasswordIterations {
		iterations = DefaultPasswordIterations
	}
	return &PasswordHasher{salt: []byte(salt), iterations: iterations}
}

// Hash returns the base64-encoded derived key for plaintext.
func (h *PasswordHasher) Hash(plaintext string) string {
	return base64.StdEncoding.EncodeToString(h.derive(plaintext))
}

// Verify recomputes the derived key and compares it with stored in constant time.
// A stored value that is not valid base64 never verifies.
func (h *PasswordHasher) Verify(plaintext, stored string) bool {
	want, err := base64.StdEncoding.DecodeString(stored)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(h.derive(plaintext), want) == 1
}

func (h *PasswordHasher) derive(plaintext string) []byte {
	return pbkdf2.Key([]byte(plaintext), h.salt, h.iterations, sha256.Size, sha256.New)
}
