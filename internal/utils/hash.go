package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a one-way, salted bcrypt digest of the given
// plaintext password using the default bcrypt cost. The salt is generated
// per call, so hashing the same password twice yields different digests.
//
// Returns an error only when the input exceeds bcrypt's 72-byte limit or
// the cost parameters are invalid.
func HashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// VerifyPassword reports whether the plaintext password matches the stored
// bcrypt digest. The comparison runs in time independent of where a
// mismatch occurs and never panics on well-formed string input; any
// mismatch or malformed digest yields false.
func VerifyPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
