package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns a salted bcrypt digest of the given plain-text password.
// The salt is embedded in the digest, so two calls on the same input never
// produce equal output.
func HashPassword(plainText string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plainText), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plainText matches the given bcrypt digest.
// A malformed digest counts as a mismatch.
func CheckPassword(plainText, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plainText)) == nil
}
