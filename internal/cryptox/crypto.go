// Package cryptox provides password hashing helpers for the hashed
// credential backend.
package cryptox

import "golang.org/x/crypto/bcrypt"

// HashPassword returns a bcrypt hash of the given password using the
// default cost. The result is suitable for storage as a password reference.
func HashPassword(password []byte) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(password, bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether candidate matches the bcrypt hash reference.
func CheckPassword(candidate []byte, reference string) bool {
	return bcrypt.CompareHashAndPassword([]byte(reference), candidate) == nil
}
