package auth

import (
	"crypto/subtle"

	"github.com/dkarlsson/priceportal/internal/cryptox"
)

// Verifier decides whether a submitted password matches the stored
// password reference. Implementations are pure: no I/O, no logging of the
// candidate value.
type Verifier interface {
	Verify(candidate, reference string) bool
}

// PlainVerifier compares the candidate and the reference directly, in
// constant time. This matches the legacy store, which persists the
// password reference as-is.
type PlainVerifier struct{}

func (PlainVerifier) Verify(candidate, reference string) bool {
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(reference)) == 1
}

// BcryptVerifier treats the reference as a bcrypt hash, allowing a hashed
// credential store to be substituted without touching the gateway.
type BcryptVerifier struct{}

func (BcryptVerifier) Verify(candidate, reference string) bool {
	return cryptox.CheckPassword([]byte(candidate), reference)
}
