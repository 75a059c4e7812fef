package auth

import (
	"testing"

	"github.com/dkarlsson/priceportal/internal/cryptox"
)

func TestPlainVerifier(t *testing.T) {
	t.Parallel()

	v := PlainVerifier{}

	if !v.Verify("secret", "secret") {
		t.Fatalf("expected match for equal values")
	}
	if v.Verify("wrong", "secret") {
		t.Fatalf("expected mismatch for different values")
	}
	if v.Verify("", "secret") {
		t.Fatalf("expected mismatch for empty candidate")
	}
	if v.Verify("secre", "secret") {
		t.Fatalf("expected mismatch for different lengths")
	}
}

func TestBcryptVerifier(t *testing.T) {
	t.Parallel()

	hash, err := cryptox.HashPassword([]byte("secret"))
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	v := BcryptVerifier{}

	if !v.Verify("secret", hash) {
		t.Fatalf("expected match against own hash")
	}
	if v.Verify("wrong", hash) {
		t.Fatalf("expected mismatch for wrong candidate")
	}
	if v.Verify("secret", "secret") {
		t.Fatalf("plaintext reference must not match under bcrypt")
	}
}
