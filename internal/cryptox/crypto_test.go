package cryptox

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword([]byte("secret"))
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "secret" {
		t.Fatalf("hash must not equal the plaintext password")
	}

	if !CheckPassword([]byte("secret"), hash) {
		t.Fatalf("expected candidate to match its own hash")
	}
	if CheckPassword([]byte("wrong"), hash) {
		t.Fatalf("expected mismatch for wrong candidate")
	}
}

func TestCheckPassword_MalformedReference(t *testing.T) {
	t.Parallel()

	if CheckPassword([]byte("secret"), "not-a-bcrypt-hash") {
		t.Fatalf("malformed reference must never match")
	}
}

func TestHashPassword_Unique(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword([]byte("secret"))
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	h2, err := HashPassword([]byte("secret"))
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("bcrypt hashes must be salted, got identical hashes")
	}
}
