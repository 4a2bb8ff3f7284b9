package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Secret123")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}

	if hash == "Secret123" {
		t.Fatal("hash must not equal the plaintext password")
	}

	if !CheckPassword(hash, "Secret123") {
		t.Error("expected correct password to verify")
	}

	if CheckPassword(hash, "WrongPassword") {
		t.Error("expected wrong password to fail verification")
	}
}

func TestCheckPasswordAgainstGarbageHash(t *testing.T) {
	if CheckPassword("not-a-bcrypt-hash", "anything") {
		t.Error("expected verification against a garbage hash to fail")
	}
}
