package auth

import (
	"errors"
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	first, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("failed to hash password: %s", err)
	}
	if !strings.HasPrefix(first, "$argon2id$") {
		t.Errorf("expected an argon2id encoded hash, got %s", first)
	}
	if strings.Contains(first, "password123") {
		t.Errorf("expected the plaintext to not appear in the hash")
	}

	second, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("failed to hash password: %s", err)
	}
	if first == second {
		t.Errorf("expected two hashes of the same input to differ")
	}
}

func TestValidatePassword(t *testing.T) {
	encoded, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("failed to hash password: %s", err)
	}
	if !ValidatePassword("password123", encoded) {
		t.Errorf("expected the correct password to verify")
	}
	if ValidatePassword("wrong-password", encoded) {
		t.Errorf("expected a wrong password to fail verification")
	}
	if ValidatePassword("password123", "not-an-encoded-hash") {
		t.Errorf("expected a malformed hash to fail verification")
	}
}

func TestDecodeHash_invalidEncoding(t *testing.T) {
	tests := []string{
		"not-an-encoded-hash",
		"$argon2id$v=19$nonsense$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=65536,t=3,p=4$!!!$aGFzaA",
		"$argon2id$v=19$m=65536,t=3,p=4$c2FsdA$!!!",
	}
	for i, encoded := range tests {
		if _, _, _, err := decodeHash(encoded); !errors.Is(err, ErrorHashEncoding) {
			t.Errorf("expected case %d to fail with ErrorHashEncoding, got: %s", i, err)
		}
	}
}
