package models

import (
	"errors"
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("pw123")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if hash == "" {
		t.Fatal("Expected non-empty hash")
	}
	if hash == "pw123" {
		t.Fatal("Hash must not equal the plaintext password")
	}
}

func TestHashPassword_Salted(t *testing.T) {
	hash1, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	hash2, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if hash1 == hash2 {
		t.Error("Expected different hashes for the same password (bcrypt salt)")
	}
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct-password")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if !VerifyPassword("correct-password", hash) {
		t.Error("Expected correct password to verify")
	}
	if VerifyPassword("wrong-password", hash) {
		t.Error("Expected wrong password to fail verification")
	}
	if VerifyPassword("correct-password", "not-a-bcrypt-hash") {
		t.Error("Expected garbage hash to fail verification")
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{"valid short password", "pw123", nil},
		{"valid long password", strings.Repeat("a", 72), nil},
		{"empty password", "", ErrPasswordEmpty},
		{"too long password", strings.Repeat("a", 73), ErrPasswordTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidatePassword(%q) = %v, want %v", tt.password, err, tt.wantErr)
			}
		})
	}
}

func TestHashPassword_RejectsInvalid(t *testing.T) {
	if _, err := HashPassword(""); !errors.Is(err, ErrPasswordEmpty) {
		t.Errorf("Expected ErrPasswordEmpty, got: %v", err)
	}
	if _, err := HashPassword(strings.Repeat("x", 100)); !errors.Is(err, ErrPasswordTooLong) {
		t.Errorf("Expected ErrPasswordTooLong, got: %v", err)
	}
}

func TestHashPasswordWithCost(t *testing.T) {
	hash, err := HashPasswordWithCost("pw123", 4)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !VerifyPassword("pw123", hash) {
		t.Error("Expected password to verify against low-cost hash")
	}
}

func TestNeedsRehash(t *testing.T) {
	lowCost, err := HashPasswordWithCost("pw123", 4)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !NeedsRehash(lowCost) {
		t.Error("Expected low-cost hash to need rehashing")
	}

	current, err := HashPassword("pw123")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if NeedsRehash(current) {
		t.Error("Expected current-cost hash to not need rehashing")
	}

	if !NeedsRehash("garbage") {
		t.Error("Expected garbage hash to need rehashing")
	}
}
