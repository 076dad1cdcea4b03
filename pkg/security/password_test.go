package security

import "testing"

func TestHashAndVerify(t *testing.T) {
	hash, err := HashPassword("ghanapost2024")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	ok, err := VerifyPassword("ghanapost2024", hash)
	if err != nil {
		t.Fatalf("verify password: %v", err)
	}
	if !ok {
		t.Fatal("expected password to verify")
	}

	ok, err = VerifyPassword("wrong", hash)
	if err != nil {
		t.Fatalf("verify wrong password: %v", err)
	}
	if ok {
		t.Fatal("expected wrong password to fail")
	}
}

func TestVerifyRejectsMalformedHash(t *testing.T) {
	if _, err := VerifyPassword("x", "not-a-hash"); err != ErrInvalidHash {
		t.Fatalf("expected ErrInvalidHash, got %v", err)
	}
}

func TestHashRejectsEmptyPassword(t *testing.T) {
	if _, err := HashPassword(""); err == nil {
		t.Fatal("expected error for empty password")
	}
}

func TestConstantTimeEquals(t *testing.T) {
	if !ConstantTimeEquals("admin", "admin") {
		t.Fatal("expected equal strings to match")
	}
	if ConstantTimeEquals("admin", "admin2") {
		t.Fatal("expected different strings to differ")
	}
}
