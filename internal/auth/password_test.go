package auth

import "testing"

func TestHashVerifyPassword(t *testing.T) {
	salt, hash, err := HashPassword("hunter2pass")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !VerifyPassword(salt, hash, "hunter2pass") {
		t.Fatalf("correct password rejected")
	}
	if VerifyPassword(salt, hash, "hunter2PASS") {
		t.Fatalf("wrong password accepted")
	}
}

func TestHashPasswordSaltsDiffer(t *testing.T) {
	s1, h1, err := HashPassword("hunter2pass")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	s2, h2, err := HashPassword("hunter2pass")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if s1 == s2 || h1 == h2 {
		t.Fatalf("same password produced identical salt or hash")
	}
}

func TestHashPasswordLengthBounds(t *testing.T) {
	if _, _, err := HashPassword("short"); err == nil {
		t.Fatalf("7-char password should be rejected")
	}
	long := make([]byte, 257)
	for i := range long {
		long[i] = 'a'
	}
	if _, _, err := HashPassword(string(long)); err == nil {
		t.Fatalf("257-char password should be rejected")
	}
}
