package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
)

// Salted sha256, stored hex-encoded alongside the user row.

func HashPassword(password string) (saltHex, hashHex string, err error) {
	if len(password) < 8 || len(password) > 256 {
		return "", "", errors.New("password length must be 8..256")
	}
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return "", "", err
	}
	return hex.EncodeToString(salt), hex.EncodeToString(saltedHash(salt, []byte(password))), nil
}

func VerifyPassword(saltHex, hashHex, password string) bool {
	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return false
	}
	want, err := hex.DecodeString(hashHex)
	if err != nil {
		return false
	}
	got := saltedHash(salt, []byte(password))
	return subtle.ConstantTimeCompare(want, got) == 1
}

func saltedHash(salt, password []byte) []byte {
	h := sha256.New()
	h.Write(salt)
	h.Write(password)
	return h.Sum(nil)
}
