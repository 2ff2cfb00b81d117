package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	j := JWT{Secret: []byte("secret-a"), TokenTTL: time.Hour}

	token, expiresAt, err := j.Sign(Claims{
		Email:            "trader@example.com",
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"},
	})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if time.Until(expiresAt) <= 0 {
		t.Fatalf("expiresAt in the past: %v", expiresAt)
	}

	claims, err := j.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Subject != "user-1" || claims.Email != "trader@example.com" {
		t.Fatalf("claims=%+v", claims)
	}
	if claims.ID == "" {
		t.Fatalf("jti not populated")
	}
	if claims.Issuer != "tradervault" {
		t.Fatalf("issuer=%q", claims.Issuer)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	a := JWT{Secret: []byte("secret-a"), TokenTTL: time.Hour}
	b := JWT{Secret: []byte("secret-b"), TokenTTL: time.Hour}

	token, _, err := a.Sign(Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"}})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := b.Verify(token); err == nil {
		t.Fatalf("verify with wrong secret should fail")
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	j := JWT{Secret: []byte("secret-a"), TokenTTL: time.Hour}

	token, _, err := j.Sign(Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := j.Verify(token); err == nil {
		t.Fatalf("expired token should not verify")
	}
}

func TestVerifyTamperedToken(t *testing.T) {
	j := JWT{Secret: []byte("secret-a"), TokenTTL: time.Hour}

	token, _, err := j.Sign(Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"}})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	tampered := token[:len(token)-2] + "xx"
	if _, err := j.Verify(tampered); err == nil {
		t.Fatalf("tampered token should not verify")
	}
}
