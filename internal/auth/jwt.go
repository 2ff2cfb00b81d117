package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims carries the session identity. Subject is the user ID; ID (jti) keys
// the revocation entry written on sign-out.
type Claims struct {
	Email string `json:"email,omitempty"`

	jwt.RegisteredClaims
}

type JWT struct {
	Secret   []byte
	TokenTTL time.Duration
}

func (j JWT) Sign(claims Claims) (token string, expiresAt time.Time, err error) {
	now := time.Now().UTC()
	if claims.ID == "" {
		claims.ID = uuid.NewString()
	}
	if claims.IssuedAt == nil {
		claims.IssuedAt = jwt.NewNumericDate(now)
	}
	if claims.NotBefore == nil {
		claims.NotBefore = jwt.NewNumericDate(now.Add(-5 * time.Second))
	}
	if claims.ExpiresAt == nil {
		expiresAt = now.Add(j.TokenTTL)
		claims.ExpiresAt = jwt.NewNumericDate(expiresAt)
	} else {
		expiresAt = claims.ExpiresAt.Time
	}
	if claims.Issuer == "" {
		claims.Issuer = "tradervault"
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(j.Secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return s, expiresAt, nil
}

func (j JWT) Verify(token string) (Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return j.Secret, nil
	})
	if err != nil {
		return Claims{}, err
	}
	c, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return Claims{}, errors.New("invalid token")
	}
	return *c, nil
}
