package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"tradervault/internal/auth"
	"tradervault/internal/cache"
	"tradervault/internal/models"
	"tradervault/internal/repository"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type AuthService struct {
	Repo    repository.Repository
	JWT     auth.JWT
	Revoked cache.Store
	Logger  *zap.Logger
}

type Session struct {
	Token     string
	ExpiresAt time.Time
	User      *models.User
}

// SignUp creates the user and then its profile row. The profile insert is a
// second independent write; a failure there leaves a user without a profile,
// which the settings view already treats as "not configured yet".
func (s *AuthService) SignUp(ctx context.Context, email, password, fullName string) (Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	fullName = strings.TrimSpace(fullName)
	if email == "" {
		return Session{}, errors.New("email required")
	}

	existing, err := s.Repo.GetUserByEmail(ctx, email)
	if err != nil {
		return Session{}, err
	}
	if existing != nil {
		return Session{}, ErrEmailTaken
	}

	saltHex, hashHex, err := auth.HashPassword(password)
	if err != nil {
		return Session{}, err
	}

	user := &models.User{
		Email:       email,
		FullName:    fullName,
		SaltHex:     saltHex,
		PassHashHex: hashHex,
	}
	if err := s.Repo.CreateUser(ctx, user); err != nil {
		return Session{}, err
	}

	if err := s.Repo.UpsertProfile(ctx, &models.Profile{
		ID:            user.ID,
		FullName:      fullName,
		KYCStatus:     "pending",
		RiskTolerance: "medium",
	}); err != nil && s.Logger != nil {
		s.Logger.Warn("profile bootstrap failed", zap.String("user_id", user.ID), zap.Error(err))
	}

	return s.issue(user)
}

func (s *AuthService) SignIn(ctx context.Context, email, password string) (Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.Repo.GetUserByEmail(ctx, email)
	if err != nil {
		return Session{}, err
	}
	if user == nil || !auth.VerifyPassword(user.SaltHex, user.PassHashHex, password) {
		return Session{}, ErrInvalidCredentials
	}

	if err := s.Repo.TouchLastLogin(ctx, user.ID); err != nil && s.Logger != nil {
		s.Logger.Warn("touch last login failed", zap.String("user_id", user.ID), zap.Error(err))
	}

	return s.issue(user)
}

// SignOut revokes the presented token until its natural expiry.
func (s *AuthService) SignOut(ctx context.Context, token string) error {
	claims, err := s.JWT.Verify(token)
	if err != nil {
		// Already unusable; nothing to revoke.
		return nil
	}
	if s.Revoked == nil || claims.ID == "" {
		return nil
	}
	ttl := time.Hour
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	if ttl <= 0 {
		return nil
	}
	return s.Revoked.Set(ctx, auth.RevocationKey(claims.ID), []byte("1"), ttl)
}

func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*models.User, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, nil
	}
	return s.Repo.GetUserByID(ctx, userID)
}

func (s *AuthService) issue(user *models.User) (Session, error) {
	token, expiresAt, err := s.JWT.Sign(auth.Claims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: user.ID,
		},
	})
	if err != nil {
		return Session{}, err
	}
	return Session{Token: token, ExpiresAt: expiresAt, User: user}, nil
}
