package service

import (
	"context"
	"errors"
	"strings"

	"tradervault/internal/models"
	"tradervault/internal/repository"
)

type ProfileService struct {
	Repo repository.Repository
}

// Get returns nil when no profile row exists yet; that is "not configured",
// not an error.
func (s *ProfileService) Get(ctx context.Context, userID string) (*models.Profile, error) {
	return s.Repo.GetProfile(ctx, userID)
}

type ProfileUpdate struct {
	FullName      string
	Phone         string
	RiskTolerance string
}

// Update upserts the settings-form fields keyed by user ID. Last write wins;
// there is no concurrency check and no validation beyond field presence.
func (s *ProfileService) Update(ctx context.Context, userID string, in ProfileUpdate) (*models.Profile, error) {
	fullName := strings.TrimSpace(in.FullName)
	if fullName == "" {
		return nil, errors.New("full name required")
	}
	risk := strings.ToLower(strings.TrimSpace(in.RiskTolerance))
	if risk == "" {
		risk = "medium"
	}

	item := &models.Profile{
		ID:            userID,
		FullName:      fullName,
		Phone:         strings.TrimSpace(in.Phone),
		KYCStatus:     "pending",
		RiskTolerance: risk,
	}
	if err := s.Repo.UpsertProfile(ctx, item); err != nil {
		return nil, err
	}
	return s.Repo.GetProfile(ctx, userID)
}
