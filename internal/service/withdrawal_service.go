package service

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"tradervault/internal/models"
	"tradervault/internal/repository"
)

type WithdrawalService struct {
	Repo repository.Repository
}

// Create files a pending withdrawal request. No payment execution happens
// here; status transitions past "pending" belong to operators.
func (s *WithdrawalService) Create(ctx context.Context, userID string, amount decimal.Decimal, paymentMethod datatypes.JSON) (*models.WithdrawalRequest, error) {
	if !amount.IsPositive() {
		return nil, errors.New("amount must be positive")
	}
	item := &models.WithdrawalRequest{
		UserID:        userID,
		Amount:        amount.Round(2),
		PaymentMethod: paymentMethod,
		Status:        "pending",
	}
	if err := s.Repo.InsertWithdrawalRequest(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *WithdrawalService) List(ctx context.Context, params repository.ListWithdrawalsParams) ([]models.WithdrawalRequest, error) {
	return s.Repo.ListWithdrawalRequests(ctx, params)
}
