package repository

import (
	"context"

	"tradervault/internal/models"
)

type ListTradesParams struct {
	UserID string
	// Status filters to "open" or "closed" when set; nil means all.
	Status *string
	Limit  int
	Offset int
}

type ListWithdrawalsParams struct {
	UserID string
	Status *string
	Limit  int
	Offset int
}

// Repository is the storage port for every table the dashboard touches. All
// reads are scoped to one owner; trade listings are ordered executed_at
// descending, matching what the views render.
type Repository interface {
	// Users (auth)
	CreateUser(ctx context.Context, item *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	TouchLastLogin(ctx context.Context, id string) error

	// Profiles
	GetProfile(ctx context.Context, userID string) (*models.Profile, error)
	UpsertProfile(ctx context.Context, item *models.Profile) error

	// Trading accounts
	ListTradingAccounts(ctx context.Context, userID string) ([]models.TradingAccount, error)
	CreateTradingAccount(ctx context.Context, item *models.TradingAccount) error
	SetAccountsActive(ctx context.Context, userID string, active bool) error

	// Trades
	ListTrades(ctx context.Context, params ListTradesParams) ([]models.Trade, error)
	CountTrades(ctx context.Context, params ListTradesParams) (int64, error)
	InsertTrade(ctx context.Context, item *models.Trade) error

	// Withdrawal requests
	InsertWithdrawalRequest(ctx context.Context, item *models.WithdrawalRequest) error
	ListWithdrawalRequests(ctx context.Context, params ListWithdrawalsParams) ([]models.WithdrawalRequest, error)

	// Market data
	ListMarketData(ctx context.Context) ([]models.MarketData, error)
}
