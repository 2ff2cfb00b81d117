package service

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"tradervault/internal/config"
	"tradervault/internal/models"
	"tradervault/internal/repository"
)

type AccountService struct {
	Repo      repository.Repository
	Portfolio *PortfolioService
	Demo      config.DemoConfig
	Logger    *zap.Logger
}

// newDemoAccount is the default account bootstrapped the first time a user
// starts AI trading or adds a demo trade: fixed starting balance, active.
func newDemoAccount(cfg config.DemoConfig, userID string) *models.TradingAccount {
	balance := decimal.NewFromFloat(cfg.StartingBalance)
	if balance.IsZero() {
		balance = decimal.NewFromInt(10000)
	}
	broker := cfg.Broker
	if broker == "" {
		broker = "demo_broker"
	}
	return &models.TradingAccount{
		UserID:          userID,
		AccountType:     "demo",
		Broker:          broker,
		Balance:         balance,
		TotalProfitLoss: decimal.Zero,
		IsActive:        true,
	}
}

func (s *AccountService) List(ctx context.Context, userID string) ([]models.TradingAccount, error) {
	return s.Repo.ListTradingAccounts(ctx, userID)
}

// ToggleAITrading flips the is_active flag. With zero accounts it creates the
// default demo account already active. Nothing starts running either way; the
// flag only drives the status badge.
func (s *AccountService) ToggleAITrading(ctx context.Context, userID string) (active bool, err error) {
	accounts, err := s.Repo.ListTradingAccounts(ctx, userID)
	if err != nil {
		return false, err
	}

	defer func() {
		if err == nil && s.Portfolio != nil {
			s.Portfolio.Invalidate(ctx, userID)
		}
	}()

	if len(accounts) == 0 {
		if err := s.Repo.CreateTradingAccount(ctx, newDemoAccount(s.Demo, userID)); err != nil {
			return false, err
		}
		return true, nil
	}

	current := false
	for _, acc := range accounts {
		if acc.IsActive {
			current = true
			break
		}
	}
	if err := s.Repo.SetAccountsActive(ctx, userID, !current); err != nil {
		return false, err
	}
	return !current, nil
}
