package service

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradervault/internal/config"
	"tradervault/internal/models"
	"tradervault/internal/repository"
)

func demoCfg() config.DemoConfig {
	return config.DemoConfig{StartingBalance: 10000, Broker: "demo_broker"}
}

func newTradeService(repo *stubRepo) *TradeService {
	return &TradeService{
		Repo: repo,
		Demo: demoCfg(),
		Rng:  rand.New(rand.NewSource(1)),
		Now:  func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) },
	}
}

func TestAddDemoTradeBootstrapsAccount(t *testing.T) {
	repo := newStubRepo()
	svc := newTradeService(repo)

	trade, items, err := svc.AddDemoTrade(context.Background(), "user-1")
	require.NoError(t, err)

	require.Len(t, repo.accounts, 1)
	acc := repo.accounts[0]
	assert.Equal(t, "user-1", acc.UserID)
	assert.Equal(t, "demo", acc.AccountType)
	assert.Equal(t, "demo_broker", acc.Broker)
	assert.True(t, acc.IsActive)
	assert.Equal(t, "10000", acc.Balance.String())

	assert.Equal(t, "user-1", trade.UserID)
	assert.Equal(t, acc.ID, trade.TradingAccountID)
	assert.Equal(t, models.TradeStatusClosed, trade.Status)
	require.Len(t, items, 1)
	assert.Equal(t, trade.ID, items[0].ID)
}

func TestAddDemoTradeReusesExistingAccount(t *testing.T) {
	repo := newStubRepo()
	repo.accounts = append(repo.accounts, models.TradingAccount{
		ID:     "acc-1",
		UserID: "user-1",
	})
	svc := newTradeService(repo)

	trade, _, err := svc.AddDemoTrade(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "acc-1", trade.TradingAccountID)
	assert.Len(t, repo.accounts, 1)
}

func TestAddDemoTradePartialStateOnInsertFailure(t *testing.T) {
	repo := newStubRepo()
	repo.failInsertTrade = true
	svc := newTradeService(repo)

	_, _, err := svc.AddDemoTrade(context.Background(), "user-1")
	require.Error(t, err)

	// The account bootstrap is an independent write; it is not rolled back.
	assert.Len(t, repo.accounts, 1)
	assert.Empty(t, repo.trades)
}

func TestAddDemoTradeRefetchesFromStorage(t *testing.T) {
	repo := newStubRepo()
	svc := newTradeService(repo)

	for i := 0; i < 3; i++ {
		_, _, err := svc.AddDemoTrade(context.Background(), "user-1")
		require.NoError(t, err)
	}
	_, items, err := svc.AddDemoTrade(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Len(t, items, 4)
}

func TestListFiltersByStatus(t *testing.T) {
	repo := newStubRepo()
	now := time.Now().UTC()
	repo.trades = []models.Trade{
		{ID: "t1", UserID: "user-1", Status: models.TradeStatusOpen, ExecutedAt: now},
		{ID: "t2", UserID: "user-1", Status: models.TradeStatusClosed, ExecutedAt: now.Add(-time.Minute)},
		{ID: "t3", UserID: "user-2", Status: models.TradeStatusOpen, ExecutedAt: now},
	}
	svc := newTradeService(repo)

	status := models.TradeStatusOpen
	out, err := svc.List(context.Background(), repository.ListTradesParams{
		UserID: "user-1",
		Status: &status,
	})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "t1", out.Items[0].ID)
	assert.Equal(t, int64(1), out.Total)
}

func TestListOrdersByExecutedAtDescending(t *testing.T) {
	repo := newStubRepo()
	now := time.Now().UTC()
	repo.trades = []models.Trade{
		{ID: "old", UserID: "user-1", Status: models.TradeStatusClosed, ExecutedAt: now.Add(-time.Hour)},
		{ID: "new", UserID: "user-1", Status: models.TradeStatusClosed, ExecutedAt: now},
	}
	svc := newTradeService(repo)

	out, err := svc.List(context.Background(), repository.ListTradesParams{UserID: "user-1"})
	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "new", out.Items[0].ID)
}
