package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradervault/internal/models"
)

func TestToggleCreatesDefaultAccount(t *testing.T) {
	repo := newStubRepo()
	svc := &AccountService{Repo: repo, Demo: demoCfg()}

	active, err := svc.ToggleAITrading(context.Background(), "user-1")
	require.NoError(t, err)
	assert.True(t, active)

	require.Len(t, repo.accounts, 1)
	acc := repo.accounts[0]
	assert.True(t, acc.IsActive)
	assert.Equal(t, "10000", acc.Balance.String())
	assert.Equal(t, "demo", acc.AccountType)
	assert.True(t, acc.TotalProfitLoss.Equal(decimal.Zero))
}

func TestToggleFlipsExistingAccounts(t *testing.T) {
	repo := newStubRepo()
	repo.accounts = append(repo.accounts,
		models.TradingAccount{ID: "a1", UserID: "user-1", IsActive: true},
		models.TradingAccount{ID: "a2", UserID: "user-1", IsActive: false},
	)
	svc := &AccountService{Repo: repo, Demo: demoCfg()}

	// Any-active means the aggregate status is active; a toggle pauses all.
	active, err := svc.ToggleAITrading(context.Background(), "user-1")
	require.NoError(t, err)
	assert.False(t, active)
	for _, acc := range repo.accounts {
		assert.False(t, acc.IsActive)
	}

	active, err = svc.ToggleAITrading(context.Background(), "user-1")
	require.NoError(t, err)
	assert.True(t, active)
	for _, acc := range repo.accounts {
		assert.True(t, acc.IsActive)
	}
}

func TestToggleReadFailure(t *testing.T) {
	repo := newStubRepo()
	repo.failListAccounts = true
	svc := &AccountService{Repo: repo, Demo: demoCfg()}

	_, err := svc.ToggleAITrading(context.Background(), "user-1")
	require.Error(t, err)
	assert.Empty(t, repo.accounts)
}
