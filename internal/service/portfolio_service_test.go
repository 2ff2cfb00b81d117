package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradervault/internal/cache"
	"tradervault/internal/models"
	"tradervault/internal/portfolio"
)

func TestSummaryComputesFromStorage(t *testing.T) {
	repo := newStubRepo()
	repo.accounts = append(repo.accounts,
		models.TradingAccount{UserID: "user-1", Balance: decimal.NewFromInt(1000), TotalProfitLoss: decimal.NewFromInt(50)},
		models.TradingAccount{UserID: "user-1", Balance: decimal.NewFromInt(2000), TotalProfitLoss: decimal.NewFromInt(-20)},
	)
	svc := &PortfolioService{Repo: repo}

	out, err := svc.Summary(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "3000", out.TotalBalance.String())
	assert.Equal(t, "30", out.TotalProfitLoss.String())
	assert.Equal(t, 2, out.AccountCount)
}

func TestSummaryReadFailureReturnsError(t *testing.T) {
	repo := newStubRepo()
	repo.failListAccounts = true
	svc := &PortfolioService{Repo: repo}

	_, err := svc.Summary(context.Background(), "user-1")
	require.Error(t, err)
}

func TestSummaryCachedUntilInvalidated(t *testing.T) {
	repo := newStubRepo()
	repo.accounts = append(repo.accounts,
		models.TradingAccount{UserID: "user-1", Balance: decimal.NewFromInt(500)},
	)
	svc := &PortfolioService{
		Repo:       repo,
		Cache:      cache.NewMemoryStore(),
		SummaryTTL: time.Minute,
	}

	_, err := svc.Summary(context.Background(), "user-1")
	require.NoError(t, err)
	first := repo.listAccountCalls

	_, err = svc.Summary(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, first, repo.listAccountCalls, "second read should hit the cache")

	svc.Invalidate(context.Background(), "user-1")

	_, err = svc.Summary(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, first+1, repo.listAccountCalls, "invalidate should force a recompute")
}

func TestStaleGenerationNotStored(t *testing.T) {
	repo := newStubRepo()
	repo.accounts = append(repo.accounts,
		models.TradingAccount{UserID: "user-1", Balance: decimal.NewFromInt(500)},
	)
	kv := cache.NewMemoryStore()
	svc := &PortfolioService{Repo: repo, Cache: kv, SummaryTTL: time.Minute}

	gen := svc.nextGeneration("user-1")
	// A write lands between the computation and its store.
	svc.Invalidate(context.Background(), "user-1")

	svc.storeIfCurrent(context.Background(), "user-1", gen, portfolio.Summary{AccountCount: 1})
	_, found, err := kv.Get(context.Background(), summaryKey("user-1"))
	require.NoError(t, err)
	assert.False(t, found, "stale generation must not repopulate the cache")
}
