package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"

	"tradervault/internal/cache"
	"tradervault/internal/models"
	"tradervault/internal/portfolio"
	"tradervault/internal/repository"
)

type PortfolioService struct {
	Repo       repository.Repository
	Cache      cache.Store
	Logger     *zap.Logger
	SummaryTTL time.Duration

	// generations guards the summary cache against the stale-overwrite race:
	// a computation started before a write (or a newer fetch) finished must
	// not repopulate the cache. Keyed by user ID.
	mu          sync.Mutex
	generations map[string]uint64
}

func summaryKey(userID string) string {
	return "portfolio:summary:" + userID
}

// Summary computes the headline portfolio numbers for one user. Both reads
// are independent round trips; any failure degrades to the zero-value summary
// and reports a recoverable error instead of failing the page.
func (s *PortfolioService) Summary(ctx context.Context, userID string) (portfolio.Summary, error) {
	if s.Cache != nil {
		if raw, found, err := s.Cache.Get(ctx, summaryKey(userID)); err == nil && found {
			var cached portfolio.Summary
			if json.Unmarshal(raw, &cached) == nil {
				return cached, nil
			}
		}
	}

	gen := s.nextGeneration(userID)

	accounts, err := s.Repo.ListTradingAccounts(ctx, userID)
	if err != nil {
		return portfolio.Summary{}, err
	}
	trades, err := s.Repo.ListTrades(ctx, repository.ListTradesParams{
		UserID: userID,
		Limit:  portfolio.RecentWindow,
	})
	if err != nil {
		return portfolio.Summary{}, err
	}

	summary := portfolio.Summarize(accounts, trades)
	s.storeIfCurrent(ctx, userID, gen, summary)
	return summary, nil
}

// RecentTrades returns the bounded window the overview card renders.
func (s *PortfolioService) RecentTrades(ctx context.Context, userID string) ([]models.Trade, error) {
	return s.Repo.ListTrades(ctx, repository.ListTradesParams{
		UserID: userID,
		Limit:  portfolio.RecentWindow,
	})
}

// Invalidate drops the cached summary and bumps the generation so in-flight
// computations from before the write cannot resurrect stale numbers.
func (s *PortfolioService) Invalidate(ctx context.Context, userID string) {
	s.nextGeneration(userID)
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Delete(ctx, summaryKey(userID)); err != nil && s.Logger != nil {
		s.Logger.Warn("summary cache invalidate failed", zap.String("user_id", userID), zap.Error(err))
	}
}

func (s *PortfolioService) nextGeneration(userID string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generations == nil {
		s.generations = map[string]uint64{}
	}
	s.generations[userID]++
	return s.generations[userID]
}

func (s *PortfolioService) currentGeneration(userID string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generations[userID]
}

func (s *PortfolioService) storeIfCurrent(ctx context.Context, userID string, gen uint64, summary portfolio.Summary) {
	if s.Cache == nil {
		return
	}
	if s.currentGeneration(userID) != gen {
		return
	}
	raw, err := json.Marshal(summary)
	if err != nil {
		return
	}
	ttl := s.SummaryTTL
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	if err := s.Cache.Set(ctx, summaryKey(userID), raw, ttl); err != nil && s.Logger != nil {
		s.Logger.Warn("summary cache store failed", zap.String("user_id", userID), zap.Error(err))
	}
}
