package service

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"tradervault/internal/config"
	"tradervault/internal/demo"
	"tradervault/internal/models"
	"tradervault/internal/repository"
)

type TradeService struct {
	Repo      repository.Repository
	Portfolio *PortfolioService
	Demo      config.DemoConfig
	Logger    *zap.Logger

	// Rng is the seedable source behind demo-trade synthesis; tests inject a
	// fixed seed. Guarded because *rand.Rand is not safe for concurrent use.
	Rng   *rand.Rand
	rngMu sync.Mutex

	// now is swappable for tests.
	Now func() time.Time
}

type TradeListResult struct {
	Items []models.Trade
	Total int64
}

func (s *TradeService) List(ctx context.Context, params repository.ListTradesParams) (TradeListResult, error) {
	total, err := s.Repo.CountTrades(ctx, params)
	if err != nil {
		return TradeListResult{}, err
	}
	items, err := s.Repo.ListTrades(ctx, params)
	if err != nil {
		return TradeListResult{}, err
	}
	return TradeListResult{Items: items, Total: total}, nil
}

// AddDemoTrade fabricates one trade and persists it. Account bootstrap and
// trade insert are two independent writes; a failure between them leaves the
// account in place and is surfaced, not rolled back. The returned list is
// re-fetched from storage rather than patched in memory.
func (s *TradeService) AddDemoTrade(ctx context.Context, userID string) (models.Trade, []models.Trade, error) {
	accounts, err := s.Repo.ListTradingAccounts(ctx, userID)
	if err != nil {
		return models.Trade{}, nil, err
	}

	var accountID string
	if len(accounts) == 0 {
		account := newDemoAccount(s.Demo, userID)
		if err := s.Repo.CreateTradingAccount(ctx, account); err != nil {
			return models.Trade{}, nil, err
		}
		accountID = account.ID
	} else {
		accountID = accounts[0].ID
	}

	trade := s.synthesize()
	trade.UserID = userID
	trade.TradingAccountID = accountID

	if err := s.Repo.InsertTrade(ctx, &trade); err != nil {
		return models.Trade{}, nil, err
	}

	if s.Portfolio != nil {
		s.Portfolio.Invalidate(ctx, userID)
	}
	if s.Logger != nil {
		s.Logger.Info("demo trade added",
			zap.String("user_id", userID),
			zap.String("symbol", trade.Symbol),
			zap.String("side", trade.Side),
		)
	}

	items, err := s.Repo.ListTrades(ctx, repository.ListTradesParams{UserID: userID})
	if err != nil {
		// The trade is persisted; only the refresh failed.
		return trade, nil, err
	}
	return trade, items, nil
}

func (s *TradeService) synthesize() models.Trade {
	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	rng := s.Rng
	if rng == nil {
		rng = rand.New(rand.NewSource(now.UnixNano()))
		s.Rng = rng
	}
	return demo.Synthesize(rng, now)
}
