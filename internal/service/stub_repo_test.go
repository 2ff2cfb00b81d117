package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"tradervault/internal/models"
	"tradervault/internal/repository"
)

var errStub = errors.New("stub failure")

// stubRepo is a test-only in-memory implementation of repository.Repository.
// Individual operations can be made to fail via the fail* switches.
type stubRepo struct {
	users       map[string]models.User
	profiles    map[string]models.Profile
	accounts    []models.TradingAccount
	trades      []models.Trade
	withdrawals []models.WithdrawalRequest
	marketData  []models.MarketData

	failListAccounts  bool
	failCreateAccount bool
	failListTrades    bool
	failInsertTrade   bool

	listAccountCalls int
	listTradeCalls   int
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		users:    map[string]models.User{},
		profiles: map[string]models.Profile{},
	}
}

func (s *stubRepo) CreateUser(ctx context.Context, item *models.User) error {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	s.users[item.ID] = *item
	return nil
}

func (s *stubRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			out := u
			return &out, nil
		}
	}
	return nil, nil
}

func (s *stubRepo) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	out := u
	return &out, nil
}

func (s *stubRepo) TouchLastLogin(ctx context.Context, id string) error {
	if u, ok := s.users[id]; ok {
		now := time.Now().UTC()
		u.LastLoginAt = &now
		s.users[id] = u
	}
	return nil
}

func (s *stubRepo) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	p, ok := s.profiles[userID]
	if !ok {
		return nil, nil
	}
	out := p
	return &out, nil
}

func (s *stubRepo) UpsertProfile(ctx context.Context, item *models.Profile) error {
	existing, ok := s.profiles[item.ID]
	if ok {
		existing.FullName = item.FullName
		existing.Phone = item.Phone
		existing.RiskTolerance = item.RiskTolerance
		s.profiles[item.ID] = existing
		return nil
	}
	s.profiles[item.ID] = *item
	return nil
}

func (s *stubRepo) ListTradingAccounts(ctx context.Context, userID string) ([]models.TradingAccount, error) {
	s.listAccountCalls++
	if s.failListAccounts {
		return nil, errStub
	}
	var out []models.TradingAccount
	for _, acc := range s.accounts {
		if acc.UserID == userID {
			out = append(out, acc)
		}
	}
	return out, nil
}

func (s *stubRepo) CreateTradingAccount(ctx context.Context, item *models.TradingAccount) error {
	if s.failCreateAccount {
		return errStub
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	s.accounts = append(s.accounts, *item)
	return nil
}

func (s *stubRepo) SetAccountsActive(ctx context.Context, userID string, active bool) error {
	for i := range s.accounts {
		if s.accounts[i].UserID == userID {
			s.accounts[i].IsActive = active
		}
	}
	return nil
}

func (s *stubRepo) ListTrades(ctx context.Context, params repository.ListTradesParams) ([]models.Trade, error) {
	s.listTradeCalls++
	if s.failListTrades {
		return nil, errStub
	}
	var out []models.Trade
	for _, t := range s.trades {
		if t.UserID != params.UserID {
			continue
		}
		if params.Status != nil && t.Status != *params.Status {
			continue
		}
		out = append(out, t)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ExecutedAt.After(out[j].ExecutedAt)
	})
	if params.Offset > 0 && params.Offset < len(out) {
		out = out[params.Offset:]
	} else if params.Offset >= len(out) {
		out = nil
	}
	if params.Limit > 0 && len(out) > params.Limit {
		out = out[:params.Limit]
	}
	return out, nil
}

func (s *stubRepo) CountTrades(ctx context.Context, params repository.ListTradesParams) (int64, error) {
	if s.failListTrades {
		return 0, errStub
	}
	var n int64
	for _, t := range s.trades {
		if t.UserID != params.UserID {
			continue
		}
		if params.Status != nil && t.Status != *params.Status {
			continue
		}
		n++
	}
	return n, nil
}

func (s *stubRepo) InsertTrade(ctx context.Context, item *models.Trade) error {
	if s.failInsertTrade {
		return errStub
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	s.trades = append(s.trades, *item)
	return nil
}

func (s *stubRepo) InsertWithdrawalRequest(ctx context.Context, item *models.WithdrawalRequest) error {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	s.withdrawals = append(s.withdrawals, *item)
	return nil
}

func (s *stubRepo) ListWithdrawalRequests(ctx context.Context, params repository.ListWithdrawalsParams) ([]models.WithdrawalRequest, error) {
	var out []models.WithdrawalRequest
	for _, w := range s.withdrawals {
		if w.UserID == params.UserID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (s *stubRepo) ListMarketData(ctx context.Context) ([]models.MarketData, error) {
	return s.marketData, nil
}
