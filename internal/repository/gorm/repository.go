package gormrepository

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tradervault/internal/models"
	"tradervault/internal/repository"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// --- Users ------------------------------------------------------------------

func (s *Store) CreateUser(ctx context.Context, item *models.User) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	email = strings.ToLower(strings.TrimSpace(email))
	var item models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var item models.User
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) TouchLastLogin(ctx context.Context, id string) error {
	if s == nil || s.db == nil {
		return nil
	}
	now := time.Now().UTC()
	return s.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Update("last_login_at", now).Error
}

// --- Profiles ---------------------------------------------------------------

// GetProfile returns nil, nil when the user has not configured a profile yet;
// the settings view treats that as an empty form, not an error.
func (s *Store) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var item models.Profile
	err := s.db.WithContext(ctx).Where("id = ?", userID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) UpsertProfile(ctx context.Context, item *models.Profile) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"full_name",
			"phone",
			"risk_tolerance",
			"updated_at",
		}),
	}).Create(item).Error
}

// --- Trading accounts -------------------------------------------------------

func (s *Store) ListTradingAccounts(ctx context.Context, userID string) ([]models.TradingAccount, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.TradingAccount
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) CreateTradingAccount(ctx context.Context, item *models.TradingAccount) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) SetAccountsActive(ctx context.Context, userID string, active bool) error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.WithContext(ctx).
		Model(&models.TradingAccount{}).
		Where("user_id = ?", userID).
		Update("is_active", active).Error
}

// --- Trades -----------------------------------------------------------------

func tradeQuery(db *gorm.DB, params repository.ListTradesParams) *gorm.DB {
	query := db.Model(&models.Trade{}).Where("user_id = ?", params.UserID)
	if params.Status != nil && strings.TrimSpace(*params.Status) != "" {
		query = query.Where("status = ?", strings.TrimSpace(*params.Status))
	}
	return query
}

func (s *Store) ListTrades(ctx context.Context, params repository.ListTradesParams) ([]models.Trade, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	query := tradeQuery(s.db.WithContext(ctx), params).Order("executed_at desc")
	if params.Limit > 0 {
		query = query.Limit(params.Limit)
	}
	if params.Offset > 0 {
		query = query.Offset(params.Offset)
	}
	var items []models.Trade
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) CountTrades(ctx context.Context, params repository.ListTradesParams) (int64, error) {
	if s == nil || s.db == nil {
		return 0, nil
	}
	var total int64
	if err := tradeQuery(s.db.WithContext(ctx), params).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (s *Store) InsertTrade(ctx context.Context, item *models.Trade) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Create(item).Error
}

// --- Withdrawal requests ----------------------------------------------------

func (s *Store) InsertWithdrawalRequest(ctx context.Context, item *models.WithdrawalRequest) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) ListWithdrawalRequests(ctx context.Context, params repository.ListWithdrawalsParams) ([]models.WithdrawalRequest, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	query := s.db.WithContext(ctx).
		Model(&models.WithdrawalRequest{}).
		Where("user_id = ?", params.UserID).
		Order("created_at desc")
	if params.Status != nil && strings.TrimSpace(*params.Status) != "" {
		query = query.Where("status = ?", strings.TrimSpace(*params.Status))
	}
	if params.Limit > 0 {
		query = query.Limit(params.Limit)
	}
	if params.Offset > 0 {
		query = query.Offset(params.Offset)
	}
	var items []models.WithdrawalRequest
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// --- Market data ------------------------------------------------------------

func (s *Store) ListMarketData(ctx context.Context) ([]models.MarketData, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.MarketData
	if err := s.db.WithContext(ctx).
		Model(&models.MarketData{}).
		Order("symbol asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
