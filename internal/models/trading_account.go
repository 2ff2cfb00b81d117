package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TradingAccount struct {
	ID     string `gorm:"type:uuid;primaryKey"`
	UserID string `gorm:"type:uuid;not null;index"`

	AccountType string `gorm:"type:varchar(20);not null"`
	Broker      string `gorm:"type:varchar(100);not null"`

	Balance         decimal.Decimal `gorm:"type:numeric(20,2);not null;default:0"`
	TotalProfitLoss decimal.Decimal `gorm:"type:numeric(20,2);not null;default:0"`

	// IsActive gates the "AI trading" status badge; nothing runs in the
	// background when it is set.
	IsActive bool `gorm:"not null;default:false"`

	APIKeyEncrypted *string `gorm:"column:api_key_encrypted;type:text"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime"`
}

func (TradingAccount) TableName() string {
	return "trading_accounts"
}

func (a *TradingAccount) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
