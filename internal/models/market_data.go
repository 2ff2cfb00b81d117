package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MarketData is the demo quote strip. Rows are seeded at migration; there is
// no refresher process.
type MarketData struct {
	ID     string `gorm:"type:uuid;primaryKey"`
	Symbol string `gorm:"type:varchar(20);not null;uniqueIndex"`

	Price     decimal.Decimal  `gorm:"type:numeric(20,2);not null"`
	Change24h *decimal.Decimal `gorm:"column:change_24h;type:numeric(10,2)"`
	Volume    *decimal.Decimal `gorm:"type:numeric(30,2)"`
	MarketCap *decimal.Decimal `gorm:"type:numeric(30,2)"`

	LastUpdated time.Time `gorm:"type:timestamptz;autoUpdateTime"`
}

func (MarketData) TableName() string {
	return "market_data"
}

func (m *MarketData) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
