package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	TradeStatusOpen   = "open"
	TradeStatusClosed = "closed"

	SideBuy  = "buy"
	SideSell = "sell"
)

type Trade struct {
	ID               string `gorm:"type:uuid;primaryKey"`
	UserID           string `gorm:"type:uuid;not null;index"`
	TradingAccountID string `gorm:"type:uuid;not null;index"`

	Symbol   string `gorm:"type:varchar(20);not null"`
	Side     string `gorm:"type:varchar(4);not null"`
	Quantity int    `gorm:"not null"`

	EntryPrice decimal.Decimal  `gorm:"type:numeric(20,2);not null"`
	ExitPrice  *decimal.Decimal `gorm:"type:numeric(20,2)"`
	ProfitLoss *decimal.Decimal `gorm:"type:numeric(20,2)"`

	ConfidenceScore *float64 `gorm:"type:numeric(5,4)"`
	RiskLevel       *string  `gorm:"type:varchar(10)"`

	Status string `gorm:"type:varchar(10);not null;default:'open';index"`

	// AIReasoning is a free-form payload (indicator strings, sentiment, risk
	// note) attached by the synthesizer; it is not derived from the numbers.
	AIReasoning datatypes.JSON `gorm:"column:ai_reasoning;type:jsonb"`

	ExecutedAt time.Time  `gorm:"type:timestamptz;not null;index"`
	ClosedAt   *time.Time `gorm:"type:timestamptz"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime"`
}

func (Trade) TableName() string {
	return "trades"
}

func (t *Trade) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
