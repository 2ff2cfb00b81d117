package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type WithdrawalRequest struct {
	ID     string `gorm:"type:uuid;primaryKey"`
	UserID string `gorm:"type:uuid;not null;index"`

	Amount        decimal.Decimal `gorm:"type:numeric(20,2);not null"`
	PaymentMethod datatypes.JSON  `gorm:"type:jsonb"`
	Status        string          `gorm:"type:varchar(20);not null;default:'pending';index"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime;index"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime"`
}

func (WithdrawalRequest) TableName() string {
	return "withdrawal_requests"
}

func (w *WithdrawalRequest) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return nil
}
