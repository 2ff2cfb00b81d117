package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User backs email/password authentication. The original product delegated this
// table to a hosted auth provider; here it lives next to the product tables.
type User struct {
	ID          string `gorm:"type:uuid;primaryKey"`
	Email       string `gorm:"type:varchar(255);not null;uniqueIndex"`
	FullName    string `gorm:"type:varchar(255)"`
	SaltHex     string `gorm:"type:varchar(64);not null"`
	PassHashHex string `gorm:"type:varchar(128);not null"`

	CreatedAt   time.Time  `gorm:"type:timestamptz;autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"type:timestamptz;autoUpdateTime"`
	LastLoginAt *time.Time `gorm:"type:timestamptz"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
