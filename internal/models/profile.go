package models

import (
	"time"

	"gorm.io/datatypes"
)

// Profile holds per-user settings. ID equals the owning user ID, so an upsert
// keyed by id is last-write-wins for the settings form.
type Profile struct {
	ID            string         `gorm:"type:uuid;primaryKey"`
	FullName      string         `gorm:"type:varchar(255)"`
	Phone         string         `gorm:"type:varchar(50)"`
	KYCStatus     string         `gorm:"column:kyc_status;type:varchar(20);not null;default:'pending'"`
	KYCDocuments  datatypes.JSON `gorm:"column:kyc_documents;type:jsonb"`
	RiskTolerance string         `gorm:"type:varchar(10);not null;default:'medium'"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime"`
}

func (Profile) TableName() string {
	return "profiles"
}
