package db

import (
	"tradervault/internal/models"
)

func AutoMigrate(db *DB) error {
	if db == nil || db.Gorm == nil || db.SQL == nil {
		return nil
	}

	return db.Gorm.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.TradingAccount{},
		&models.Trade{},
		&models.WithdrawalRequest{},
		&models.MarketData{},
	)
}
