package db

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm/clause"

	"tradervault/internal/models"
)

func decPtr(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

// SeedMarketData fills the demo quote strip. Upsert keyed by symbol so repeated
// startups do not duplicate rows or clobber operator edits to other columns.
func SeedMarketData(db *DB) error {
	if db == nil || db.Gorm == nil {
		return nil
	}

	rows := []models.MarketData{
		{Symbol: "AAPL", Price: decimal.RequireFromString("189.45"), Change24h: decPtr("1.23"), Volume: decPtr("54210000"), MarketCap: decPtr("2950000000000")},
		{Symbol: "GOOGL", Price: decimal.RequireFromString("142.80"), Change24h: decPtr("-0.54"), Volume: decPtr("21780000"), MarketCap: decPtr("1790000000000")},
		{Symbol: "TSLA", Price: decimal.RequireFromString("248.30"), Change24h: decPtr("3.12"), Volume: decPtr("98450000"), MarketCap: decPtr("789000000000")},
		{Symbol: "MSFT", Price: decimal.RequireFromString("415.20"), Change24h: decPtr("0.87"), Volume: decPtr("18930000"), MarketCap: decPtr("3090000000000")},
		{Symbol: "NVDA", Price: decimal.RequireFromString("118.60"), Change24h: decPtr("2.45"), Volume: decPtr("312500000"), MarketCap: decPtr("2920000000000")},
	}

	for i := range rows {
		if err := db.Gorm.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "symbol"}},
			DoNothing: true,
		}).Create(&rows[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
