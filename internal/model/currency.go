package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currency is exchange rate reference data. Rows are created by the seed
// command (or ad-hoc inserts) and are never deleted in normal flow.
type Currency struct {
	ID           uint            `gorm:"primaryKey"`
	Name         string          `gorm:"not null"`
	Symbol       string          `gorm:"uniqueIndex;not null"`
	ExchangeRate decimal.Decimal `gorm:"type:decimal(12,6);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Currency) TableName() string { return "currencies" }
