package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry priced in its base currency (CurrencyID).
// Soft delete is an explicit status: Active=false marks the row deleted
// and every repository read path filters on it. DeletedAt only records
// when the transition happened.
type Product struct {
	ID                uint            `gorm:"primaryKey"`
	Name              string          `gorm:"size:150;not null;index"`
	Description       *string         `gorm:"size:5000"`
	Price             decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	CurrencyID        uint            `gorm:"not null;index"`
	TaxCost           decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	ManufacturingCost decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	Active            bool            `gorm:"not null;default:true"`
	DeletedAt         *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Currency *Currency      `gorm:"foreignKey:CurrencyID"`
	Prices   []ProductPrice `gorm:"foreignKey:ProductID"`
}

func (Product) TableName() string { return "products" }
