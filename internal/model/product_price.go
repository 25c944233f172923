package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductPrice is a per-currency override of a product's price, stored
// with 2 decimal places. The composite unique index enforces at most one
// price per (product, currency) pair at the storage layer, so two
// concurrent duplicate creates cannot both succeed.
type ProductPrice struct {
	ID         uint            `gorm:"primaryKey"`
	ProductID  uint            `gorm:"not null;uniqueIndex:idx_product_prices_product_currency"`
	CurrencyID uint            `gorm:"not null;uniqueIndex:idx_product_prices_product_currency"`
	Price      decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Currency *Currency `gorm:"foreignKey:CurrencyID"`
}

func (ProductPrice) TableName() string { return "product_prices" }
