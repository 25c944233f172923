package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// Pointer fields distinguish "absent" from "zero": price=0 is a valid
// value, a missing price is a validation error.

type CreateProductRequest struct {
	Name              *string          `json:"name"`
	Description       *string          `json:"description"`
	Price             *decimal.Decimal `json:"price"`
	CurrencyID        *uint            `json:"currency_id"`
	TaxCost           *decimal.Decimal `json:"tax_cost"`
	ManufacturingCost *decimal.Decimal `json:"manufacturing_cost"`
}

// UpdateProductRequest is a partial update: every field is optional and
// only supplied fields are validated and mutated.
type UpdateProductRequest struct {
	Name              *string          `json:"name"`
	Description       *string          `json:"description"`
	Price             *decimal.Decimal `json:"price"`
	CurrencyID        *uint            `json:"currency_id"`
	TaxCost           *decimal.Decimal `json:"tax_cost"`
	ManufacturingCost *decimal.Decimal `json:"manufacturing_cost"`
}

type CreateProductPriceRequest struct {
	CurrencyID *uint            `json:"currency_id"`
	Price      *decimal.Decimal `json:"price"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// Monetary values serialize as JSON numbers, matching the public
// contract (data.price == 87.5, not "87.50").

type CurrencyResponse struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Symbol       string  `json:"symbol"`
	ExchangeRate float64 `json:"exchange_rate"`
}

type ProductResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Price       float64 `json:"price"`
	CurrencyID  uint    `json:"currency_id"`
	// TotalCost is derived: price + tax_cost + manufacturing_cost.
	TaxCost           float64                `json:"tax_cost"`
	ManufacturingCost float64                `json:"manufacturing_cost"`
	TotalCost         float64                `json:"total_cost"`
	Currency          *CurrencyResponse      `json:"currency,omitempty"`
	Prices            []ProductPriceResponse `json:"prices,omitempty"`
}

type ProductPriceResponse struct {
	ID         uint              `json:"id"`
	ProductID  uint              `json:"product_id"`
	CurrencyID uint              `json:"currency_id"`
	Price      float64           `json:"price"`
	Currency   *CurrencyResponse `json:"currency,omitempty"`
}

// ProductListResult is what the service hands the list handler: one page
// of products plus the pagination meta for the envelope.
type ProductListResult struct {
	Products []ProductResponse
	Meta     Meta
}
