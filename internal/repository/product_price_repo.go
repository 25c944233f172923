package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/DRTX2/products-api/internal/model"
)

// ProductPriceRepository is the data access contract for per-currency
// price overrides. There is no update or delete: rows are only created
// and listed through the current surface.
type ProductPriceRepository interface {
	// Create inserts the row. The composite unique index on
	// (product_id, currency_id) makes a concurrent duplicate surface as
	// gorm.ErrDuplicatedKey instead of a second success.
	Create(ctx context.Context, pp *model.ProductPrice) error
	ListByProduct(ctx context.Context, productID uint) ([]model.ProductPrice, error)
	ExistsForCurrency(ctx context.Context, productID, currencyID uint) (bool, error)
}

type productPriceRepo struct{ db *gorm.DB }

func NewProductPriceRepository(db *gorm.DB) ProductPriceRepository {
	return &productPriceRepo{db: db}
}

func (r *productPriceRepo) Create(ctx context.Context, pp *model.ProductPrice) error {
	return r.db.WithContext(ctx).Create(pp).Error
}

func (r *productPriceRepo) ListByProduct(ctx context.Context, productID uint) ([]model.ProductPrice, error) {
	var prices []model.ProductPrice
	err := r.db.WithContext(ctx).
		Preload("Currency").
		Where("product_id = ?", productID).
		Order("id ASC").
		Find(&prices).Error
	return prices, err
}

func (r *productPriceRepo) ExistsForCurrency(ctx context.Context, productID, currencyID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ProductPrice{}).
		Where("product_id = ? AND currency_id = ?", productID, currencyID).
		Count(&count).Error
	return count > 0, err
}
