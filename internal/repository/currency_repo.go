package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/DRTX2/products-api/internal/model"
)

// CurrencyRepository is the data access contract for exchange rate
// reference data. Services depend on this interface, not on the
// concrete GORM implementation, enabling clean unit testing via stubs.
type CurrencyRepository interface {
	FindByID(ctx context.Context, id uint) (*model.Currency, error)
	Exists(ctx context.Context, id uint) (bool, error)
}

type currencyRepo struct{ db *gorm.DB }

func NewCurrencyRepository(db *gorm.DB) CurrencyRepository { return &currencyRepo{db: db} }

func (r *currencyRepo) FindByID(ctx context.Context, id uint) (*model.Currency, error) {
	var c model.Currency
	err := r.db.WithContext(ctx).First(&c, id).Error
	return &c, err
}

func (r *currencyRepo) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Currency{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
