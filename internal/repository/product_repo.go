package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/DRTX2/products-api/internal/model"
)

// ProductRepository is the data access contract for products. Soft
// delete is centralized here: every read filters active = true, so
// deleted rows cannot leak through any query path.
type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) error
	// FindByID returns the product with its currency and prices (each
	// price with its currency) eager-loaded. gorm.ErrRecordNotFound if
	// the id is unknown or the product is soft-deleted.
	FindByID(ctx context.Context, id uint) (*model.Product, error)
	// List returns one page of active products ordered by id desc,
	// plus the total count of active products.
	List(ctx context.Context, page, perPage int) ([]model.Product, int64, error)
	Update(ctx context.Context, p *model.Product) error
	SoftDelete(ctx context.Context, p *model.Product) error
	// NameTaken reports whether an active product other than excludeID
	// already uses the name. Pass excludeID=0 on create.
	NameTaken(ctx context.Context, name string, excludeID uint) (bool, error)
}

type productRepo struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository { return &productRepo{db: db} }

func (r *productRepo) Create(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepo) FindByID(ctx context.Context, id uint) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).
		Preload("Currency").
		Preload("Prices", func(db *gorm.DB) *gorm.DB { return db.Order("product_prices.id ASC") }).
		Preload("Prices.Currency").
		Where("id = ? AND active = true", id).
		First(&p).Error
	return &p, err
}

func (r *productRepo) List(ctx context.Context, page, perPage int) ([]model.Product, int64, error) {
	var products []model.Product
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Product{}).Where("active = true")
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * perPage
	err := q.
		Preload("Currency").
		Preload("Prices", func(db *gorm.DB) *gorm.DB { return db.Order("product_prices.id ASC") }).
		Preload("Prices.Currency").
		Order("id DESC").
		Limit(perPage).
		Offset(offset).
		Find(&products).Error
	return products, total, err
}

func (r *productRepo) Update(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// SoftDelete flips the status flag and stamps deleted_at. The row stays
// in storage; it just becomes invisible to every read in this repo.
func (r *productRepo) SoftDelete(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ?", p.ID).
		Updates(map[string]any{"active": false, "deleted_at": gorm.Expr("now()")}).Error
}

func (r *productRepo) NameTaken(ctx context.Context, name string, excludeID uint) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("name = ? AND active = true", name)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}
