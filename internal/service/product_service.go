package service

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/DRTX2/products-api/internal/apierror"
	"github.com/DRTX2/products-api/internal/dto"
	"github.com/DRTX2/products-api/internal/model"
	"github.com/DRTX2/products-api/internal/repository"
	"github.com/DRTX2/products-api/internal/validation"
)

// ProductService defines the business operations over products, their
// base currency and their per-currency price overrides.
type ProductService interface {
	// List returns one page of active products (id desc) with currency
	// and prices eager-loaded. page and perPage must already be clamped
	// by the caller (perPage to [1,100], page to >= 1).
	List(ctx context.Context, page, perPage int) (dto.ProductListResult, error)
	Create(ctx context.Context, req dto.CreateProductRequest) (dto.ProductResponse, error)
	FindByID(ctx context.Context, id uint) (dto.ProductResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateProductRequest) (dto.ProductResponse, error)
	Delete(ctx context.Context, id uint) error
	ListPrices(ctx context.Context, id uint) ([]dto.ProductPriceResponse, error)
	CreatePrice(ctx context.Context, id uint, req dto.CreateProductPriceRequest) (dto.ProductPriceResponse, error)
}

type productService struct {
	products   repository.ProductRepository
	prices     repository.ProductPriceRepository
	currencies repository.CurrencyRepository
}

func NewProductService(
	products repository.ProductRepository,
	prices repository.ProductPriceRepository,
	currencies repository.CurrencyRepository,
) ProductService {
	return &productService{products: products, prices: prices, currencies: currencies}
}

// ─── Mapping ─────────────────────────────────────────────────────────────────

func mapCurrency(c *model.Currency) *dto.CurrencyResponse {
	if c == nil {
		return nil
	}
	return &dto.CurrencyResponse{
		ID:           c.ID,
		Name:         c.Name,
		Symbol:       c.Symbol,
		ExchangeRate: c.ExchangeRate.InexactFloat64(),
	}
}

func mapPrice(pp model.ProductPrice) dto.ProductPriceResponse {
	return dto.ProductPriceResponse{
		ID:         pp.ID,
		ProductID:  pp.ProductID,
		CurrencyID: pp.CurrencyID,
		Price:      pp.Price.InexactFloat64(),
		Currency:   mapCurrency(pp.Currency),
	}
}

func mapProduct(p model.Product) dto.ProductResponse {
	resp := dto.ProductResponse{
		ID:                p.ID,
		Name:              p.Name,
		Description:       p.Description,
		Price:             p.Price.InexactFloat64(),
		CurrencyID:        p.CurrencyID,
		TaxCost:           p.TaxCost.InexactFloat64(),
		ManufacturingCost: p.ManufacturingCost.InexactFloat64(),
		TotalCost:         p.Price.Add(p.TaxCost).Add(p.ManufacturingCost).InexactFloat64(),
		Currency:          mapCurrency(p.Currency),
	}
	for _, pp := range p.Prices {
		resp.Prices = append(resp.Prices, mapPrice(pp))
	}
	return resp
}

// ─── Operations ──────────────────────────────────────────────────────────────

func (s *productService) List(ctx context.Context, page, perPage int) (dto.ProductListResult, error) {
	products, total, err := s.products.List(ctx, page, perPage)
	if err != nil {
		return dto.ProductListResult{}, err
	}

	lastPage := int((total + int64(perPage) - 1) / int64(perPage))
	if lastPage < 1 {
		lastPage = 1
	}

	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, mapProduct(p))
	}

	return dto.ProductListResult{
		Products: items,
		Meta: dto.Meta{
			CurrentPage: page,
			LastPage:    lastPage,
			PerPage:     perPage,
			Total:       total,
		},
	}, nil
}

func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (dto.ProductResponse, error) {
	errs := validation.CreateProduct(req)

	// Reglas que dependen del almacén: unicidad de nombre y existencia
	// de la divisa.
	if req.Name != nil && !errs.Has("name") {
		taken, err := s.products.NameTaken(ctx, *req.Name, 0)
		if err != nil {
			return dto.ProductResponse{}, err
		}
		if taken {
			errs.Add("name", validation.MsgNameTaken)
		}
	}
	if req.CurrencyID != nil && !errs.Has("currency_id") {
		if err := s.checkCurrencyExists(ctx, *req.CurrencyID, errs); err != nil {
			return dto.ProductResponse{}, err
		}
	}
	if !errs.Empty() {
		return dto.ProductResponse{}, apierror.NewValidation(errs)
	}

	p := &model.Product{
		Name:              *req.Name,
		Description:       req.Description,
		Price:             req.Price.Round(2),
		CurrencyID:        *req.CurrencyID,
		TaxCost:           decimal.Zero,
		ManufacturingCost: decimal.Zero,
		Active:            true,
	}
	if req.TaxCost != nil {
		p.TaxCost = req.TaxCost.Round(2)
	}
	if req.ManufacturingCost != nil {
		p.ManufacturingCost = req.ManufacturingCost.Round(2)
	}

	if err := s.products.Create(ctx, p); err != nil {
		return dto.ProductResponse{}, err
	}

	// Reload to attach the currency, like the created resource the API
	// returns.
	created, err := s.products.FindByID(ctx, p.ID)
	if err != nil {
		return dto.ProductResponse{}, err
	}
	return mapProduct(*created), nil
}

func (s *productService) FindByID(ctx context.Context, id uint) (dto.ProductResponse, error) {
	p, err := s.findActive(ctx, id)
	if err != nil {
		return dto.ProductResponse{}, err
	}
	return mapProduct(*p), nil
}

func (s *productService) Update(ctx context.Context, id uint, req dto.UpdateProductRequest) (dto.ProductResponse, error) {
	p, err := s.findActive(ctx, id)
	if err != nil {
		return dto.ProductResponse{}, err
	}

	errs := validation.UpdateProduct(req)

	// Name uniqueness excludes the product's own row.
	if req.Name != nil && !errs.Has("name") {
		taken, err := s.products.NameTaken(ctx, *req.Name, p.ID)
		if err != nil {
			return dto.ProductResponse{}, err
		}
		if taken {
			errs.Add("name", validation.MsgNameTaken)
		}
	}
	if req.CurrencyID != nil && !errs.Has("currency_id") {
		if err := s.checkCurrencyExists(ctx, *req.CurrencyID, errs); err != nil {
			return dto.ProductResponse{}, err
		}
	}
	if !errs.Empty() {
		return dto.ProductResponse{}, apierror.NewValidation(errs)
	}

	// Partial update: only supplied fields mutate.
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = req.Description
	}
	if req.Price != nil {
		p.Price = req.Price.Round(2)
	}
	if req.CurrencyID != nil {
		p.CurrencyID = *req.CurrencyID
	}
	if req.TaxCost != nil {
		p.TaxCost = req.TaxCost.Round(2)
	}
	if req.ManufacturingCost != nil {
		p.ManufacturingCost = req.ManufacturingCost.Round(2)
	}

	if err := s.products.Update(ctx, p); err != nil {
		return dto.ProductResponse{}, err
	}

	updated, err := s.products.FindByID(ctx, p.ID)
	if err != nil {
		return dto.ProductResponse{}, err
	}
	return mapProduct(*updated), nil
}

// Delete soft-deletes the product. Its price rows stay in storage but
// become unreachable: every live lookup path filters deleted products.
func (s *productService) Delete(ctx context.Context, id uint) error {
	p, err := s.findActive(ctx, id)
	if err != nil {
		return err
	}
	return s.products.SoftDelete(ctx, p)
}

func (s *productService) ListPrices(ctx context.Context, id uint) ([]dto.ProductPriceResponse, error) {
	p, err := s.findActive(ctx, id)
	if err != nil {
		return nil, err
	}
	prices, err := s.prices.ListByProduct(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductPriceResponse, 0, len(prices))
	for _, pp := range prices {
		items = append(items, mapPrice(pp))
	}
	return items, nil
}

func (s *productService) CreatePrice(ctx context.Context, id uint, req dto.CreateProductPriceRequest) (dto.ProductPriceResponse, error) {
	p, err := s.findActive(ctx, id)
	if err != nil {
		return dto.ProductPriceResponse{}, err
	}

	errs := validation.CreateProductPrice(req)

	if req.CurrencyID != nil && !errs.Has("currency_id") {
		exists, err := s.currencies.Exists(ctx, *req.CurrencyID)
		if err != nil {
			return dto.ProductPriceResponse{}, err
		}
		switch {
		case !exists:
			errs.Add("currency_id", validation.MsgCurrencyInvalid)
		default:
			dup, err := s.prices.ExistsForCurrency(ctx, p.ID, *req.CurrencyID)
			if err != nil {
				return dto.ProductPriceResponse{}, err
			}
			if dup {
				errs.Add("currency_id", validation.MsgPriceDuplicate)
			}
		}
	}
	if !errs.Empty() {
		return dto.ProductPriceResponse{}, apierror.NewValidation(errs)
	}

	pp := &model.ProductPrice{
		ProductID:  p.ID,
		CurrencyID: *req.CurrencyID,
		Price:      req.Price.Round(2),
	}
	if err := s.prices.Create(ctx, pp); err != nil {
		// The composite unique index closes the race between two
		// concurrent creates for the same pair: the loser lands here.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			fe := validation.FieldErrors{}
			fe.Add("currency_id", validation.MsgPriceDuplicate)
			return dto.ProductPriceResponse{}, apierror.NewValidation(fe)
		}
		return dto.ProductPriceResponse{}, err
	}

	cur, err := s.currencies.FindByID(ctx, pp.CurrencyID)
	if err != nil {
		return dto.ProductPriceResponse{}, err
	}
	pp.Currency = cur
	return mapPrice(*pp), nil
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

// checkCurrencyExists appends the invalid-currency message when the id
// does not reference a stored currency.
func (s *productService) checkCurrencyExists(ctx context.Context, id uint, errs validation.FieldErrors) error {
	exists, err := s.currencies.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		errs.Add("currency_id", validation.MsgCurrencyInvalid)
	}
	return nil
}

// findActive translates "unknown or soft-deleted id" into the not-found
// sentinel so handlers answer 404 instead of 500.
func (s *productService) findActive(ctx context.Context, id uint) (*model.Product, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.ErrProductNotFound
		}
		return nil, err
	}
	return p, nil
}
