package validation

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/DRTX2/products-api/internal/dto"
)

func strPtr(s string) *string { return &s }
func uintPtr(v uint) *uint    { return &v }
func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestCreateProductRequiredFields(t *testing.T) {
	errs := CreateProduct(dto.CreateProductRequest{})

	assert.Equal(t, []string{MsgNameRequired}, errs["name"])
	assert.Equal(t, []string{MsgProductPriceRequired}, errs["price"])
	assert.Equal(t, []string{MsgCurrencyRequired}, errs["currency_id"])
	// Costs default to 0 later — absence is not an error.
	assert.False(t, errs.Has("tax_cost"))
	assert.False(t, errs.Has("manufacturing_cost"))
}

func TestCreateProductValid(t *testing.T) {
	errs := CreateProduct(dto.CreateProductRequest{
		Name:       strPtr("Producto X"),
		Price:      decPtr("50.00"),
		CurrencyID: uintPtr(1),
	})
	assert.True(t, errs.Empty())
}

func TestCreateProductPriceZeroIsValid(t *testing.T) {
	errs := CreateProduct(dto.CreateProductRequest{
		Name:       strPtr("Gratis"),
		Price:      decPtr("0"),
		CurrencyID: uintPtr(1),
	})
	assert.True(t, errs.Empty())
}

func TestCreateProductNegativePrice(t *testing.T) {
	errs := CreateProduct(dto.CreateProductRequest{
		Name:       strPtr("Producto"),
		Price:      decPtr("-10"),
		CurrencyID: uintPtr(1),
	})
	assert.Equal(t, []string{MsgPriceMin}, errs["price"])
}

func TestCreateProductPriceBounds(t *testing.T) {
	// Exactly the maximum passes, one cent over fails.
	errs := CreateProduct(dto.CreateProductRequest{
		Name:       strPtr("Caro"),
		Price:      decPtr("999999999999.99"),
		CurrencyID: uintPtr(1),
	})
	assert.False(t, errs.Has("price"))

	errs = CreateProduct(dto.CreateProductRequest{
		Name:       strPtr("Demasiado caro"),
		Price:      decPtr("1000000000000.00"),
		CurrencyID: uintPtr(1),
	})
	assert.Equal(t, []string{MsgPriceMax}, errs["price"])
}

func TestCreateProductNameTooLong(t *testing.T) {
	errs := CreateProduct(dto.CreateProductRequest{
		Name:       strPtr(strings.Repeat("a", MaxNameLength+1)),
		Price:      decPtr("1"),
		CurrencyID: uintPtr(1),
	})
	assert.Equal(t, []string{MsgNameMax}, errs["name"])

	errs = CreateProduct(dto.CreateProductRequest{
		Name:       strPtr(strings.Repeat("a", MaxNameLength)),
		Price:      decPtr("1"),
		CurrencyID: uintPtr(1),
	})
	assert.False(t, errs.Has("name"))
}

func TestCreateProductCostBounds(t *testing.T) {
	errs := CreateProduct(dto.CreateProductRequest{
		Name:              strPtr("Producto"),
		Price:             decPtr("10"),
		CurrencyID:        uintPtr(1),
		TaxCost:           decPtr("-1"),
		ManufacturingCost: decPtr("1000000000000.00"),
	})
	assert.Equal(t, []string{MsgTaxCostMin}, errs["tax_cost"])
	assert.Equal(t, []string{MsgManufacturingCostMax}, errs["manufacturing_cost"])
}

func TestUpdateProductSkipsAbsentFields(t *testing.T) {
	errs := UpdateProduct(dto.UpdateProductRequest{})
	assert.True(t, errs.Empty())
}

func TestUpdateProductValidatesSuppliedFields(t *testing.T) {
	errs := UpdateProduct(dto.UpdateProductRequest{
		Name:  strPtr(""),
		Price: decPtr("-100"),
	})
	assert.Equal(t, []string{MsgNameRequired}, errs["name"])
	assert.Equal(t, []string{MsgPriceMin}, errs["price"])
}

func TestUpdateProductDescriptionTooLong(t *testing.T) {
	errs := UpdateProduct(dto.UpdateProductRequest{
		Description: strPtr(strings.Repeat("x", MaxDescriptionLength+1)),
	})
	assert.Equal(t, []string{MsgDescriptionMax}, errs["description"])
}

func TestCreateProductPriceRequiredFields(t *testing.T) {
	errs := CreateProductPrice(dto.CreateProductPriceRequest{})
	assert.Equal(t, []string{MsgCurrencyRequired}, errs["currency_id"])
	assert.Equal(t, []string{MsgPriceRequired}, errs["price"])
}

func TestCreateProductPriceValid(t *testing.T) {
	errs := CreateProductPrice(dto.CreateProductPriceRequest{
		CurrencyID: uintPtr(2),
		Price:      decPtr("87.50"),
	})
	assert.True(t, errs.Empty())
}
