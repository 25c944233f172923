// Package validation holds the field-level rules for product and price
// input as pure functions: DTO in, field-keyed messages out. Nothing
// here touches the transport or the database — rules that need the
// store (currency existence, uniqueness) are appended by the service
// into the same FieldErrors.
package validation

import (
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/DRTX2/products-api/internal/dto"
)

const (
	MaxNameLength        = 150
	MaxDescriptionLength = 5000
)

// MaxAmount is the upper bound for every monetary field: decimal(14,2),
// 12 integer digits.
var MaxAmount = decimal.RequireFromString("999999999999.99")

// Mensajes de validación — mismo texto que la API original.
const (
	MsgNameRequired = "El nombre del producto es obligatorio."
	MsgNameMax      = "El nombre no puede exceder los 150 caracteres."
	MsgNameTaken    = "Ya existe un producto con ese nombre."

	MsgDescriptionMax = "La descripción no puede exceder los 5000 caracteres."

	MsgProductPriceRequired = "El precio del producto es obligatorio."
	MsgPriceRequired        = "El precio es obligatorio."
	MsgPriceMin             = "El precio no puede ser negativo."
	MsgPriceMax             = "El precio no puede exceder 999999999999.99."

	MsgCurrencyRequired = "La divisa es obligatoria."
	MsgCurrencyInvalid  = "La divisa seleccionada no existe."
	MsgPriceDuplicate   = "Ya existe un precio para este producto en la divisa seleccionada."

	MsgTaxCostMin = "El costo de impuestos no puede ser negativo."
	MsgTaxCostMax = "El costo de impuestos no puede exceder 999999999999.99."

	MsgManufacturingCostMin = "El costo de fabricación no puede ser negativo."
	MsgManufacturingCostMax = "El costo de fabricación no puede exceder 999999999999.99."
)

// FieldErrors accumulates human-readable messages keyed by the JSON
// field name, in the shape the 422 envelope expects.
type FieldErrors map[string][]string

func (f FieldErrors) Add(field, msg string) { f[field] = append(f[field], msg) }
func (f FieldErrors) Has(field string) bool { return len(f[field]) > 0 }
func (f FieldErrors) Empty() bool           { return len(f) == 0 }

// CreateProduct checks the shape of a product create request:
// name, price and currency_id are required, costs default later.
func CreateProduct(req dto.CreateProductRequest) FieldErrors {
	errs := FieldErrors{}

	if req.Name == nil || *req.Name == "" {
		errs.Add("name", MsgNameRequired)
	} else if utf8.RuneCountInString(*req.Name) > MaxNameLength {
		errs.Add("name", MsgNameMax)
	}

	checkDescription(errs, req.Description)
	checkAmount(errs, "price", req.Price, true, MsgProductPriceRequired, MsgPriceMin, MsgPriceMax)

	if req.CurrencyID == nil {
		errs.Add("currency_id", MsgCurrencyRequired)
	}

	checkAmount(errs, "tax_cost", req.TaxCost, false, "", MsgTaxCostMin, MsgTaxCostMax)
	checkAmount(errs, "manufacturing_cost", req.ManufacturingCost, false, "", MsgManufacturingCostMin, MsgManufacturingCostMax)

	return errs
}

// UpdateProduct checks a partial update: absent fields are skipped,
// supplied fields follow the create rules.
func UpdateProduct(req dto.UpdateProductRequest) FieldErrors {
	errs := FieldErrors{}

	if req.Name != nil {
		if *req.Name == "" {
			errs.Add("name", MsgNameRequired)
		} else if utf8.RuneCountInString(*req.Name) > MaxNameLength {
			errs.Add("name", MsgNameMax)
		}
	}

	checkDescription(errs, req.Description)
	checkAmount(errs, "price", req.Price, false, "", MsgPriceMin, MsgPriceMax)
	checkAmount(errs, "tax_cost", req.TaxCost, false, "", MsgTaxCostMin, MsgTaxCostMax)
	checkAmount(errs, "manufacturing_cost", req.ManufacturingCost, false, "", MsgManufacturingCostMin, MsgManufacturingCostMax)

	return errs
}

// CreateProductPrice checks the shape of a price override request.
func CreateProductPrice(req dto.CreateProductPriceRequest) FieldErrors {
	errs := FieldErrors{}

	if req.CurrencyID == nil {
		errs.Add("currency_id", MsgCurrencyRequired)
	}
	checkAmount(errs, "price", req.Price, true, MsgPriceRequired, MsgPriceMin, MsgPriceMax)

	return errs
}

func checkDescription(errs FieldErrors, d *string) {
	if d != nil && utf8.RuneCountInString(*d) > MaxDescriptionLength {
		errs.Add("description", MsgDescriptionMax)
	}
}

// checkAmount validates a monetary field against [0, MaxAmount].
func checkAmount(errs FieldErrors, field string, v *decimal.Decimal, required bool, msgRequired, msgMin, msgMax string) {
	if v == nil {
		if required {
			errs.Add(field, msgRequired)
		}
		return
	}
	switch {
	case v.IsNegative():
		errs.Add(field, msgMin)
	case v.GreaterThan(MaxAmount):
		errs.Add(field, msgMax)
	}
}
