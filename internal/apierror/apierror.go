// Package apierror defines the error taxonomy surfaced by the API.
// All errors returned to clients go through this package to ensure
// consistency and to prevent leaking internal details (stack traces,
// DB errors, etc.).
package apierror

import "errors"

// ErrProductNotFound is returned when a product does not exist or is
// soft-deleted. Handlers translate it into the fixed 404 envelope; the
// "not found" case is never surfaced as a 500.
var ErrProductNotFound = errors.New("producto no encontrado")

// ValidationError carries field-scoped messages for a 422 response,
// keyed by the JSON field name of the offending input.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string { return "error de validación" }

func NewValidation(fields map[string][]string) *ValidationError {
	return &ValidationError{Fields: fields}
}
