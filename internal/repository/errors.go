package repository

import "errors"

// ErrNotFound is returned when no product matches the requested id.
var ErrNotFound = errors.New("product not found")

// ValidationError reports a create request with a missing or falsy required
// field. It is only produced by Create; Update performs no field validation.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return "invalid product: required field is missing or empty: " + e.Field
}
