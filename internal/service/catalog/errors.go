package catalog

import "errors"

var (
	// ErrServiceNotFound is returned when the service does not exist
	ErrServiceNotFound = errors.New("service not found")

	// ErrProductNotFound is returned when the product does not exist
	ErrProductNotFound = errors.New("product not found")

	// ErrInvalidInput is returned when a catalog invariant fails on a write
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for unexpected service failures
	ErrInternal = errors.New("service: internal error")
)
