package orders

import "errors"

var (
	// ErrOrderNotFound is returned when the order does not exist
	ErrOrderNotFound = errors.New("order not found")

	// ErrInvalidStatus is returned when the requested status is not one of
	// the known order statuses
	ErrInvalidStatus = errors.New("invalid order status")

	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for unexpected service failures
	ErrInternal = errors.New("service: internal error")
)
