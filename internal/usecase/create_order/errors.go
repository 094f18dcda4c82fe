package create_order

import "errors"

var (
	// ErrEmptyOrder is returned when the checkout carries no items
	ErrEmptyOrder = errors.New("order must contain at least one item")

	// ErrProductNotFound is returned when an item names an unknown product
	ErrProductNotFound = errors.New("product not found")

	// ErrProductOutOfStock is returned when an item names a product that is
	// not currently sold
	ErrProductOutOfStock = errors.New("product is out of stock")

	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for unexpected usecase failures
	ErrInternal = errors.New("usecase: internal error")
)
