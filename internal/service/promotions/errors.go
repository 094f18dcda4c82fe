package promotions

import "errors"

var (
	// ErrPromotionNotFound is returned when the promotion does not exist
	ErrPromotionNotFound = errors.New("promotion not found")

	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for unexpected service failures
	ErrInternal = errors.New("service: internal error")
)
