package settings

import "errors"

var (
	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for unexpected service failures
	ErrInternal = errors.New("service: internal error")
)
