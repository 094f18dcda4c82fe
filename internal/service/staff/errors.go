package staff

import "errors"

var (
	// ErrStaffNotFound is returned when the staff member does not exist
	ErrStaffNotFound = errors.New("staff member not found")

	// ErrInvalidInput is returned when a schedule invariant fails on a write
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for unexpected service failures
	ErrInternal = errors.New("service: internal error")
)
