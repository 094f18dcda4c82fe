package get_available_slots

import "errors"

var (
	// ErrServiceNotFound is returned when the requested service does not exist
	ErrServiceNotFound = errors.New("service not found")

	// ErrStaffNotFound is returned when the requested staff member does not exist
	ErrStaffNotFound = errors.New("staff member not found")

	// ErrStaffNotEligible is returned when the staff member does not perform
	// the service's category
	ErrStaffNotEligible = errors.New("staff member does not perform this service")

	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for unexpected usecase failures
	ErrInternal = errors.New("usecase: internal error")
)
