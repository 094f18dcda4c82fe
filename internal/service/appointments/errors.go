package appointments

import "errors"

var (
	// ErrAppointmentNotFound is returned when the appointment does not exist
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for unexpected service failures
	ErrInternal = errors.New("service: internal error")
)
