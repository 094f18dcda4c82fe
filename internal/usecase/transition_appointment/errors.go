package transition_appointment

import "errors"

var (
	// ErrAppointmentNotFound is returned when the appointment does not exist
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrInvalidTransition is returned when the lifecycle does not permit
	// moving from the current status to the requested one. The appointment
	// is left untouched.
	ErrInvalidTransition = errors.New("transition not permitted from current status")

	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for unexpected usecase failures
	ErrInternal = errors.New("usecase: internal error")
)
