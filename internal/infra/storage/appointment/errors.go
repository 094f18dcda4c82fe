package appointment

import "errors"

var (
	// ErrAppointmentNotFound is returned when no appointment matches the id
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrBuildQuery is returned when SQL construction fails
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery is returned when query execution fails
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned
	ErrScanRow = errors.New("appointment.repository: failed to scan row")
)
