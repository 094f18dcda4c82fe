package staff

import "errors"

var (
	// ErrStaffNotFound is returned when no staff member matches the id
	ErrStaffNotFound = errors.New("staff.repository: staff member not found")

	// ErrBuildQuery is returned when SQL construction fails
	ErrBuildQuery = errors.New("staff.repository: failed to build query")

	// ErrExecQuery is returned when query execution fails
	ErrExecQuery = errors.New("staff.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned
	ErrScanRow = errors.New("staff.repository: failed to scan row")
)
