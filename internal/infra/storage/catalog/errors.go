package catalog

import "errors"

var (
	// ErrServiceNotFound is returned when no service matches the id
	ErrServiceNotFound = errors.New("catalog.repository: service not found")

	// ErrProductNotFound is returned when no product matches the id
	ErrProductNotFound = errors.New("catalog.repository: product not found")

	// ErrBuildQuery is returned when SQL construction fails
	ErrBuildQuery = errors.New("catalog.repository: failed to build query")

	// ErrExecQuery is returned when query execution fails
	ErrExecQuery = errors.New("catalog.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned
	ErrScanRow = errors.New("catalog.repository: failed to scan row")
)
