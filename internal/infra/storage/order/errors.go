package order

import "errors"

var (
	// ErrOrderNotFound is returned when no order matches the id
	ErrOrderNotFound = errors.New("order.repository: order not found")

	// ErrBuildQuery is returned when SQL construction fails
	ErrBuildQuery = errors.New("order.repository: failed to build query")

	// ErrExecQuery is returned when query execution fails
	ErrExecQuery = errors.New("order.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned
	ErrScanRow = errors.New("order.repository: failed to scan row")
)
