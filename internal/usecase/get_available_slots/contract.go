package get_available_slots

import (
	"context"

	"github.com/mulelash/MB-BeautyService/internal/domain"
)

// CatalogRepository loads the service whose duration drives the slot walk
type CatalogRepository interface {
	GetServiceByID(ctx context.Context, id int64) (*domain.Service, error)
}

// StaffRepository loads the staff member whose schedule bounds the day
type StaffRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.StaffMember, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
