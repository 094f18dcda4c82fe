package create_appointment

import (
	"context"
	"time"

	"github.com/mulelash/MB-BeautyService/internal/domain"
	"github.com/mulelash/MB-BeautyService/pkg/types"
)

// AppointmentRepository persists the new appointment and reports slot
// occupancy for the double-booking warning
type AppointmentRepository interface {
	Create(ctx context.Context, apt *domain.Appointment) (*domain.Appointment, error)
	CountActiveAt(ctx context.Context, staffID int64, date time.Time, startTime types.TimeString) (int, error)
}

// CatalogRepository loads the service being booked
type CatalogRepository interface {
	GetServiceByID(ctx context.Context, id int64) (*domain.Service, error)
}

// StaffRepository loads the staff member being booked
type StaffRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.StaffMember, error)
}

// TransactionManager runs the occupancy check and the insert atomically
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// ChangePublisher pushes a fresh snapshot of a collection to live subscribers
type ChangePublisher interface {
	Publish(ctx context.Context, collection string)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
