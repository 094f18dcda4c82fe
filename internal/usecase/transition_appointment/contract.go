package transition_appointment

import (
	"context"

	"github.com/mulelash/MB-BeautyService/internal/domain"
)

// AppointmentRepository re-reads and updates the appointment inside the
// transaction
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
}

// OutboxRepository queues the customer notification in the same transaction
// as the status change
type OutboxRepository interface {
	Create(ctx context.Context, ev *domain.OutboxEvent) (*domain.OutboxEvent, error)
}

// TransactionManager keeps the re-read, the update and the outbox write atomic
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
