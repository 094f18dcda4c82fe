package list_appointments

import (
	"context"

	"github.com/mulelash/MB-BeautyService/internal/domain"
)

type AppointmentsService interface {
	List(ctx context.Context, status *string, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
