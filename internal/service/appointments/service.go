package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/mulelash/MB-BeautyService/internal/domain"
	appointmentRepo "github.com/mulelash/MB-BeautyService/internal/infra/storage/appointment"
)

// Service is the read side of appointments for the admin console. Writes go
// through the create and transition usecases.
type Service struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// GetByID fetches one appointment
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	apt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return apt, nil
}

// List returns appointments filtered for the admin console. An unknown
// status filter is rejected up front rather than silently matching nothing.
func (s *Service) List(ctx context.Context, status *string, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	if status != nil {
		parsed, err := domain.ParseAppointmentStatus(*status)
		if err != nil {
			s.logger.Warn("List: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		filter.Status = &parsed
	}

	appointments, err := s.appointmentRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return appointments, nil
}
