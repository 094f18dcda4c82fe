package staff

import (
	"context"
	"errors"
	"fmt"

	"github.com/mulelash/MB-BeautyService/internal/domain"
	staffRepo "github.com/mulelash/MB-BeautyService/internal/infra/storage/staff"
)

// Service manages staff members. The schedule invariants (work_start before
// work_end, weekdays in range, known specialties) are enforced here on every
// write; existing appointments are never re-validated when a schedule
// changes.
type Service struct {
	staffRepo StaffRepository
	publisher ChangePublisher
	logger    Logger
}

func NewService(staffRepo StaffRepository, publisher ChangePublisher, logger Logger) *Service {
	return &Service{
		staffRepo: staffRepo,
		publisher: publisher,
		logger:    logger,
	}
}

func (s *Service) Create(ctx context.Context, member *domain.StaffMember) (*domain.StaffMember, error) {
	if err := member.Validate(); err != nil {
		s.logger.Warn("Create: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.staffRepo.Create(ctx, member)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.publisher.Publish(ctx, domain.CollectionStaff)
	s.logger.Info("Create: created staff member id=%d", created.ID)
	return created, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.StaffMember, error) {
	member, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			return nil, ErrStaffNotFound
		}
		s.logger.Error("GetByID: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return member, nil
}

func (s *Service) List(ctx context.Context) ([]*domain.StaffMember, error) {
	members, err := s.staffRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return members, nil
}

func (s *Service) Update(ctx context.Context, member *domain.StaffMember) (*domain.StaffMember, error) {
	if err := member.Validate(); err != nil {
		s.logger.Warn("Update: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.staffRepo.Update(ctx, member); err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			s.logger.Warn("Update: staff member id=%d not found", member.ID)
			return nil, ErrStaffNotFound
		}
		s.logger.Error("Update: repository error for id=%d: %v", member.ID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.publisher.Publish(ctx, domain.CollectionStaff)
	return s.GetByID(ctx, member.ID)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.staffRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			s.logger.Warn("Delete: staff member id=%d not found", id)
			return ErrStaffNotFound
		}
		s.logger.Error("Delete: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.publisher.Publish(ctx, domain.CollectionStaff)
	s.logger.Info("Delete: deleted staff member id=%d", id)
	return nil
}
