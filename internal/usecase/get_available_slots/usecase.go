package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/mulelash/MB-BeautyService/internal/domain"
	catalogRepo "github.com/mulelash/MB-BeautyService/internal/infra/storage/catalog"
	staffRepo "github.com/mulelash/MB-BeautyService/internal/infra/storage/staff"
)

// UseCase computes the bookable start times for a service/staff/date triple
type UseCase struct {
	catalogRepo CatalogRepository
	staffRepo   StaffRepository
	logger      Logger
}

func NewUseCase(catalogRepo CatalogRepository, staffRepo StaffRepository, logger Logger) *UseCase {
	return &UseCase{
		catalogRepo: catalogRepo,
		staffRepo:   staffRepo,
		logger:      logger,
	}
}

func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%d, staff=%d, date=%s",
		req.ServiceID, req.StaffID, req.Date.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	service, err := uc.catalogRepo.GetServiceByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if err := validateDuration(service); err != nil {
		uc.logger.Warn("GetAvailableSlots: service id=%d has unusable duration: %v", req.ServiceID, err)
		return nil, err
	}

	staff, err := uc.staffRepo.GetByID(ctx, req.StaffID)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			uc.logger.Warn("GetAvailableSlots: staff id=%d not found", req.StaffID)
			return nil, ErrStaffNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get staff id=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get staff member: %v", ErrInternal, err)
	}

	if err := validateStaffEligible(staff, service); err != nil {
		uc.logger.Warn("GetAvailableSlots: staff id=%d not eligible for service id=%d",
			req.StaffID, req.ServiceID)
		return nil, err
	}

	slots, err := generateTimeSlots(staff, service.DurationMinutes, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: %d slot(s) for service=%d, staff=%d, date=%s",
		len(slots), req.ServiceID, req.StaffID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:            req.Date,
		ServiceID:       req.ServiceID,
		StaffID:         req.StaffID,
		DurationMinutes: service.DurationMinutes,
		Slots:           slots,
	}, nil
}
