package get_available_slots

import (
	"fmt"

	"github.com/mulelash/MB-BeautyService/internal/domain"
)

func validateRequest(req *Request) error {
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.StaffID <= 0 {
		return fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

func validateStaffEligible(staff *domain.StaffMember, service *domain.Service) error {
	if !staff.CanPerform(service.Category) {
		return fmt.Errorf("%w: %s does not perform %s services", ErrStaffNotEligible, staff.Name, service.Category)
	}
	return nil
}

func validateDuration(service *domain.Service) error {
	if service.DurationMinutes < domain.MinServiceDurationMinutes ||
		service.DurationMinutes > domain.MaxServiceDurationMinutes {
		return fmt.Errorf("%w: service duration %d minutes is out of range [%d, %d]",
			ErrInvalidInput, service.DurationMinutes,
			domain.MinServiceDurationMinutes, domain.MaxServiceDurationMinutes)
	}
	return nil
}
