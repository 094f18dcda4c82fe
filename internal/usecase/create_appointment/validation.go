package create_appointment

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

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateSlotBookable checks the requested start against the same walk the
// availability calculator performs: the staff member works that day, the
// start lands on a step boundary inside the shift, and the full service fits
// before the shift ends.
func validateSlotBookable(staff *domain.StaffMember, service *domain.Service, req *Request) error {
	if !staff.WorksOn(req.Date.Weekday()) {
		return fmt.Errorf("%w: %s does not work on %s", ErrSlotNotBookable, staff.Name, req.Date.Weekday())
	}

	start := req.StartTime.ToMinutes()
	shiftStart := staff.WorkStart.ToMinutes()
	shiftEnd := staff.WorkEnd.ToMinutes()

	if start < shiftStart {
		return fmt.Errorf("%w: %s starts before the %s shift opens", ErrSlotNotBookable, req.StartTime, staff.WorkStart)
	}

	if (start-shiftStart)%domain.SlotStepMinutes != 0 {
		return fmt.Errorf("%w: %s is not on a %d-minute boundary", ErrSlotNotBookable, req.StartTime, domain.SlotStepMinutes)
	}

	if start+service.DurationMinutes > shiftEnd {
		return fmt.Errorf("%w: %d minutes from %s runs past %s", ErrSlotNotBookable,
			service.DurationMinutes, req.StartTime, staff.WorkEnd)
	}

	return nil
}

func validateStaffEligible(staff *domain.StaffMember, service *domain.Service) error {
	if !staff.CanPerform(service.Category) {
		return fmt.Errorf("%w: %s does not perform %s services", ErrStaffNotEligible, staff.Name, service.Category)
	}
	return nil
}
