package get_available_slots

import (
	"time"

	"github.com/mulelash/MB-BeautyService/internal/domain"
	"github.com/mulelash/MB-BeautyService/pkg/types"
)

// generateTimeSlots walks a staff member's working window on the given date
// and returns every start time where the full service still fits before the
// shift ends. The walk is a pure function of the schedule, the duration and
// the date: the same inputs always produce the same slots.
//
// Example: 10:00-19:00 shift, 90 minute service → 10:00, 10:30, ... 17:30
// (17:30 + 90m = 19:00 fits; 18:00 + 90m does not).
func generateTimeSlots(staff *domain.StaffMember, durationMinutes int, date time.Time) ([]types.TimeString, error) {
	if !staff.WorksOn(date.Weekday()) {
		return []types.TimeString{}, nil
	}

	slots := make([]types.TimeString, 0)
	cursor := staff.WorkStart

	for cursor.IsBefore(staff.WorkEnd) {
		slotEnd, err := cursor.AddMinutes(durationMinutes)
		if err != nil {
			// duration runs past midnight, nothing later can fit either
			break
		}
		if slotEnd.IsAfter(staff.WorkEnd) {
			break
		}

		slots = append(slots, cursor)

		cursor, err = cursor.AddMinutes(domain.SlotStepMinutes)
		if err != nil {
			break
		}
	}

	return slots, nil
}
