package domain

import (
	"fmt"
	"time"

	"github.com/mulelash/MB-BeautyService/pkg/types"
)

// StaffMember describes a stylist: which treatments they can perform and
// when they work. WorkDays uses time.Weekday numbering (0=Sunday .. 6=Saturday).
type StaffMember struct {
	ID          int64
	Name        string
	Role        string
	Image       string
	Rating      float64
	Specialties []Category
	WorkDays    []int
	WorkStart   types.TimeString
	WorkEnd     types.TimeString
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// WorksOn reports whether the staff member works on the given weekday
func (s *StaffMember) WorksOn(day time.Weekday) bool {
	for _, d := range s.WorkDays {
		if d == int(day) {
			return true
		}
	}
	return false
}

// CanPerform reports whether the staff member is eligible for a service
// of the given category
func (s *StaffMember) CanPerform(category Category) bool {
	for _, c := range s.Specialties {
		if c == category {
			return true
		}
	}
	return false
}

// Validate checks the schedule invariants on administrative writes:
// work_start < work_end, weekdays in 0..6, known specialties.
func (s *StaffMember) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("staff name is required")
	}
	if err := s.WorkStart.Validate(); err != nil {
		return fmt.Errorf("work start: %w", err)
	}
	if err := s.WorkEnd.Validate(); err != nil {
		return fmt.Errorf("work end: %w", err)
	}
	if !s.WorkStart.IsBefore(s.WorkEnd) {
		return fmt.Errorf("work start %s must be before work end %s", s.WorkStart, s.WorkEnd)
	}
	if len(s.WorkDays) == 0 {
		return fmt.Errorf("at least one work day is required")
	}
	seen := make(map[int]bool, len(s.WorkDays))
	for _, d := range s.WorkDays {
		if d < 0 || d > 6 {
			return fmt.Errorf("work day %d is out of range 0..6", d)
		}
		if seen[d] {
			return fmt.Errorf("work day %d listed twice", d)
		}
		seen[d] = true
	}
	if len(s.Specialties) == 0 {
		return fmt.Errorf("at least one specialty is required")
	}
	for _, c := range s.Specialties {
		if _, err := ParseCategory(string(c)); err != nil {
			return err
		}
	}
	return nil
}
