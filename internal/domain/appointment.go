package domain

import (
	"fmt"
	"time"

	"github.com/mulelash/MB-BeautyService/pkg/types"
)

// AppointmentStatus is the closed set of appointment lifecycle states
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// ParseAppointmentStatus validates a status value coming from a boundary
func ParseAppointmentStatus(s string) (AppointmentStatus, error) {
	switch AppointmentStatus(s) {
	case AppointmentPending, AppointmentConfirmed, AppointmentCompleted, AppointmentCancelled:
		return AppointmentStatus(s), nil
	default:
		return "", fmt.Errorf("unknown appointment status: %q", s)
	}
}

// IsTerminal reports whether no transition may leave this status
func (s AppointmentStatus) IsTerminal() bool {
	return s == AppointmentCompleted || s == AppointmentCancelled
}

// appointmentTransitions is the adjacency table of the appointment lifecycle:
//
//	pending   -> confirmed | cancelled
//	confirmed -> completed | cancelled
//	completed, cancelled -> (terminal)
var appointmentTransitions = map[AppointmentStatus][]AppointmentStatus{
	AppointmentPending:   {AppointmentConfirmed, AppointmentCancelled},
	AppointmentConfirmed: {AppointmentCompleted, AppointmentCancelled},
}

// CanTransition reports whether the lifecycle permits moving from one
// status to another
func CanTransition(from, to AppointmentStatus) bool {
	for _, allowed := range appointmentTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Appointment is a reserved time slot with a specific staff member for a
// specific service. Date and StartTime must fall on a slot the availability
// calculator would produce for that staff member and service at creation
// time; it is not re-validated if the schedule later changes.
type Appointment struct {
	ID              int64
	ServiceID       int64
	StaffID         int64
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          AppointmentStatus

	// Denormalized for history, so staff/catalog edits never rewrite it
	ServiceTitle string
	ServicePrice float64
	StaffName    string

	// CustomerRef is the LINE user id when the booking came from a logged-in
	// LIFF session; nil means notifications cannot be delivered automatically
	CustomerRef  *string
	CustomerName *string
	Note         *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanTransitionTo reports whether the appointment may move to target
func (a *Appointment) CanTransitionTo(target AppointmentStatus) bool {
	return CanTransition(a.Status, target)
}

// IsActive reports whether the appointment still occupies its slot
func (a *Appointment) IsActive() bool {
	return a.Status == AppointmentPending || a.Status == AppointmentConfirmed
}

// AppointmentsFilter narrows administrative appointment listings
type AppointmentsFilter struct {
	StaffID   *int64
	Date      *time.Time
	Status    *AppointmentStatus
	OnlyOpen  bool // pending + confirmed only
	Customer  *string
	FromDate  *time.Time
	UntilDate *time.Time
}
