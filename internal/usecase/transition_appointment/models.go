package transition_appointment

import (
	"time"

	"github.com/mulelash/MB-BeautyService/pkg/types"
)

// Request names the appointment and the status the operator wants it in
type Request struct {
	AppointmentID int64
	TargetStatus  string

	// OperatorID is the authenticated admin, for the audit log line
	OperatorID string
}

// Response reflects the appointment after the transition. Notification is
// the queued message text, empty when the transition carries none or the
// customer has no delivery channel.
type Response struct {
	ID           int64
	Status       string
	Date         time.Time
	StartTime    types.TimeString
	ServiceTitle string
	StaffName    string
	Notification string
	UpdatedAt    time.Time
}
