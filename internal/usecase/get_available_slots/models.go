package get_available_slots

import (
	"time"

	"github.com/mulelash/MB-BeautyService/pkg/types"
)

// Request asks for the bookable start times of one staff member performing
// one service on one date.
type Request struct {
	ServiceID int64
	StaffID   int64
	Date      time.Time
}

// Response lists the bookable start times. An off day yields an empty list,
// not an error.
type Response struct {
	Date            time.Time
	ServiceID       int64
	StaffID         int64
	DurationMinutes int
	Slots           []types.TimeString
}
