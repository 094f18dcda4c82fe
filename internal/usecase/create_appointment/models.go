package create_appointment

import (
	"time"

	"github.com/mulelash/MB-BeautyService/pkg/types"
)

// Request carries everything a customer submits when booking
type Request struct {
	ServiceID int64
	StaffID   int64
	Date      time.Time
	StartTime types.TimeString

	// CustomerRef is the LINE user id of a logged-in LIFF session, if any
	CustomerRef  *string
	CustomerName *string
	Note         *string
}

// Response is the stored appointment, including the denormalized catalog
// snapshot taken at booking time
type Response struct {
	ID              int64
	ServiceID       int64
	StaffID         int64
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          string
	ServiceTitle    string
	ServicePrice    float64
	StaffName       string
	CustomerRef     *string
	CustomerName    *string
	Note            *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
