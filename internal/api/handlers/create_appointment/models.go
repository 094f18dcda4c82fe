package create_appointment

import (
	"time"

	"github.com/mulelash/MB-BeautyService/internal/domain"
	createAppointment "github.com/mulelash/MB-BeautyService/internal/usecase/create_appointment"
	"github.com/mulelash/MB-BeautyService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ServiceID    int64   `json:"serviceId"`
	StaffID      int64   `json:"staffId"`
	Date         string  `json:"date"`      // "2026-09-07"
	StartTime    string  `json:"startTime"` // "14:00"
	CustomerRef  *string `json:"customerRef,omitempty"`
	CustomerName *string `json:"customerName,omitempty"`
	Note         *string `json:"note,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              int64   `json:"id"`
	ServiceID       int64   `json:"serviceId"`
	StaffID         int64   `json:"staffId"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	ServiceTitle    string  `json:"serviceTitle"`
	ServicePrice    float64 `json:"servicePrice"`
	StaffName       string  `json:"staffName"`
	CustomerName    *string `json:"customerName,omitempty"`
	Note            *string `json:"note,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest parses the date and time fields
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		ServiceID:    r.ServiceID,
		StaffID:      r.StaffID,
		Date:         date,
		StartTime:    startTime,
		CustomerRef:  r.CustomerRef,
		CustomerName: r.CustomerName,
		Note:         r.Note,
	}, nil
}

// FromUseCaseResponse converts the usecase result to the HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID,
		ServiceID:       resp.ServiceID,
		StaffID:         resp.StaffID,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		ServiceTitle:    resp.ServiceTitle,
		ServicePrice:    resp.ServicePrice,
		StaffName:       resp.StaffName,
		CustomerName:    resp.CustomerName,
		Note:            resp.Note,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
