package list_appointments

import (
	"time"

	"github.com/mulelash/MB-BeautyService/internal/domain"
)

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
	CustomerRef     *string `json:"customerRef,omitempty"`
	CustomerName    *string `json:"customerName,omitempty"`
	Note            *string `json:"note,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ListResponse HTTP response model
type ListResponse struct {
	Appointments []*AppointmentResponse `json:"appointments"`
}

// FromDomain converts one appointment
func FromDomain(a *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              a.ID,
		ServiceID:       a.ServiceID,
		StaffID:         a.StaffID,
		Date:            a.Date.Format(domain.DateFormat),
		StartTime:       a.StartTime.String(),
		DurationMinutes: a.DurationMinutes,
		Status:          string(a.Status),
		ServiceTitle:    a.ServiceTitle,
		ServicePrice:    a.ServicePrice,
		StaffName:       a.StaffName,
		CustomerRef:     a.CustomerRef,
		CustomerName:    a.CustomerName,
		Note:            a.Note,
		CreatedAt:       a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       a.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainList converts a listing
func FromDomainList(appointments []*domain.Appointment) *ListResponse {
	out := make([]*AppointmentResponse, len(appointments))
	for i, a := range appointments {
		out[i] = FromDomain(a)
	}
	return &ListResponse{Appointments: out}
}
