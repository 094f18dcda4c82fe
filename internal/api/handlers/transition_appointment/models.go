package transition_appointment

import (
	"time"

	"github.com/mulelash/MB-BeautyService/internal/domain"
	transitionAppointment "github.com/mulelash/MB-BeautyService/internal/usecase/transition_appointment"
)

// TransitionRequest HTTP request model
type TransitionRequest struct {
	Status string `json:"status"`
}

// TransitionResponse HTTP response model. Notification is the queued push
// text, present so the console can relay it manually if delivery fails.
type TransitionResponse struct {
	ID           int64  `json:"id"`
	Status       string `json:"status"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	ServiceTitle string `json:"serviceTitle"`
	StaffName    string `json:"staffName"`
	Notification string `json:"notification,omitempty"`
	UpdatedAt    string `json:"updatedAt"`
}

// FromUseCaseResponse converts the usecase result to the HTTP response
func FromUseCaseResponse(resp *transitionAppointment.Response) *TransitionResponse {
	return &TransitionResponse{
		ID:           resp.ID,
		Status:       resp.Status,
		Date:         resp.Date.Format(domain.DateFormat),
		StartTime:    resp.StartTime.String(),
		ServiceTitle: resp.ServiceTitle,
		StaffName:    resp.StaffName,
		Notification: resp.Notification,
		UpdatedAt:    resp.UpdatedAt.Format(time.RFC3339),
	}
}
