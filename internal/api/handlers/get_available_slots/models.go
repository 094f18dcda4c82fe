package get_available_slots

import (
	"github.com/mulelash/MB-BeautyService/internal/domain"
	getSlots "github.com/mulelash/MB-BeautyService/internal/usecase/get_available_slots"
)

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Date            string   `json:"date"`
	ServiceID       int64    `json:"serviceId"`
	StaffID         int64    `json:"staffId"`
	DurationMinutes int      `json:"durationMinutes"`
	Slots           []string `json:"slots"`
}

// FromUseCaseResponse converts the usecase result to the HTTP response
func FromUseCaseResponse(resp *getSlots.Response) *SlotsResponse {
	slots := make([]string, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = s.String()
	}

	return &SlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		ServiceID:       resp.ServiceID,
		StaffID:         resp.StaffID,
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}
