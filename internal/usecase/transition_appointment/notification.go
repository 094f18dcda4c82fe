package transition_appointment

import (
	"fmt"

	"github.com/mulelash/MB-BeautyService/internal/domain"
)

// Customer-facing push texts, in the shop's language
const (
	confirmedTemplate = "您的預約已確認！%s %s %s（%s），期待您的光臨 💕"
	declinedTemplate  = "很抱歉，您的預約（%s %s %s）未能安排，請重新選擇時段或與我們聯繫。"
)

// renderNotification returns the push text a transition carries, or "" when
// it carries none. Only the two decisions on a pending request notify the
// customer; completing or cancelling a confirmed visit is handled in person.
func renderNotification(from, to domain.AppointmentStatus, apt *domain.Appointment) string {
	if from != domain.AppointmentPending {
		return ""
	}

	date := apt.Date.Format(domain.DateFormat)

	switch to {
	case domain.AppointmentConfirmed:
		return fmt.Sprintf(confirmedTemplate, date, apt.StartTime, apt.ServiceTitle, apt.StaffName)
	case domain.AppointmentCancelled:
		return fmt.Sprintf(declinedTemplate, date, apt.StartTime, apt.ServiceTitle)
	default:
		return ""
	}
}
