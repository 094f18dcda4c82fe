package domain

import "time"

// OutboxStatus is the delivery state of a queued notification
type OutboxStatus string

const (
	OutboxPending OutboxStatus = "pending"
	OutboxSent    OutboxStatus = "sent"
	OutboxFailed  OutboxStatus = "failed"
)

// OutboxEvent is a notification queued by an appointment lifecycle
// transition. The row is written in the same transaction as the status
// change; a separate dispatcher attempts delivery, so transitions never
// depend on the push provider being up.
type OutboxEvent struct {
	ID            int64
	AppointmentID int64
	Recipient     string
	Message       string
	Status        OutboxStatus
	Attempts      int
	LastError     *string
	CreatedAt     time.Time
	SentAt        *time.Time
}
