package notify

import (
	"context"

	"github.com/mulelash/MB-BeautyService/internal/domain"
)

// OutboxRepo is the slice of the outbox storage the dispatcher needs
type OutboxRepo interface {
	ListPending(ctx context.Context, limit int) ([]*domain.OutboxEvent, error)
	MarkSent(ctx context.Context, id int64) error
	RecordFailure(ctx context.Context, id int64, reason string, final bool) error
}

// Sender delivers one text message to one recipient
type Sender interface {
	SendText(ctx context.Context, recipientID, text string) error
}

type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
