package set_order_status

import (
	"context"

	"github.com/mulelash/MB-BeautyService/internal/domain"
)

type OrdersService interface {
	SetStatus(ctx context.Context, id int64, status string, trackingNumber *string) (*domain.Order, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
