package list_orders

import (
	"context"

	"github.com/mulelash/MB-BeautyService/internal/domain"
)

type OrdersService interface {
	List(ctx context.Context, status *string, filter domain.OrdersFilter) ([]*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
