package update_order

import (
	"context"

	"github.com/mulelash/MB-BeautyService/internal/domain"
)

type OrdersService interface {
	UpdateContact(ctx context.Context, id int64, customer domain.OrderCustomer, deliveryAddress string) (*domain.Order, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
