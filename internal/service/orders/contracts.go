package orders

import (
	"context"

	"github.com/mulelash/MB-BeautyService/internal/domain"
)

// OrderRepository is the storage slice the service needs
type OrderRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	List(ctx context.Context, filter domain.OrdersFilter) ([]*domain.Order, error)
	SetStatus(ctx context.Context, id int64, status domain.OrderStatus, trackingNumber *string) error
	UpdateContact(ctx context.Context, id int64, customer domain.OrderCustomer, deliveryAddress string) error
}

// ChangePublisher pushes a fresh snapshot of a collection to live subscribers
type ChangePublisher interface {
	Publish(ctx context.Context, collection string)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
