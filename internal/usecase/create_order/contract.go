package create_order

import (
	"context"

	"github.com/mulelash/MB-BeautyService/internal/domain"
)

// OrderRepository persists the order header and its items atomically
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) (*domain.Order, error)
}

// CatalogRepository resolves products so prices come from the catalog, never
// from the client
type CatalogRepository interface {
	GetProductByID(ctx context.Context, id int64) (*domain.Product, error)
}

// TransactionManager wraps the order insert
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
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
