package catalog

import (
	"context"

	"github.com/mulelash/MB-BeautyService/internal/domain"
)

type CatalogRepository interface {
	CreateService(ctx context.Context, s *domain.Service) (*domain.Service, error)
	GetServiceByID(ctx context.Context, id int64) (*domain.Service, error)
	ListServices(ctx context.Context) ([]*domain.Service, error)
	UpdateService(ctx context.Context, s *domain.Service) error
	DeleteService(ctx context.Context, id int64) error

	CreateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error)
	GetProductByID(ctx context.Context, id int64) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]*domain.Product, error)
	UpdateProduct(ctx context.Context, p *domain.Product) error
	DeleteProduct(ctx context.Context, id int64) error
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
