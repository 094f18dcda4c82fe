package manage_products

import (
	"context"

	"github.com/mulelash/MB-BeautyService/internal/domain"
)

type CatalogService interface {
	CreateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]*domain.Product, error)
	UpdateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

type Logger interface {
	Error(msg string, args ...interface{})
}
