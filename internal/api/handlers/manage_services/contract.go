package manage_services

import (
	"context"

	"github.com/mulelash/MB-BeautyService/internal/domain"
)

type CatalogService interface {
	CreateService(ctx context.Context, svc *domain.Service) (*domain.Service, error)
	GetService(ctx context.Context, id int64) (*domain.Service, error)
	ListServices(ctx context.Context) ([]*domain.Service, error)
	UpdateService(ctx context.Context, svc *domain.Service) (*domain.Service, error)
	DeleteService(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
