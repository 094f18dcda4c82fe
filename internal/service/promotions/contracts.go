package promotions

import (
	"context"

	"github.com/mulelash/MB-BeautyService/internal/domain"
)

type PromotionRepository interface {
	Create(ctx context.Context, p *domain.Promotion) (*domain.Promotion, error)
	GetByID(ctx context.Context, id int64) (*domain.Promotion, error)
	List(ctx context.Context, activeOnly bool) ([]*domain.Promotion, error)
	Update(ctx context.Context, p *domain.Promotion) error
	Delete(ctx context.Context, id int64) error
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
