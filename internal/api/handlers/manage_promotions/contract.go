package manage_promotions

import (
	"context"

	"github.com/mulelash/MB-BeautyService/internal/domain"
)

type PromotionService interface {
	Create(ctx context.Context, p *domain.Promotion) (*domain.Promotion, error)
	List(ctx context.Context, activeOnly bool) ([]*domain.Promotion, error)
	Update(ctx context.Context, p *domain.Promotion) (*domain.Promotion, error)
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Error(msg string, args ...interface{})
}
