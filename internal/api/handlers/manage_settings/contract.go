package manage_settings

import (
	"context"

	"github.com/mulelash/MB-BeautyService/internal/domain"
)

type SettingsService interface {
	Get(ctx context.Context) (*domain.ShopSettings, error)
	Update(ctx context.Context, settings *domain.ShopSettings) (*domain.ShopSettings, error)
}

type Logger interface {
	Error(msg string, args ...interface{})
}
