package settings

import (
	"context"

	"github.com/mulelash/MB-BeautyService/internal/domain"
)

type SettingsRepository interface {
	Get(ctx context.Context) (*domain.ShopSettings, error)
	Update(ctx context.Context, s *domain.ShopSettings) error
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
