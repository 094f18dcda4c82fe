package settings

import (
	"context"
	"fmt"

	"github.com/mulelash/MB-BeautyService/internal/domain"
)

// Service manages the shop settings singleton: identity, LINE integration
// ids and the operator allow-list.
type Service struct {
	settingsRepo SettingsRepository
	publisher    ChangePublisher
	logger       Logger
}

func NewService(settingsRepo SettingsRepository, publisher ChangePublisher, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		publisher:    publisher,
		logger:       logger,
	}
}

func (s *Service) Get(ctx context.Context) (*domain.ShopSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}
	return settings, nil
}

func (s *Service) Update(ctx context.Context, settings *domain.ShopSettings) (*domain.ShopSettings, error) {
	if settings.Name == "" {
		s.logger.Warn("Update: shop name is required")
		return nil, fmt.Errorf("%w: shop name is required", ErrInvalidInput)
	}

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.publisher.Publish(ctx, domain.CollectionSettings)
	s.logger.Info("Update: shop settings saved")
	return s.Get(ctx)
}

// IsAdmin reports whether the LINE user id is on the operator allow-list
func (s *Service) IsAdmin(ctx context.Context, lineUserID string) (bool, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return false, err
	}
	return settings.IsAdmin(lineUserID), nil
}
