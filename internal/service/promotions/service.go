package promotions

import (
	"context"
	"errors"
	"fmt"

	"github.com/mulelash/MB-BeautyService/internal/domain"
	promotionRepo "github.com/mulelash/MB-BeautyService/internal/infra/storage/promotion"
)

// Service manages home page promotion banners
type Service struct {
	promotionRepo PromotionRepository
	publisher     ChangePublisher
	logger        Logger
}

func NewService(promotionRepo PromotionRepository, publisher ChangePublisher, logger Logger) *Service {
	return &Service{
		promotionRepo: promotionRepo,
		publisher:     publisher,
		logger:        logger,
	}
}

func (s *Service) Create(ctx context.Context, p *domain.Promotion) (*domain.Promotion, error) {
	if err := p.Validate(); err != nil {
		s.logger.Warn("Create: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.promotionRepo.Create(ctx, p)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.publisher.Publish(ctx, domain.CollectionPromotions)
	s.logger.Info("Create: created promotion id=%d", created.ID)
	return created, nil
}

// List returns promotions; activeOnly restricts to currently shown banners
func (s *Service) List(ctx context.Context, activeOnly bool) ([]*domain.Promotion, error) {
	promotions, err := s.promotionRepo.List(ctx, activeOnly)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return promotions, nil
}

func (s *Service) Update(ctx context.Context, p *domain.Promotion) (*domain.Promotion, error) {
	if err := p.Validate(); err != nil {
		s.logger.Warn("Update: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.promotionRepo.Update(ctx, p); err != nil {
		if errors.Is(err, promotionRepo.ErrPromotionNotFound) {
			s.logger.Warn("Update: promotion id=%d not found", p.ID)
			return nil, ErrPromotionNotFound
		}
		s.logger.Error("Update: repository error for id=%d: %v", p.ID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.publisher.Publish(ctx, domain.CollectionPromotions)

	updated, err := s.promotionRepo.GetByID(ctx, p.ID)
	if err != nil {
		s.logger.Error("Update: re-read promotion id=%d: %v", p.ID, err)
		return nil, fmt.Errorf("%w: Update - re-read promotion: %v", ErrInternal, err)
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.promotionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, promotionRepo.ErrPromotionNotFound) {
			s.logger.Warn("Delete: promotion id=%d not found", id)
			return ErrPromotionNotFound
		}
		s.logger.Error("Delete: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.publisher.Publish(ctx, domain.CollectionPromotions)
	s.logger.Info("Delete: deleted promotion id=%d", id)
	return nil
}
