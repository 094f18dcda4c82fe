package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/mulelash/MB-BeautyService/internal/domain"
	catalogRepo "github.com/mulelash/MB-BeautyService/internal/infra/storage/catalog"
)

// Service manages the treatment and retail catalogs. Every successful write
// publishes the collection so live clients re-render without polling.
type Service struct {
	catalogRepo CatalogRepository
	publisher   ChangePublisher
	logger      Logger
}

func NewService(catalogRepo CatalogRepository, publisher ChangePublisher, logger Logger) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

// --- treatment services ---

func (s *Service) CreateService(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
	if err := svc.Validate(); err != nil {
		s.logger.Warn("CreateService: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.catalogRepo.CreateService(ctx, svc)
	if err != nil {
		s.logger.Error("CreateService: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateService - repository error: %v", ErrInternal, err)
	}

	s.publisher.Publish(ctx, domain.CollectionServices)
	s.logger.Info("CreateService: created service id=%d", created.ID)
	return created, nil
}

func (s *Service) GetService(ctx context.Context, id int64) (*domain.Service, error) {
	svc, err := s.catalogRepo.GetServiceByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetService: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetService - repository error: %v", ErrInternal, err)
	}
	return svc, nil
}

func (s *Service) ListServices(ctx context.Context) ([]*domain.Service, error) {
	services, err := s.catalogRepo.ListServices(ctx)
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}
	return services, nil
}

func (s *Service) UpdateService(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
	if err := svc.Validate(); err != nil {
		s.logger.Warn("UpdateService: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.catalogRepo.UpdateService(ctx, svc); err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("UpdateService: service id=%d not found", svc.ID)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("UpdateService: repository error for id=%d: %v", svc.ID, err)
		return nil, fmt.Errorf("%w: UpdateService - repository error: %v", ErrInternal, err)
	}

	s.publisher.Publish(ctx, domain.CollectionServices)
	return s.GetService(ctx, svc.ID)
}

func (s *Service) DeleteService(ctx context.Context, id int64) error {
	if err := s.catalogRepo.DeleteService(ctx, id); err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("DeleteService: service id=%d not found", id)
			return ErrServiceNotFound
		}
		s.logger.Error("DeleteService: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteService - repository error: %v", ErrInternal, err)
	}

	s.publisher.Publish(ctx, domain.CollectionServices)
	s.logger.Info("DeleteService: deleted service id=%d", id)
	return nil
}

// --- retail products ---

func (s *Service) CreateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	if err := p.Validate(); err != nil {
		s.logger.Warn("CreateProduct: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.catalogRepo.CreateProduct(ctx, p)
	if err != nil {
		s.logger.Error("CreateProduct: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateProduct - repository error: %v", ErrInternal, err)
	}

	s.publisher.Publish(ctx, domain.CollectionProducts)
	s.logger.Info("CreateProduct: created product id=%d", created.ID)
	return created, nil
}

func (s *Service) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	p, err := s.catalogRepo.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrProductNotFound) {
			return nil, ErrProductNotFound
		}
		s.logger.Error("GetProduct: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetProduct - repository error: %v", ErrInternal, err)
	}
	return p, nil
}

func (s *Service) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	products, err := s.catalogRepo.ListProducts(ctx)
	if err != nil {
		s.logger.Error("ListProducts: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListProducts - repository error: %v", ErrInternal, err)
	}
	return products, nil
}

func (s *Service) UpdateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	if err := p.Validate(); err != nil {
		s.logger.Warn("UpdateProduct: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.catalogRepo.UpdateProduct(ctx, p); err != nil {
		if errors.Is(err, catalogRepo.ErrProductNotFound) {
			s.logger.Warn("UpdateProduct: product id=%d not found", p.ID)
			return nil, ErrProductNotFound
		}
		s.logger.Error("UpdateProduct: repository error for id=%d: %v", p.ID, err)
		return nil, fmt.Errorf("%w: UpdateProduct - repository error: %v", ErrInternal, err)
	}

	s.publisher.Publish(ctx, domain.CollectionProducts)
	return s.GetProduct(ctx, p.ID)
}

func (s *Service) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.catalogRepo.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, catalogRepo.ErrProductNotFound) {
			s.logger.Warn("DeleteProduct: product id=%d not found", id)
			return ErrProductNotFound
		}
		s.logger.Error("DeleteProduct: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteProduct - repository error: %v", ErrInternal, err)
	}

	s.publisher.Publish(ctx, domain.CollectionProducts)
	s.logger.Info("DeleteProduct: deleted product id=%d", id)
	return nil
}
