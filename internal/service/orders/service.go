package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/mulelash/MB-BeautyService/internal/domain"
	orderRepo "github.com/mulelash/MB-BeautyService/internal/infra/storage/order"
)

// Service is the administrative order surface: lookups, the free-form
// status set and contact edits. Unlike appointments, order statuses form no
// state machine; an operator may set any known status from any other, which
// is what manual correction of a mislabelled order needs.
type Service struct {
	orderRepo OrderRepository
	publisher ChangePublisher
	logger    Logger
}

func NewService(orderRepo OrderRepository, publisher ChangePublisher, logger Logger) *Service {
	return &Service{
		orderRepo: orderRepo,
		publisher: publisher,
		logger:    logger,
	}
}

// GetByID fetches one order with its items
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, orderRepo.ErrOrderNotFound) {
			s.logger.Warn("GetByID: order id=%d not found", id)
			return nil, ErrOrderNotFound
		}
		s.logger.Error("GetByID: repository error for order id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return order, nil
}

// List returns orders for the admin console, optionally filtered
func (s *Service) List(ctx context.Context, status *string, filter domain.OrdersFilter) ([]*domain.Order, error) {
	if status != nil {
		parsed, err := domain.ParseOrderStatus(*status)
		if err != nil {
			s.logger.Warn("List: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidStatus, err)
		}
		filter.Status = &parsed
	}

	orders, err := s.orderRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return orders, nil
}

// SetStatus sets any known status, optionally recording a tracking number in
// the same write. The pair lands atomically so a "shipped" order can never
// be observed without its tracking number.
func (s *Service) SetStatus(ctx context.Context, id int64, status string, trackingNumber *string) (*domain.Order, error) {
	s.logger.Info("SetStatus: order id=%d -> %s", id, status)

	parsed, err := domain.ParseOrderStatus(status)
	if err != nil {
		s.logger.Warn("SetStatus: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidStatus, err)
	}

	if err := s.orderRepo.SetStatus(ctx, id, parsed, trackingNumber); err != nil {
		if errors.Is(err, orderRepo.ErrOrderNotFound) {
			s.logger.Warn("SetStatus: order id=%d not found", id)
			return nil, ErrOrderNotFound
		}
		s.logger.Error("SetStatus: repository error for order id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: SetStatus - repository error: %v", ErrInternal, err)
	}

	s.publisher.Publish(ctx, domain.CollectionOrders)

	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("SetStatus: re-read order id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: SetStatus - re-read order: %v", ErrInternal, err)
	}

	s.logger.Info("SetStatus: order id=%d is now %s", id, order.Status)
	return order, nil
}

// UpdateContact edits the customer block and delivery address at any state,
// leaving status untouched
func (s *Service) UpdateContact(ctx context.Context, id int64, customer domain.OrderCustomer, deliveryAddress string) (*domain.Order, error) {
	s.logger.Info("UpdateContact: order id=%d", id)

	if customer.Name == "" {
		return nil, fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	if deliveryAddress == "" {
		return nil, fmt.Errorf("%w: delivery address is required", ErrInvalidInput)
	}

	if err := s.orderRepo.UpdateContact(ctx, id, customer, deliveryAddress); err != nil {
		if errors.Is(err, orderRepo.ErrOrderNotFound) {
			s.logger.Warn("UpdateContact: order id=%d not found", id)
			return nil, ErrOrderNotFound
		}
		s.logger.Error("UpdateContact: repository error for order id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateContact - repository error: %v", ErrInternal, err)
	}

	s.publisher.Publish(ctx, domain.CollectionOrders)

	return s.GetByID(ctx, id)
}
