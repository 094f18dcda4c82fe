package create_order

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mulelash/MB-BeautyService/internal/domain"
	catalogRepo "github.com/mulelash/MB-BeautyService/internal/infra/storage/catalog"
)

// UseCase checks out one cart. Items are priced from the catalog at this
// moment and the total is fixed here; later catalog edits never change what
// the customer owes.
type UseCase struct {
	orderRepo   OrderRepository
	catalogRepo CatalogRepository
	txManager   TransactionManager
	publisher   ChangePublisher
	logger      Logger
}

func NewUseCase(orderRepo OrderRepository, catalogRepo CatalogRepository, txManager TransactionManager, publisher ChangePublisher, logger Logger) *UseCase {
	return &UseCase{
		orderRepo:   orderRepo,
		catalogRepo: catalogRepo,
		txManager:   txManager,
		publisher:   publisher,
		logger:      logger,
	}
}

func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateOrder: %d item line(s), customer=%s", len(req.Items), req.CustomerName)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateOrder: validation failed: %v", err)
		return nil, err
	}

	deliveryMethod, err := domain.ParseDeliveryMethod(req.DeliveryMethod)
	if err != nil {
		uc.logger.Warn("CreateOrder: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	paymentMethod, err := domain.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		uc.logger.Warn("CreateOrder: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	items := make([]domain.OrderItem, 0, len(req.Items))
	total := 0.0

	for _, line := range req.Items {
		product, err := uc.catalogRepo.GetProductByID(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrProductNotFound) {
				uc.logger.Warn("CreateOrder: product id=%d not found", line.ProductID)
				return nil, fmt.Errorf("%w: id=%d", ErrProductNotFound, line.ProductID)
			}
			uc.logger.Error("CreateOrder: failed to get product id=%d: %v", line.ProductID, err)
			return nil, fmt.Errorf("%w: failed to get product: %v", ErrInternal, err)
		}

		if !product.InStock {
			uc.logger.Warn("CreateOrder: product id=%d is out of stock", line.ProductID)
			return nil, fmt.Errorf("%w: %s", ErrProductOutOfStock, product.Name)
		}

		items = append(items, domain.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: product.Price,
			Quantity:  line.Quantity,
		})
		total += product.Price * float64(line.Quantity)
	}

	order := &domain.Order{
		PublicCode:  newPublicCode(),
		Items:       items,
		TotalAmount: total,
		Customer: domain.OrderCustomer{
			Name:  req.CustomerName,
			Phone: req.CustomerPhone,
			Email: req.CustomerEmail,
		},
		Delivery: domain.OrderDelivery{
			Method:  deliveryMethod,
			Address: req.Address,
		},
		Payment: domain.OrderPayment{
			Method: paymentMethod,
		},
		Status: domain.OrderPending,
	}

	var result *domain.Order
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		created, err := uc.orderRepo.Create(txCtx, order)
		if err != nil {
			uc.logger.Error("CreateOrder: failed to create order: %v", err)
			return fmt.Errorf("%w: failed to create order: %v", ErrInternal, err)
		}
		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.publisher.Publish(ctx, domain.CollectionOrders)
	uc.logger.Info("CreateOrder: created order id=%d, code=%s, total=%.2f",
		result.ID, result.PublicCode, result.TotalAmount)

	return &Response{
		ID:          result.ID,
		PublicCode:  result.PublicCode,
		Items:       result.Items,
		TotalAmount: result.TotalAmount,
		Status:      string(result.Status),
		CreatedAt:   result.CreatedAt,
	}, nil
}

// newPublicCode makes the short reference customers quote in messages
func newPublicCode() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return "ord_" + suffix
}
