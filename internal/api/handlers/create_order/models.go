package create_order

import (
	"time"

	createOrder "github.com/mulelash/MB-BeautyService/internal/usecase/create_order"
)

// CreateOrderRequest HTTP request model
type CreateOrderRequest struct {
	Items          []OrderItemRequest `json:"items"`
	CustomerName   string             `json:"customerName"`
	CustomerPhone  string             `json:"customerPhone"`
	CustomerEmail  string             `json:"customerEmail,omitempty"`
	DeliveryMethod string             `json:"deliveryMethod"`
	Address        string             `json:"address"`
	PaymentMethod  string             `json:"paymentMethod"`
}

// OrderItemRequest is one cart line
type OrderItemRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// OrderItemResponse is one priced line of the stored order
type OrderItemResponse struct {
	ProductID int64   `json:"productId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
}

// OrderResponse HTTP response model
type OrderResponse struct {
	ID          int64               `json:"id"`
	PublicCode  string              `json:"publicCode"`
	Items       []OrderItemResponse `json:"items"`
	TotalAmount float64             `json:"totalAmount"`
	Status      string              `json:"status"`
	CreatedAt   string              `json:"createdAt"`
}

// ToUseCaseRequest converts the HTTP request to the usecase model
func (r *CreateOrderRequest) ToUseCaseRequest() *createOrder.Request {
	items := make([]createOrder.RequestItem, len(r.Items))
	for i, item := range r.Items {
		items[i] = createOrder.RequestItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
	}

	return &createOrder.Request{
		Items:          items,
		CustomerName:   r.CustomerName,
		CustomerPhone:  r.CustomerPhone,
		CustomerEmail:  r.CustomerEmail,
		DeliveryMethod: r.DeliveryMethod,
		Address:        r.Address,
		PaymentMethod:  r.PaymentMethod,
	}
}

// FromUseCaseResponse converts the usecase result to the HTTP response
func FromUseCaseResponse(resp *createOrder.Response) *OrderResponse {
	items := make([]OrderItemResponse, len(resp.Items))
	for i, item := range resp.Items {
		items[i] = OrderItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		}
	}

	return &OrderResponse{
		ID:          resp.ID,
		PublicCode:  resp.PublicCode,
		Items:       items,
		TotalAmount: resp.TotalAmount,
		Status:      resp.Status,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
	}
}
