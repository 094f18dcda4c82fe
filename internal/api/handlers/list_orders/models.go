package list_orders

import (
	"time"

	"github.com/mulelash/MB-BeautyService/internal/domain"
)

// OrderItemResponse is one priced line of an order
type OrderItemResponse struct {
	ProductID int64   `json:"productId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
}

// CustomerResponse is the contact block
type CustomerResponse struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
}

// DeliveryResponse is the shipping block
type DeliveryResponse struct {
	Method         string  `json:"method"`
	Address        string  `json:"address"`
	TrackingNumber *string `json:"trackingNumber,omitempty"`
}

// PaymentResponse records how the order is paid
type PaymentResponse struct {
	Method string `json:"method"`
	IsPaid bool   `json:"isPaid"`
}

// OrderResponse HTTP response model for the admin console
type OrderResponse struct {
	ID          int64               `json:"id"`
	PublicCode  string              `json:"publicCode"`
	Items       []OrderItemResponse `json:"items"`
	TotalAmount float64             `json:"totalAmount"`
	Customer    CustomerResponse    `json:"customer"`
	Delivery    DeliveryResponse    `json:"delivery"`
	Payment     PaymentResponse     `json:"payment"`
	Status      string              `json:"status"`
	CreatedAt   string              `json:"createdAt"`
	UpdatedAt   string              `json:"updatedAt"`
}

// ListResponse HTTP response model
type ListResponse struct {
	Orders []*OrderResponse `json:"orders"`
}

// FromDomain converts one order
func FromDomain(o *domain.Order) *OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		}
	}

	return &OrderResponse{
		ID:          o.ID,
		PublicCode:  o.PublicCode,
		Items:       items,
		TotalAmount: o.TotalAmount,
		Customer: CustomerResponse{
			Name:  o.Customer.Name,
			Phone: o.Customer.Phone,
			Email: o.Customer.Email,
		},
		Delivery: DeliveryResponse{
			Method:         string(o.Delivery.Method),
			Address:        o.Delivery.Address,
			TrackingNumber: o.Delivery.TrackingNumber,
		},
		Payment: PaymentResponse{
			Method: string(o.Payment.Method),
			IsPaid: o.Payment.IsPaid,
		},
		Status:    string(o.Status),
		CreatedAt: o.CreatedAt.Format(time.RFC3339),
		UpdatedAt: o.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainList converts a listing
func FromDomainList(orders []*domain.Order) *ListResponse {
	out := make([]*OrderResponse, len(orders))
	for i, o := range orders {
		out[i] = FromDomain(o)
	}
	return &ListResponse{Orders: out}
}
