package domain

import (
	"fmt"
	"time"
)

// OrderStatus is the closed set of order lifecycle states
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPaid      OrderStatus = "paid"
	OrderShipped   OrderStatus = "shipped"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

// ParseOrderStatus validates a status value coming from a boundary.
// Unlike appointments, orders have no adjacency table: any known status may
// be set from any other through the administrative set-status operation,
// which is what manual order correction needs.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case OrderPending, OrderPaid, OrderShipped, OrderCompleted, OrderCancelled:
		return OrderStatus(s), nil
	default:
		return "", fmt.Errorf("unknown order status: %q", s)
	}
}

// DeliveryMethod for physical goods
type DeliveryMethod string

const (
	DeliveryHome             DeliveryMethod = "home_delivery"
	DeliveryConvenienceStore DeliveryMethod = "convenience_store"
)

func ParseDeliveryMethod(s string) (DeliveryMethod, error) {
	switch DeliveryMethod(s) {
	case DeliveryHome, DeliveryConvenienceStore:
		return DeliveryMethod(s), nil
	default:
		return "", fmt.Errorf("unknown delivery method: %q", s)
	}
}

// PaymentMethod accepted at checkout
type PaymentMethod string

const (
	PaymentCreditCard PaymentMethod = "credit_card"
	PaymentLinePay    PaymentMethod = "line_pay"
	PaymentTransfer   PaymentMethod = "transfer"
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case PaymentCreditCard, PaymentLinePay, PaymentTransfer:
		return PaymentMethod(s), nil
	default:
		return "", fmt.Errorf("unknown payment method: %q", s)
	}
}

// OrderItem is a line of an order. Name and UnitPrice are captured from the
// product catalog at checkout so later catalog edits never change history.
type OrderItem struct {
	ProductID int64
	Name      string
	UnitPrice float64
	Quantity  int
}

// OrderCustomer is the contact block, editable by an operator at any state
type OrderCustomer struct {
	Name  string
	Phone string
	Email string
}

// OrderDelivery is the shipping block. TrackingNumber is set together with
// a status change (typically "shipped") in one atomic update.
type OrderDelivery struct {
	Method         DeliveryMethod
	Address        string
	TrackingNumber *string
}

// OrderPayment records how the customer intends to pay
type OrderPayment struct {
	Method PaymentMethod
	IsPaid bool
}

// Order is a retail sale created at cart checkout. TotalAmount is computed
// once at creation from catalog prices and is the authoritative settled
// amount; it is never recomputed from the items afterwards.
type Order struct {
	ID          int64
	PublicCode  string
	Items       []OrderItem
	TotalAmount float64
	Customer    OrderCustomer
	Delivery    OrderDelivery
	Payment     OrderPayment
	Status      OrderStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OrdersFilter narrows administrative order listings
type OrdersFilter struct {
	Status    *OrderStatus
	FromDate  *time.Time
	UntilDate *time.Time
}
