package create_order

import (
	"time"

	"github.com/mulelash/MB-BeautyService/internal/domain"
)

// RequestItem names a product and how many of it the customer wants. Prices
// are deliberately absent: the catalog is the only price source.
type RequestItem struct {
	ProductID int64
	Quantity  int
}

// Request is one cart checkout
type Request struct {
	Items          []RequestItem
	CustomerName   string
	CustomerPhone  string
	CustomerEmail  string
	DeliveryMethod string
	Address        string
	PaymentMethod  string
}

// Response is the stored order
type Response struct {
	ID          int64
	PublicCode  string
	Items       []domain.OrderItem
	TotalAmount float64
	Status      string
	CreatedAt   time.Time
}
