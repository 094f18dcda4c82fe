package domain

import (
	"fmt"
	"time"
)

// Product is a retail catalog entry sold through the shop page
type Product struct {
	ID          int64
	Name        string
	Price       float64
	Description string
	Image       string
	InStock     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (p *Product) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("product name is required")
	}
	if p.Price < 0 {
		return fmt.Errorf("product price cannot be negative")
	}
	return nil
}
