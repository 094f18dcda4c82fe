package domain

import (
	"fmt"
	"time"
)

// Promotion is a promotional banner shown on the home page
type Promotion struct {
	ID          int64
	Title       string
	Description string
	Image       string
	Label       string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (p *Promotion) Validate() error {
	if p.Title == "" {
		return fmt.Errorf("promotion title is required")
	}
	return nil
}
