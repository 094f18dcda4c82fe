package domain

import (
	"fmt"
	"time"
)

// Category is the kind of beauty treatment a service belongs to.
// Staff eligibility is checked against these.
type Category string

const (
	CategoryLash Category = "lash"
	CategoryBrow Category = "brow"
	CategoryLip  Category = "lip"
	CategoryCare Category = "care"
)

// KnownCategories in display order
var KnownCategories = []Category{CategoryLash, CategoryBrow, CategoryLip, CategoryCare}

// ParseCategory validates a category value coming from a boundary
func ParseCategory(s string) (Category, error) {
	for _, c := range KnownCategories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown service category: %q", s)
}

// Service is an immutable catalog entry. Duration drives slot spacing checks:
// a slot is bookable only if the full duration fits before closing time.
type Service struct {
	ID              int64
	Title           string
	Price           float64
	DurationMinutes int
	Category        Category
	Image           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Validate checks catalog invariants on administrative writes
func (s *Service) Validate() error {
	if s.Title == "" {
		return fmt.Errorf("service title is required")
	}
	if s.Price < 0 {
		return fmt.Errorf("service price cannot be negative")
	}
	if s.DurationMinutes < MinServiceDurationMinutes || s.DurationMinutes > MaxServiceDurationMinutes {
		return fmt.Errorf("service duration must be between %d and %d minutes",
			MinServiceDurationMinutes, MaxServiceDurationMinutes)
	}
	if _, err := ParseCategory(string(s.Category)); err != nil {
		return err
	}
	return nil
}
