package manage_services

import (
	"time"

	"github.com/mulelash/MB-BeautyService/internal/domain"
)

// ServiceRequest HTTP request model for create and update
type ServiceRequest struct {
	Title           string  `json:"title"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
	Category        string  `json:"category"`
	Image           string  `json:"image,omitempty"`
}

// ServiceResponse HTTP response model
type ServiceResponse struct {
	ID              int64   `json:"id"`
	Title           string  `json:"title"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
	Category        string  `json:"category"`
	Image           string  `json:"image,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ListResponse HTTP response model
type ListResponse struct {
	Services []*ServiceResponse `json:"services"`
}

// ToDomain converts the request; domain validation happens in the service
func (r *ServiceRequest) ToDomain(id int64) *domain.Service {
	return &domain.Service{
		ID:              id,
		Title:           r.Title,
		Price:           r.Price,
		DurationMinutes: r.DurationMinutes,
		Category:        domain.Category(r.Category),
		Image:           r.Image,
	}
}

// FromDomain converts one service
func FromDomain(s *domain.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:              s.ID,
		Title:           s.Title,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
		Category:        string(s.Category),
		Image:           s.Image,
		CreatedAt:       s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       s.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainList converts a listing
func FromDomainList(services []*domain.Service) *ListResponse {
	out := make([]*ServiceResponse, len(services))
	for i, s := range services {
		out[i] = FromDomain(s)
	}
	return &ListResponse{Services: out}
}
