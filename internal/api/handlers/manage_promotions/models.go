package manage_promotions

import (
	"github.com/mulelash/MB-BeautyService/internal/domain"
)

type PromotionRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Label       string `json:"label"`
	Active      bool   `json:"active"`
}

func (r PromotionRequest) ToDomain(id int64) *domain.Promotion {
	return &domain.Promotion{
		ID:          id,
		Title:       r.Title,
		Description: r.Description,
		Image:       r.Image,
		Label:       r.Label,
		Active:      r.Active,
	}
}

type PromotionResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Label       string `json:"label"`
	Active      bool   `json:"active"`
}

func FromDomain(p *domain.Promotion) PromotionResponse {
	return PromotionResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Image:       p.Image,
		Label:       p.Label,
		Active:      p.Active,
	}
}

type ListResponse struct {
	Promotions []PromotionResponse `json:"promotions"`
}

func FromDomainList(promotions []*domain.Promotion) ListResponse {
	out := ListResponse{Promotions: make([]PromotionResponse, 0, len(promotions))}
	for _, p := range promotions {
		out.Promotions = append(out.Promotions, FromDomain(p))
	}
	return out
}
