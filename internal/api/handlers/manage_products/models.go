package manage_products

import (
	"github.com/mulelash/MB-BeautyService/internal/domain"
)

type ProductRequest struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	InStock     bool    `json:"inStock"`
}

func (r ProductRequest) ToDomain(id int64) *domain.Product {
	return &domain.Product{
		ID:          id,
		Name:        r.Name,
		Price:       r.Price,
		Description: r.Description,
		Image:       r.Image,
		InStock:     r.InStock,
	}
}

type ProductResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	InStock     bool    `json:"inStock"`
}

func FromDomain(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Description: p.Description,
		Image:       p.Image,
		InStock:     p.InStock,
	}
}

type ListResponse struct {
	Products []ProductResponse `json:"products"`
}

func FromDomainList(products []*domain.Product) ListResponse {
	out := ListResponse{Products: make([]ProductResponse, 0, len(products))}
	for _, p := range products {
		out.Products = append(out.Products, FromDomain(p))
	}
	return out
}
