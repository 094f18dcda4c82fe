package manage_settings

import (
	"github.com/mulelash/MB-BeautyService/internal/domain"
)

type SettingsRequest struct {
	Name         string   `json:"name"`
	Subtitle     string   `json:"subtitle"`
	Logo         string   `json:"logo"`
	LineID       string   `json:"lineId"`
	LiffID       string   `json:"liffId"`
	AdminUserIDs []string `json:"adminUserIds"`
}

func (r SettingsRequest) ToDomain() *domain.ShopSettings {
	return &domain.ShopSettings{
		Name:         r.Name,
		Subtitle:     r.Subtitle,
		Logo:         r.Logo,
		LineID:       r.LineID,
		LiffID:       r.LiffID,
		AdminUserIDs: r.AdminUserIDs,
	}
}

// SettingsResponse is the admin view, operator allow-list included
type SettingsResponse struct {
	Name         string   `json:"name"`
	Subtitle     string   `json:"subtitle"`
	Logo         string   `json:"logo"`
	LineID       string   `json:"lineId"`
	LiffID       string   `json:"liffId"`
	AdminUserIDs []string `json:"adminUserIds"`
}

func FromDomain(s *domain.ShopSettings) SettingsResponse {
	return SettingsResponse{
		Name:         s.Name,
		Subtitle:     s.Subtitle,
		Logo:         s.Logo,
		LineID:       s.LineID,
		LiffID:       s.LiffID,
		AdminUserIDs: s.AdminUserIDs,
	}
}

// PublicResponse is the unauthenticated view; the operator allow-list
// never leaves the admin surface
type PublicResponse struct {
	Name     string `json:"name"`
	Subtitle string `json:"subtitle"`
	Logo     string `json:"logo"`
	LineID   string `json:"lineId"`
	LiffID   string `json:"liffId"`
}

func PublicFromDomain(s *domain.ShopSettings) PublicResponse {
	return PublicResponse{
		Name:     s.Name,
		Subtitle: s.Subtitle,
		Logo:     s.Logo,
		LineID:   s.LineID,
		LiffID:   s.LiffID,
	}
}
