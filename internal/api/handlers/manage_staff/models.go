package manage_staff

import (
	"github.com/mulelash/MB-BeautyService/internal/domain"
	"github.com/mulelash/MB-BeautyService/pkg/types"
)

type StaffRequest struct {
	Name        string   `json:"name"`
	Role        string   `json:"role"`
	Image       string   `json:"image"`
	Rating      float64  `json:"rating"`
	Specialties []string `json:"specialties"`
	WorkDays    []int    `json:"workDays"`
	WorkStart   string   `json:"workStart"`
	WorkEnd     string   `json:"workEnd"`
}

func (r StaffRequest) ToDomain(id int64) *domain.StaffMember {
	specialties := make([]domain.Category, 0, len(r.Specialties))
	for _, s := range r.Specialties {
		specialties = append(specialties, domain.Category(s))
	}
	return &domain.StaffMember{
		ID:          id,
		Name:        r.Name,
		Role:        r.Role,
		Image:       r.Image,
		Rating:      r.Rating,
		Specialties: specialties,
		WorkDays:    r.WorkDays,
		WorkStart:   types.TimeString(r.WorkStart),
		WorkEnd:     types.TimeString(r.WorkEnd),
	}
}

type StaffResponse struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Role        string   `json:"role"`
	Image       string   `json:"image"`
	Rating      float64  `json:"rating"`
	Specialties []string `json:"specialties"`
	WorkDays    []int    `json:"workDays"`
	WorkStart   string   `json:"workStart"`
	WorkEnd     string   `json:"workEnd"`
}

func FromDomain(m *domain.StaffMember) StaffResponse {
	specialties := make([]string, 0, len(m.Specialties))
	for _, c := range m.Specialties {
		specialties = append(specialties, string(c))
	}
	return StaffResponse{
		ID:          m.ID,
		Name:        m.Name,
		Role:        m.Role,
		Image:       m.Image,
		Rating:      m.Rating,
		Specialties: specialties,
		WorkDays:    m.WorkDays,
		WorkStart:   string(m.WorkStart),
		WorkEnd:     string(m.WorkEnd),
	}
}

type ListResponse struct {
	Staff []StaffResponse `json:"staff"`
}

func FromDomainList(members []*domain.StaffMember) ListResponse {
	out := ListResponse{Staff: make([]StaffResponse, 0, len(members))}
	for _, m := range members {
		out.Staff = append(out.Staff, FromDomain(m))
	}
	return out
}
