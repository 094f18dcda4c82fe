package manage_staff

import (
	"context"

	"github.com/mulelash/MB-BeautyService/internal/domain"
)

type StaffService interface {
	Create(ctx context.Context, member *domain.StaffMember) (*domain.StaffMember, error)
	List(ctx context.Context) ([]*domain.StaffMember, error)
	Update(ctx context.Context, member *domain.StaffMember) (*domain.StaffMember, error)
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Error(msg string, args ...interface{})
}
