package staff

import (
	"context"

	"github.com/mulelash/MB-BeautyService/internal/domain"
)

type StaffRepository interface {
	Create(ctx context.Context, s *domain.StaffMember) (*domain.StaffMember, error)
	GetByID(ctx context.Context, id int64) (*domain.StaffMember, error)
	List(ctx context.Context) ([]*domain.StaffMember, error)
	Update(ctx context.Context, s *domain.StaffMember) error
	Delete(ctx context.Context, id int64) error
}

// ChangePublisher pushes a fresh snapshot of a collection to live subscribers
type ChangePublisher interface {
	Publish(ctx context.Context, collection string)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
