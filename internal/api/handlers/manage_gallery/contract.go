package manage_gallery

import (
	"context"
	"io"

	"github.com/mulelash/MB-BeautyService/internal/domain"
)

type GalleryService interface {
	Upload(ctx context.Context, r io.Reader, name string) (*domain.GalleryImage, error)
	List(ctx context.Context) ([]*domain.GalleryImage, error)
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Error(msg string, args ...interface{})
}
