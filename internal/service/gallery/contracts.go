package gallery

import (
	"context"
	"io"

	"github.com/mulelash/MB-BeautyService/internal/domain"
	"github.com/mulelash/MB-BeautyService/internal/infra/filestore"
)

type GalleryRepository interface {
	Create(ctx context.Context, img *domain.GalleryImage) (*domain.GalleryImage, error)
	GetByID(ctx context.Context, id int64) (*domain.GalleryImage, error)
	List(ctx context.Context) ([]*domain.GalleryImage, error)
	Delete(ctx context.Context, id int64) error
}

// FileStore keeps the image bytes; the repository keeps only URLs
type FileStore interface {
	Save(r io.Reader) (*filestore.SavedImage, error)
	Delete(fileName string) error
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
