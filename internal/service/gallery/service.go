package gallery

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/mulelash/MB-BeautyService/internal/domain"
	"github.com/mulelash/MB-BeautyService/internal/infra/filestore"
	galleryRepo "github.com/mulelash/MB-BeautyService/internal/infra/storage/gallery"
)

// Service manages the portfolio gallery: bytes go to the file store, URLs
// and metadata to the database.
type Service struct {
	galleryRepo GalleryRepository
	files       FileStore
	publisher   ChangePublisher
	logger      Logger
}

func NewService(galleryRepo GalleryRepository, files FileStore, publisher ChangePublisher, logger Logger) *Service {
	return &Service{
		galleryRepo: galleryRepo,
		files:       files,
		publisher:   publisher,
		logger:      logger,
	}
}

// Upload stores the image and its thumbnail and records the entry
func (s *Service) Upload(ctx context.Context, r io.Reader, name string) (*domain.GalleryImage, error) {
	saved, err := s.files.Save(r)
	if err != nil {
		if errors.Is(err, filestore.ErrUnsupportedFormat) {
			s.logger.Warn("Upload: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
		}
		s.logger.Error("Upload: file store error: %v", err)
		return nil, fmt.Errorf("%w: Upload - file store error: %v", ErrInternal, err)
	}

	img := &domain.GalleryImage{
		URL:      saved.URL,
		ThumbURL: saved.ThumbnailURL,
		Name:     name,
	}

	created, err := s.galleryRepo.Create(ctx, img)
	if err != nil {
		// the row never existed, drop the orphaned files
		if rmErr := s.files.Delete(saved.FileName); rmErr != nil {
			s.logger.Warn("Upload: cleanup file %s after repository failure: %v", saved.FileName, rmErr)
		}
		s.logger.Error("Upload: repository error: %v", err)
		return nil, fmt.Errorf("%w: Upload - repository error: %v", ErrInternal, err)
	}

	s.publisher.Publish(ctx, domain.CollectionGallery)
	s.logger.Info("Upload: stored gallery image id=%d (%s)", created.ID, saved.FileName)
	return created, nil
}

func (s *Service) List(ctx context.Context) ([]*domain.GalleryImage, error) {
	images, err := s.galleryRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return images, nil
}

// Delete removes the entry and then the files. A file already gone on disk
// is logged, not surfaced: the record is the source of truth.
func (s *Service) Delete(ctx context.Context, id int64) error {
	img, err := s.galleryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, galleryRepo.ErrImageNotFound) {
			s.logger.Warn("Delete: gallery image id=%d not found", id)
			return ErrImageNotFound
		}
		s.logger.Error("Delete: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if err := s.galleryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, galleryRepo.ErrImageNotFound) {
			return ErrImageNotFound
		}
		s.logger.Error("Delete: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if err := s.files.Delete(path.Base(img.URL)); err != nil && !errors.Is(err, filestore.ErrFileNotFound) {
		s.logger.Warn("Delete: remove file for image id=%d: %v", id, err)
	}

	s.publisher.Publish(ctx, domain.CollectionGallery)
	s.logger.Info("Delete: removed gallery image id=%d", id)
	return nil
}
