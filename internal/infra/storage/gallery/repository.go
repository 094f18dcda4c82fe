package gallery

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/mulelash/MB-BeautyService/internal/domain"
	"github.com/mulelash/MB-BeautyService/pkg/dbmetrics"
	"github.com/mulelash/MB-BeautyService/pkg/psqlbuilder"
)

var (
	// ErrImageNotFound is returned when no image matches the id
	ErrImageNotFound = errors.New("gallery.repository: image not found")

	// ErrBuildQuery is returned when SQL construction fails
	ErrBuildQuery = errors.New("gallery.repository: failed to build query")

	// ErrExecQuery is returned when query execution fails
	ErrExecQuery = errors.New("gallery.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned
	ErrScanRow = errors.New("gallery.repository: failed to scan row")
)

// Repository is the gallery image metadata storage layer
type Repository struct {
	db dbmetrics.DBExecutor
}

func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, img *domain.GalleryImage) (*domain.GalleryImage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("gallery_images").
		Columns("url", "thumb_url", "name").
		Values(img.URL, img.ThumbURL, img.Name).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&img.ID, &img.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return img, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.GalleryImage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "url", "thumb_url", "name", "created_at").
		From("gallery_images").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var img domain.GalleryImage
	err = executor.QueryRowContext(ctx, query, args...).Scan(&img.ID, &img.URL, &img.ThumbURL, &img.Name, &img.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrImageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan image: %v", ErrScanRow, err)
	}

	return &img, nil
}

// List returns all images, newest first
func (r *Repository) List(ctx context.Context) ([]*domain.GalleryImage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "url", "thumb_url", "name", "created_at").
		From("gallery_images").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	images := make([]*domain.GalleryImage, 0)
	for rows.Next() {
		var img domain.GalleryImage
		if err := rows.Scan(&img.ID, &img.URL, &img.ThumbURL, &img.Name, &img.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan image: %v", ErrScanRow, err)
		}
		images = append(images, &img)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows iteration: %v", ErrScanRow, err)
	}

	return images, nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("gallery_images").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrImageNotFound
	}

	return nil
}
