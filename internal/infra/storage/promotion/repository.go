package promotion

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
	// ErrPromotionNotFound is returned when no promotion matches the id
	ErrPromotionNotFound = errors.New("promotion.repository: promotion not found")

	// ErrBuildQuery is returned when SQL construction fails
	ErrBuildQuery = errors.New("promotion.repository: failed to build query")

	// ErrExecQuery is returned when query execution fails
	ErrExecQuery = errors.New("promotion.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned
	ErrScanRow = errors.New("promotion.repository: failed to scan row")
)

var promotionColumns = []string{
	"id", "title", "description", "image", "label", "active", "created_at", "updated_at",
}

// Repository is the promotional banners storage layer
type Repository struct {
	db dbmetrics.DBExecutor
}

func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, p *domain.Promotion) (*domain.Promotion, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("promotions").
		Columns("title", "description", "image", "label", "active").
		Values(p.Title, p.Description, p.Image, p.Label, p.Active).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return p, nil
}

// List returns all promotions; activeOnly narrows to the customer-facing set
func (r *Repository) List(ctx context.Context, activeOnly bool) ([]*domain.Promotion, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(promotionColumns...).
		From("promotions").
		OrderBy("id ASC")

	if activeOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	promotions := make([]*domain.Promotion, 0)
	for rows.Next() {
		var p domain.Promotion
		err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Image, &p.Label, &p.Active, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan promotion: %v", ErrScanRow, err)
		}
		promotions = append(promotions, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows iteration: %v", ErrScanRow, err)
	}

	return promotions, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Promotion, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(promotionColumns...).
		From("promotions").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.Promotion
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.ID, &p.Title, &p.Description, &p.Image, &p.Label, &p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrPromotionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan promotion: %v", ErrScanRow, err)
	}

	return &p, nil
}

func (r *Repository) Update(ctx context.Context, p *domain.Promotion) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("promotions").
		Set("title", p.Title).
		Set("description", p.Description).
		Set("image", p.Image).
		Set("label", p.Label).
		Set("active", p.Active).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": p.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrPromotionNotFound
	}

	return nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("promotions").
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
		return ErrPromotionNotFound
	}

	return nil
}
