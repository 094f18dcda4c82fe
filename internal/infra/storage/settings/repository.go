package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/mulelash/MB-BeautyService/internal/domain"
	"github.com/mulelash/MB-BeautyService/pkg/dbmetrics"
	"github.com/mulelash/MB-BeautyService/pkg/psqlbuilder"
)

var (
	// ErrBuildQuery is returned when SQL construction fails
	ErrBuildQuery = errors.New("settings.repository: failed to build query")

	// ErrExecQuery is returned when query execution fails
	ErrExecQuery = errors.New("settings.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned
	ErrScanRow = errors.New("settings.repository: failed to scan row")
)

// Repository is the shop settings storage layer. Settings are a single row
// seeded by the migration, so there is no not-found case and no delete.
type Repository struct {
	db dbmetrics.DBExecutor
}

func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Get(ctx context.Context) (*domain.ShopSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"name", "subtitle", "logo", "line_id", "liff_id", "admin_user_ids", "updated_at",
	).
		From("shop_settings").
		Where(squirrel.Eq{"id": 1}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.ShopSettings
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.Name,
		&s.Subtitle,
		&s.Logo,
		&s.LineID,
		&s.LiffID,
		pq.Array(&s.AdminUserIDs),
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan settings: %v", ErrScanRow, err)
	}

	return &s, nil
}

func (r *Repository) Update(ctx context.Context, s *domain.ShopSettings) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("shop_settings").
		Set("name", s.Name).
		Set("subtitle", s.Subtitle).
		Set("logo", s.Logo).
		Set("line_id", s.LineID).
		Set("liff_id", s.LiffID).
		Set("admin_user_ids", pq.Array(s.AdminUserIDs)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": 1}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return nil
}
