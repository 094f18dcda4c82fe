package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/mulelash/MB-BeautyService/internal/domain"
	"github.com/mulelash/MB-BeautyService/pkg/dbmetrics"
	"github.com/mulelash/MB-BeautyService/pkg/psqlbuilder"
)

type DBExecutor = dbmetrics.DBExecutor

// Repository is the storage layer for the treatment and product catalogs
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// --- Services ---

var serviceColumns = []string{
	"id", "title", "price", "duration_minutes", "category", "image", "created_at", "updated_at",
}

func (r *Repository) CreateService(ctx context.Context, s *domain.Service) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("services").
		Columns("title", "price", "duration_minutes", "category", "image").
		Values(s.Title, s.Price, s.DurationMinutes, s.Category, s.Image).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateService - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%w: CreateService - execute insert: %v", ErrExecQuery, err)
	}

	return s, nil
}

func (r *Repository) GetServiceByID(ctx context.Context, id int64) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceByID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Service
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID, &s.Title, &s.Price, &s.DurationMinutes, &s.Category, &s.Image, &s.CreatedAt, &s.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceByID - scan service: %v", ErrScanRow, err)
	}

	return &s, nil
}

func (r *Repository) ListServices(ctx context.Context) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		OrderBy("category ASC, id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		var s domain.Service
		err := rows.Scan(&s.ID, &s.Title, &s.Price, &s.DurationMinutes, &s.Category, &s.Image, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("%w: ListServices - scan service: %v", ErrScanRow, err)
		}
		services = append(services, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListServices - rows iteration: %v", ErrScanRow, err)
	}

	return services, nil
}

func (r *Repository) UpdateService(ctx context.Context, s *domain.Service) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("services").
		Set("title", s.Title).
		Set("price", s.Price).
		Set("duration_minutes", s.DurationMinutes).
		Set("category", s.Category).
		Set("image", s.Image).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": s.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateService - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, ErrServiceNotFound, "UpdateService")
}

func (r *Repository) DeleteService(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteService - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, ErrServiceNotFound, "DeleteService")
}

// --- Products ---

var productColumns = []string{
	"id", "name", "price", "description", "image", "in_stock", "created_at", "updated_at",
}

func (r *Repository) CreateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("products").
		Columns("name", "price", "description", "image", "in_stock").
		Values(p.Name, p.Price, p.Description, p.Image, p.InStock).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateProduct - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%w: CreateProduct - execute insert: %v", ErrExecQuery, err)
	}

	return p, nil
}

func (r *Repository) GetProductByID(ctx context.Context, id int64) (*domain.Product, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(productColumns...).
		From("products").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetProductByID - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.Product
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.ID, &p.Name, &p.Price, &p.Description, &p.Image, &p.InStock, &p.CreatedAt, &p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetProductByID - scan product: %v", ErrScanRow, err)
	}

	return &p, nil
}

func (r *Repository) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(productColumns...).
		From("products").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListProducts - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListProducts - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	products := make([]*domain.Product, 0)
	for rows.Next() {
		var p domain.Product
		err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Description, &p.Image, &p.InStock, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("%w: ListProducts - scan product: %v", ErrScanRow, err)
		}
		products = append(products, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListProducts - rows iteration: %v", ErrScanRow, err)
	}

	return products, nil
}

func (r *Repository) UpdateProduct(ctx context.Context, p *domain.Product) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("products").
		Set("name", p.Name).
		Set("price", p.Price).
		Set("description", p.Description).
		Set("image", p.Image).
		Set("in_stock", p.InStock).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": p.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateProduct - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, ErrProductNotFound, "UpdateProduct")
}

func (r *Repository) DeleteProduct(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("products").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteProduct - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, ErrProductNotFound, "DeleteProduct")
}

func (r *Repository) execExpectingRow(ctx context.Context, executor DBExecutor, query string, args []interface{}, notFound error, op string) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, op, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - rows affected: %v", ErrExecQuery, op, err)
	}
	if affected == 0 {
		return notFound
	}

	return nil
}
