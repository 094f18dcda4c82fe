package order

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/mulelash/MB-BeautyService/internal/domain"
	"github.com/mulelash/MB-BeautyService/pkg/dbmetrics"
	"github.com/mulelash/MB-BeautyService/pkg/psqlbuilder"
)

var orderColumns = []string{
	"id",
	"public_code",
	"total_amount",
	"customer_name",
	"customer_phone",
	"customer_email",
	"delivery_method",
	"delivery_address",
	"tracking_number",
	"payment_method",
	"is_paid",
	"status",
	"created_at",
	"updated_at",
}

// Repository is the orders storage layer. Items live in a separate table;
// Create is expected to run inside a transaction so the order and its items
// land atomically.
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts the order row and its items
func (r *Repository) Create(ctx context.Context, o *domain.Order) (*domain.Order, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("orders").
		Columns(
			"public_code",
			"total_amount",
			"customer_name",
			"customer_phone",
			"customer_email",
			"delivery_method",
			"delivery_address",
			"tracking_number",
			"payment_method",
			"is_paid",
			"status",
		).
		Values(
			o.PublicCode,
			o.TotalAmount,
			o.Customer.Name,
			o.Customer.Phone,
			o.Customer.Email,
			o.Delivery.Method,
			o.Delivery.Address,
			o.Delivery.TrackingNumber,
			o.Payment.Method,
			o.Payment.IsPaid,
			o.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	if len(o.Items) > 0 {
		itemsBuilder := psqlbuilder.Insert("order_items").
			Columns("order_id", "product_id", "name", "unit_price", "quantity")
		for _, item := range o.Items {
			itemsBuilder = itemsBuilder.Values(o.ID, item.ProductID, item.Name, item.UnitPrice, item.Quantity)
		}

		query, args, err = itemsBuilder.ToSql()
		if err != nil {
			return nil, fmt.Errorf("%w: Create - build items insert: %v", ErrBuildQuery, err)
		}

		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return nil, fmt.Errorf("%w: Create - execute items insert: %v", ErrExecQuery, err)
		}
	}

	return o, nil
}

// GetByID returns one order with its items
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(orderColumns...).
		From("orders").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	o, err := scanOrder(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan order: %v", ErrScanRow, err)
	}

	if err := r.loadItems(ctx, executor, o); err != nil {
		return nil, err
	}

	return o, nil
}

// List returns orders matching the filter, newest first, items included
func (r *Repository) List(ctx context.Context, filter domain.OrdersFilter) ([]*domain.Order, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(orderColumns...).
		From("orders").
		OrderBy("created_at DESC")

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.FromDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"created_at": *filter.FromDate})
	}
	if filter.UntilDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"created_at": *filter.UntilDate})
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

	orders := make([]*domain.Order, 0)
	for rows.Next() {
		o, err := scanOrderFromRows(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan order: %v", ErrScanRow, err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows iteration: %v", ErrScanRow, err)
	}

	for _, o := range orders {
		if err := r.loadItems(ctx, executor, o); err != nil {
			return nil, err
		}
	}

	return orders, nil
}

// SetStatus sets the order status and, when provided, the tracking number in
// the same statement. Any known status may be set from any other: order
// corrections are a manual administrative operation.
func (r *Repository) SetStatus(ctx context.Context, id int64, status domain.OrderStatus, trackingNumber *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("orders").
		Set("status", status).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id})

	if trackingNumber != nil {
		updateBuilder = updateBuilder.Set("tracking_number", *trackingNumber)
	}
	if status == domain.OrderPaid {
		updateBuilder = updateBuilder.Set("is_paid", true)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetStatus - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetStatus - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrOrderNotFound
	}

	return nil
}

// UpdateContact edits the customer contact fields and delivery address.
// Status is untouched: contact corrections are allowed at any state.
func (r *Repository) UpdateContact(ctx context.Context, id int64, customer domain.OrderCustomer, deliveryAddress string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("orders").
		Set("customer_name", customer.Name).
		Set("customer_phone", customer.Phone).
		Set("customer_email", customer.Email).
		Set("delivery_address", deliveryAddress).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateContact - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateContact - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateContact - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrOrderNotFound
	}

	return nil
}

func (r *Repository) loadItems(ctx context.Context, executor DBExecutor, o *domain.Order) error {
	query, args, err := psqlbuilder.Select("product_id", "name", "unit_price", "quantity").
		From("order_items").
		Where(squirrel.Eq{"order_id": o.ID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadItems - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadItems - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	items := make([]domain.OrderItem, 0)
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ProductID, &item.Name, &item.UnitPrice, &item.Quantity); err != nil {
			return fmt.Errorf("%w: loadItems - scan item: %v", ErrScanRow, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadItems - rows iteration: %v", ErrScanRow, err)
	}

	o.Items = items
	return nil
}

func scanOrder(row *sql.Row) (*domain.Order, error) {
	var o domain.Order
	err := row.Scan(
		&o.ID,
		&o.PublicCode,
		&o.TotalAmount,
		&o.Customer.Name,
		&o.Customer.Phone,
		&o.Customer.Email,
		&o.Delivery.Method,
		&o.Delivery.Address,
		&o.Delivery.TrackingNumber,
		&o.Payment.Method,
		&o.Payment.IsPaid,
		&o.Status,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func scanOrderFromRows(rows *sql.Rows) (*domain.Order, error) {
	var o domain.Order
	err := rows.Scan(
		&o.ID,
		&o.PublicCode,
		&o.TotalAmount,
		&o.Customer.Name,
		&o.Customer.Phone,
		&o.Customer.Email,
		&o.Delivery.Method,
		&o.Delivery.Address,
		&o.Delivery.TrackingNumber,
		&o.Payment.Method,
		&o.Payment.IsPaid,
		&o.Status,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
