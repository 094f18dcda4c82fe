package outbox

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/mulelash/MB-BeautyService/internal/domain"
	"github.com/mulelash/MB-BeautyService/pkg/dbmetrics"
	"github.com/mulelash/MB-BeautyService/pkg/psqlbuilder"
)

var (
	// ErrEventNotFound is returned when no outbox event matches the id
	ErrEventNotFound = errors.New("outbox.repository: event not found")

	// ErrBuildQuery is returned when SQL construction fails
	ErrBuildQuery = errors.New("outbox.repository: failed to build query")

	// ErrExecQuery is returned when query execution fails
	ErrExecQuery = errors.New("outbox.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned
	ErrScanRow = errors.New("outbox.repository: failed to scan row")
)

// Repository is the notification outbox storage layer. Events are written
// by the transition usecase in the same transaction as the status change
// and consumed by the dispatcher.
type Repository struct {
	db dbmetrics.DBExecutor
}

func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create queues one notification for delivery
func (r *Repository) Create(ctx context.Context, ev *domain.OutboxEvent) (*domain.OutboxEvent, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("notification_outbox").
		Columns("appointment_id", "recipient", "message", "status").
		Values(ev.AppointmentID, ev.Recipient, ev.Message, domain.OutboxPending).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&ev.ID, &ev.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	ev.Status = domain.OutboxPending
	return ev, nil
}

// ListPending returns the oldest undelivered events, up to limit.
// The service runs a single dispatcher, which is what prevents double-sends;
// the SKIP LOCKED suffix only applies when a caller polls inside a
// transaction.
func (r *Repository) ListPending(ctx context.Context, limit int) ([]*domain.OutboxEvent, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id", "appointment_id", "recipient", "message", "status", "attempts", "last_error", "created_at", "sent_at",
	).
		From("notification_outbox").
		Where(squirrel.Eq{"status": domain.OutboxPending}).
		OrderBy("created_at ASC").
		Limit(uint64(limit))

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE SKIP LOCKED")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListPending - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListPending - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	events := make([]*domain.OutboxEvent, 0)
	for rows.Next() {
		var ev domain.OutboxEvent
		err := rows.Scan(
			&ev.ID, &ev.AppointmentID, &ev.Recipient, &ev.Message,
			&ev.Status, &ev.Attempts, &ev.LastError, &ev.CreatedAt, &ev.SentAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListPending - scan event: %v", ErrScanRow, err)
		}
		events = append(events, &ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListPending - rows iteration: %v", ErrScanRow, err)
	}

	return events, nil
}

// MarkSent records a successful delivery
func (r *Repository) MarkSent(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("notification_outbox").
		Set("status", domain.OutboxSent).
		Set("attempts", squirrel.Expr("attempts + 1")).
		Set("sent_at", squirrel.Expr("now()")).
		Set("last_error", nil).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: MarkSent - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "MarkSent")
}

// RecordFailure notes a failed delivery attempt. When final is true the
// event is marked failed permanently; otherwise it stays pending and the
// dispatcher will retry on a later pass. The reason is kept so operators
// can tell a missing credential from a transient network problem.
func (r *Repository) RecordFailure(ctx context.Context, id int64, reason string, final bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	status := domain.OutboxPending
	if final {
		status = domain.OutboxFailed
	}

	query, args, err := psqlbuilder.Update("notification_outbox").
		Set("status", status).
		Set("attempts", squirrel.Expr("attempts + 1")).
		Set("last_error", reason).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: RecordFailure - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "RecordFailure")
}

func (r *Repository) execExpectingRow(ctx context.Context, executor dbmetrics.DBExecutor, query string, args []interface{}, op string) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, op, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - rows affected: %v", ErrExecQuery, op, err)
	}
	if affected == 0 {
		return ErrEventNotFound
	}

	return nil
}
