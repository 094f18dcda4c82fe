package dbmetrics

import (
	"context"
	"database/sql"
	"time"

	"github.com/mulelash/MB-BeautyService/pkg/metrics"
)

// DBExecutor is the query subset shared by *sql.DB, *sql.Tx and the wrappers here
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// TxExecutor is a DBExecutor bound to an open transaction
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}

type executorCtxKey struct{}

// ContextWithExecutor returns a context carrying an active transaction.
// Repositories pick it up through GetExecutor, so the same repository code
// runs inside or outside a transaction without knowing the difference.
func ContextWithExecutor(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, executorCtxKey{}, tx)
}

// GetExecutor returns the transaction from the context when one is active,
// otherwise the fallback (the repository's own DB handle)
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(executorCtxKey{}).(TxExecutor); ok {
		return tx
	}
	return fallback
}

// IsInTransaction reports whether the context carries an active transaction
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(executorCtxKey{}).(TxExecutor)
	return ok
}

// DB wraps *sql.DB and reports per-query durations to the metrics collector
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
}

// Wrap wraps a database handle with metrics collection
func Wrap(db *sql.DB, m *metrics.Metrics) *DB {
	return &DB{db: db, metrics: m}
}

// WrapWithDefault wraps the handle and starts a background goroutine that
// publishes connection pool stats until stopCh is closed
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, pollInterval time.Duration, stopCh <-chan struct{}) *DB {
	wrapped := Wrap(db, m)

	if pollInterval <= 0 {
		pollInterval = 15 * time.Second
	}

	go func() {
		ticker := time.NewTicker(pollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.SetDBPoolStats(db.Stats())
			case <-stopCh:
				return
			}
		}
	}()

	return wrapped
}

func (d *DB) observe(operation string, start time.Time) {
	if d.metrics != nil {
		d.metrics.ObserveDBQuery(operation, time.Since(start))
	}
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	defer d.observe("exec", time.Now())
	return d.db.ExecContext(ctx, query, args...)
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	defer d.observe("query", time.Now())
	return d.db.QueryContext(ctx, query, args...)
}

func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	defer d.observe("query_row", time.Now())
	return d.db.QueryRowContext(ctx, query, args...)
}

// BeginTx starts a transaction whose statements are also measured
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &metricTx{tx: tx, parent: d}, nil
}

type metricTx struct {
	tx     *sql.Tx
	parent *DB
}

func (t *metricTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	defer t.parent.observe("tx_exec", time.Now())
	return t.tx.ExecContext(ctx, query, args...)
}

func (t *metricTx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	defer t.parent.observe("tx_query", time.Now())
	return t.tx.QueryContext(ctx, query, args...)
}

func (t *metricTx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	defer t.parent.observe("tx_query_row", time.Now())
	return t.tx.QueryRowContext(ctx, query, args...)
}

func (t *metricTx) Commit() error   { return t.tx.Commit() }
func (t *metricTx) Rollback() error { return t.tx.Rollback() }
