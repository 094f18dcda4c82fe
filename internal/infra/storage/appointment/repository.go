package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/mulelash/MB-BeautyService/internal/domain"
	"github.com/mulelash/MB-BeautyService/pkg/dbmetrics"
	"github.com/mulelash/MB-BeautyService/pkg/psqlbuilder"
	"github.com/mulelash/MB-BeautyService/pkg/types"
)

var appointmentColumns = []string{
	"id",
	"service_id",
	"staff_id",
	"appointment_date",
	"start_time",
	"duration_minutes",
	"status",
	"service_title",
	"service_price",
	"staff_name",
	"customer_ref",
	"customer_name",
	"note",
	"created_at",
	"updated_at",
}

// Repository is the appointments storage layer
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new appointment and fills the generated fields
func (r *Repository) Create(ctx context.Context, apt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"service_id",
			"staff_id",
			"appointment_date",
			"start_time",
			"duration_minutes",
			"status",
			"service_title",
			"service_price",
			"staff_name",
			"customer_ref",
			"customer_name",
			"note",
		).
		Values(
			apt.ServiceID,
			apt.StaffID,
			apt.Date,
			apt.StartTime,
			apt.DurationMinutes,
			apt.Status,
			apt.ServiceTitle,
			apt.ServicePrice,
			apt.StaffName,
			apt.CustomerRef,
			apt.CustomerName,
			apt.Note,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&apt.ID, &apt.CreatedAt, &apt.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return apt, nil
}

// GetByID returns one appointment. When called inside a transaction the row
// is locked FOR UPDATE, which is what the transition usecase relies on to
// serialize concurrent operators acting on the same appointment.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	apt, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return apt, nil
}

// List returns appointments matching the filter, newest date first and by
// start time within a day
func (r *Repository) List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments")

	if filter.StaffID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"staff_id": *filter.StaffID})
	}
	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"appointment_date": *filter.Date})
	}
	if filter.FromDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"appointment_date": *filter.FromDate})
	}
	if filter.UntilDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"appointment_date": *filter.UntilDate})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if filter.OnlyOpen {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": []string{
			string(domain.AppointmentPending),
			string(domain.AppointmentConfirmed),
		}})
	}
	if filter.Customer != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"customer_ref": *filter.Customer})
	}

	if filter.Date != nil {
		selectBuilder = selectBuilder.OrderBy("start_time ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("appointment_date DESC, start_time ASC")
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

	return scanAppointments(rows)
}

// CountActiveAt counts pending/confirmed appointments occupying the given
// staff+date+time. Used for the overlap warning at creation time (the
// engine deliberately does not reject double bookings).
func (r *Repository) CountActiveAt(ctx context.Context, staffID int64, date time.Time, startTime types.TimeString) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("appointments").
		Where(squirrel.Eq{"staff_id": staffID}).
		Where(squirrel.Eq{"appointment_date": date}).
		Where(squirrel.Eq{"start_time": startTime}).
		Where(squirrel.Eq{"status": []string{
			string(domain.AppointmentPending),
			string(domain.AppointmentConfirmed),
		}}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountActiveAt - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountActiveAt - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// UpdateStatus sets the appointment status. The caller is responsible for
// having validated the transition.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", status).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

func scanAppointment(row *sql.Row) (*domain.Appointment, error) {
	var apt domain.Appointment
	err := row.Scan(
		&apt.ID,
		&apt.ServiceID,
		&apt.StaffID,
		&apt.Date,
		&apt.StartTime,
		&apt.DurationMinutes,
		&apt.Status,
		&apt.ServiceTitle,
		&apt.ServicePrice,
		&apt.StaffName,
		&apt.CustomerRef,
		&apt.CustomerName,
		&apt.Note,
		&apt.CreatedAt,
		&apt.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &apt, nil
}

func scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		var apt domain.Appointment
		err := rows.Scan(
			&apt.ID,
			&apt.ServiceID,
			&apt.StaffID,
			&apt.Date,
			&apt.StartTime,
			&apt.DurationMinutes,
			&apt.Status,
			&apt.ServiceTitle,
			&apt.ServicePrice,
			&apt.StaffName,
			&apt.CustomerRef,
			&apt.CustomerName,
			&apt.Note,
			&apt.CreatedAt,
			&apt.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments: %v", ErrScanRow, err)
		}
		appointments = append(appointments, &apt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows iteration: %v", ErrScanRow, err)
	}

	return appointments, nil
}
