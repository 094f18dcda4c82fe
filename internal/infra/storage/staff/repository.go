package staff

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/mulelash/MB-BeautyService/internal/domain"
	"github.com/mulelash/MB-BeautyService/pkg/dbmetrics"
	"github.com/mulelash/MB-BeautyService/pkg/psqlbuilder"
)

var staffColumns = []string{
	"id",
	"name",
	"role",
	"image",
	"rating",
	"specialties",
	"work_days",
	"work_start",
	"work_end",
	"created_at",
	"updated_at",
}

// Repository is the staff members storage layer. Specialties and work days
// are Postgres arrays, handled through pq.Array.
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, s *domain.StaffMember) (*domain.StaffMember, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("staff_members").
		Columns("name", "role", "image", "rating", "specialties", "work_days", "work_start", "work_end").
		Values(
			s.Name,
			s.Role,
			s.Image,
			s.Rating,
			pq.Array(categoriesToStrings(s.Specialties)),
			pq.Array(s.WorkDays),
			s.WorkStart,
			s.WorkEnd,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return s, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.StaffMember, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(staffColumns...).
		From("staff_members").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	s, err := scanStaff(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrStaffNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan staff member: %v", ErrScanRow, err)
	}

	return s, nil
}

func (r *Repository) List(ctx context.Context) ([]*domain.StaffMember, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(staffColumns...).
		From("staff_members").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	members := make([]*domain.StaffMember, 0)
	for rows.Next() {
		s, err := scanStaffFromRows(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan staff member: %v", ErrScanRow, err)
		}
		members = append(members, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows iteration: %v", ErrScanRow, err)
	}

	return members, nil
}

func (r *Repository) Update(ctx context.Context, s *domain.StaffMember) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("staff_members").
		Set("name", s.Name).
		Set("role", s.Role).
		Set("image", s.Image).
		Set("rating", s.Rating).
		Set("specialties", pq.Array(categoriesToStrings(s.Specialties))).
		Set("work_days", pq.Array(s.WorkDays)).
		Set("work_start", s.WorkStart).
		Set("work_end", s.WorkEnd).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": s.ID}).
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
		return ErrStaffNotFound
	}

	return nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("staff_members").
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
		return ErrStaffNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanStaff(row *sql.Row) (*domain.StaffMember, error) {
	return scanStaffRow(row)
}

func scanStaffFromRows(rows *sql.Rows) (*domain.StaffMember, error) {
	return scanStaffRow(rows)
}

func scanStaffRow(row rowScanner) (*domain.StaffMember, error) {
	var s domain.StaffMember
	var specialties []string
	var workDays []int64

	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.Role,
		&s.Image,
		&s.Rating,
		pq.Array(&specialties),
		pq.Array(&workDays),
		&s.WorkStart,
		&s.WorkEnd,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.Specialties = make([]domain.Category, len(specialties))
	for i, c := range specialties {
		s.Specialties[i] = domain.Category(c)
	}
	s.WorkDays = make([]int, len(workDays))
	for i, d := range workDays {
		s.WorkDays[i] = int(d)
	}

	return &s, nil
}

func categoriesToStrings(categories []domain.Category) []string {
	out := make([]string, len(categories))
	for i, c := range categories {
		out[i] = string(c)
	}
	return out
}
