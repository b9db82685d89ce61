package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/yigit/schoolfm/internal/pkg/apperrors"
	"github.com/yigit/schoolfm/internal/pkg/dberrors"
	"github.com/yigit/schoolfm/internal/pkg/logger"
)

// DBTX is the subset of *pgxpool.Pool the repositories use.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories holds all the repository instances
type Repositories struct {
	StaffRoleRepository    *StaffRoleRepository
	ClassRepository        *ClassRepository
	SectionRepository      *SectionRepository
	StaffRepository        *StaffRepository
	StudentRepository      *StudentRepository
	BusRouteRepository     *BusRouteRepository
	BusStopRepository      *BusStopRepository
	FeeStructureRepository *FeeStructureRepository
	FeeRepository          *FeeRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db DBTX) *Repositories {
	return &Repositories{
		StaffRoleRepository:    NewStaffRoleRepository(db),
		ClassRepository:        NewClassRepository(db),
		SectionRepository:      NewSectionRepository(db),
		StaffRepository:        NewStaffRepository(db),
		StudentRepository:      NewStudentRepository(db),
		BusRouteRepository:     NewBusRouteRepository(db),
		BusStopRepository:      NewBusStopRepository(db),
		FeeStructureRepository: NewFeeStructureRepository(db),
		FeeRepository:          NewFeeRepository(db),
	}
}

// statementBuilder uses $n placeholders for pgx.
func statementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// uniqueConstraintErrors maps unique constraints onto their conflict errors.
var uniqueConstraintErrors = map[string]error{
	"staff_roles_role_name_key":          apperrors.ErrStaffRoleAlreadyExists,
	"classes_name_key":                   apperrors.ErrClassAlreadyExists,
	"sections_class_id_section_name_key": apperrors.ErrSectionAlreadyExists,
}

// referenceFields maps foreign keys onto the request field that carries them.
var referenceFields = map[string]string{
	"staff_role_id_fkey":           "role_id",
	"sections_class_id_fkey":       "class_id",
	"sections_teacher_id_fkey":     "teacher_id",
	"bus_routes_driver_id_fkey":    "driver_id",
	"bus_stops_bus_route_id_fkey":  "bus_route_id",
	"students_section_id_fkey":     "section_id",
	"students_bus_stop_id_fkey":    "bus_stop_id",
	"fees_student_id_fkey":         "student_id",
	"fee_structures_class_id_fkey": "class_id",
}

// restrictErrors maps ON DELETE RESTRICT foreign keys onto the conflict a
// blocked delete of the parent reports.
var restrictErrors = map[string]error{
	"staff_role_id_fkey":     apperrors.ErrStaffRoleInUse,
	"sections_class_id_fkey": apperrors.ErrClassHasSections,
}

// translateWriteError converts constraint violations raised by an insert or
// update into application errors. Other errors are returned unchanged.
func translateWriteError(err error) error {
	constraint := dberrors.ConstraintName(err)
	switch {
	case dberrors.IsUniqueViolation(err):
		if known, ok := uniqueConstraintErrors[constraint]; ok {
			return known
		}
		return apperrors.NewConflictError("record already exists")
	case dberrors.IsForeignKeyViolation(err, ""):
		field, ok := referenceFields[constraint]
		if !ok {
			field = constraint
		}
		return apperrors.NewValidationError(field, fmt.Sprintf("%s does not reference an existing record", field))
	case dberrors.IsIntegrityViolation(err):
		return &apperrors.CustomError{Err: apperrors.ErrValidationFailed, Message: "invalid field value", Cause: err}
	case dberrors.IsDataException(err):
		return &apperrors.CustomError{Err: apperrors.ErrValidationFailed, Message: "field value cannot be stored", Cause: err}
	}
	return err
}

// translateDeleteError converts a restricting foreign key violation raised by a
// delete into a conflict.
func translateDeleteError(err error) error {
	if !dberrors.IsForeignKeyViolation(err, "") {
		return err
	}
	if known, ok := restrictErrors[dberrors.ConstraintName(err)]; ok {
		return known
	}
	return apperrors.NewConflictError("record is still referenced and cannot be deleted")
}

// insertReturningID runs an INSERT ... RETURNING id.
func insertReturningID(ctx context.Context, db DBTX, q squirrel.InsertBuilder) (int64, error) {
	sql, args, err := q.Suffix("RETURNING id").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build insert query: %w", err)
	}

	var id int64
	if err := db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.ConstraintName(err) == "" {
			logger.Error().Err(err).Str("query", sql).Msg("Error executing insert query")
		}
		return 0, translateWriteError(err)
	}
	return id, nil
}

// execAffected runs an UPDATE or DELETE and returns the affected-row count.
func execAffected(ctx context.Context, db DBTX, q squirrel.Sqlizer, translate func(error) error) (int64, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build query: %w", err)
	}

	cmdTag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.ConstraintName(err) == "" {
			logger.Error().Err(err).Str("query", sql).Msg("Error executing statement")
		}
		return 0, translate(err)
	}
	return cmdTag.RowsAffected(), nil
}

// deleteByID removes one row by key. A missing key affects zero rows.
func deleteByID(ctx context.Context, db DBTX, sb squirrel.StatementBuilderType, table string, id int64) (int64, error) {
	return execAffected(ctx, db, sb.Delete(table).Where(squirrel.Eq{"id": id}), translateDeleteError)
}

// queryAll runs a SELECT and scans every row with scan.
func queryAll[T any](ctx context.Context, db DBTX, q squirrel.SelectBuilder, scan func(pgx.Row) (*T, error)) ([]*T, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("query", sql).Msg("Error executing select query")
		return nil, err
	}
	defer rows.Close()

	items := []*T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			logger.Error().Err(err).Str("query", sql).Msg("Error scanning row")
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return items, nil
}
