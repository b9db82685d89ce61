package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/schoolfm/internal/app/models"
)

// StaffRepository handles staff database operations
type StaffRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewStaffRepository creates a new StaffRepository
func NewStaffRepository(db DBTX) *StaffRepository {
	return &StaffRepository{
		db: db,
		sb: statementBuilder(),
	}
}

// staffListQuery selects staff of one status with their role name.
func staffListQuery(sb squirrel.StatementBuilderType, status models.Status) squirrel.SelectBuilder {
	return sb.Select(
		"s.id", "s.name", "s.role_id", "s.phone", "s.dob", "s.gender", "s.address",
		"s.hire_date", "s.qualifications", "s.status", "r.role_name",
	).
		From("staff s").
		LeftJoin("staff_roles r ON r.id = s.role_id").
		Where(squirrel.Eq{"s.status": string(status)}).
		OrderBy("s.id")
}

func scanStaff(row pgx.Row) (*models.Staff, error) {
	s := &models.Staff{}
	var status string
	err := row.Scan(
		&s.ID, &s.Name, &s.RoleID, &s.Phone, &s.DOB, &s.Gender, &s.Address,
		&s.HireDate, &s.Qualifications, &status, &s.RoleName,
	)
	s.Status = models.Status(status)
	return s, err
}

// GetByStatus lists staff members in the given lifecycle state
func (r *StaffRepository) GetByStatus(ctx context.Context, status models.Status) ([]*models.Staff, error) {
	staff, err := queryAll(ctx, r.db, staffListQuery(r.sb, status), scanStaff)
	if err != nil {
		return nil, fmt.Errorf("error querying staff: %w", err)
	}
	return staff, nil
}

// Create inserts an active staff member
func (r *StaffRepository) Create(ctx context.Context, s *models.Staff) (int64, error) {
	cols := staffColumns(s)
	cols["status"] = string(models.StatusActive)
	return insertReturningID(ctx, r.db, r.sb.Insert("staff").SetMap(cols))
}

// Update replaces every mutable attribute. Status is left as is.
func (r *StaffRepository) Update(ctx context.Context, id int64, s *models.Staff) (int64, error) {
	q := r.sb.Update("staff").
		SetMap(staffColumns(s)).
		Where(squirrel.Eq{"id": id})
	return execAffected(ctx, r.db, q, translateWriteError)
}

// Archive marks a staff member as Left. Archiving twice is harmless.
func (r *StaffRepository) Archive(ctx context.Context, id int64) (int64, error) {
	return execAffected(ctx, r.db, archiveQuery(r.sb, "staff", id), translateWriteError)
}

func staffColumns(s *models.Staff) map[string]interface{} {
	return map[string]interface{}{
		"name":           s.Name,
		"role_id":        s.RoleID,
		"phone":          s.Phone,
		"dob":            s.DOB,
		"gender":         s.Gender,
		"address":        s.Address,
		"hire_date":      s.HireDate,
		"qualifications": s.Qualifications,
	}
}

func archiveQuery(sb squirrel.StatementBuilderType, table string, id int64) squirrel.UpdateBuilder {
	return sb.Update(table).
		Set("status", string(models.StatusLeft)).
		Where(squirrel.Eq{"id": id})
}
