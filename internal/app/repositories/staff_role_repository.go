package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/schoolfm/internal/app/models"
)

// StaffRoleRepository handles staff role database operations
type StaffRoleRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewStaffRoleRepository creates a new StaffRoleRepository
func NewStaffRoleRepository(db DBTX) *StaffRoleRepository {
	return &StaffRoleRepository{
		db: db,
		sb: statementBuilder(),
	}
}

func scanStaffRole(row pgx.Row) (*models.StaffRole, error) {
	role := &models.StaffRole{}
	if err := row.Scan(&role.ID, &role.RoleName); err != nil {
		return nil, err
	}
	return role, nil
}

// GetAll retrieves every staff role ordered by id
func (r *StaffRoleRepository) GetAll(ctx context.Context) ([]*models.StaffRole, error) {
	q := r.sb.Select("id", "role_name").From("staff_roles").OrderBy("id")
	roles, err := queryAll(ctx, r.db, q, scanStaffRole)
	if err != nil {
		return nil, fmt.Errorf("error querying staff roles: %w", err)
	}
	return roles, nil
}

// GetByName retrieves a role by its exact name; nil when absent.
func (r *StaffRoleRepository) GetByName(ctx context.Context, name string) (*models.StaffRole, error) {
	sql, args, err := r.sb.Select("id", "role_name").From("staff_roles").
		Where(squirrel.Eq{"role_name": name}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get staff role query: %w", err)
	}

	role, err := scanStaffRole(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error getting staff role by name: %w", err)
	}
	return role, nil
}

// Create inserts a role. A duplicate name is a conflict.
func (r *StaffRoleRepository) Create(ctx context.Context, role *models.StaffRole) (int64, error) {
	return insertReturningID(ctx, r.db, r.sb.Insert("staff_roles").
		Columns("role_name").
		Values(role.RoleName))
}

// EnsureRoles inserts every name that is not present yet and returns how many
// were added. Existing names are left untouched.
func (r *StaffRoleRepository) EnsureRoles(ctx context.Context, names []string) (int64, error) {
	if len(names) == 0 {
		return 0, nil
	}
	return execAffected(ctx, r.db, ensureRolesQuery(r.sb, names), translateWriteError)
}

func ensureRolesQuery(sb squirrel.StatementBuilderType, names []string) squirrel.InsertBuilder {
	q := sb.Insert("staff_roles").Columns("role_name")
	for _, name := range names {
		q = q.Values(name)
	}
	return q.Suffix("ON CONFLICT (role_name) DO NOTHING")
}

// Delete removes a role. Roles still assigned to staff cannot be deleted.
func (r *StaffRoleRepository) Delete(ctx context.Context, id int64) (int64, error) {
	return deleteByID(ctx, r.db, r.sb, "staff_roles", id)
}
