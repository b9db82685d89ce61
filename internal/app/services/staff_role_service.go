package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yigit/schoolfm/internal/app/models"
	"github.com/yigit/schoolfm/internal/pkg/logger"
)

// StaffRoleStore is the persistence the staff role service needs.
type StaffRoleStore interface {
	GetAll(ctx context.Context) ([]*models.StaffRole, error)
	Create(ctx context.Context, role *models.StaffRole) (int64, error)
	EnsureRoles(ctx context.Context, names []string) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// StaffRoleService defines the interface for staff role operations
type StaffRoleService interface {
	GetAllStaffRoles(ctx context.Context) ([]*models.StaffRole, error)
	CreateStaffRole(ctx context.Context, role *models.StaffRole) (int64, error)
	DeleteStaffRole(ctx context.Context, id int64) (int64, error)
	EnsureDefaultRoles(ctx context.Context) (int64, error)
}

type staffRoleServiceImpl struct {
	roleRepo StaffRoleStore
}

// NewStaffRoleService creates a new staff role service instance
func NewStaffRoleService(roleRepo StaffRoleStore) StaffRoleService {
	return &staffRoleServiceImpl{roleRepo: roleRepo}
}

func (s *staffRoleServiceImpl) GetAllStaffRoles(ctx context.Context) ([]*models.StaffRole, error) {
	roles, err := s.roleRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving staff roles: %w", err)
	}
	return roles, nil
}

// CreateStaffRole adds a role. Unlike the seed, an existing name is a conflict.
func (s *staffRoleServiceImpl) CreateStaffRole(ctx context.Context, role *models.StaffRole) (int64, error) {
	role.RoleName = strings.TrimSpace(role.RoleName)
	if err := requireText("role_name", role.RoleName); err != nil {
		return 0, err
	}

	id, err := s.roleRepo.Create(ctx, role)
	if err != nil {
		return 0, fmt.Errorf("error creating staff role: %w", err)
	}
	return id, nil
}

func (s *staffRoleServiceImpl) DeleteStaffRole(ctx context.Context, id int64) (int64, error) {
	if err := validateID(id, "staff role"); err != nil {
		return 0, err
	}

	changes, err := s.roleRepo.Delete(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("error deleting staff role: %w", err)
	}
	return changes, nil
}

// EnsureDefaultRoles inserts the default roles that are missing. It is safe to
// run on every start.
func (s *staffRoleServiceImpl) EnsureDefaultRoles(ctx context.Context) (int64, error) {
	added, err := s.roleRepo.EnsureRoles(ctx, models.DefaultStaffRoles)
	if err != nil {
		return 0, fmt.Errorf("error seeding staff roles: %w", err)
	}

	logger.Info().Int64("added", added).Strs("roles", models.DefaultStaffRoles).Msg("Default staff roles ensured")
	return added, nil
}
