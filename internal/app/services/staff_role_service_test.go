package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/schoolfm/internal/app/models"
	"github.com/yigit/schoolfm/internal/pkg/apperrors"
)

func TestEnsureDefaultRolesIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := &memoryRoles{}
	svc := NewStaffRoleService(store)

	added, err := svc.EnsureDefaultRoles(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(models.DefaultStaffRoles)), added)

	added, err = svc.EnsureDefaultRoles(ctx)
	require.NoError(t, err)
	assert.Zero(t, added)

	roles, err := svc.GetAllStaffRoles(ctx)
	require.NoError(t, err)
	assert.Len(t, roles, 4)
}

func TestCreateExistingRoleIsConflict(t *testing.T) {
	ctx := context.Background()
	store := &memoryRoles{}
	svc := NewStaffRoleService(store)
	_, err := svc.EnsureDefaultRoles(ctx)
	require.NoError(t, err)

	_, err = svc.CreateStaffRole(ctx, &models.StaffRole{RoleName: " Teacher "})

	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Len(t, store.roles, 4)
}

func TestCreateStaffRoleValidation(t *testing.T) {
	svc := NewStaffRoleService(&memoryRoles{})

	_, err := svc.CreateStaffRole(context.Background(), &models.StaffRole{RoleName: "   "})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	id, err := svc.CreateStaffRole(context.Background(), &models.StaffRole{RoleName: "Librarian"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
}

func TestDeleteStaffRole(t *testing.T) {
	ctx := context.Background()
	store := &memoryRoles{}
	svc := NewStaffRoleService(store)
	id, err := svc.CreateStaffRole(ctx, &models.StaffRole{RoleName: "Nurse"})
	require.NoError(t, err)

	changes, err := svc.DeleteStaffRole(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), changes)

	changes, err = svc.DeleteStaffRole(ctx, id)
	require.NoError(t, err)
	assert.Zero(t, changes)

	_, err = svc.DeleteStaffRole(ctx, 0)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
