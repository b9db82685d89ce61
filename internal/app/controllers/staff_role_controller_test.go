package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/schoolfm/internal/app/models"
	"github.com/yigit/schoolfm/internal/app/services"
	"github.com/yigit/schoolfm/internal/pkg/apperrors"
)

// roleStore is a unique-name store so the real service can be exercised.
type roleStore struct {
	names []string
}

func (s *roleStore) GetAll(context.Context) ([]*models.StaffRole, error) {
	roles := make([]*models.StaffRole, 0, len(s.names))
	for i, n := range s.names {
		roles = append(roles, &models.StaffRole{ID: int64(i + 1), RoleName: n})
	}
	return roles, nil
}

func (s *roleStore) Create(_ context.Context, role *models.StaffRole) (int64, error) {
	for _, n := range s.names {
		if n == role.RoleName {
			return 0, apperrors.ErrStaffRoleAlreadyExists
		}
	}
	s.names = append(s.names, role.RoleName)
	return int64(len(s.names)), nil
}

func (s *roleStore) EnsureRoles(ctx context.Context, names []string) (int64, error) {
	var added int64
	for _, n := range names {
		if _, err := s.Create(ctx, &models.StaffRole{RoleName: n}); err == nil {
			added++
		}
	}
	return added, nil
}

func (s *roleStore) Delete(context.Context, int64) (int64, error) { return 0, nil }

func TestStaffRoleEndpoints(t *testing.T) {
	store := &roleStore{}
	svc := services.NewStaffRoleService(store)
	_, err := svc.EnsureDefaultRoles(context.Background())
	require.NoError(t, err)

	r := gin.New()
	c := NewStaffRoleController(svc)
	r.GET("/api/staff-roles", c.GetAllStaffRoles)
	r.POST("/api/staff-roles", c.CreateStaffRole)
	r.DELETE("/api/staff-roles/:id", c.DeleteStaffRole)

	rec := doRequest(t, r, http.MethodGet, "/api/staff-roles", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[{"id":1,"role_name":"Teacher"},{"id":2,"role_name":"Admin"},{"id":3,"role_name":"Principal"},{"id":4,"role_name":"Driver"}]}`, rec.Body.String())

	rec = doRequest(t, r, http.MethodPost, "/api/staff-roles", `{"role_name":"Teacher"}`)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "staff role with this name already exists", decodeError(t, rec).Error.Message)
	assert.Len(t, store.names, 4)

	rec = doRequest(t, r, http.MethodPost, "/api/staff-roles", `{"role_name":"Librarian"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":5}`, rec.Body.String())

	rec = doRequest(t, r, http.MethodDelete, "/api/staff-roles/42", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"changes":0}`, rec.Body.String())
}
