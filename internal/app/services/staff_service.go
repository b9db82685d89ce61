package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yigit/schoolfm/internal/app/models"
)

// StaffStore is the persistence the staff service needs.
type StaffStore interface {
	GetByStatus(ctx context.Context, status models.Status) ([]*models.Staff, error)
	Create(ctx context.Context, staff *models.Staff) (int64, error)
	Update(ctx context.Context, id int64, staff *models.Staff) (int64, error)
	Archive(ctx context.Context, id int64) (int64, error)
}

// StaffService defines the interface for staff operations. Staff members are
// archived instead of deleted.
type StaffService interface {
	GetActiveStaff(ctx context.Context) ([]*models.Staff, error)
	GetArchivedStaff(ctx context.Context) ([]*models.Staff, error)
	CreateStaff(ctx context.Context, staff *models.Staff) (int64, error)
	UpdateStaff(ctx context.Context, id int64, staff *models.Staff) (int64, error)
	ArchiveStaff(ctx context.Context, id int64) (int64, error)
}

type staffServiceImpl struct {
	staffRepo StaffStore
}

// NewStaffService creates a new staff service instance
func NewStaffService(staffRepo StaffStore) StaffService {
	return &staffServiceImpl{staffRepo: staffRepo}
}

func (s *staffServiceImpl) validateStaff(staff *models.Staff) error {
	if err := requireText("name", staff.Name); err != nil {
		return err
	}
	return requirePositive("role_id", staff.RoleID)
}

func (s *staffServiceImpl) GetActiveStaff(ctx context.Context) ([]*models.Staff, error) {
	return s.listByStatus(ctx, models.StatusActive)
}

func (s *staffServiceImpl) GetArchivedStaff(ctx context.Context) ([]*models.Staff, error) {
	return s.listByStatus(ctx, models.StatusLeft)
}

func (s *staffServiceImpl) listByStatus(ctx context.Context, status models.Status) ([]*models.Staff, error) {
	staff, err := s.staffRepo.GetByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("error retrieving %s staff: %w", strings.ToLower(string(status)), err)
	}
	return staff, nil
}

// CreateStaff adds an active staff member
func (s *staffServiceImpl) CreateStaff(ctx context.Context, staff *models.Staff) (int64, error) {
	if err := s.validateStaff(staff); err != nil {
		return 0, err
	}

	id, err := s.staffRepo.Create(ctx, staff)
	if err != nil {
		return 0, fmt.Errorf("error creating staff: %w", err)
	}
	return id, nil
}

// UpdateStaff replaces all mutable attributes. Zero changes means no such staff.
func (s *staffServiceImpl) UpdateStaff(ctx context.Context, id int64, staff *models.Staff) (int64, error) {
	if err := validateID(id, "staff"); err != nil {
		return 0, err
	}
	if err := s.validateStaff(staff); err != nil {
		return 0, err
	}

	changes, err := s.staffRepo.Update(ctx, id, staff)
	if err != nil {
		return 0, fmt.Errorf("error updating staff: %w", err)
	}
	return changes, nil
}

func (s *staffServiceImpl) ArchiveStaff(ctx context.Context, id int64) (int64, error) {
	if err := validateID(id, "staff"); err != nil {
		return 0, err
	}

	changes, err := s.staffRepo.Archive(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("error archiving staff: %w", err)
	}
	return changes, nil
}
