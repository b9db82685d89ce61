package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yigit/schoolfm/internal/app/models"
)

// FeeStructureStore is the persistence the fee structure service needs.
type FeeStructureStore interface {
	GetAll(ctx context.Context) ([]*models.FeeStructure, error)
	Create(ctx context.Context, fs *models.FeeStructure) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// FeeStructureService defines the interface for fee structure operations.
// Structures describe expected amounts only and never create or change fees.
type FeeStructureService interface {
	GetAllFeeStructures(ctx context.Context) ([]*models.FeeStructure, error)
	CreateFeeStructure(ctx context.Context, fs *models.FeeStructure) (int64, error)
	DeleteFeeStructure(ctx context.Context, id int64) (int64, error)
}

type feeStructureServiceImpl struct {
	structureRepo FeeStructureStore
}

// NewFeeStructureService creates a new fee structure service instance
func NewFeeStructureService(structureRepo FeeStructureStore) FeeStructureService {
	return &feeStructureServiceImpl{structureRepo: structureRepo}
}

func (s *feeStructureServiceImpl) GetAllFeeStructures(ctx context.Context) ([]*models.FeeStructure, error) {
	structures, err := s.structureRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving fee structures: %w", err)
	}
	return structures, nil
}

func (s *feeStructureServiceImpl) CreateFeeStructure(ctx context.Context, fs *models.FeeStructure) (int64, error) {
	fs.FeeType = strings.TrimSpace(fs.FeeType)
	if err := optionalPositive("class_id", fs.ClassID); err != nil {
		return 0, err
	}
	if err := requireText("fee_type", fs.FeeType); err != nil {
		return 0, err
	}
	if err := requireNonNegative("amount", fs.Amount); err != nil {
		return 0, err
	}

	id, err := s.structureRepo.Create(ctx, fs)
	if err != nil {
		return 0, fmt.Errorf("error creating fee structure: %w", err)
	}
	return id, nil
}

func (s *feeStructureServiceImpl) DeleteFeeStructure(ctx context.Context, id int64) (int64, error) {
	if err := validateID(id, "fee structure"); err != nil {
		return 0, err
	}

	changes, err := s.structureRepo.Delete(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("error deleting fee structure: %w", err)
	}
	return changes, nil
}

// FeeStore is the persistence the fee service needs.
type FeeStore interface {
	Create(ctx context.Context, fee *models.Fee) (int64, error)
	Update(ctx context.Context, id int64, fee *models.Fee) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// FeeService defines the interface for per-student fee operations
type FeeService interface {
	CreateFee(ctx context.Context, fee *models.Fee) (int64, error)
	UpdateFee(ctx context.Context, id int64, fee *models.Fee) (int64, error)
	DeleteFee(ctx context.Context, id int64) (int64, error)
}

type feeServiceImpl struct {
	feeRepo FeeStore
}

// NewFeeService creates a new fee service instance
func NewFeeService(feeRepo FeeStore) FeeService {
	return &feeServiceImpl{feeRepo: feeRepo}
}

func (s *feeServiceImpl) validateFee(fee *models.Fee) error {
	fee.Status = strings.TrimSpace(fee.Status)
	if err := requirePositive("student_id", fee.StudentID); err != nil {
		return err
	}
	if err := requireNonNegative("amount", fee.Amount); err != nil {
		return err
	}
	return requireText("status", fee.Status)
}

func (s *feeServiceImpl) CreateFee(ctx context.Context, fee *models.Fee) (int64, error) {
	if err := s.validateFee(fee); err != nil {
		return 0, err
	}

	id, err := s.feeRepo.Create(ctx, fee)
	if err != nil {
		return 0, fmt.Errorf("error creating fee: %w", err)
	}
	return id, nil
}

// UpdateFee replaces every attribute of a fee, typically to mark it paid.
func (s *feeServiceImpl) UpdateFee(ctx context.Context, id int64, fee *models.Fee) (int64, error) {
	if err := validateID(id, "fee"); err != nil {
		return 0, err
	}
	if err := s.validateFee(fee); err != nil {
		return 0, err
	}

	changes, err := s.feeRepo.Update(ctx, id, fee)
	if err != nil {
		return 0, fmt.Errorf("error updating fee: %w", err)
	}
	return changes, nil
}

func (s *feeServiceImpl) DeleteFee(ctx context.Context, id int64) (int64, error) {
	if err := validateID(id, "fee"); err != nil {
		return 0, err
	}

	changes, err := s.feeRepo.Delete(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("error deleting fee: %w", err)
	}
	return changes, nil
}
