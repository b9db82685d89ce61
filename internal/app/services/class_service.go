package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yigit/schoolfm/internal/app/models"
)

// ClassStore is the persistence the class service needs.
type ClassStore interface {
	GetAll(ctx context.Context) ([]*models.Class, error)
	Create(ctx context.Context, class *models.Class) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// ClassService defines the interface for class operations
type ClassService interface {
	GetAllClasses(ctx context.Context) ([]*models.Class, error)
	CreateClass(ctx context.Context, class *models.Class) (int64, error)
	DeleteClass(ctx context.Context, id int64) (int64, error)
}

type classServiceImpl struct {
	classRepo ClassStore
}

// NewClassService creates a new class service instance
func NewClassService(classRepo ClassStore) ClassService {
	return &classServiceImpl{classRepo: classRepo}
}

func (s *classServiceImpl) GetAllClasses(ctx context.Context) ([]*models.Class, error) {
	classes, err := s.classRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving classes: %w", err)
	}
	return classes, nil
}

func (s *classServiceImpl) CreateClass(ctx context.Context, class *models.Class) (int64, error) {
	class.Name = strings.TrimSpace(class.Name)
	if err := requireText("name", class.Name); err != nil {
		return 0, err
	}

	id, err := s.classRepo.Create(ctx, class)
	if err != nil {
		return 0, fmt.Errorf("error creating class: %w", err)
	}
	return id, nil
}

// DeleteClass removes a class. Classes with sections are rejected by the store.
func (s *classServiceImpl) DeleteClass(ctx context.Context, id int64) (int64, error) {
	if err := validateID(id, "class"); err != nil {
		return 0, err
	}

	changes, err := s.classRepo.Delete(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("error deleting class: %w", err)
	}
	return changes, nil
}
