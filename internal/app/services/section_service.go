package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yigit/schoolfm/internal/app/models"
)

// SectionStore is the persistence the section service needs.
type SectionStore interface {
	GetAll(ctx context.Context, classID *int64) ([]*models.Section, error)
	Create(ctx context.Context, section *models.Section) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// SectionService defines the interface for section operations
type SectionService interface {
	GetSections(ctx context.Context, classID *int64) ([]*models.Section, error)
	CreateSection(ctx context.Context, section *models.Section) (int64, error)
	DeleteSection(ctx context.Context, id int64) (int64, error)
}

type sectionServiceImpl struct {
	sectionRepo SectionStore
}

// NewSectionService creates a new section service instance
func NewSectionService(sectionRepo SectionStore) SectionService {
	return &sectionServiceImpl{sectionRepo: sectionRepo}
}

// GetSections lists sections with class and teacher names, optionally only
// those of one class.
func (s *sectionServiceImpl) GetSections(ctx context.Context, classID *int64) ([]*models.Section, error) {
	if err := optionalPositive("class_id", classID); err != nil {
		return nil, err
	}

	sections, err := s.sectionRepo.GetAll(ctx, classID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving sections: %w", err)
	}
	return sections, nil
}

func (s *sectionServiceImpl) CreateSection(ctx context.Context, section *models.Section) (int64, error) {
	section.SectionName = strings.TrimSpace(section.SectionName)
	if err := requirePositive("class_id", section.ClassID); err != nil {
		return 0, err
	}
	if err := requireText("section_name", section.SectionName); err != nil {
		return 0, err
	}
	if err := optionalPositive("teacher_id", section.TeacherID); err != nil {
		return 0, err
	}

	id, err := s.sectionRepo.Create(ctx, section)
	if err != nil {
		return 0, fmt.Errorf("error creating section: %w", err)
	}
	return id, nil
}

func (s *sectionServiceImpl) DeleteSection(ctx context.Context, id int64) (int64, error) {
	if err := validateID(id, "section"); err != nil {
		return 0, err
	}

	changes, err := s.sectionRepo.Delete(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("error deleting section: %w", err)
	}
	return changes, nil
}
