package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yigit/schoolfm/internal/app/models"
)

// StudentStore is the persistence the student service needs.
type StudentStore interface {
	GetByStatus(ctx context.Context, status models.Status) ([]*models.Student, error)
	Create(ctx context.Context, student *models.Student) (int64, error)
	Update(ctx context.Context, id int64, student *models.Student) (int64, error)
	Archive(ctx context.Context, id int64) (int64, error)
}

// StudentFeeStore lists the fees of one student.
type StudentFeeStore interface {
	GetByStudent(ctx context.Context, studentID int64) ([]*models.Fee, error)
}

// StudentService defines the interface for student operations. Students are
// archived instead of deleted.
type StudentService interface {
	GetActiveStudents(ctx context.Context) ([]*models.Student, error)
	GetArchivedStudents(ctx context.Context) ([]*models.Student, error)
	CreateStudent(ctx context.Context, student *models.Student) (int64, error)
	UpdateStudent(ctx context.Context, id int64, student *models.Student) (int64, error)
	ArchiveStudent(ctx context.Context, id int64) (int64, error)
	GetStudentFees(ctx context.Context, id int64) ([]*models.Fee, error)
}

type studentServiceImpl struct {
	studentRepo StudentStore
	feeRepo     StudentFeeStore
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo StudentStore, feeRepo StudentFeeStore) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
		feeRepo:     feeRepo,
	}
}

func (s *studentServiceImpl) validateStudent(student *models.Student) error {
	if err := requireText("name", student.Name); err != nil {
		return err
	}
	if err := optionalPositive("section_id", student.SectionID); err != nil {
		return err
	}
	return optionalPositive("bus_stop_id", student.BusStopID)
}

func (s *studentServiceImpl) GetActiveStudents(ctx context.Context) ([]*models.Student, error) {
	return s.listByStatus(ctx, models.StatusActive)
}

func (s *studentServiceImpl) GetArchivedStudents(ctx context.Context) ([]*models.Student, error) {
	return s.listByStatus(ctx, models.StatusLeft)
}

func (s *studentServiceImpl) listByStatus(ctx context.Context, status models.Status) ([]*models.Student, error) {
	students, err := s.studentRepo.GetByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("error retrieving %s students: %w", strings.ToLower(string(status)), err)
	}
	return students, nil
}

// CreateStudent enrolls an active student
func (s *studentServiceImpl) CreateStudent(ctx context.Context, student *models.Student) (int64, error) {
	if err := s.validateStudent(student); err != nil {
		return 0, err
	}

	id, err := s.studentRepo.Create(ctx, student)
	if err != nil {
		return 0, fmt.Errorf("error creating student: %w", err)
	}
	return id, nil
}

// UpdateStudent replaces all mutable attributes. Zero changes means no such student.
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, id int64, student *models.Student) (int64, error) {
	if err := validateID(id, "student"); err != nil {
		return 0, err
	}
	if err := s.validateStudent(student); err != nil {
		return 0, err
	}

	changes, err := s.studentRepo.Update(ctx, id, student)
	if err != nil {
		return 0, fmt.Errorf("error updating student: %w", err)
	}
	return changes, nil
}

func (s *studentServiceImpl) ArchiveStudent(ctx context.Context, id int64) (int64, error) {
	if err := validateID(id, "student"); err != nil {
		return 0, err
	}

	changes, err := s.studentRepo.Archive(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("error archiving student: %w", err)
	}
	return changes, nil
}

// GetStudentFees lists a student's fees. An unknown student has no fees.
func (s *studentServiceImpl) GetStudentFees(ctx context.Context, id int64) ([]*models.Fee, error) {
	if err := validateID(id, "student"); err != nil {
		return nil, err
	}

	fees, err := s.feeRepo.GetByStudent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student fees: %w", err)
	}
	return fees, nil
}
