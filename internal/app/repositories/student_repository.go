package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/schoolfm/internal/app/models"
)

// StudentRepository handles student database operations
type StudentRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db DBTX) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: statementBuilder(),
	}
}

// studentListQuery selects students of one status. class_name is
// "<class> <section>" and NULL for students without a section.
func studentListQuery(sb squirrel.StatementBuilderType, status models.Status) squirrel.SelectBuilder {
	return sb.Select(
		"st.id", "st.name", "st.section_id", "st.dob", "st.gender", "st.phone",
		"st.parent_name", "st.parent_phone", "st.address", "st.bus_stop_id", "st.status",
		"c.name || ' ' || sec.section_name AS class_name",
	).
		From("students st").
		LeftJoin("sections sec ON sec.id = st.section_id").
		LeftJoin("classes c ON c.id = sec.class_id").
		Where(squirrel.Eq{"st.status": string(status)}).
		OrderBy("st.id")
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	s := &models.Student{}
	var status string
	err := row.Scan(
		&s.ID, &s.Name, &s.SectionID, &s.DOB, &s.Gender, &s.Phone,
		&s.ParentName, &s.ParentPhone, &s.Address, &s.BusStopID, &status,
		&s.ClassName,
	)
	s.Status = models.Status(status)
	return s, err
}

// GetByStatus lists students in the given lifecycle state
func (r *StudentRepository) GetByStatus(ctx context.Context, status models.Status) ([]*models.Student, error) {
	students, err := queryAll(ctx, r.db, studentListQuery(r.sb, status), scanStudent)
	if err != nil {
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	return students, nil
}

// Create inserts an active student
func (r *StudentRepository) Create(ctx context.Context, s *models.Student) (int64, error) {
	cols := studentColumns(s)
	cols["status"] = string(models.StatusActive)
	return insertReturningID(ctx, r.db, r.sb.Insert("students").SetMap(cols))
}

// Update replaces every mutable attribute. Status is left as is.
func (r *StudentRepository) Update(ctx context.Context, id int64, s *models.Student) (int64, error) {
	q := r.sb.Update("students").
		SetMap(studentColumns(s)).
		Where(squirrel.Eq{"id": id})
	return execAffected(ctx, r.db, q, translateWriteError)
}

// Archive marks a student as Left. Archiving twice is harmless.
func (r *StudentRepository) Archive(ctx context.Context, id int64) (int64, error) {
	return execAffected(ctx, r.db, archiveQuery(r.sb, "students", id), translateWriteError)
}

func studentColumns(s *models.Student) map[string]interface{} {
	return map[string]interface{}{
		"name":         s.Name,
		"section_id":   s.SectionID,
		"dob":          s.DOB,
		"gender":       s.Gender,
		"phone":        s.Phone,
		"parent_name":  s.ParentName,
		"parent_phone": s.ParentPhone,
		"address":      s.Address,
		"bus_stop_id":  s.BusStopID,
	}
}
