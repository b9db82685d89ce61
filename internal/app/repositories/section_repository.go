package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/schoolfm/internal/app/models"
)

// SectionRepository handles section database operations
type SectionRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewSectionRepository creates a new SectionRepository
func NewSectionRepository(db DBTX) *SectionRepository {
	return &SectionRepository{
		db: db,
		sb: statementBuilder(),
	}
}

// sectionListQuery joins the class name and the optional teacher name.
func sectionListQuery(sb squirrel.StatementBuilderType, classID *int64) squirrel.SelectBuilder {
	q := sb.Select(
		"s.id", "s.class_id", "s.section_name", "s.teacher_id",
		"c.name AS class_name", "t.name AS teacher_name",
	).
		From("sections s").
		Join("classes c ON c.id = s.class_id").
		LeftJoin("staff t ON t.id = s.teacher_id").
		OrderBy("s.id")

	if classID != nil {
		q = q.Where(squirrel.Eq{"s.class_id": *classID})
	}
	return q
}

func scanSection(row pgx.Row) (*models.Section, error) {
	s := &models.Section{}
	err := row.Scan(&s.ID, &s.ClassID, &s.SectionName, &s.TeacherID, &s.ClassName, &s.TeacherName)
	return s, err
}

// GetAll retrieves sections, optionally only those of one class
func (r *SectionRepository) GetAll(ctx context.Context, classID *int64) ([]*models.Section, error) {
	sections, err := queryAll(ctx, r.db, sectionListQuery(r.sb, classID), scanSection)
	if err != nil {
		return nil, fmt.Errorf("error querying sections: %w", err)
	}
	return sections, nil
}

// Create inserts a section. The (class_id, section_name) pair is unique.
func (r *SectionRepository) Create(ctx context.Context, section *models.Section) (int64, error) {
	return insertReturningID(ctx, r.db, r.sb.Insert("sections").
		Columns("class_id", "section_name", "teacher_id").
		Values(section.ClassID, section.SectionName, section.TeacherID))
}

// Delete removes a section. Its students keep their rows with no section.
func (r *SectionRepository) Delete(ctx context.Context, id int64) (int64, error) {
	return deleteByID(ctx, r.db, r.sb, "sections", id)
}
