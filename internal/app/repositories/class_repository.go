package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/schoolfm/internal/app/models"
)

// ClassRepository handles class database operations
type ClassRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewClassRepository creates a new ClassRepository
func NewClassRepository(db DBTX) *ClassRepository {
	return &ClassRepository{
		db: db,
		sb: statementBuilder(),
	}
}

// GetAll retrieves every class ordered by id
func (r *ClassRepository) GetAll(ctx context.Context) ([]*models.Class, error) {
	q := r.sb.Select("id", "name").From("classes").OrderBy("id")
	classes, err := queryAll(ctx, r.db, q, func(row pgx.Row) (*models.Class, error) {
		class := &models.Class{}
		return class, row.Scan(&class.ID, &class.Name)
	})
	if err != nil {
		return nil, fmt.Errorf("error querying classes: %w", err)
	}
	return classes, nil
}

// Create inserts a class. A duplicate name is a conflict.
func (r *ClassRepository) Create(ctx context.Context, class *models.Class) (int64, error) {
	return insertReturningID(ctx, r.db, r.sb.Insert("classes").
		Columns("name").
		Values(class.Name))
}

// Delete removes a class together with its fee structures. A class that still
// has sections cannot be deleted.
func (r *ClassRepository) Delete(ctx context.Context, id int64) (int64, error) {
	return deleteByID(ctx, r.db, r.sb, "classes", id)
}
