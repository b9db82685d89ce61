package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/schoolfm/internal/app/models"
)

// FeeRepository handles fee database operations
type FeeRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewFeeRepository creates a new FeeRepository
func NewFeeRepository(db DBTX) *FeeRepository {
	return &FeeRepository{
		db: db,
		sb: statementBuilder(),
	}
}

// studentFeesQuery orders by due date, undated fees last.
func studentFeesQuery(sb squirrel.StatementBuilderType, studentID int64) squirrel.SelectBuilder {
	return sb.Select("id", "student_id", "amount", "status", "due_date", "fee_type").
		From("fees").
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("due_date NULLS LAST", "id")
}

// GetByStudent lists the fees owed by one student
func (r *FeeRepository) GetByStudent(ctx context.Context, studentID int64) ([]*models.Fee, error) {
	fees, err := queryAll(ctx, r.db, studentFeesQuery(r.sb, studentID), func(row pgx.Row) (*models.Fee, error) {
		f := &models.Fee{}
		return f, row.Scan(&f.ID, &f.StudentID, &f.Amount, &f.Status, &f.DueDate, &f.FeeType)
	})
	if err != nil {
		return nil, fmt.Errorf("error querying fees: %w", err)
	}
	return fees, nil
}

// Create inserts a fee for a student
func (r *FeeRepository) Create(ctx context.Context, fee *models.Fee) (int64, error) {
	return insertReturningID(ctx, r.db, r.sb.Insert("fees").SetMap(feeColumns(fee)))
}

// Update replaces every attribute of a fee
func (r *FeeRepository) Update(ctx context.Context, id int64, fee *models.Fee) (int64, error) {
	q := r.sb.Update("fees").
		SetMap(feeColumns(fee)).
		Where(squirrel.Eq{"id": id})
	return execAffected(ctx, r.db, q, translateWriteError)
}

// Delete removes a fee
func (r *FeeRepository) Delete(ctx context.Context, id int64) (int64, error) {
	return deleteByID(ctx, r.db, r.sb, "fees", id)
}

func feeColumns(f *models.Fee) map[string]interface{} {
	return map[string]interface{}{
		"student_id": f.StudentID,
		"amount":     f.Amount,
		"status":     f.Status,
		"due_date":   f.DueDate,
		"fee_type":   f.FeeType,
	}
}
