package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/schoolfm/internal/app/models"
)

// FeeStructureRepository handles fee structure database operations. It never
// touches the fees table.
type FeeStructureRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewFeeStructureRepository creates a new FeeStructureRepository
func NewFeeStructureRepository(db DBTX) *FeeStructureRepository {
	return &FeeStructureRepository{
		db: db,
		sb: statementBuilder(),
	}
}

func feeStructureListQuery(sb squirrel.StatementBuilderType) squirrel.SelectBuilder {
	return sb.Select("fs.id", "fs.class_id", "fs.fee_type", "fs.amount", "c.name AS class_name").
		From("fee_structures fs").
		LeftJoin("classes c ON c.id = fs.class_id").
		OrderBy("fs.id")
}

// GetAll retrieves every fee structure with its class name
func (r *FeeStructureRepository) GetAll(ctx context.Context) ([]*models.FeeStructure, error) {
	structures, err := queryAll(ctx, r.db, feeStructureListQuery(r.sb), func(row pgx.Row) (*models.FeeStructure, error) {
		f := &models.FeeStructure{}
		return f, row.Scan(&f.ID, &f.ClassID, &f.FeeType, &f.Amount, &f.ClassName)
	})
	if err != nil {
		return nil, fmt.Errorf("error querying fee structures: %w", err)
	}
	return structures, nil
}

// Create inserts a fee structure
func (r *FeeStructureRepository) Create(ctx context.Context, fs *models.FeeStructure) (int64, error) {
	return insertReturningID(ctx, r.db, r.sb.Insert("fee_structures").
		Columns("class_id", "fee_type", "amount").
		Values(fs.ClassID, fs.FeeType, fs.Amount))
}

// Delete removes a fee structure
func (r *FeeStructureRepository) Delete(ctx context.Context, id int64) (int64, error) {
	return deleteByID(ctx, r.db, r.sb, "fee_structures", id)
}
