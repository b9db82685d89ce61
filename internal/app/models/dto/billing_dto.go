package dto

import (
	"strings"

	"github.com/yigit/schoolfm/internal/app/models"
)

// CreateFeeStructureRequest represents fee structure creation data. A missing
// class_id makes the structure apply to every class.
type CreateFeeStructureRequest struct {
	ClassID *int64   `json:"class_id" binding:"omitempty,gt=0" example:"1"`
	FeeType string   `json:"fee_type" binding:"required,notblank" example:"Tuition"`
	Amount  *float64 `json:"amount" binding:"required,gte=0,lt=10000000000" example:"1200"`
}

// ToModel converts the request into a FeeStructure.
func (r CreateFeeStructureRequest) ToModel() *models.FeeStructure {
	return &models.FeeStructure{
		ClassID: r.ClassID,
		FeeType: strings.TrimSpace(r.FeeType),
		Amount:  *r.Amount,
	}
}

// FeeRequest is the full set of fee attributes, used for both create and update.
type FeeRequest struct {
	StudentID int64    `json:"student_id" binding:"required,gt=0" example:"1"`
	Amount    *float64 `json:"amount" binding:"required,gte=0,lt=10000000000" example:"1200"`
	Status    string   `json:"status" binding:"required,notblank" example:"Due"`
	DueDate   *string  `json:"due_date" binding:"omitempty,datetime=2006-01-02" example:"2026-07-10"`
	FeeType   *string  `json:"fee_type" example:"Tuition"`
}

// ToModel converts the request into a Fee.
func (r FeeRequest) ToModel() *models.Fee {
	return &models.Fee{
		StudentID: r.StudentID,
		Amount:    *r.Amount,
		Status:    strings.TrimSpace(r.Status),
		DueDate:   r.DueDate,
		FeeType:   r.FeeType,
	}
}
