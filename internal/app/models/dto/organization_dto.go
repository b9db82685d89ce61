package dto

import (
	"strings"

	"github.com/yigit/schoolfm/internal/app/models"
)

// CreateStaffRoleRequest represents staff role creation data
type CreateStaffRoleRequest struct {
	RoleName string `json:"role_name" binding:"required,notblank" example:"Librarian"`
}

// ToModel converts the request into a StaffRole.
func (r CreateStaffRoleRequest) ToModel() *models.StaffRole {
	return &models.StaffRole{RoleName: strings.TrimSpace(r.RoleName)}
}

// CreateClassRequest represents class creation data
type CreateClassRequest struct {
	Name string `json:"name" binding:"required,notblank" example:"Grade 5"`
}

// ToModel converts the request into a Class.
func (r CreateClassRequest) ToModel() *models.Class {
	return &models.Class{Name: strings.TrimSpace(r.Name)}
}

// CreateSectionRequest represents section creation data
type CreateSectionRequest struct {
	ClassID     int64  `json:"class_id" binding:"required,gt=0" example:"1"`
	SectionName string `json:"section_name" binding:"required,notblank" example:"A"`
	TeacherID   *int64 `json:"teacher_id" binding:"omitempty,gt=0" example:"3"`
}

// ToModel converts the request into a Section.
func (r CreateSectionRequest) ToModel() *models.Section {
	return &models.Section{
		ClassID:     r.ClassID,
		SectionName: strings.TrimSpace(r.SectionName),
		TeacherID:   r.TeacherID,
	}
}
