package dto

import "github.com/yigit/schoolfm/internal/app/models"

// StudentRequest is the full set of mutable student attributes, used for both
// create and update. Status is changed only through archive.
type StudentRequest struct {
	Name        string  `json:"name" binding:"required,notblank" example:"Jane"`
	SectionID   *int64  `json:"section_id" binding:"omitempty,gt=0" example:"1"`
	DOB         *string `json:"dob" binding:"omitempty,datetime=2006-01-02" example:"2015-04-12"`
	Gender      *string `json:"gender" example:"Female"`
	Phone       *string `json:"phone"`
	ParentName  *string `json:"parent_name"`
	ParentPhone *string `json:"parent_phone"`
	Address     *string `json:"address"`
	BusStopID   *int64  `json:"bus_stop_id" binding:"omitempty,gt=0"`
}

// ToModel converts the request into a Student.
func (r StudentRequest) ToModel() *models.Student {
	return &models.Student{
		Name:        r.Name,
		SectionID:   r.SectionID,
		DOB:         r.DOB,
		Gender:      r.Gender,
		Phone:       r.Phone,
		ParentName:  r.ParentName,
		ParentPhone: r.ParentPhone,
		Address:     r.Address,
		BusStopID:   r.BusStopID,
	}
}

// StaffRequest is the full set of mutable staff attributes, used for both
// create and update.
type StaffRequest struct {
	Name           string  `json:"name" binding:"required,notblank" example:"Ravi Kumar"`
	RoleID         int64   `json:"role_id" binding:"required,gt=0" example:"1"`
	Phone          *string `json:"phone"`
	DOB            *string `json:"dob" binding:"omitempty,datetime=2006-01-02"`
	Gender         *string `json:"gender"`
	Address        *string `json:"address"`
	HireDate       *string `json:"hire_date" binding:"omitempty,datetime=2006-01-02" example:"2020-06-01"`
	Qualifications *string `json:"qualifications" example:"B.Ed"`
}

// ToModel converts the request into a Staff.
func (r StaffRequest) ToModel() *models.Staff {
	return &models.Staff{
		Name:           r.Name,
		RoleID:         r.RoleID,
		Phone:          r.Phone,
		DOB:            r.DOB,
		Gender:         r.Gender,
		Address:        r.Address,
		HireDate:       r.HireDate,
		Qualifications: r.Qualifications,
	}
}
