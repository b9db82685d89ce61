package models

// Staff is an employee of the school. Staff are archived, never deleted.
type Staff struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	RoleID         int64   `json:"role_id"`
	Phone          *string `json:"phone"`
	DOB            *string `json:"dob"`
	Gender         *string `json:"gender"`
	Address        *string `json:"address"`
	HireDate       *string `json:"hire_date"`
	Qualifications *string `json:"qualifications"`
	Status         Status  `json:"status"`

	RoleName *string `json:"role_name"`
}
