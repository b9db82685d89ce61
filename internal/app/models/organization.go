package models

// StaffRole classifies staff members.
type StaffRole struct {
	ID       int64  `json:"id"`
	RoleName string `json:"role_name"`
}

// Class is a grade level, e.g. "Grade 5".
type Class struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Section is a subdivision of a Class with an optional class teacher.
type Section struct {
	ID          int64  `json:"id"`
	ClassID     int64  `json:"class_id"`
	SectionName string `json:"section_name"`
	TeacherID   *int64 `json:"teacher_id"`

	// Joined display fields, populated by listings only.
	ClassName   *string `json:"class_name"`
	TeacherName *string `json:"teacher_name"`
}
