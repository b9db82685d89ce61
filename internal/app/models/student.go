package models

// Student is an enrolled pupil. Students are archived, never deleted.
type Student struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	SectionID   *int64  `json:"section_id"`
	DOB         *string `json:"dob"`
	Gender      *string `json:"gender"`
	Phone       *string `json:"phone"`
	ParentName  *string `json:"parent_name"`
	ParentPhone *string `json:"parent_phone"`
	Address     *string `json:"address"`
	BusStopID   *int64  `json:"bus_stop_id"`
	Status      Status  `json:"status"`

	// ClassName is the "<Class> <Section>" label; nil without a section.
	ClassName *string `json:"class_name"`
}
