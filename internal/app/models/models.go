package models

// Status is the lifecycle state shared by students and staff.
type Status string

const (
	StatusActive Status = "Active"
	StatusLeft   Status = "Left" // archived
)

// Valid reports whether s is one of the two lifecycle states.
func (s Status) Valid() bool {
	return s == StatusActive || s == StatusLeft
}

// DefaultStaffRoles are seeded at initialization. Users may add more.
var DefaultStaffRoles = []string{"Teacher", "Admin", "Principal", "Driver"}
