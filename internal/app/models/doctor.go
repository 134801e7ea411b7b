package models

// Doctor represents a teaching staff member able to take sections.
type Doctor struct {
	ID          int64   `json:"id" db:"id"`
	FirstName   string  `json:"firstName" db:"first_name"`
	LastName    string  `json:"lastName" db:"last_name"`
	Email       string  `json:"email" db:"email"`
	Title       *string `json:"title,omitempty" db:"title"` // Nullable
	MaxCourses  int     `json:"maxCourses" db:"max_courses"`
	IsAvailable bool    `json:"isAvailable" db:"is_available"`
}

// FullName returns the doctor's display name.
func (d *Doctor) FullName() string {
	return d.FirstName + " " + d.LastName
}
