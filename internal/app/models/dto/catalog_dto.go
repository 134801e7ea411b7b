package dto

// CreateSemesterRequest creates an academic term.
type CreateSemesterRequest struct {
	Name      string `json:"name" binding:"required"`
	Year      int    `json:"year" binding:"required,min=2000"`
	StartDate string `json:"startDate" binding:"required"` // "2006-01-02"
	EndDate   string `json:"endDate" binding:"required"`
}

// CreateCourseRequest creates a catalog course.
type CreateCourseRequest struct {
	Code        string  `json:"code" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description,omitempty"`
	Credits     int     `json:"credits" binding:"required,min=1"`
}

// CreateDoctorRequest registers a teaching staff member.
type CreateDoctorRequest struct {
	FirstName   string  `json:"firstName" binding:"required"`
	LastName    string  `json:"lastName" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	Title       *string `json:"title,omitempty"`
	MaxCourses  int     `json:"maxCourses" binding:"required,min=1"`
	IsAvailable *bool   `json:"isAvailable,omitempty"`
}

// CreateClassroomRequest registers a room.
type CreateClassroomRequest struct {
	Name        string  `json:"name" binding:"required"`
	Building    *string `json:"building,omitempty"`
	Capacity    int     `json:"capacity" binding:"required,min=1"`
	IsAvailable *bool   `json:"isAvailable,omitempty"`
}

// CreateTimeSlotRequest creates a weekly time window for a semester.
type CreateTimeSlotRequest struct {
	SemesterID int64   `json:"semesterId" binding:"required"`
	Day        string  `json:"day" binding:"required,weekday"`
	StartTime  string  `json:"startTime" binding:"required,clock"`
	EndTime    string  `json:"endTime" binding:"required,clock"`
	Label      *string `json:"label,omitempty"`
}
