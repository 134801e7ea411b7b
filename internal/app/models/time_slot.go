package models

// TimeSlot represents a reusable weekly time window scoped to a semester.
// Day is a full weekday name ("Monday".."Sunday"); times are "HH:MM" 24-hour
// strings with EndTime strictly after StartTime.
type TimeSlot struct {
	ID         int64   `json:"id" db:"id"`
	SemesterID int64   `json:"semesterId" db:"semester_id"`
	Day        string  `json:"day" db:"day"`
	StartTime  string  `json:"startTime" db:"start_time"`
	EndTime    string  `json:"endTime" db:"end_time"`
	Label      *string `json:"label,omitempty" db:"label"` // Nullable
}
