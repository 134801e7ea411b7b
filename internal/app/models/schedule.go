package models

import "time"

// ScheduleSlot is one weekly meeting entry of a schedule.
type ScheduleSlot struct {
	ID         int64       `json:"id" db:"id"`
	ScheduleID int64       `json:"scheduleId" db:"schedule_id"`
	Day        string      `json:"day" db:"day"`
	StartTime  string      `json:"startTime" db:"start_time"`
	EndTime    string      `json:"endTime" db:"end_time"`
	Type       SectionType `json:"type" db:"type"`
}

// Schedule binds a section to a doctor, a classroom and one or more weekly
// meeting slots. It owns the lifecycle status; cancelled schedules are kept
// for audit and excluded from conflict checks.
type Schedule struct {
	ID          int64          `json:"id" db:"id"`
	SemesterID  int64          `json:"semesterId" db:"semester_id"`
	SectionID   int64          `json:"sectionId" db:"section_id"`
	CourseID    int64          `json:"courseId" db:"course_id"`
	DoctorID    int64          `json:"doctorId" db:"doctor_id"`
	ClassroomID int64          `json:"classroomId" db:"classroom_id"`
	Status      ScheduleStatus `json:"status" db:"status"`
	Notes       *string        `json:"notes,omitempty" db:"notes"` // Nullable
	CreatedAt   time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time      `json:"updatedAt" db:"updated_at"`

	Slots []ScheduleSlot `json:"slots"`

	// Relations (populated when needed)
	Section   *Section   `json:"section,omitempty"`
	Course    *Course    `json:"course,omitempty"`
	Doctor    *Doctor    `json:"doctor,omitempty"`
	Classroom *Classroom `json:"classroom,omitempty"`
}

// Active reports whether the schedule participates in conflict checks.
func (s *Schedule) Active() bool {
	return s.Status != StatusCancelled
}
