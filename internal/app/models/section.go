package models

// Section represents a numbered offering of a course within a semester,
// taught by one doctor. (SemesterID, CourseID, SectionNumber) is unique;
// the same doctor may teach several numbered sections of one course.
type Section struct {
	ID            int64       `json:"id" db:"id"`
	SemesterID    int64       `json:"semesterId" db:"semester_id"`
	CourseID      int64       `json:"courseId" db:"course_id"`
	DoctorID      int64       `json:"doctorId" db:"doctor_id"`
	SectionNumber string      `json:"sectionNumber" db:"section_number"` // Zero-padded, e.g. "001"
	Type          SectionType `json:"type" db:"type"`
	Capacity      int         `json:"capacity" db:"capacity"`

	// Relations (populated when needed)
	Course *Course `json:"course,omitempty"`
	Doctor *Doctor `json:"doctor,omitempty"`
}
