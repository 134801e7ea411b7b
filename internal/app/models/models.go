package models

// SectionType defines the kind of meeting a section holds.
type SectionType string

const (
	SectionLecture  SectionType = "LECTURE"
	SectionLab      SectionType = "LAB"
	SectionTutorial SectionType = "TUTORIAL"
	SectionSeminar  SectionType = "SEMINAR"
)

// ValidSectionType reports whether t is one of the known section types.
func ValidSectionType(t SectionType) bool {
	switch t {
	case SectionLecture, SectionLab, SectionTutorial, SectionSeminar:
		return true
	}
	return false
}

// ScheduleStatus defines the lifecycle state of a schedule.
type ScheduleStatus string

const (
	StatusDraft     ScheduleStatus = "DRAFT"
	StatusValidated ScheduleStatus = "VALIDATED"
	StatusPublished ScheduleStatus = "PUBLISHED"
	StatusCancelled ScheduleStatus = "CANCELLED"
)

// ValidScheduleStatus reports whether s is one of the known statuses.
func ValidScheduleStatus(s ScheduleStatus) bool {
	switch s {
	case StatusDraft, StatusValidated, StatusPublished, StatusCancelled:
		return true
	}
	return false
}

// ConflictType identifies which resource dimension a conflict was found on.
type ConflictType string

const (
	ConflictDoctor    ConflictType = "DOCTOR"
	ConflictClassroom ConflictType = "CLASSROOM"
	ConflictSection   ConflictType = "SECTION"
)

// Conflict describes one detected double-booking between two schedules.
type Conflict struct {
	Type      ConflictType `json:"type"`
	Message   string       `json:"message"`
	Day       string       `json:"day"`
	StartTime string       `json:"startTime"`
	EndTime   string       `json:"endTime"`
}
