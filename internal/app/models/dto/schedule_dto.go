package dto

import "github.com/aksoyb/schedly/internal/app/models"

// ScheduleSlotRequest is one weekly meeting entry of a candidate assignment.
type ScheduleSlotRequest struct {
	Day       string             `json:"day" binding:"required,weekday"`
	StartTime string             `json:"startTime" binding:"required,clock"`
	EndTime   string             `json:"endTime" binding:"required,clock"`
	Type      models.SectionType `json:"type,omitempty"`
}

// CheckConflictsRequest asks whether a candidate assignment would double-book
// a doctor, classroom or section. ExcludeScheduleID allows edit-in-place
// checks against everything but the schedule being edited.
type CheckConflictsRequest struct {
	SemesterID        int64                 `json:"semesterId" binding:"required"`
	SectionID         int64                 `json:"sectionId" binding:"required"`
	DoctorID          int64                 `json:"doctorId" binding:"required"`
	ClassroomID       int64                 `json:"classroomId" binding:"required"`
	Slots             []ScheduleSlotRequest `json:"slots" binding:"required,min=1,dive"`
	ExcludeScheduleID *int64                `json:"excludeScheduleId,omitempty"`
}

// ConflictCheckResponse carries the detected conflicts, if any.
type ConflictCheckResponse struct {
	HasConflicts bool              `json:"hasConflicts"`
	Conflicts    []models.Conflict `json:"conflicts"`
}

// CreateScheduleRequest places a section into a classroom with meeting slots.
type CreateScheduleRequest struct {
	SemesterID  int64                 `json:"semesterId" binding:"required"`
	SectionID   int64                 `json:"sectionId" binding:"required"`
	CourseID    int64                 `json:"courseId" binding:"required"`
	DoctorID    int64                 `json:"doctorId" binding:"required"`
	ClassroomID int64                 `json:"classroomId" binding:"required"`
	Slots       []ScheduleSlotRequest `json:"slots" binding:"required,min=1,dive"`
	Status      models.ScheduleStatus `json:"status,omitempty"`
	Notes       *string               `json:"notes,omitempty"`
}

// UpdateScheduleRequest edits an existing schedule in place. Omitted fields
// keep their current values.
type UpdateScheduleRequest struct {
	DoctorID    *int64                `json:"doctorId,omitempty"`
	ClassroomID *int64                `json:"classroomId,omitempty"`
	Slots       []ScheduleSlotRequest `json:"slots,omitempty"`
	Notes       *string               `json:"notes,omitempty"`
}

// UnassignedSection explains why the generator could not place a section.
type UnassignedSection struct {
	SectionID     int64  `json:"sectionId"`
	CourseCode    string `json:"courseCode"`
	SectionNumber string `json:"sectionNumber"`
	Reason        string `json:"reason"`
}

// GenerateResponse summarizes one generation run. Warnings carry advisory
// notes, such as a doctor pushed past their course limit, for sections that
// were still placed.
type GenerateResponse struct {
	Generated  int                 `json:"generated"`
	Unassigned []UnassignedSection `json:"unassigned"`
	Conflicts  []models.Conflict   `json:"conflicts"`
	// Advisory notes for placed sections, such as a doctor scheduled beyond
	// their maximum course load.
	Warnings []string `json:"warnings,omitempty"`
}

// ValidateResponse is the result of a full-semester conflict sweep.
type ValidateResponse struct {
	HasErrors bool              `json:"hasErrors"`
	Conflicts []models.Conflict `json:"conflicts"`
	Validated int               `json:"validated"`
}

// PublishResponse reports how many schedules were newly published.
type PublishResponse struct {
	Published int `json:"published"`
}
