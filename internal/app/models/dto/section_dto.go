package dto

import "github.com/aksoyb/schedly/internal/app/models"

// CreateSectionRequest creates a numbered section of a course. When
// SectionNumber is empty the next free number is assigned automatically.
type CreateSectionRequest struct {
	SemesterID    int64              `json:"semesterId" binding:"required"`
	CourseID      int64              `json:"courseId" binding:"required"`
	DoctorID      int64              `json:"doctorId" binding:"required"`
	SectionNumber string             `json:"sectionNumber,omitempty"`
	Type          models.SectionType `json:"type" binding:"required"`
	Capacity      int                `json:"capacity" binding:"required,min=1"`
}

// UpdateSectionRequest edits a section. Omitted fields keep their values.
type UpdateSectionRequest struct {
	DoctorID *int64              `json:"doctorId,omitempty"`
	Type     *models.SectionType `json:"type,omitempty"`
	Capacity *int                `json:"capacity,omitempty"`
}

// NextSectionNumberResponse carries the next free zero-padded number.
type NextSectionNumberResponse struct {
	SectionNumber string `json:"sectionNumber"`
}
