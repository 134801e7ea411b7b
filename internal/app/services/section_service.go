package services

import (
	"context"
	"errors"

	"github.com/aksoyb/schedly/internal/app/models"
	"github.com/aksoyb/schedly/internal/app/models/dto"
	"github.com/aksoyb/schedly/internal/app/repositories"
	"github.com/aksoyb/schedly/internal/pkg/apperrors"
	"github.com/aksoyb/schedly/internal/pkg/logger"
)

// SectionService manages numbered course sections and their numbering.
type SectionService struct {
	sectionStore  SectionStore
	semesterStore SemesterStore
	courseStore   CourseStore
	doctorStore   DoctorStore
}

// NewSectionService creates a new SectionService.
func NewSectionService(sectionStore SectionStore, semesterStore SemesterStore, courseStore CourseStore, doctorStore DoctorStore) *SectionService {
	return &SectionService{
		sectionStore:  sectionStore,
		semesterStore: semesterStore,
		courseStore:   courseStore,
		doctorStore:   doctorStore,
	}
}

// CreateSection creates a section, assigning the lowest free number when the
// request does not name one. A requested number is normalized to its padded
// form first, so "7" and "007" collide with each other.
func (s *SectionService) CreateSection(ctx context.Context, req *dto.CreateSectionRequest) (*models.Section, error) {
	if !models.ValidSectionType(req.Type) {
		return nil, apperrors.NewValidationError("unknown section type: " + string(req.Type))
	}
	if err := s.checkReferences(ctx, req.SemesterID, req.CourseID, req.DoctorID); err != nil {
		return nil, err
	}

	number := req.SectionNumber
	if number != "" {
		normalized, err := NormalizeSectionNumber(number)
		if err != nil {
			return nil, err
		}
		number = normalized
	} else {
		taken, err := s.sectionStore.GetNumbersForCourse(ctx, req.SemesterID, req.CourseID)
		if err != nil {
			return nil, err
		}
		number = NextSectionNumber(taken)
	}

	section := &models.Section{
		SemesterID:    req.SemesterID,
		CourseID:      req.CourseID,
		DoctorID:      req.DoctorID,
		SectionNumber: number,
		Type:          req.Type,
		Capacity:      req.Capacity,
	}

	if err := s.sectionStore.Create(ctx, section); err != nil {
		if errors.Is(err, repositories.ErrDuplicateSectionNumber) {
			return nil, apperrors.ErrDuplicateSection
		}
		return nil, err
	}

	logger.Info().
		Int64("sectionId", section.ID).
		Int64("courseId", section.CourseID).
		Str("sectionNumber", section.SectionNumber).
		Msg("Section created")

	return section, nil
}

// NextNumber reports the number CreateSection would assign right now.
func (s *SectionService) NextNumber(ctx context.Context, semesterID, courseID int64) (*dto.NextSectionNumberResponse, error) {
	if _, err := s.courseStore.GetByID(ctx, courseID); err != nil {
		if errors.Is(err, repositories.ErrCourseNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, referenceUnavailable(err)
	}
	taken, err := s.sectionStore.GetNumbersForCourse(ctx, semesterID, courseID)
	if err != nil {
		return nil, err
	}
	return &dto.NextSectionNumberResponse{SectionNumber: NextSectionNumber(taken)}, nil
}

// GetSection returns one section by ID.
func (s *SectionService) GetSection(ctx context.Context, id int64) (*models.Section, error) {
	section, err := s.sectionStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrSectionNotFound) {
			return nil, apperrors.ErrSectionNotFound
		}
		return nil, err
	}
	return section, nil
}

// GetSectionsBySemester lists a semester's sections ordered by course code
// and section number.
func (s *SectionService) GetSectionsBySemester(ctx context.Context, semesterID int64) ([]*models.Section, error) {
	return s.sectionStore.GetBySemester(ctx, semesterID)
}

// UpdateSection edits a section's doctor, type or capacity.
func (s *SectionService) UpdateSection(ctx context.Context, id int64, req *dto.UpdateSectionRequest) (*models.Section, error) {
	section, err := s.GetSection(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.DoctorID != nil {
		if _, err := s.doctorStore.GetByID(ctx, *req.DoctorID); err != nil {
			if errors.Is(err, repositories.ErrDoctorNotFound) {
				return nil, apperrors.ErrDoctorNotFound
			}
			return nil, referenceUnavailable(err)
		}
		section.DoctorID = *req.DoctorID
	}
	if req.Type != nil {
		if !models.ValidSectionType(*req.Type) {
			return nil, apperrors.NewValidationError("unknown section type: " + string(*req.Type))
		}
		section.Type = *req.Type
	}
	if req.Capacity != nil {
		if *req.Capacity < 1 {
			return nil, apperrors.NewValidationError("capacity must be positive")
		}
		section.Capacity = *req.Capacity
	}

	if err := s.sectionStore.Update(ctx, section); err != nil {
		return nil, err
	}
	return section, nil
}

// DeleteSection removes a section that has no active schedules.
func (s *SectionService) DeleteSection(ctx context.Context, id int64) error {
	err := s.sectionStore.Delete(ctx, id)
	switch {
	case errors.Is(err, repositories.ErrSectionNotFound):
		return apperrors.ErrSectionNotFound
	case errors.Is(err, repositories.ErrSectionHasSchedules):
		return apperrors.NewStateTransitionError("section has active schedules and cannot be deleted")
	}
	return err
}

func (s *SectionService) checkReferences(ctx context.Context, semesterID, courseID, doctorID int64) error {
	if _, err := s.semesterStore.GetByID(ctx, semesterID); err != nil {
		if errors.Is(err, repositories.ErrSemesterNotFound) {
			return apperrors.ErrSemesterNotFound
		}
		return referenceUnavailable(err)
	}
	if _, err := s.courseStore.GetByID(ctx, courseID); err != nil {
		if errors.Is(err, repositories.ErrCourseNotFound) {
			return apperrors.ErrCourseNotFound
		}
		return referenceUnavailable(err)
	}
	if _, err := s.doctorStore.GetByID(ctx, doctorID); err != nil {
		if errors.Is(err, repositories.ErrDoctorNotFound) {
			return apperrors.ErrDoctorNotFound
		}
		return referenceUnavailable(err)
	}
	return nil
}
