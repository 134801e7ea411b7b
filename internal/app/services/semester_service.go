package services

import (
	"context"
	"errors"
	"time"

	"github.com/aksoyb/schedly/internal/app/models"
	"github.com/aksoyb/schedly/internal/app/models/dto"
	"github.com/aksoyb/schedly/internal/app/repositories"
	"github.com/aksoyb/schedly/internal/pkg/apperrors"
	"github.com/aksoyb/schedly/internal/pkg/logger"
)

const semesterDateLayout = "2006-01-02"

// SemesterService manages academic terms.
type SemesterService struct {
	semesterRepo *repositories.SemesterRepository
}

// NewSemesterService creates a new SemesterService.
func NewSemesterService(semesterRepo *repositories.SemesterRepository) *SemesterService {
	return &SemesterService{semesterRepo: semesterRepo}
}

// CreateSemester creates a term. New terms are inactive until activated.
func (s *SemesterService) CreateSemester(ctx context.Context, req *dto.CreateSemesterRequest) (*models.Semester, error) {
	start, err := time.Parse(semesterDateLayout, req.StartDate)
	if err != nil {
		return nil, apperrors.NewValidationError("startDate must be formatted as YYYY-MM-DD")
	}
	end, err := time.Parse(semesterDateLayout, req.EndDate)
	if err != nil {
		return nil, apperrors.NewValidationError("endDate must be formatted as YYYY-MM-DD")
	}
	if !end.After(start) {
		return nil, apperrors.NewValidationError("endDate must be after startDate")
	}

	semester := &models.Semester{
		Name:      req.Name,
		Year:      req.Year,
		StartDate: start,
		EndDate:   end,
	}
	if err := s.semesterRepo.Create(ctx, semester); err != nil {
		return nil, err
	}

	logger.Info().Int64("semesterId", semester.ID).Str("name", semester.Name).Msg("Semester created")
	return semester, nil
}

// GetSemester returns one term by ID.
func (s *SemesterService) GetSemester(ctx context.Context, id int64) (*models.Semester, error) {
	semester, err := s.semesterRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrSemesterNotFound) {
			return nil, apperrors.ErrSemesterNotFound
		}
		return nil, err
	}
	return semester, nil
}

// GetAllSemesters lists every term.
func (s *SemesterService) GetAllSemesters(ctx context.Context) ([]*models.Semester, error) {
	return s.semesterRepo.GetAll(ctx)
}

// ActivateSemester makes one term the active term, deactivating the rest.
func (s *SemesterService) ActivateSemester(ctx context.Context, id int64) error {
	err := s.semesterRepo.Activate(ctx, id)
	if errors.Is(err, repositories.ErrSemesterNotFound) {
		return apperrors.ErrSemesterNotFound
	}
	return err
}
