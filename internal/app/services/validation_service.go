package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/aksoyb/schedly/internal/app/models"
	"github.com/aksoyb/schedly/internal/app/models/dto"
	"github.com/aksoyb/schedly/internal/app/repositories"
	"github.com/aksoyb/schedly/internal/pkg/apperrors"
	"github.com/aksoyb/schedly/internal/pkg/logger"
)

// ValidationService runs the full-semester conflict sweep and drives the
// draft, validated, published lifecycle.
type ValidationService struct {
	scheduleStore ScheduleStore
	semesterStore SemesterStore
}

// NewValidationService creates a new ValidationService.
func NewValidationService(scheduleStore ScheduleStore, semesterStore SemesterStore) *ValidationService {
	return &ValidationService{
		scheduleStore: scheduleStore,
		semesterStore: semesterStore,
	}
}

// Validate sweeps every active schedule pair of the semester. When the sweep
// is clean every draft is promoted to validated; when it is not, nothing
// changes and the full conflict list comes back.
func (s *ValidationService) Validate(ctx context.Context, semesterID int64) (*dto.ValidateResponse, error) {
	schedules, err := s.activeSchedules(ctx, semesterID)
	if err != nil {
		return nil, err
	}

	conflicts := sweepConflicts(schedules)
	if len(conflicts) > 0 {
		return &dto.ValidateResponse{
			HasErrors: true,
			Conflicts: conflicts,
		}, nil
	}

	validated := 0
	for _, schedule := range schedules {
		if schedule.Status != models.StatusDraft {
			continue
		}
		if err := s.scheduleStore.UpdateStatus(ctx, schedule.ID, models.StatusValidated); err != nil {
			return nil, err
		}
		validated++
	}

	logger.Info().
		Int64("semesterId", semesterID).
		Int("validated", validated).
		Msg("Semester validated")

	return &dto.ValidateResponse{
		Conflicts: []models.Conflict{},
		Validated: validated,
	}, nil
}

// Publish promotes every validated schedule of the semester to published.
// A semester with remaining drafts cannot be published, and the sweep runs
// again first in case anything changed since validation. Publishing a
// semester whose schedules are already published reports zero.
func (s *ValidationService) Publish(ctx context.Context, semesterID int64) (*dto.PublishResponse, error) {
	schedules, err := s.activeSchedules(ctx, semesterID)
	if err != nil {
		return nil, err
	}

	drafts := 0
	for _, schedule := range schedules {
		if schedule.Status == models.StatusDraft {
			drafts++
		}
	}
	if drafts > 0 {
		return nil, apperrors.NewStateTransitionError(fmt.Sprintf("%d draft schedule(s) must be validated before publishing", drafts))
	}

	if conflicts := sweepConflicts(schedules); len(conflicts) > 0 {
		return nil, apperrors.NewConflictError(
			"semester no longer validates cleanly",
			map[string]interface{}{"conflicts": conflicts},
		)
	}

	published := 0
	for _, schedule := range schedules {
		if schedule.Status != models.StatusValidated {
			continue
		}
		if err := s.scheduleStore.UpdateStatus(ctx, schedule.ID, models.StatusPublished); err != nil {
			return nil, err
		}
		published++
	}

	logger.Info().
		Int64("semesterId", semesterID).
		Int("published", published).
		Msg("Semester published")

	return &dto.PublishResponse{Published: published}, nil
}

func (s *ValidationService) activeSchedules(ctx context.Context, semesterID int64) ([]*models.Schedule, error) {
	if _, err := s.semesterStore.GetByID(ctx, semesterID); err != nil {
		if errors.Is(err, repositories.ErrSemesterNotFound) {
			return nil, apperrors.ErrSemesterNotFound
		}
		return nil, referenceUnavailable(err)
	}
	schedules, err := s.scheduleStore.GetBySemester(ctx, semesterID)
	if err != nil {
		return nil, err
	}
	active := make([]*models.Schedule, 0, len(schedules))
	for _, schedule := range schedules {
		if schedule.Active() {
			active = append(active, schedule)
		}
	}
	return active, nil
}

// sweepConflicts compares every pair of schedules once.
func sweepConflicts(schedules []*models.Schedule) []models.Conflict {
	conflicts := []models.Conflict{}
	for i := 0; i < len(schedules); i++ {
		for j := i + 1; j < len(schedules); j++ {
			conflicts = append(conflicts, schedulePairConflicts(schedules[i], schedules[j])...)
		}
	}
	return conflicts
}
