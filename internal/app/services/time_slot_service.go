package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/aksoyb/schedly/internal/app/models"
	"github.com/aksoyb/schedly/internal/app/models/dto"
	"github.com/aksoyb/schedly/internal/app/repositories"
	"github.com/aksoyb/schedly/internal/pkg/apperrors"
	"github.com/aksoyb/schedly/internal/pkg/helpers"
)

// TimeSlotService manages the weekly windows the generator draws from.
type TimeSlotService struct {
	timeSlotRepo *repositories.TimeSlotRepository
	semesterRepo *repositories.SemesterRepository
}

// NewTimeSlotService creates a new TimeSlotService.
func NewTimeSlotService(timeSlotRepo *repositories.TimeSlotRepository, semesterRepo *repositories.SemesterRepository) *TimeSlotService {
	return &TimeSlotService{
		timeSlotRepo: timeSlotRepo,
		semesterRepo: semesterRepo,
	}
}

// CreateTimeSlot creates a weekly window for a semester.
func (s *TimeSlotService) CreateTimeSlot(ctx context.Context, req *dto.CreateTimeSlotRequest) (*models.TimeSlot, error) {
	if _, ok := helpers.DayIndex(req.Day); !ok {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown day %q", req.Day))
	}
	if err := helpers.ValidateClockRange(req.StartTime, req.EndTime); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if _, err := s.semesterRepo.GetByID(ctx, req.SemesterID); err != nil {
		if errors.Is(err, repositories.ErrSemesterNotFound) {
			return nil, apperrors.ErrSemesterNotFound
		}
		return nil, referenceUnavailable(err)
	}

	slot := &models.TimeSlot{
		SemesterID: req.SemesterID,
		Day:        req.Day,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Label:      req.Label,
	}
	if err := s.timeSlotRepo.Create(ctx, slot); err != nil {
		return nil, err
	}
	return slot, nil
}

// GetTimeSlotsBySemester lists a semester's weekly windows.
func (s *TimeSlotService) GetTimeSlotsBySemester(ctx context.Context, semesterID int64) ([]*models.TimeSlot, error) {
	return s.timeSlotRepo.GetBySemester(ctx, semesterID)
}

// DeleteTimeSlot removes a weekly window.
func (s *TimeSlotService) DeleteTimeSlot(ctx context.Context, id int64) error {
	err := s.timeSlotRepo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrTimeSlotNotFound) {
		return apperrors.ErrTimeSlotNotFound
	}
	return err
}
