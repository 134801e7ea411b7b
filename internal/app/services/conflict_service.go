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
	"github.com/samber/lo"
)

// Candidate is a proposed assignment checked against existing schedules.
// It may describe a new schedule or an edit of an existing one, in which
// case ExcludeScheduleID skips the schedule being edited.
type Candidate struct {
	SemesterID        int64
	SectionID         int64
	DoctorID          int64
	ClassroomID       int64
	Slots             []models.ScheduleSlot
	ExcludeScheduleID *int64
}

// ValidateSlots checks day names, HH:MM syntax and slot ordering before any
// overlap computation. A malformed slot is a validation error, never a conflict.
func ValidateSlots(slots []models.ScheduleSlot) error {
	if len(slots) == 0 {
		return apperrors.NewValidationError("at least one meeting slot is required")
	}
	for i, slot := range slots {
		if _, ok := helpers.DayIndex(slot.Day); !ok {
			return apperrors.NewValidationError(fmt.Sprintf("slot %d: unknown day %q", i+1, slot.Day))
		}
		if err := helpers.ValidateClockRange(slot.StartTime, slot.EndTime); err != nil {
			return apperrors.NewValidationError(fmt.Sprintf("slot %d: %s", i+1, err.Error()))
		}
	}
	return nil
}

// DetectConflicts runs the candidate against every active schedule of the
// semester and reports every overlapping slot pair. A single overlap can
// produce several conflicts when the doctor and the classroom collide at once.
// Slots that merely touch (one ends exactly when the other starts) do not
// overlap.
func DetectConflicts(candidate Candidate, existing []*models.Schedule) []models.Conflict {
	conflicts := []models.Conflict{}
	for _, other := range existing {
		if !other.Active() {
			continue
		}
		if candidate.ExcludeScheduleID != nil && other.ID == *candidate.ExcludeScheduleID {
			continue
		}
		for _, slot := range candidate.Slots {
			for _, otherSlot := range other.Slots {
				if slot.Day != otherSlot.Day {
					continue
				}
				if !helpers.ClockOverlaps(slot.StartTime, slot.EndTime, otherSlot.StartTime, otherSlot.EndTime) {
					continue
				}
				conflicts = append(conflicts, overlapConflicts(candidate, other, otherSlot)...)
			}
		}
	}
	return conflicts
}

// overlapConflicts classifies a single overlapping slot pair. The reported
// day and times are those of the already scheduled slot.
func overlapConflicts(candidate Candidate, other *models.Schedule, otherSlot models.ScheduleSlot) []models.Conflict {
	conflicts := []models.Conflict{}
	if candidate.DoctorID == other.DoctorID {
		conflicts = append(conflicts, models.Conflict{
			Type:      models.ConflictDoctor,
			Message:   fmt.Sprintf("doctor is already teaching on %s %s-%s", otherSlot.Day, otherSlot.StartTime, otherSlot.EndTime),
			Day:       otherSlot.Day,
			StartTime: otherSlot.StartTime,
			EndTime:   otherSlot.EndTime,
		})
	}
	if candidate.ClassroomID == other.ClassroomID {
		conflicts = append(conflicts, models.Conflict{
			Type:      models.ConflictClassroom,
			Message:   fmt.Sprintf("classroom is already booked on %s %s-%s", otherSlot.Day, otherSlot.StartTime, otherSlot.EndTime),
			Day:       otherSlot.Day,
			StartTime: otherSlot.StartTime,
			EndTime:   otherSlot.EndTime,
		})
	}
	if candidate.SectionID == other.SectionID {
		conflicts = append(conflicts, models.Conflict{
			Type:      models.ConflictSection,
			Message:   fmt.Sprintf("section already meets on %s %s-%s", otherSlot.Day, otherSlot.StartTime, otherSlot.EndTime),
			Day:       otherSlot.Day,
			StartTime: otherSlot.StartTime,
			EndTime:   otherSlot.EndTime,
		})
	}
	return conflicts
}

// schedulePairConflicts compares two persisted schedules slot by slot. It
// powers the full-semester validation sweep, so messages carry both sides.
func schedulePairConflicts(a, b *models.Schedule) []models.Conflict {
	conflicts := []models.Conflict{}
	for _, slotA := range a.Slots {
		for _, slotB := range b.Slots {
			if slotA.Day != slotB.Day {
				continue
			}
			if !helpers.ClockOverlaps(slotA.StartTime, slotA.EndTime, slotB.StartTime, slotB.EndTime) {
				continue
			}
			if a.DoctorID == b.DoctorID {
				conflicts = append(conflicts, models.Conflict{
					Type:      models.ConflictDoctor,
					Message:   fmt.Sprintf("schedules %d and %d share a doctor on %s %s-%s", a.ID, b.ID, slotA.Day, slotB.StartTime, slotB.EndTime),
					Day:       slotA.Day,
					StartTime: slotB.StartTime,
					EndTime:   slotB.EndTime,
				})
			}
			if a.ClassroomID == b.ClassroomID {
				conflicts = append(conflicts, models.Conflict{
					Type:      models.ConflictClassroom,
					Message:   fmt.Sprintf("schedules %d and %d share a classroom on %s %s-%s", a.ID, b.ID, slotA.Day, slotB.StartTime, slotB.EndTime),
					Day:       slotA.Day,
					StartTime: slotB.StartTime,
					EndTime:   slotB.EndTime,
				})
			}
			if a.SectionID == b.SectionID {
				conflicts = append(conflicts, models.Conflict{
					Type:      models.ConflictSection,
					Message:   fmt.Sprintf("schedules %d and %d cover the same section on %s %s-%s", a.ID, b.ID, slotA.Day, slotB.StartTime, slotB.EndTime),
					Day:       slotA.Day,
					StartTime: slotB.StartTime,
					EndTime:   slotB.EndTime,
				})
			}
		}
	}
	return conflicts
}

// ConflictService answers ad-hoc conflict checks for a proposed assignment.
type ConflictService struct {
	semesterStore SemesterStore
	scheduleStore ScheduleStore
}

// NewConflictService creates a new ConflictService.
func NewConflictService(semesterStore SemesterStore, scheduleStore ScheduleStore) *ConflictService {
	return &ConflictService{
		semesterStore: semesterStore,
		scheduleStore: scheduleStore,
	}
}

// CheckConflicts validates the request and reports every conflict the
// proposed assignment would create in its semester. Cancelled schedules
// never participate.
func (s *ConflictService) CheckConflicts(ctx context.Context, req *dto.CheckConflictsRequest) (*dto.ConflictCheckResponse, error) {
	candidate := Candidate{
		SemesterID:        req.SemesterID,
		SectionID:         req.SectionID,
		DoctorID:          req.DoctorID,
		ClassroomID:       req.ClassroomID,
		Slots:             slotsFromRequests(req.Slots),
		ExcludeScheduleID: req.ExcludeScheduleID,
	}
	if err := ValidateSlots(candidate.Slots); err != nil {
		return nil, err
	}
	if _, err := s.semesterStore.GetByID(ctx, req.SemesterID); err != nil {
		if errors.Is(err, repositories.ErrSemesterNotFound) {
			return nil, apperrors.ErrSemesterNotFound
		}
		return nil, referenceUnavailable(err)
	}

	existing, err := s.scheduleStore.GetBySemester(ctx, req.SemesterID)
	if err != nil {
		return nil, err
	}

	conflicts := DetectConflicts(candidate, existing)
	return &dto.ConflictCheckResponse{
		HasConflicts: len(conflicts) > 0,
		Conflicts:    conflicts,
	}, nil
}

func slotsFromRequests(reqs []dto.ScheduleSlotRequest) []models.ScheduleSlot {
	return lo.Map(reqs, func(r dto.ScheduleSlotRequest, _ int) models.ScheduleSlot {
		return models.ScheduleSlot{
			Day:       r.Day,
			StartTime: r.StartTime,
			EndTime:   r.EndTime,
			Type:      r.Type,
		}
	})
}
