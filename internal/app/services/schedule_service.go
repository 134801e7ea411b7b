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
	"github.com/samber/lo"
)

// ScheduleService creates and edits individual schedules, rejecting any
// change that would double-book a doctor, a classroom or a section.
type ScheduleService struct {
	scheduleStore  ScheduleStore
	sectionStore   SectionStore
	semesterStore  SemesterStore
	doctorStore    DoctorStore
	classroomStore ClassroomStore
}

// NewScheduleService creates a new ScheduleService.
func NewScheduleService(scheduleStore ScheduleStore, sectionStore SectionStore, semesterStore SemesterStore, doctorStore DoctorStore, classroomStore ClassroomStore) *ScheduleService {
	return &ScheduleService{
		scheduleStore:  scheduleStore,
		sectionStore:   sectionStore,
		semesterStore:  semesterStore,
		doctorStore:    doctorStore,
		classroomStore: classroomStore,
	}
}

// CreateSchedule places a section into a classroom with meeting slots. New
// schedules always start as drafts. A conflicting assignment is rejected with
// the full conflict list attached.
func (s *ScheduleService) CreateSchedule(ctx context.Context, req *dto.CreateScheduleRequest) (*models.Schedule, error) {
	if req.Status != "" && req.Status != models.StatusDraft {
		return nil, apperrors.NewValidationError("schedules are created as drafts")
	}

	slots := slotsFromRequests(req.Slots)
	if err := ValidateSlots(slots); err != nil {
		return nil, err
	}

	section, err := s.resolveReferences(ctx, req)
	if err != nil {
		return nil, err
	}
	if section.SemesterID != req.SemesterID || section.CourseID != req.CourseID {
		return nil, apperrors.NewValidationError("section does not belong to the given semester and course")
	}

	candidate := Candidate{
		SemesterID:  req.SemesterID,
		SectionID:   req.SectionID,
		DoctorID:    req.DoctorID,
		ClassroomID: req.ClassroomID,
		Slots:       slots,
	}
	if err := s.rejectOnConflict(ctx, candidate); err != nil {
		return nil, err
	}

	schedule := &models.Schedule{
		SemesterID:  req.SemesterID,
		SectionID:   req.SectionID,
		CourseID:    req.CourseID,
		DoctorID:    req.DoctorID,
		ClassroomID: req.ClassroomID,
		Status:      models.StatusDraft,
		Notes:       req.Notes,
		Slots:       slots,
	}
	if err := s.scheduleStore.Create(ctx, schedule); err != nil {
		return nil, err
	}

	logger.Info().
		Int64("scheduleId", schedule.ID).
		Int64("sectionId", schedule.SectionID).
		Int64("semesterId", schedule.SemesterID).
		Msg("Schedule created")

	return schedule, nil
}

// GetSchedule returns one schedule with its slots.
func (s *ScheduleService) GetSchedule(ctx context.Context, id int64) (*models.Schedule, error) {
	schedule, err := s.scheduleStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrScheduleNotFound) {
			return nil, apperrors.ErrScheduleNotFound
		}
		return nil, err
	}
	return schedule, nil
}

// GetSchedulesBySemester lists a semester's schedules. Cancelled schedules
// are included only when requested.
func (s *ScheduleService) GetSchedulesBySemester(ctx context.Context, semesterID int64, includeCancelled bool) ([]*models.Schedule, error) {
	schedules, err := s.scheduleStore.GetBySemester(ctx, semesterID)
	if err != nil {
		return nil, err
	}
	if includeCancelled {
		return schedules, nil
	}
	return lo.Filter(schedules, func(sch *models.Schedule, _ int) bool {
		return sch.Active()
	}), nil
}

// UpdateSchedule edits a schedule in place. Notes may change in any active
// state; moving a published schedule is not allowed, and any assignment
// change demotes a validated schedule back to draft.
func (s *ScheduleService) UpdateSchedule(ctx context.Context, id int64, req *dto.UpdateScheduleRequest) (*models.Schedule, error) {
	schedule, err := s.GetSchedule(ctx, id)
	if err != nil {
		return nil, err
	}
	if schedule.Status == models.StatusCancelled {
		return nil, apperrors.NewStateTransitionError("cancelled schedules cannot be edited")
	}

	assignmentChanged := req.DoctorID != nil || req.ClassroomID != nil || len(req.Slots) > 0
	if assignmentChanged && schedule.Status == models.StatusPublished {
		return nil, apperrors.NewStateTransitionError("published schedules must be cancelled and recreated to be moved")
	}

	if req.DoctorID != nil {
		if _, err := s.doctorStore.GetByID(ctx, *req.DoctorID); err != nil {
			if errors.Is(err, repositories.ErrDoctorNotFound) {
				return nil, apperrors.ErrDoctorNotFound
			}
			return nil, referenceUnavailable(err)
		}
		schedule.DoctorID = *req.DoctorID
	}
	if req.ClassroomID != nil {
		if _, err := s.classroomStore.GetByID(ctx, *req.ClassroomID); err != nil {
			if errors.Is(err, repositories.ErrClassroomNotFound) {
				return nil, apperrors.ErrClassroomNotFound
			}
			return nil, referenceUnavailable(err)
		}
		schedule.ClassroomID = *req.ClassroomID
	}
	if len(req.Slots) > 0 {
		slots := slotsFromRequests(req.Slots)
		if err := ValidateSlots(slots); err != nil {
			return nil, err
		}
		schedule.Slots = slots
	}
	if req.Notes != nil {
		schedule.Notes = req.Notes
	}

	if assignmentChanged {
		candidate := Candidate{
			SemesterID:        schedule.SemesterID,
			SectionID:         schedule.SectionID,
			DoctorID:          schedule.DoctorID,
			ClassroomID:       schedule.ClassroomID,
			Slots:             schedule.Slots,
			ExcludeScheduleID: &schedule.ID,
		}
		if err := s.rejectOnConflict(ctx, candidate); err != nil {
			return nil, err
		}
		// A moved schedule needs to be validated again.
		schedule.Status = models.StatusDraft
	}

	if err := s.scheduleStore.Update(ctx, schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

// CancelSchedule cancels a schedule from any state, freeing its doctor,
// classroom and section. Cancelling twice is a no-op.
func (s *ScheduleService) CancelSchedule(ctx context.Context, id int64) (*models.Schedule, error) {
	schedule, err := s.GetSchedule(ctx, id)
	if err != nil {
		return nil, err
	}
	if schedule.Status == models.StatusCancelled {
		return schedule, nil
	}

	if err := s.scheduleStore.UpdateStatus(ctx, id, models.StatusCancelled); err != nil {
		return nil, err
	}
	schedule.Status = models.StatusCancelled

	logger.Info().
		Int64("scheduleId", id).
		Msg("Schedule cancelled")

	return schedule, nil
}

func (s *ScheduleService) rejectOnConflict(ctx context.Context, candidate Candidate) error {
	existing, err := s.scheduleStore.GetBySemester(ctx, candidate.SemesterID)
	if err != nil {
		return err
	}
	conflicts := DetectConflicts(candidate, existing)
	if len(conflicts) == 0 {
		return nil
	}
	return apperrors.NewConflictError(
		fmt.Sprintf("assignment creates %d conflict(s)", len(conflicts)),
		map[string]interface{}{"conflicts": conflicts},
	)
}

func (s *ScheduleService) resolveReferences(ctx context.Context, req *dto.CreateScheduleRequest) (*models.Section, error) {
	if _, err := s.semesterStore.GetByID(ctx, req.SemesterID); err != nil {
		if errors.Is(err, repositories.ErrSemesterNotFound) {
			return nil, apperrors.ErrSemesterNotFound
		}
		return nil, referenceUnavailable(err)
	}
	section, err := s.sectionStore.GetByID(ctx, req.SectionID)
	if err != nil {
		if errors.Is(err, repositories.ErrSectionNotFound) {
			return nil, apperrors.ErrSectionNotFound
		}
		return nil, referenceUnavailable(err)
	}
	if _, err := s.doctorStore.GetByID(ctx, req.DoctorID); err != nil {
		if errors.Is(err, repositories.ErrDoctorNotFound) {
			return nil, apperrors.ErrDoctorNotFound
		}
		return nil, referenceUnavailable(err)
	}
	if _, err := s.classroomStore.GetByID(ctx, req.ClassroomID); err != nil {
		if errors.Is(err, repositories.ErrClassroomNotFound) {
			return nil, apperrors.ErrClassroomNotFound
		}
		return nil, referenceUnavailable(err)
	}
	return section, nil
}
