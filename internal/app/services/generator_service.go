package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/aksoyb/schedly/internal/app/models"
	"github.com/aksoyb/schedly/internal/app/models/dto"
	"github.com/aksoyb/schedly/internal/app/repositories"
	"github.com/aksoyb/schedly/internal/pkg/apperrors"
	"github.com/aksoyb/schedly/internal/pkg/helpers"
	"github.com/aksoyb/schedly/internal/pkg/logger"
	"github.com/samber/lo"
)

// GeneratorService proposes draft schedules for every unscheduled section of
// a semester. It is a greedy first-fit pass, not an optimizer: sections are
// taken in catalog order and each one gets the first conflict-free slot and
// room, so the same inputs always produce the same proposal. Existing
// schedules are never touched; everything it emits is a draft.
type GeneratorService struct {
	scheduleStore  ScheduleStore
	sectionStore   SectionStore
	semesterStore  SemesterStore
	doctorStore    DoctorStore
	classroomStore ClassroomStore
	timeSlotStore  TimeSlotStore
}

// NewGeneratorService creates a new GeneratorService.
func NewGeneratorService(scheduleStore ScheduleStore, sectionStore SectionStore, semesterStore SemesterStore, doctorStore DoctorStore, classroomStore ClassroomStore, timeSlotStore TimeSlotStore) *GeneratorService {
	return &GeneratorService{
		scheduleStore:  scheduleStore,
		sectionStore:   sectionStore,
		semesterStore:  semesterStore,
		doctorStore:    doctorStore,
		classroomStore: classroomStore,
		timeSlotStore:  timeSlotStore,
	}
}

// Generate places every unscheduled section it can and reports the rest with
// reasons. Sections are processed by course code then section number, slots
// by weekday then start time, classrooms from largest to smallest.
func (s *GeneratorService) Generate(ctx context.Context, semesterID int64) (*dto.GenerateResponse, error) {
	if _, err := s.semesterStore.GetByID(ctx, semesterID); err != nil {
		if errors.Is(err, repositories.ErrSemesterNotFound) {
			return nil, apperrors.ErrSemesterNotFound
		}
		return nil, referenceUnavailable(err)
	}

	sections, err := s.sectionStore.GetUnscheduled(ctx, semesterID)
	if err != nil {
		return nil, referenceUnavailable(err)
	}
	slots, err := s.timeSlotStore.GetBySemester(ctx, semesterID)
	if err != nil {
		return nil, referenceUnavailable(err)
	}
	if len(slots) == 0 {
		return nil, apperrors.NewValidationError("semester has no time slots to generate from")
	}
	classrooms, err := s.classroomStore.GetAll(ctx, true)
	if err != nil {
		return nil, referenceUnavailable(err)
	}
	existing, err := s.scheduleStore.GetBySemester(ctx, semesterID)
	if err != nil {
		return nil, err
	}

	// The repository orders by day name, which is alphabetical. Re-sort into
	// calendar order so Monday slots are tried before Tuesday slots.
	sort.SliceStable(slots, func(i, j int) bool {
		di, _ := helpers.DayIndex(slots[i].Day)
		dj, _ := helpers.DayIndex(slots[j].Day)
		if di != dj {
			return di < dj
		}
		return slots[i].StartTime < slots[j].StartTime
	})

	resp := &dto.GenerateResponse{
		Unassigned: []dto.UnassignedSection{},
		Conflicts:  []models.Conflict{},
	}
	doctors := map[int64]*models.Doctor{}

	for _, section := range sections {
		doctor, ok := doctors[section.DoctorID]
		if !ok {
			doctor, err = s.doctorStore.GetByID(ctx, section.DoctorID)
			if err != nil {
				return nil, referenceUnavailable(err)
			}
			doctors[section.DoctorID] = doctor
		}

		if !doctor.IsAvailable {
			resp.Unassigned = append(resp.Unassigned, unassigned(section, fmt.Sprintf("doctor %s is not available", doctor.FullName())))
			continue
		}

		fitting := lo.Filter(classrooms, func(c *models.Classroom, _ int) bool {
			return c.Capacity >= section.Capacity
		})
		if len(fitting) == 0 {
			resp.Unassigned = append(resp.Unassigned, unassigned(section, fmt.Sprintf("no classroom holds %d students", section.Capacity)))
			continue
		}

		placement, blocking := s.placeSection(section, slots, fitting, existing)
		if placement == nil {
			resp.Unassigned = append(resp.Unassigned, unassigned(section, "every slot and classroom combination conflicts"))
			resp.Conflicts = append(resp.Conflicts, blocking...)
			continue
		}

		warnings := s.loadWarnings(ctx, doctor, semesterID)
		if err := s.scheduleStore.Create(ctx, placement); err != nil {
			return nil, err
		}
		existing = append(existing, placement)
		resp.Generated++
		resp.Warnings = append(resp.Warnings, warnings...)
	}

	logger.Info().
		Int64("semesterId", semesterID).
		Int("generated", resp.Generated).
		Int("unassigned", len(resp.Unassigned)).
		Msg("Generation run finished")

	return resp, nil
}

// placeSection tries every slot and classroom in order and returns the first
// conflict-free draft, or the conflicts that blocked every attempt.
func (s *GeneratorService) placeSection(section *models.Section, slots []*models.TimeSlot, classrooms []*models.Classroom, existing []*models.Schedule) (*models.Schedule, []models.Conflict) {
	blocking := []models.Conflict{}
	for _, slot := range slots {
		for _, room := range classrooms {
			candidate := Candidate{
				SemesterID:  section.SemesterID,
				SectionID:   section.ID,
				DoctorID:    section.DoctorID,
				ClassroomID: room.ID,
				Slots: []models.ScheduleSlot{{
					Day:       slot.Day,
					StartTime: slot.StartTime,
					EndTime:   slot.EndTime,
					Type:      section.Type,
				}},
			}
			conflicts := DetectConflicts(candidate, existing)
			if len(conflicts) == 0 {
				return &models.Schedule{
					SemesterID:  section.SemesterID,
					SectionID:   section.ID,
					CourseID:    section.CourseID,
					DoctorID:    section.DoctorID,
					ClassroomID: room.ID,
					Status:      models.StatusDraft,
					Slots:       candidate.Slots,
				}, nil
			}
			blocking = append(blocking, conflicts...)
		}
	}
	return nil, blocking
}

// loadWarnings reports when placing one more schedule pushes a doctor to or
// past their course limit. The limit is advisory; generation still proceeds.
func (s *GeneratorService) loadWarnings(ctx context.Context, doctor *models.Doctor, semesterID int64) []string {
	if doctor.MaxCourses <= 0 {
		return nil
	}
	current, err := s.doctorStore.CountActiveSchedules(ctx, doctor.ID, semesterID)
	if err != nil {
		logger.Warn().Err(err).Int64("doctorId", doctor.ID).Msg("Could not count doctor load")
		return nil
	}
	total := current + 1
	if total > doctor.MaxCourses {
		return []string{fmt.Sprintf("%s now has %d schedules, above the limit of %d", doctor.FullName(), total, doctor.MaxCourses)}
	}
	return nil
}

func unassigned(section *models.Section, reason string) dto.UnassignedSection {
	courseCode := ""
	if section.Course != nil {
		courseCode = section.Course.Code
	}
	return dto.UnassignedSection{
		SectionID:     section.ID,
		CourseCode:    courseCode,
		SectionNumber: section.SectionNumber,
		Reason:        reason,
	}
}
