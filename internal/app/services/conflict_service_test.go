package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aksoyb/schedly/internal/app/models"
	"github.com/aksoyb/schedly/internal/app/models/dto"
	"github.com/aksoyb/schedly/internal/pkg/apperrors"
)

func schedule(id, doctorID, classroomID, sectionID int64, status models.ScheduleStatus, slots ...models.ScheduleSlot) *models.Schedule {
	return &models.Schedule{
		ID:          id,
		SemesterID:  1,
		SectionID:   sectionID,
		CourseID:    1,
		DoctorID:    doctorID,
		ClassroomID: classroomID,
		Status:      status,
		Slots:       slots,
	}
}

func slot(day, start, end string) models.ScheduleSlot {
	return models.ScheduleSlot{Day: day, StartTime: start, EndTime: end, Type: models.SectionLecture}
}

func TestValidateSlots(t *testing.T) {
	tests := []struct {
		name    string
		slots   []models.ScheduleSlot
		wantErr bool
	}{
		{"valid slot", []models.ScheduleSlot{slot("Monday", "09:00", "10:30")}, false},
		{"no slots", []models.ScheduleSlot{}, true},
		{"unknown day", []models.ScheduleSlot{slot("Funday", "09:00", "10:30")}, true},
		{"missing zero padding", []models.ScheduleSlot{slot("Monday", "9:00", "10:30")}, true},
		{"minutes out of range", []models.ScheduleSlot{slot("Monday", "09:60", "10:30")}, true},
		{"hours out of range", []models.ScheduleSlot{slot("Monday", "24:00", "24:30")}, true},
		{"zero length", []models.ScheduleSlot{slot("Monday", "10:00", "10:00")}, true},
		{"end before start", []models.ScheduleSlot{slot("Monday", "11:00", "10:00")}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSlots(tt.slots)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDetectConflicts_NoOverlap(t *testing.T) {
	existing := []*models.Schedule{
		schedule(1, 10, 20, 30, models.StatusPublished, slot("Monday", "09:00", "10:30")),
	}

	candidate := Candidate{SemesterID: 1, SectionID: 31, DoctorID: 10, ClassroomID: 20,
		Slots: []models.ScheduleSlot{slot("Tuesday", "09:00", "10:30")}}

	assert.Empty(t, DetectConflicts(candidate, existing))
}

func TestDetectConflicts_TouchingSlotsDoNotConflict(t *testing.T) {
	existing := []*models.Schedule{
		schedule(1, 10, 20, 30, models.StatusPublished, slot("Monday", "10:00", "12:00")),
	}

	candidate := Candidate{SemesterID: 1, SectionID: 31, DoctorID: 10, ClassroomID: 20,
		Slots: []models.ScheduleSlot{slot("Monday", "12:00", "14:00")}}
	assert.Empty(t, DetectConflicts(candidate, existing))

	before := Candidate{SemesterID: 1, SectionID: 31, DoctorID: 10, ClassroomID: 20,
		Slots: []models.ScheduleSlot{slot("Monday", "08:00", "10:00")}}
	assert.Empty(t, DetectConflicts(before, existing))
}

func TestDetectConflicts_DoctorOnly(t *testing.T) {
	existing := []*models.Schedule{
		schedule(1, 10, 20, 30, models.StatusValidated, slot("Monday", "09:00", "11:00")),
	}

	candidate := Candidate{SemesterID: 1, SectionID: 31, DoctorID: 10, ClassroomID: 21,
		Slots: []models.ScheduleSlot{slot("Monday", "10:00", "12:00")}}

	conflicts := DetectConflicts(candidate, existing)
	require.Len(t, conflicts, 1)
	assert.Equal(t, models.ConflictDoctor, conflicts[0].Type)
	assert.Equal(t, "Monday", conflicts[0].Day)
}

func TestDetectConflicts_ClassroomOnly(t *testing.T) {
	existing := []*models.Schedule{
		schedule(1, 10, 20, 30, models.StatusDraft, slot("Wednesday", "14:00", "16:00")),
	}

	candidate := Candidate{SemesterID: 1, SectionID: 31, DoctorID: 11, ClassroomID: 20,
		Slots: []models.ScheduleSlot{slot("Wednesday", "15:00", "17:00")}}

	conflicts := DetectConflicts(candidate, existing)
	require.Len(t, conflicts, 1)
	assert.Equal(t, models.ConflictClassroom, conflicts[0].Type)
}

func TestDetectConflicts_AllDimensionsAtOnce(t *testing.T) {
	existing := []*models.Schedule{
		schedule(1, 10, 20, 30, models.StatusPublished, slot("Monday", "09:00", "11:00")),
	}

	candidate := Candidate{SemesterID: 1, SectionID: 30, DoctorID: 10, ClassroomID: 20,
		Slots: []models.ScheduleSlot{slot("Monday", "09:30", "10:30")}}

	conflicts := DetectConflicts(candidate, existing)
	require.Len(t, conflicts, 3)
	types := []models.ConflictType{conflicts[0].Type, conflicts[1].Type, conflicts[2].Type}
	assert.Contains(t, types, models.ConflictDoctor)
	assert.Contains(t, types, models.ConflictClassroom)
	assert.Contains(t, types, models.ConflictSection)
}

func TestDetectConflicts_CancelledSchedulesIgnored(t *testing.T) {
	existing := []*models.Schedule{
		schedule(1, 10, 20, 30, models.StatusCancelled, slot("Monday", "09:00", "11:00")),
	}

	candidate := Candidate{SemesterID: 1, SectionID: 30, DoctorID: 10, ClassroomID: 20,
		Slots: []models.ScheduleSlot{slot("Monday", "09:00", "11:00")}}

	assert.Empty(t, DetectConflicts(candidate, existing))
}

func TestDetectConflicts_ExcludesScheduleBeingEdited(t *testing.T) {
	existing := []*models.Schedule{
		schedule(5, 10, 20, 30, models.StatusDraft, slot("Monday", "09:00", "11:00")),
		schedule(6, 11, 21, 31, models.StatusDraft, slot("Monday", "09:00", "11:00")),
	}

	excludeID := int64(5)
	candidate := Candidate{SemesterID: 1, SectionID: 30, DoctorID: 10, ClassroomID: 20,
		Slots:             []models.ScheduleSlot{slot("Monday", "09:30", "10:30")},
		ExcludeScheduleID: &excludeID}

	assert.Empty(t, DetectConflicts(candidate, existing))
}

func TestDetectConflicts_MultipleSlotPairs(t *testing.T) {
	existing := []*models.Schedule{
		schedule(1, 10, 20, 30, models.StatusPublished,
			slot("Monday", "09:00", "10:00"),
			slot("Wednesday", "09:00", "10:00")),
	}

	candidate := Candidate{SemesterID: 1, SectionID: 31, DoctorID: 10, ClassroomID: 21,
		Slots: []models.ScheduleSlot{
			slot("Monday", "09:30", "10:30"),
			slot("Wednesday", "09:30", "10:30"),
		}}

	conflicts := DetectConflicts(candidate, existing)
	assert.Len(t, conflicts, 2)
}

func TestCheckConflicts(t *testing.T) {
	semesters := newFakeSemesterStore(&models.Semester{ID: 1, Name: "Fall", Year: 2026})
	schedules := newFakeScheduleStore(nil,
		schedule(1, 10, 20, 30, models.StatusPublished, slot("Monday", "09:00", "11:00")))
	svc := NewConflictService(semesters, schedules)

	t.Run("reports conflicts", func(t *testing.T) {
		resp, err := svc.CheckConflicts(context.Background(), &dto.CheckConflictsRequest{
			SemesterID: 1, SectionID: 31, DoctorID: 10, ClassroomID: 21,
			Slots: []dto.ScheduleSlotRequest{{Day: "Monday", StartTime: "10:00", EndTime: "12:00"}},
		})
		require.NoError(t, err)
		assert.True(t, resp.HasConflicts)
		require.Len(t, resp.Conflicts, 1)
		assert.Equal(t, models.ConflictDoctor, resp.Conflicts[0].Type)
	})

	t.Run("clean assignment", func(t *testing.T) {
		resp, err := svc.CheckConflicts(context.Background(), &dto.CheckConflictsRequest{
			SemesterID: 1, SectionID: 31, DoctorID: 11, ClassroomID: 21,
			Slots: []dto.ScheduleSlotRequest{{Day: "Monday", StartTime: "10:00", EndTime: "12:00"}},
		})
		require.NoError(t, err)
		assert.False(t, resp.HasConflicts)
		assert.Empty(t, resp.Conflicts)
	})

	t.Run("malformed slot is a validation error", func(t *testing.T) {
		_, err := svc.CheckConflicts(context.Background(), &dto.CheckConflictsRequest{
			SemesterID: 1, SectionID: 31, DoctorID: 11, ClassroomID: 21,
			Slots: []dto.ScheduleSlotRequest{{Day: "Monday", StartTime: "10:00", EndTime: "9:00"}},
		})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("unknown semester", func(t *testing.T) {
		_, err := svc.CheckConflicts(context.Background(), &dto.CheckConflictsRequest{
			SemesterID: 99, SectionID: 31, DoctorID: 11, ClassroomID: 21,
			Slots: []dto.ScheduleSlotRequest{{Day: "Monday", StartTime: "10:00", EndTime: "12:00"}},
		})
		assert.ErrorIs(t, err, apperrors.ErrSemesterNotFound)
	})

	t.Run("semester store outage", func(t *testing.T) {
		semesters.failWith = errors.New("connection refused")
		defer func() { semesters.failWith = nil }()

		_, err := svc.CheckConflicts(context.Background(), &dto.CheckConflictsRequest{
			SemesterID: 1, SectionID: 31, DoctorID: 11, ClassroomID: 21,
			Slots: []dto.ScheduleSlotRequest{{Day: "Monday", StartTime: "10:00", EndTime: "12:00"}},
		})
		assert.ErrorIs(t, err, apperrors.ErrCollaboratorUnavailable)
	})
}
