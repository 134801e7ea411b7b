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

type scheduleServiceFixture struct {
	svc       *ScheduleService
	schedules *fakeScheduleStore
	sections  *fakeSectionStore
	doctors   *fakeDoctorStore
}

func newScheduleServiceFixture() *scheduleServiceFixture {
	semesters := newFakeSemesterStore(&models.Semester{ID: 1, Name: "Fall", Year: 2026})
	courses := newFakeCourseStore(&models.Course{ID: 1, Code: "CS101", Name: "Intro to Computing", Credits: 3})
	doctors := newFakeDoctorStore(
		&models.Doctor{ID: 1, FirstName: "Lina", LastName: "Haddad", Email: "lina@uni.edu", MaxCourses: 3, IsAvailable: true},
		&models.Doctor{ID: 2, FirstName: "Omar", LastName: "Said", Email: "omar@uni.edu", MaxCourses: 3, IsAvailable: true},
	)
	classrooms := newFakeClassroomStore(
		&models.Classroom{ID: 1, Name: "B-101", Capacity: 60, IsAvailable: true},
		&models.Classroom{ID: 2, Name: "B-102", Capacity: 40, IsAvailable: true},
	)
	sections := newFakeSectionStore(courses,
		&models.Section{ID: 1, SemesterID: 1, CourseID: 1, DoctorID: 1, SectionNumber: "001", Type: models.SectionLecture, Capacity: 40},
		&models.Section{ID: 2, SemesterID: 1, CourseID: 1, DoctorID: 2, SectionNumber: "002", Type: models.SectionLecture, Capacity: 40},
	)
	schedules := newFakeScheduleStore(sections)
	return &scheduleServiceFixture{
		svc:       NewScheduleService(schedules, sections, semesters, doctors, classrooms),
		schedules: schedules,
		sections:  sections,
		doctors:   doctors,
	}
}

func createRequest(sectionID, doctorID, classroomID int64, slots ...dto.ScheduleSlotRequest) *dto.CreateScheduleRequest {
	return &dto.CreateScheduleRequest{
		SemesterID: 1, SectionID: sectionID, CourseID: 1,
		DoctorID: doctorID, ClassroomID: classroomID, Slots: slots,
	}
}

func slotReq(day, start, end string) dto.ScheduleSlotRequest {
	return dto.ScheduleSlotRequest{Day: day, StartTime: start, EndTime: end, Type: models.SectionLecture}
}

func TestCreateSchedule(t *testing.T) {
	f := newScheduleServiceFixture()
	ctx := context.Background()

	created, err := f.svc.CreateSchedule(ctx, createRequest(1, 1, 1, slotReq("Monday", "09:00", "10:30")))
	require.NoError(t, err)
	assert.Equal(t, models.StatusDraft, created.Status)
	assert.NotZero(t, created.ID)
	require.Len(t, created.Slots, 1)
}

func TestCreateSchedule_RejectsConflict(t *testing.T) {
	f := newScheduleServiceFixture()
	ctx := context.Background()

	_, err := f.svc.CreateSchedule(ctx, createRequest(1, 1, 1, slotReq("Monday", "09:00", "11:00")))
	require.NoError(t, err)

	// same classroom, overlapping time
	_, err = f.svc.CreateSchedule(ctx, createRequest(2, 2, 1, slotReq("Monday", "10:00", "12:00")))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrScheduleConflict)

	var custom *apperrors.CustomError
	require.ErrorAs(t, err, &custom)
	assert.Equal(t, "SCHEDULE_CONFLICT", custom.Code)
	conflicts, ok := custom.Details["conflicts"].([]models.Conflict)
	require.True(t, ok)
	require.Len(t, conflicts, 1)
	assert.Equal(t, models.ConflictClassroom, conflicts[0].Type)
}

func TestCreateSchedule_BackToBackAllowed(t *testing.T) {
	f := newScheduleServiceFixture()
	ctx := context.Background()

	_, err := f.svc.CreateSchedule(ctx, createRequest(1, 1, 1, slotReq("Monday", "10:00", "12:00")))
	require.NoError(t, err)

	_, err = f.svc.CreateSchedule(ctx, createRequest(2, 1, 1, slotReq("Monday", "12:00", "14:00")))
	assert.NoError(t, err)
}

func TestCreateSchedule_SectionMismatch(t *testing.T) {
	f := newScheduleServiceFixture()

	req := createRequest(1, 1, 1, slotReq("Monday", "09:00", "10:30"))
	req.CourseID = 9
	_, err := f.svc.CreateSchedule(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCreateSchedule_OnlyDrafts(t *testing.T) {
	f := newScheduleServiceFixture()

	req := createRequest(1, 1, 1, slotReq("Monday", "09:00", "10:30"))
	req.Status = models.StatusPublished
	_, err := f.svc.CreateSchedule(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCreateSchedule_DoctorStoreOutage(t *testing.T) {
	f := newScheduleServiceFixture()
	f.doctors.failWith = errors.New("connection refused")

	_, err := f.svc.CreateSchedule(context.Background(), createRequest(1, 1, 1, slotReq("Monday", "09:00", "10:30")))
	assert.ErrorIs(t, err, apperrors.ErrCollaboratorUnavailable)
}

func TestUpdateSchedule_ExcludesItself(t *testing.T) {
	f := newScheduleServiceFixture()
	ctx := context.Background()

	created, err := f.svc.CreateSchedule(ctx, createRequest(1, 1, 1, slotReq("Monday", "09:00", "11:00")))
	require.NoError(t, err)

	// shifting within its own window collides only with itself
	updated, err := f.svc.UpdateSchedule(ctx, created.ID, &dto.UpdateScheduleRequest{
		Slots: []dto.ScheduleSlotRequest{slotReq("Monday", "10:00", "12:00")},
	})
	require.NoError(t, err)
	assert.Equal(t, "10:00", updated.Slots[0].StartTime)
}

func TestUpdateSchedule_DemotesValidatedToDraft(t *testing.T) {
	f := newScheduleServiceFixture()
	ctx := context.Background()

	created, err := f.svc.CreateSchedule(ctx, createRequest(1, 1, 1, slotReq("Monday", "09:00", "11:00")))
	require.NoError(t, err)
	require.NoError(t, f.schedules.UpdateStatus(ctx, created.ID, models.StatusValidated))

	updated, err := f.svc.UpdateSchedule(ctx, created.ID, &dto.UpdateScheduleRequest{
		Slots: []dto.ScheduleSlotRequest{slotReq("Tuesday", "09:00", "11:00")},
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusDraft, updated.Status)
}

func TestUpdateSchedule_PublishedCannotMove(t *testing.T) {
	f := newScheduleServiceFixture()
	ctx := context.Background()

	created, err := f.svc.CreateSchedule(ctx, createRequest(1, 1, 1, slotReq("Monday", "09:00", "11:00")))
	require.NoError(t, err)
	require.NoError(t, f.schedules.UpdateStatus(ctx, created.ID, models.StatusPublished))

	_, err = f.svc.UpdateSchedule(ctx, created.ID, &dto.UpdateScheduleRequest{
		Slots: []dto.ScheduleSlotRequest{slotReq("Tuesday", "09:00", "11:00")},
	})
	assert.ErrorIs(t, err, apperrors.ErrStateTransition)

	// notes stay editable after publication
	notes := "moved to overflow list"
	updated, err := f.svc.UpdateSchedule(ctx, created.ID, &dto.UpdateScheduleRequest{Notes: &notes})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPublished, updated.Status)
	require.NotNil(t, updated.Notes)
	assert.Equal(t, notes, *updated.Notes)
}

func TestCancelSchedule(t *testing.T) {
	f := newScheduleServiceFixture()
	ctx := context.Background()

	created, err := f.svc.CreateSchedule(ctx, createRequest(1, 1, 1, slotReq("Monday", "09:00", "11:00")))
	require.NoError(t, err)

	cancelled, err := f.svc.CancelSchedule(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, cancelled.Status)

	// cancelling again is a no-op
	again, err := f.svc.CancelSchedule(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, again.Status)

	// the freed classroom and doctor can be booked at the same time
	_, err = f.svc.CreateSchedule(ctx, createRequest(2, 1, 1, slotReq("Monday", "09:00", "11:00")))
	assert.NoError(t, err)
}

func TestCancelledScheduleCannotBeEdited(t *testing.T) {
	f := newScheduleServiceFixture()
	ctx := context.Background()

	created, err := f.svc.CreateSchedule(ctx, createRequest(1, 1, 1, slotReq("Monday", "09:00", "11:00")))
	require.NoError(t, err)
	_, err = f.svc.CancelSchedule(ctx, created.ID)
	require.NoError(t, err)

	notes := "late note"
	_, err = f.svc.UpdateSchedule(ctx, created.ID, &dto.UpdateScheduleRequest{Notes: &notes})
	assert.ErrorIs(t, err, apperrors.ErrStateTransition)
}

func TestGetSchedulesBySemester_FiltersCancelled(t *testing.T) {
	f := newScheduleServiceFixture()
	ctx := context.Background()

	first, err := f.svc.CreateSchedule(ctx, createRequest(1, 1, 1, slotReq("Monday", "09:00", "11:00")))
	require.NoError(t, err)
	_, err = f.svc.CreateSchedule(ctx, createRequest(2, 2, 2, slotReq("Tuesday", "09:00", "11:00")))
	require.NoError(t, err)
	_, err = f.svc.CancelSchedule(ctx, first.ID)
	require.NoError(t, err)

	active, err := f.svc.GetSchedulesBySemester(ctx, 1, false)
	require.NoError(t, err)
	assert.Len(t, active, 1)

	all, err := f.svc.GetSchedulesBySemester(ctx, 1, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
