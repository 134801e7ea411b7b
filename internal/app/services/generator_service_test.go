package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aksoyb/schedly/internal/app/models"
)

type generatorFixture struct {
	svc        *GeneratorService
	validation *ValidationService
	schedules  *fakeScheduleStore
	sections   *fakeSectionStore
	doctors    *fakeDoctorStore
}

func newGeneratorFixture(sections []*models.Section, doctors []*models.Doctor, classrooms []*models.Classroom, slots []*models.TimeSlot) *generatorFixture {
	semesters := newFakeSemesterStore(&models.Semester{ID: 1, Name: "Fall", Year: 2026})
	courses := newFakeCourseStore(
		&models.Course{ID: 1, Code: "CS101", Name: "Intro to Computing", Credits: 3},
		&models.Course{ID: 2, Code: "MA201", Name: "Linear Algebra", Credits: 4},
	)
	doctorStore := newFakeDoctorStore(doctors...)
	classroomStore := newFakeClassroomStore(classrooms...)
	slotStore := newFakeTimeSlotStore(slots...)
	sectionStore := newFakeSectionStore(courses, sections...)
	scheduleStore := newFakeScheduleStore(sectionStore)
	doctorStore.schedules = scheduleStore

	return &generatorFixture{
		svc:        NewGeneratorService(scheduleStore, sectionStore, semesters, doctorStore, classroomStore, slotStore),
		validation: NewValidationService(scheduleStore, semesters),
		schedules:  scheduleStore,
		sections:   sectionStore,
		doctors:    doctorStore,
	}
}

func defaultGeneratorFixture() *generatorFixture {
	return newGeneratorFixture(
		[]*models.Section{
			{ID: 1, SemesterID: 1, CourseID: 1, DoctorID: 1, SectionNumber: "001", Type: models.SectionLecture, Capacity: 40},
			{ID: 2, SemesterID: 1, CourseID: 1, DoctorID: 1, SectionNumber: "002", Type: models.SectionLecture, Capacity: 40},
			{ID: 3, SemesterID: 1, CourseID: 2, DoctorID: 2, SectionNumber: "001", Type: models.SectionLecture, Capacity: 25},
		},
		[]*models.Doctor{
			{ID: 1, FirstName: "Lina", LastName: "Haddad", Email: "lina@uni.edu", MaxCourses: 3, IsAvailable: true},
			{ID: 2, FirstName: "Omar", LastName: "Said", Email: "omar@uni.edu", MaxCourses: 3, IsAvailable: true},
		},
		[]*models.Classroom{
			{ID: 1, Name: "A-100", Capacity: 100, IsAvailable: true},
			{ID: 2, Name: "A-30", Capacity: 30, IsAvailable: true},
		},
		[]*models.TimeSlot{
			{ID: 1, SemesterID: 1, Day: "Monday", StartTime: "09:00", EndTime: "11:00"},
			{ID: 2, SemesterID: 1, Day: "Monday", StartTime: "11:00", EndTime: "13:00"},
			{ID: 3, SemesterID: 1, Day: "Tuesday", StartTime: "09:00", EndTime: "11:00"},
		},
	)
}

func TestGenerate_PlacesAllSections(t *testing.T) {
	f := defaultGeneratorFixture()

	resp, err := f.svc.Generate(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Generated)
	assert.Empty(t, resp.Unassigned)

	schedules, err := f.schedules.GetBySemester(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, schedules, 3)
	for _, sch := range schedules {
		assert.Equal(t, models.StatusDraft, sch.Status)
		require.Len(t, sch.Slots, 1)
	}
}

func TestGenerate_GreedyOrderIsDeterministic(t *testing.T) {
	run := func() []*models.Schedule {
		f := defaultGeneratorFixture()
		_, err := f.svc.Generate(context.Background(), 1)
		require.NoError(t, err)
		schedules, err := f.schedules.GetBySemester(context.Background(), 1)
		require.NoError(t, err)
		return schedules
	}

	first := run()
	second := run()
	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].SectionID, second[i].SectionID)
		assert.Equal(t, first[i].ClassroomID, second[i].ClassroomID)
		assert.Equal(t, first[i].Slots[0].Day, second[i].Slots[0].Day)
		assert.Equal(t, first[i].Slots[0].StartTime, second[i].Slots[0].StartTime)
	}
}

func TestGenerate_FirstFitTakesEarliestSlotAndLargestRoom(t *testing.T) {
	f := defaultGeneratorFixture()

	_, err := f.svc.Generate(context.Background(), 1)
	require.NoError(t, err)

	schedules, err := f.schedules.GetBySemester(context.Background(), 1)
	require.NoError(t, err)

	// CS101/001 goes first: Monday 09:00 in the biggest room
	first := schedules[0]
	assert.Equal(t, int64(1), first.SectionID)
	assert.Equal(t, int64(1), first.ClassroomID)
	assert.Equal(t, "Monday", first.Slots[0].Day)
	assert.Equal(t, "09:00", first.Slots[0].StartTime)

	// CS101/002 shares the doctor, so it moves to the next window
	second := schedules[1]
	assert.Equal(t, int64(2), second.SectionID)
	assert.Equal(t, "11:00", second.Slots[0].StartTime)
}

func TestGenerate_SelfConsistent(t *testing.T) {
	f := defaultGeneratorFixture()
	ctx := context.Background()

	_, err := f.svc.Generate(ctx, 1)
	require.NoError(t, err)

	resp, err := f.validation.Validate(ctx, 1)
	require.NoError(t, err)
	assert.False(t, resp.HasErrors)
	assert.Empty(t, resp.Conflicts)
}

func TestGenerate_CapacityDisqualification(t *testing.T) {
	f := newGeneratorFixture(
		[]*models.Section{
			{ID: 1, SemesterID: 1, CourseID: 1, DoctorID: 1, SectionNumber: "001", Type: models.SectionLecture, Capacity: 200},
		},
		[]*models.Doctor{
			{ID: 1, FirstName: "Lina", LastName: "Haddad", Email: "lina@uni.edu", MaxCourses: 3, IsAvailable: true},
		},
		[]*models.Classroom{
			{ID: 1, Name: "A-100", Capacity: 100, IsAvailable: true},
		},
		[]*models.TimeSlot{
			{ID: 1, SemesterID: 1, Day: "Monday", StartTime: "09:00", EndTime: "11:00"},
		},
	)

	resp, err := f.svc.Generate(context.Background(), 1)
	require.NoError(t, err)
	assert.Zero(t, resp.Generated)
	require.Len(t, resp.Unassigned, 1)
	assert.Equal(t, "CS101", resp.Unassigned[0].CourseCode)
	assert.Contains(t, resp.Unassigned[0].Reason, "200 students")
	// a room that is too small is not a time conflict
	assert.Empty(t, resp.Conflicts)
}

func TestGenerate_UnavailableDoctor(t *testing.T) {
	f := newGeneratorFixture(
		[]*models.Section{
			{ID: 1, SemesterID: 1, CourseID: 1, DoctorID: 1, SectionNumber: "001", Type: models.SectionLecture, Capacity: 40},
		},
		[]*models.Doctor{
			{ID: 1, FirstName: "Lina", LastName: "Haddad", Email: "lina@uni.edu", MaxCourses: 3, IsAvailable: false},
		},
		[]*models.Classroom{
			{ID: 1, Name: "A-100", Capacity: 100, IsAvailable: true},
		},
		[]*models.TimeSlot{
			{ID: 1, SemesterID: 1, Day: "Monday", StartTime: "09:00", EndTime: "11:00"},
		},
	)

	resp, err := f.svc.Generate(context.Background(), 1)
	require.NoError(t, err)
	assert.Zero(t, resp.Generated)
	require.Len(t, resp.Unassigned, 1)
	assert.Contains(t, resp.Unassigned[0].Reason, "not available")
}

func TestGenerate_ExhaustedSlotsReportConflicts(t *testing.T) {
	// two sections, one doctor, a single window and a single room
	f := newGeneratorFixture(
		[]*models.Section{
			{ID: 1, SemesterID: 1, CourseID: 1, DoctorID: 1, SectionNumber: "001", Type: models.SectionLecture, Capacity: 40},
			{ID: 2, SemesterID: 1, CourseID: 1, DoctorID: 1, SectionNumber: "002", Type: models.SectionLecture, Capacity: 40},
		},
		[]*models.Doctor{
			{ID: 1, FirstName: "Lina", LastName: "Haddad", Email: "lina@uni.edu", MaxCourses: 3, IsAvailable: true},
		},
		[]*models.Classroom{
			{ID: 1, Name: "A-100", Capacity: 100, IsAvailable: true},
		},
		[]*models.TimeSlot{
			{ID: 1, SemesterID: 1, Day: "Monday", StartTime: "09:00", EndTime: "11:00"},
		},
	)

	resp, err := f.svc.Generate(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Generated)
	require.Len(t, resp.Unassigned, 1)
	assert.Equal(t, int64(2), resp.Unassigned[0].SectionID)
	assert.NotEmpty(t, resp.Conflicts)
}

func TestGenerate_DoctorLoadWarning(t *testing.T) {
	f := newGeneratorFixture(
		[]*models.Section{
			{ID: 1, SemesterID: 1, CourseID: 1, DoctorID: 1, SectionNumber: "001", Type: models.SectionLecture, Capacity: 40},
			{ID: 2, SemesterID: 1, CourseID: 1, DoctorID: 1, SectionNumber: "002", Type: models.SectionLecture, Capacity: 40},
		},
		[]*models.Doctor{
			{ID: 1, FirstName: "Lina", LastName: "Haddad", Email: "lina@uni.edu", MaxCourses: 1, IsAvailable: true},
		},
		[]*models.Classroom{
			{ID: 1, Name: "A-100", Capacity: 100, IsAvailable: true},
		},
		[]*models.TimeSlot{
			{ID: 1, SemesterID: 1, Day: "Monday", StartTime: "09:00", EndTime: "11:00"},
			{ID: 2, SemesterID: 1, Day: "Monday", StartTime: "11:00", EndTime: "13:00"},
		},
	)

	resp, err := f.svc.Generate(context.Background(), 1)
	require.NoError(t, err)
	// the limit is advisory, both sections are still placed
	assert.Equal(t, 2, resp.Generated)
	require.NotEmpty(t, resp.Warnings)
	assert.Contains(t, resp.Warnings[0], "above the limit")
}

func TestGenerate_NoTimeSlots(t *testing.T) {
	f := newGeneratorFixture(
		[]*models.Section{
			{ID: 1, SemesterID: 1, CourseID: 1, DoctorID: 1, SectionNumber: "001", Type: models.SectionLecture, Capacity: 40},
		},
		[]*models.Doctor{
			{ID: 1, FirstName: "Lina", LastName: "Haddad", Email: "lina@uni.edu", MaxCourses: 3, IsAvailable: true},
		},
		[]*models.Classroom{
			{ID: 1, Name: "A-100", Capacity: 100, IsAvailable: true},
		},
		nil,
	)

	_, err := f.svc.Generate(context.Background(), 1)
	require.Error(t, err)
}

func TestGenerate_DoesNotTouchExistingSchedules(t *testing.T) {
	f := defaultGeneratorFixture()
	ctx := context.Background()

	// section 3 already has a published schedule occupying Monday 09:00
	published := &models.Schedule{
		SemesterID: 1, SectionID: 3, CourseID: 2, DoctorID: 2, ClassroomID: 1,
		Status: models.StatusPublished,
		Slots:  []models.ScheduleSlot{{Day: "Monday", StartTime: "09:00", EndTime: "11:00", Type: models.SectionLecture}},
	}
	require.NoError(t, f.schedules.Create(ctx, published))

	resp, err := f.svc.Generate(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Generated)

	got, err := f.schedules.GetByID(ctx, published.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPublished, got.Status)
	assert.Equal(t, "09:00", got.Slots[0].StartTime)
}
