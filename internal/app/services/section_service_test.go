package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aksoyb/schedly/internal/app/models"
	"github.com/aksoyb/schedly/internal/app/models/dto"
	"github.com/aksoyb/schedly/internal/pkg/apperrors"
)

func newSectionService() (*SectionService, *fakeSectionStore) {
	semesters := newFakeSemesterStore(&models.Semester{ID: 1, Name: "Fall", Year: 2026})
	courses := newFakeCourseStore(&models.Course{ID: 1, Code: "CS101", Name: "Intro to Computing", Credits: 3})
	doctors := newFakeDoctorStore(&models.Doctor{ID: 1, FirstName: "Lina", LastName: "Haddad", Email: "lina@uni.edu", MaxCourses: 3, IsAvailable: true})
	sections := newFakeSectionStore(courses)
	return NewSectionService(sections, semesters, courses, doctors), sections
}

func TestCreateSection_AutoNumbering(t *testing.T) {
	svc, _ := newSectionService()
	ctx := context.Background()

	req := &dto.CreateSectionRequest{
		SemesterID: 1, CourseID: 1, DoctorID: 1,
		Type: models.SectionLecture, Capacity: 40,
	}

	first, err := svc.CreateSection(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "001", first.SectionNumber)

	second, err := svc.CreateSection(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "002", second.SectionNumber)
}

func TestCreateSection_RequestedNumberIsNormalized(t *testing.T) {
	svc, _ := newSectionService()
	ctx := context.Background()

	created, err := svc.CreateSection(ctx, &dto.CreateSectionRequest{
		SemesterID: 1, CourseID: 1, DoctorID: 1, SectionNumber: "7",
		Type: models.SectionLab, Capacity: 25,
	})
	require.NoError(t, err)
	assert.Equal(t, "007", created.SectionNumber)

	// "007" names the same section as "7"
	_, err = svc.CreateSection(ctx, &dto.CreateSectionRequest{
		SemesterID: 1, CourseID: 1, DoctorID: 1, SectionNumber: "007",
		Type: models.SectionLab, Capacity: 25,
	})
	assert.ErrorIs(t, err, apperrors.ErrDuplicateSection)
}

func TestCreateSection_AutoNumberSkipsRequestedOnes(t *testing.T) {
	svc, _ := newSectionService()
	ctx := context.Background()

	_, err := svc.CreateSection(ctx, &dto.CreateSectionRequest{
		SemesterID: 1, CourseID: 1, DoctorID: 1, SectionNumber: "1",
		Type: models.SectionLecture, Capacity: 40,
	})
	require.NoError(t, err)

	created, err := svc.CreateSection(ctx, &dto.CreateSectionRequest{
		SemesterID: 1, CourseID: 1, DoctorID: 1,
		Type: models.SectionLecture, Capacity: 40,
	})
	require.NoError(t, err)
	assert.Equal(t, "002", created.SectionNumber)
}

func TestCreateSection_UnknownReferences(t *testing.T) {
	svc, _ := newSectionService()
	ctx := context.Background()

	_, err := svc.CreateSection(ctx, &dto.CreateSectionRequest{
		SemesterID: 9, CourseID: 1, DoctorID: 1,
		Type: models.SectionLecture, Capacity: 40,
	})
	assert.ErrorIs(t, err, apperrors.ErrSemesterNotFound)

	_, err = svc.CreateSection(ctx, &dto.CreateSectionRequest{
		SemesterID: 1, CourseID: 9, DoctorID: 1,
		Type: models.SectionLecture, Capacity: 40,
	})
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)

	_, err = svc.CreateSection(ctx, &dto.CreateSectionRequest{
		SemesterID: 1, CourseID: 1, DoctorID: 9,
		Type: models.SectionLecture, Capacity: 40,
	})
	assert.ErrorIs(t, err, apperrors.ErrDoctorNotFound)
}

func TestCreateSection_InvalidType(t *testing.T) {
	svc, _ := newSectionService()

	_, err := svc.CreateSection(context.Background(), &dto.CreateSectionRequest{
		SemesterID: 1, CourseID: 1, DoctorID: 1,
		Type: "WORKSHOP", Capacity: 40,
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestNextNumber(t *testing.T) {
	svc, sections := newSectionService()
	ctx := context.Background()

	resp, err := svc.NextNumber(ctx, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, "001", resp.SectionNumber)

	require.NoError(t, sections.Create(ctx, &models.Section{
		SemesterID: 1, CourseID: 1, DoctorID: 1,
		SectionNumber: "001", Type: models.SectionLecture, Capacity: 40,
	}))

	resp, err = svc.NextNumber(ctx, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, "002", resp.SectionNumber)
}
