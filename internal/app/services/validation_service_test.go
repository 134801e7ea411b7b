package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aksoyb/schedly/internal/app/models"
	"github.com/aksoyb/schedly/internal/pkg/apperrors"
)

func newValidationFixture(schedules ...*models.Schedule) (*ValidationService, *fakeScheduleStore) {
	semesters := newFakeSemesterStore(&models.Semester{ID: 1, Name: "Fall", Year: 2026})
	store := newFakeScheduleStore(nil, schedules...)
	return NewValidationService(store, semesters), store
}

func TestValidate_CleanSemesterPromotesDrafts(t *testing.T) {
	svc, store := newValidationFixture(
		schedule(1, 10, 20, 30, models.StatusDraft, slot("Monday", "09:00", "11:00")),
		schedule(2, 11, 21, 31, models.StatusDraft, slot("Monday", "09:00", "11:00")),
		schedule(3, 10, 20, 32, models.StatusPublished, slot("Tuesday", "09:00", "11:00")),
	)

	resp, err := svc.Validate(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, resp.HasErrors)
	assert.Equal(t, 2, resp.Validated)

	for _, id := range []int64{1, 2} {
		sch, err := store.GetByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, models.StatusValidated, sch.Status)
	}

	// already published schedules keep their status
	sch, err := store.GetByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPublished, sch.Status)
}

func TestValidate_ConflictsBlockPromotion(t *testing.T) {
	svc, store := newValidationFixture(
		schedule(1, 10, 20, 30, models.StatusDraft, slot("Monday", "09:00", "11:00")),
		schedule(2, 10, 21, 31, models.StatusDraft, slot("Monday", "10:00", "12:00")),
	)

	resp, err := svc.Validate(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, resp.HasErrors)
	require.Len(t, resp.Conflicts, 1)
	assert.Equal(t, models.ConflictDoctor, resp.Conflicts[0].Type)
	assert.Zero(t, resp.Validated)

	// nothing was promoted
	for _, id := range []int64{1, 2} {
		sch, err := store.GetByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, models.StatusDraft, sch.Status)
	}
}

func TestValidate_CancelledSchedulesIgnored(t *testing.T) {
	svc, _ := newValidationFixture(
		schedule(1, 10, 20, 30, models.StatusDraft, slot("Monday", "09:00", "11:00")),
		schedule(2, 10, 20, 31, models.StatusCancelled, slot("Monday", "09:00", "11:00")),
	)

	resp, err := svc.Validate(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, resp.HasErrors)
	assert.Equal(t, 1, resp.Validated)
}

func TestValidate_UnknownSemester(t *testing.T) {
	svc, _ := newValidationFixture()

	_, err := svc.Validate(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrSemesterNotFound)
}

func TestPublish(t *testing.T) {
	svc, store := newValidationFixture(
		schedule(1, 10, 20, 30, models.StatusValidated, slot("Monday", "09:00", "11:00")),
		schedule(2, 11, 21, 31, models.StatusValidated, slot("Monday", "09:00", "11:00")),
	)
	ctx := context.Background()

	resp, err := svc.Publish(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Published)

	for _, id := range []int64{1, 2} {
		sch, err := store.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, models.StatusPublished, sch.Status)
	}
}

func TestPublish_Idempotent(t *testing.T) {
	svc, _ := newValidationFixture(
		schedule(1, 10, 20, 30, models.StatusValidated, slot("Monday", "09:00", "11:00")),
	)
	ctx := context.Background()

	first, err := svc.Publish(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Published)

	second, err := svc.Publish(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, second.Published)
}

func TestPublish_RejectsRemainingDrafts(t *testing.T) {
	svc, store := newValidationFixture(
		schedule(1, 10, 20, 30, models.StatusValidated, slot("Monday", "09:00", "11:00")),
		schedule(2, 11, 21, 31, models.StatusDraft, slot("Tuesday", "09:00", "11:00")),
	)

	_, err := svc.Publish(context.Background(), 1)
	assert.ErrorIs(t, err, apperrors.ErrStateTransition)

	sch, getErr := store.GetByID(context.Background(), 1)
	require.NoError(t, getErr)
	assert.Equal(t, models.StatusValidated, sch.Status)
}

func TestPublish_ReValidatesBeforePromoting(t *testing.T) {
	// both schedules are marked validated but now collide, as if one were
	// moved by hand after the sweep
	svc, _ := newValidationFixture(
		schedule(1, 10, 20, 30, models.StatusValidated, slot("Monday", "09:00", "11:00")),
		schedule(2, 10, 21, 31, models.StatusValidated, slot("Monday", "10:00", "12:00")),
	)

	_, err := svc.Publish(context.Background(), 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrScheduleConflict)
}
