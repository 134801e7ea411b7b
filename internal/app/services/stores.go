package services

import (
	"context"
	"fmt"

	"github.com/aksoyb/schedly/internal/app/models"
	"github.com/aksoyb/schedly/internal/pkg/apperrors"
)

// The scheduling services read reference data and persist schedules through
// these narrow store interfaces. The pgx repositories satisfy them; tests use
// in-memory fakes. Reference entities are always re-fetched per request so
// the engine never acts on stale copies.

// SemesterStore reads academic terms.
type SemesterStore interface {
	GetByID(ctx context.Context, id int64) (*models.Semester, error)
}

// CourseStore reads catalog courses.
type CourseStore interface {
	GetByID(ctx context.Context, id int64) (*models.Course, error)
}

// DoctorStore reads teaching staff and their current load.
type DoctorStore interface {
	GetByID(ctx context.Context, id int64) (*models.Doctor, error)
	CountActiveSchedules(ctx context.Context, doctorID, semesterID int64) (int, error)
}

// ClassroomStore reads rooms.
type ClassroomStore interface {
	GetByID(ctx context.Context, id int64) (*models.Classroom, error)
	GetAll(ctx context.Context, availableOnly bool) ([]*models.Classroom, error)
}

// TimeSlotStore reads the weekly windows of a semester.
type TimeSlotStore interface {
	GetBySemester(ctx context.Context, semesterID int64) ([]*models.TimeSlot, error)
}

// SectionStore reads and writes course sections.
type SectionStore interface {
	Create(ctx context.Context, section *models.Section) error
	GetByID(ctx context.Context, id int64) (*models.Section, error)
	GetBySemester(ctx context.Context, semesterID int64) ([]*models.Section, error)
	GetNumbersForCourse(ctx context.Context, semesterID, courseID int64) ([]string, error)
	GetUnscheduled(ctx context.Context, semesterID int64) ([]*models.Section, error)
	Update(ctx context.Context, section *models.Section) error
	Delete(ctx context.Context, id int64) error
}

// referenceUnavailable wraps unexpected store failures on reference-data
// lookups. Not-found cases are mapped to their own sentinels by the callers;
// anything else here usually means the database is unreachable, which clients
// may retry.
func referenceUnavailable(err error) error {
	return fmt.Errorf("%w: %v", apperrors.ErrCollaboratorUnavailable, err)
}

// ScheduleStore reads and writes schedules with their slots.
type ScheduleStore interface {
	Create(ctx context.Context, schedule *models.Schedule) error
	GetByID(ctx context.Context, id int64) (*models.Schedule, error)
	GetBySemester(ctx context.Context, semesterID int64) ([]*models.Schedule, error)
	Update(ctx context.Context, schedule *models.Schedule) error
	UpdateStatus(ctx context.Context, id int64, status models.ScheduleStatus) error
}
