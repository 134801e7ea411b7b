package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	SemesterRepository  *SemesterRepository
	CourseRepository    *CourseRepository
	DoctorRepository    *DoctorRepository
	ClassroomRepository *ClassroomRepository
	TimeSlotRepository  *TimeSlotRepository
	SectionRepository   *SectionRepository
	ScheduleRepository  *ScheduleRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		SemesterRepository:  NewSemesterRepository(db),
		CourseRepository:    NewCourseRepository(db),
		DoctorRepository:    NewDoctorRepository(db),
		ClassroomRepository: NewClassroomRepository(db),
		TimeSlotRepository:  NewTimeSlotRepository(db),
		SectionRepository:   NewSectionRepository(db),
		ScheduleRepository:  NewScheduleRepository(db),
	}
}
