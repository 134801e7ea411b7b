package services

import (
	"github.com/aksoyb/schedly/internal/app/repositories"
)

// Services holds all service implementations.
type Services struct {
	SemesterService   *SemesterService
	CourseService     *CourseService
	DoctorService     *DoctorService
	ClassroomService  *ClassroomService
	TimeSlotService   *TimeSlotService
	SectionService    *SectionService
	ScheduleService   *ScheduleService
	ConflictService   *ConflictService
	GeneratorService  *GeneratorService
	ValidationService *ValidationService
}

// NewServices wires every service onto the repository layer.
func NewServices(repos *repositories.Repositories) *Services {
	return &Services{
		SemesterService:  NewSemesterService(repos.SemesterRepository),
		CourseService:    NewCourseService(repos.CourseRepository),
		DoctorService:    NewDoctorService(repos.DoctorRepository),
		ClassroomService: NewClassroomService(repos.ClassroomRepository),
		TimeSlotService:  NewTimeSlotService(repos.TimeSlotRepository, repos.SemesterRepository),
		SectionService: NewSectionService(
			repos.SectionRepository,
			repos.SemesterRepository,
			repos.CourseRepository,
			repos.DoctorRepository,
		),
		ScheduleService: NewScheduleService(
			repos.ScheduleRepository,
			repos.SectionRepository,
			repos.SemesterRepository,
			repos.DoctorRepository,
			repos.ClassroomRepository,
		),
		ConflictService: NewConflictService(repos.SemesterRepository, repos.ScheduleRepository),
		GeneratorService: NewGeneratorService(
			repos.ScheduleRepository,
			repos.SectionRepository,
			repos.SemesterRepository,
			repos.DoctorRepository,
			repos.ClassroomRepository,
			repos.TimeSlotRepository,
		),
		ValidationService: NewValidationService(repos.ScheduleRepository, repos.SemesterRepository),
	}
}
