package services

import (
	"context"
	"sort"

	"github.com/aksoyb/schedly/internal/app/models"
	"github.com/aksoyb/schedly/internal/app/repositories"
)

// In-memory stores backing the service tests. They mirror the repository
// contracts: not-found lookups return the repository sentinels and list
// methods return rows in the same order the SQL would.

type fakeSemesterStore struct {
	semesters map[int64]*models.Semester
	failWith  error
}

func newFakeSemesterStore(semesters ...*models.Semester) *fakeSemesterStore {
	s := &fakeSemesterStore{semesters: map[int64]*models.Semester{}}
	for _, sem := range semesters {
		s.semesters[sem.ID] = sem
	}
	return s
}

func (s *fakeSemesterStore) GetByID(_ context.Context, id int64) (*models.Semester, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	sem, ok := s.semesters[id]
	if !ok {
		return nil, repositories.ErrSemesterNotFound
	}
	return sem, nil
}

type fakeCourseStore struct {
	courses map[int64]*models.Course
}

func newFakeCourseStore(courses ...*models.Course) *fakeCourseStore {
	s := &fakeCourseStore{courses: map[int64]*models.Course{}}
	for _, c := range courses {
		s.courses[c.ID] = c
	}
	return s
}

func (s *fakeCourseStore) GetByID(_ context.Context, id int64) (*models.Course, error) {
	c, ok := s.courses[id]
	if !ok {
		return nil, repositories.ErrCourseNotFound
	}
	return c, nil
}

type fakeDoctorStore struct {
	doctors   map[int64]*models.Doctor
	schedules *fakeScheduleStore
	failWith  error
}

func newFakeDoctorStore(doctors ...*models.Doctor) *fakeDoctorStore {
	s := &fakeDoctorStore{doctors: map[int64]*models.Doctor{}}
	for _, d := range doctors {
		s.doctors[d.ID] = d
	}
	return s
}

func (s *fakeDoctorStore) GetByID(_ context.Context, id int64) (*models.Doctor, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	d, ok := s.doctors[id]
	if !ok {
		return nil, repositories.ErrDoctorNotFound
	}
	return d, nil
}

func (s *fakeDoctorStore) CountActiveSchedules(_ context.Context, doctorID, semesterID int64) (int, error) {
	if s.schedules == nil {
		return 0, nil
	}
	count := 0
	for _, sch := range s.schedules.schedules {
		if sch.DoctorID == doctorID && sch.SemesterID == semesterID && sch.Active() {
			count++
		}
	}
	return count, nil
}

type fakeClassroomStore struct {
	classrooms []*models.Classroom
}

func newFakeClassroomStore(classrooms ...*models.Classroom) *fakeClassroomStore {
	return &fakeClassroomStore{classrooms: classrooms}
}

func (s *fakeClassroomStore) GetByID(_ context.Context, id int64) (*models.Classroom, error) {
	for _, c := range s.classrooms {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, repositories.ErrClassroomNotFound
}

func (s *fakeClassroomStore) GetAll(_ context.Context, availableOnly bool) ([]*models.Classroom, error) {
	out := []*models.Classroom{}
	for _, c := range s.classrooms {
		if availableOnly && !c.IsAvailable {
			continue
		}
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Capacity != out[j].Capacity {
			return out[i].Capacity > out[j].Capacity
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

type fakeTimeSlotStore struct {
	slots []*models.TimeSlot
}

func newFakeTimeSlotStore(slots ...*models.TimeSlot) *fakeTimeSlotStore {
	return &fakeTimeSlotStore{slots: slots}
}

func (s *fakeTimeSlotStore) GetBySemester(_ context.Context, semesterID int64) ([]*models.TimeSlot, error) {
	out := []*models.TimeSlot{}
	for _, slot := range s.slots {
		if slot.SemesterID == semesterID {
			out = append(out, slot)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Day != out[j].Day {
			return out[i].Day < out[j].Day
		}
		return out[i].StartTime < out[j].StartTime
	})
	return out, nil
}

type fakeSectionStore struct {
	sections     map[int64]*models.Section
	scheduledIDs map[int64]bool
	courses      *fakeCourseStore
	nextID       int64
}

func newFakeSectionStore(courses *fakeCourseStore, sections ...*models.Section) *fakeSectionStore {
	s := &fakeSectionStore{
		sections:     map[int64]*models.Section{},
		scheduledIDs: map[int64]bool{},
		courses:      courses,
		nextID:       1,
	}
	for _, sec := range sections {
		s.sections[sec.ID] = sec
		if sec.ID >= s.nextID {
			s.nextID = sec.ID + 1
		}
	}
	return s
}

func (s *fakeSectionStore) Create(_ context.Context, section *models.Section) error {
	for _, existing := range s.sections {
		if existing.SemesterID == section.SemesterID &&
			existing.CourseID == section.CourseID &&
			existing.SectionNumber == section.SectionNumber {
			return repositories.ErrDuplicateSectionNumber
		}
	}
	section.ID = s.nextID
	s.nextID++
	s.sections[section.ID] = section
	return nil
}

func (s *fakeSectionStore) GetByID(_ context.Context, id int64) (*models.Section, error) {
	sec, ok := s.sections[id]
	if !ok {
		return nil, repositories.ErrSectionNotFound
	}
	return sec, nil
}

func (s *fakeSectionStore) GetBySemester(_ context.Context, semesterID int64) ([]*models.Section, error) {
	out := []*models.Section{}
	for _, sec := range s.sections {
		if sec.SemesterID == semesterID {
			out = append(out, s.withCourse(sec))
		}
	}
	s.sortByCatalog(out)
	return out, nil
}

func (s *fakeSectionStore) GetNumbersForCourse(_ context.Context, semesterID, courseID int64) ([]string, error) {
	numbers := []string{}
	for _, sec := range s.sections {
		if sec.SemesterID == semesterID && sec.CourseID == courseID {
			numbers = append(numbers, sec.SectionNumber)
		}
	}
	sort.Strings(numbers)
	return numbers, nil
}

func (s *fakeSectionStore) GetUnscheduled(_ context.Context, semesterID int64) ([]*models.Section, error) {
	out := []*models.Section{}
	for _, sec := range s.sections {
		if sec.SemesterID == semesterID && !s.scheduledIDs[sec.ID] {
			out = append(out, s.withCourse(sec))
		}
	}
	s.sortByCatalog(out)
	return out, nil
}

// withCourse mirrors the repository joins: listing queries always return
// sections with the course relation attached.
func (s *fakeSectionStore) withCourse(sec *models.Section) *models.Section {
	if sec.Course == nil && s.courses != nil {
		if c, ok := s.courses.courses[sec.CourseID]; ok {
			sec.Course = c
		}
	}
	return sec
}

func (s *fakeSectionStore) Update(_ context.Context, section *models.Section) error {
	if _, ok := s.sections[section.ID]; !ok {
		return repositories.ErrSectionNotFound
	}
	s.sections[section.ID] = section
	return nil
}

func (s *fakeSectionStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.sections[id]; !ok {
		return repositories.ErrSectionNotFound
	}
	delete(s.sections, id)
	return nil
}

func (s *fakeSectionStore) sortByCatalog(sections []*models.Section) {
	sort.SliceStable(sections, func(i, j int) bool {
		ci := s.courseCode(sections[i].CourseID)
		cj := s.courseCode(sections[j].CourseID)
		if ci != cj {
			return ci < cj
		}
		return sections[i].SectionNumber < sections[j].SectionNumber
	})
}

func (s *fakeSectionStore) courseCode(courseID int64) string {
	if s.courses == nil {
		return ""
	}
	if c, ok := s.courses.courses[courseID]; ok {
		return c.Code
	}
	return ""
}

type fakeScheduleStore struct {
	schedules map[int64]*models.Schedule
	sections  *fakeSectionStore
	nextID    int64
}

func newFakeScheduleStore(sections *fakeSectionStore, schedules ...*models.Schedule) *fakeScheduleStore {
	s := &fakeScheduleStore{schedules: map[int64]*models.Schedule{}, sections: sections, nextID: 1}
	for _, sch := range schedules {
		s.schedules[sch.ID] = sch
		if sch.ID >= s.nextID {
			s.nextID = sch.ID + 1
		}
		s.markScheduled(sch)
	}
	return s
}

func (s *fakeScheduleStore) Create(_ context.Context, schedule *models.Schedule) error {
	schedule.ID = s.nextID
	s.nextID++
	s.schedules[schedule.ID] = schedule
	s.markScheduled(schedule)
	return nil
}

func (s *fakeScheduleStore) GetByID(_ context.Context, id int64) (*models.Schedule, error) {
	sch, ok := s.schedules[id]
	if !ok {
		return nil, repositories.ErrScheduleNotFound
	}
	return sch, nil
}

func (s *fakeScheduleStore) GetBySemester(_ context.Context, semesterID int64) ([]*models.Schedule, error) {
	out := []*models.Schedule{}
	for _, sch := range s.schedules {
		if sch.SemesterID == semesterID {
			out = append(out, sch)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *fakeScheduleStore) Update(_ context.Context, schedule *models.Schedule) error {
	if _, ok := s.schedules[schedule.ID]; !ok {
		return repositories.ErrScheduleNotFound
	}
	s.schedules[schedule.ID] = schedule
	return nil
}

func (s *fakeScheduleStore) UpdateStatus(_ context.Context, id int64, status models.ScheduleStatus) error {
	sch, ok := s.schedules[id]
	if !ok {
		return repositories.ErrScheduleNotFound
	}
	sch.Status = status
	return nil
}

func (s *fakeScheduleStore) markScheduled(schedule *models.Schedule) {
	if s.sections == nil || !schedule.Active() {
		return
	}
	s.sections.scheduledIDs[schedule.SectionID] = true
}
