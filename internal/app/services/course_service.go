package services

import (
	"context"
	"errors"
	"strings"

	"github.com/aksoyb/schedly/internal/app/models"
	"github.com/aksoyb/schedly/internal/app/models/dto"
	"github.com/aksoyb/schedly/internal/app/repositories"
	"github.com/aksoyb/schedly/internal/pkg/apperrors"
)

// CourseService manages the course catalog.
type CourseService struct {
	courseRepo *repositories.CourseRepository
}

// NewCourseService creates a new CourseService.
func NewCourseService(courseRepo *repositories.CourseRepository) *CourseService {
	return &CourseService{courseRepo: courseRepo}
}

// CreateCourse creates a catalog course. Codes are stored uppercase.
func (s *CourseService) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	course := &models.Course{
		Code:        strings.ToUpper(strings.TrimSpace(req.Code)),
		Name:        req.Name,
		Description: req.Description,
		Credits:     req.Credits,
	}
	if err := s.courseRepo.Create(ctx, course); err != nil {
		if errors.Is(err, repositories.ErrCourseAlreadyExists) {
			return nil, apperrors.NewCustomError(apperrors.ErrResourceAlreadyExists, "a course with this code already exists")
		}
		return nil, err
	}
	return course, nil
}

// GetCourse returns one course by ID.
func (s *CourseService) GetCourse(ctx context.Context, id int64) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCourseNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, err
	}
	return course, nil
}

// GetAllCourses lists the catalog ordered by code.
func (s *CourseService) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	return s.courseRepo.GetAll(ctx)
}

// DeleteCourse removes a course that has no sections.
func (s *CourseService) DeleteCourse(ctx context.Context, id int64) error {
	err := s.courseRepo.Delete(ctx, id)
	switch {
	case errors.Is(err, repositories.ErrCourseNotFound):
		return apperrors.ErrCourseNotFound
	case errors.Is(err, repositories.ErrCourseHasSections):
		return apperrors.NewStateTransitionError("course has sections and cannot be deleted")
	}
	return err
}
