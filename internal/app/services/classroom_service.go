package services

import (
	"context"
	"errors"

	"github.com/aksoyb/schedly/internal/app/models"
	"github.com/aksoyb/schedly/internal/app/models/dto"
	"github.com/aksoyb/schedly/internal/app/repositories"
	"github.com/aksoyb/schedly/internal/pkg/apperrors"
)

// ClassroomService manages room records.
type ClassroomService struct {
	classroomRepo *repositories.ClassroomRepository
}

// NewClassroomService creates a new ClassroomService.
func NewClassroomService(classroomRepo *repositories.ClassroomRepository) *ClassroomService {
	return &ClassroomService{classroomRepo: classroomRepo}
}

// CreateClassroom registers a room. Rooms are available unless stated.
func (s *ClassroomService) CreateClassroom(ctx context.Context, req *dto.CreateClassroomRequest) (*models.Classroom, error) {
	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}
	classroom := &models.Classroom{
		Name:        req.Name,
		Building:    req.Building,
		Capacity:    req.Capacity,
		IsAvailable: available,
	}
	if err := s.classroomRepo.Create(ctx, classroom); err != nil {
		if errors.Is(err, repositories.ErrClassroomAlreadyExists) {
			return nil, apperrors.NewCustomError(apperrors.ErrResourceAlreadyExists, "a classroom with this name already exists")
		}
		return nil, err
	}
	return classroom, nil
}

// GetClassroom returns one room by ID.
func (s *ClassroomService) GetClassroom(ctx context.Context, id int64) (*models.Classroom, error) {
	classroom, err := s.classroomRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrClassroomNotFound) {
			return nil, apperrors.ErrClassroomNotFound
		}
		return nil, err
	}
	return classroom, nil
}

// GetAllClassrooms lists rooms from largest to smallest.
func (s *ClassroomService) GetAllClassrooms(ctx context.Context, availableOnly bool) ([]*models.Classroom, error) {
	return s.classroomRepo.GetAll(ctx, availableOnly)
}

// UpdateClassroom replaces a room's editable fields.
func (s *ClassroomService) UpdateClassroom(ctx context.Context, classroom *models.Classroom) error {
	err := s.classroomRepo.Update(ctx, classroom)
	if errors.Is(err, repositories.ErrClassroomNotFound) {
		return apperrors.ErrClassroomNotFound
	}
	return err
}
