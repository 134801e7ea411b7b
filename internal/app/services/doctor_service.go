package services

import (
	"context"
	"errors"

	"github.com/aksoyb/schedly/internal/app/models"
	"github.com/aksoyb/schedly/internal/app/models/dto"
	"github.com/aksoyb/schedly/internal/app/repositories"
	"github.com/aksoyb/schedly/internal/pkg/apperrors"
)

// DoctorService manages teaching staff records.
type DoctorService struct {
	doctorRepo *repositories.DoctorRepository
}

// NewDoctorService creates a new DoctorService.
func NewDoctorService(doctorRepo *repositories.DoctorRepository) *DoctorService {
	return &DoctorService{doctorRepo: doctorRepo}
}

// CreateDoctor registers a doctor. Doctors are available unless stated.
func (s *DoctorService) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*models.Doctor, error) {
	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}
	doctor := &models.Doctor{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Title:       req.Title,
		MaxCourses:  req.MaxCourses,
		IsAvailable: available,
	}
	if err := s.doctorRepo.Create(ctx, doctor); err != nil {
		if errors.Is(err, repositories.ErrDoctorAlreadyExists) {
			return nil, apperrors.NewCustomError(apperrors.ErrResourceAlreadyExists, "a doctor with this email already exists")
		}
		return nil, err
	}
	return doctor, nil
}

// GetDoctor returns one doctor by ID.
func (s *DoctorService) GetDoctor(ctx context.Context, id int64) (*models.Doctor, error) {
	doctor, err := s.doctorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrDoctorNotFound) {
			return nil, apperrors.ErrDoctorNotFound
		}
		return nil, err
	}
	return doctor, nil
}

// GetAllDoctors lists every doctor.
func (s *DoctorService) GetAllDoctors(ctx context.Context) ([]*models.Doctor, error) {
	return s.doctorRepo.GetAll(ctx)
}

// UpdateDoctor replaces a doctor's editable fields.
func (s *DoctorService) UpdateDoctor(ctx context.Context, doctor *models.Doctor) error {
	err := s.doctorRepo.Update(ctx, doctor)
	if errors.Is(err, repositories.ErrDoctorNotFound) {
		return apperrors.ErrDoctorNotFound
	}
	return err
}
