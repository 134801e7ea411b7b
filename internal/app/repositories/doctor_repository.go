package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aksoyb/schedly/internal/app/models"
	"github.com/aksoyb/schedly/internal/pkg/dberrors"
)

// Doctor error types
var (
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrDoctorAlreadyExists = errors.New("doctor with this email already exists")
)

// DoctorRepository handles database operations for teaching staff
type DoctorRepository struct {
	db *pgxpool.Pool
}

// NewDoctorRepository creates a new doctor repository
func NewDoctorRepository(db *pgxpool.Pool) *DoctorRepository {
	return &DoctorRepository{
		db: db,
	}
}

// Create creates a new doctor
func (r *DoctorRepository) Create(ctx context.Context, doctor *models.Doctor) error {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM doctors WHERE email = $1)`, doctor.Email).Scan(&exists)
	if err != nil {
		return fmt.Errorf("error checking doctor existence: %w", err)
	}
	if exists {
		return ErrDoctorAlreadyExists
	}

	query := `
		INSERT INTO doctors (first_name, last_name, email, title, max_courses, is_available)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err = r.db.QueryRow(ctx, query,
		doctor.FirstName, doctor.LastName, doctor.Email, doctor.Title,
		doctor.MaxCourses, doctor.IsAvailable,
	).Scan(&doctor.ID)
	if err != nil {
		// A concurrent insert can slip past the existence check.
		if dberrors.IsUniqueViolation(err) {
			return ErrDoctorAlreadyExists
		}
		return fmt.Errorf("error creating doctor: %w", err)
	}

	return nil
}

// GetByID retrieves a doctor by ID
func (r *DoctorRepository) GetByID(ctx context.Context, id int64) (*models.Doctor, error) {
	query := `
		SELECT id, first_name, last_name, email, title, max_courses, is_available
		FROM doctors
		WHERE id = $1
	`

	var doctor models.Doctor
	err := r.db.QueryRow(ctx, query, id).Scan(
		&doctor.ID,
		&doctor.FirstName,
		&doctor.LastName,
		&doctor.Email,
		&doctor.Title,
		&doctor.MaxCourses,
		&doctor.IsAvailable,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDoctorNotFound
		}
		return nil, fmt.Errorf("error retrieving doctor: %w", err)
	}

	return &doctor, nil
}

// GetAll retrieves all doctors ordered by last name
func (r *DoctorRepository) GetAll(ctx context.Context) ([]*models.Doctor, error) {
	query := `
		SELECT id, first_name, last_name, email, title, max_courses, is_available
		FROM doctors
		ORDER BY last_name, first_name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var doctors []*models.Doctor
	for rows.Next() {
		var doctor models.Doctor
		if err := rows.Scan(
			&doctor.ID,
			&doctor.FirstName,
			&doctor.LastName,
			&doctor.Email,
			&doctor.Title,
			&doctor.MaxCourses,
			&doctor.IsAvailable,
		); err != nil {
			return nil, err
		}
		doctors = append(doctors, &doctor)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return doctors, nil
}

// CountActiveSchedules returns the doctor's current load: the number of
// non-cancelled schedules assigned to them in the given semester.
func (r *DoctorRepository) CountActiveSchedules(ctx context.Context, doctorID, semesterID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM schedules
		WHERE doctor_id = $1 AND semester_id = $2 AND status != 'CANCELLED'`,
		doctorID, semesterID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting doctor schedules: %w", err)
	}

	return count, nil
}

// Update updates an existing doctor
func (r *DoctorRepository) Update(ctx context.Context, doctor *models.Doctor) error {
	query := `
		UPDATE doctors
		SET first_name = $1, last_name = $2, email = $3, title = $4,
		    max_courses = $5, is_available = $6
		WHERE id = $7
	`

	cmdTag, err := r.db.Exec(ctx, query,
		doctor.FirstName, doctor.LastName, doctor.Email, doctor.Title,
		doctor.MaxCourses, doctor.IsAvailable, doctor.ID)
	if err != nil {
		return fmt.Errorf("error updating doctor: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrDoctorNotFound
	}

	return nil
}
