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

// Classroom error types
var (
	ErrClassroomNotFound      = errors.New("classroom not found")
	ErrClassroomAlreadyExists = errors.New("classroom with this name already exists")
)

// ClassroomRepository handles database operations for classrooms
type ClassroomRepository struct {
	db *pgxpool.Pool
}

// NewClassroomRepository creates a new classroom repository
func NewClassroomRepository(db *pgxpool.Pool) *ClassroomRepository {
	return &ClassroomRepository{
		db: db,
	}
}

// Create creates a new classroom
func (r *ClassroomRepository) Create(ctx context.Context, classroom *models.Classroom) error {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM classrooms WHERE name = $1)`, classroom.Name).Scan(&exists)
	if err != nil {
		return fmt.Errorf("error checking classroom existence: %w", err)
	}
	if exists {
		return ErrClassroomAlreadyExists
	}

	query := `
		INSERT INTO classrooms (name, building, capacity, is_available)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err = r.db.QueryRow(ctx, query,
		classroom.Name, classroom.Building, classroom.Capacity, classroom.IsAvailable,
	).Scan(&classroom.ID)
	if err != nil {
		// A concurrent insert can slip past the existence check.
		if dberrors.IsUniqueViolation(err) {
			return ErrClassroomAlreadyExists
		}
		return fmt.Errorf("error creating classroom: %w", err)
	}

	return nil
}

// GetByID retrieves a classroom by ID
func (r *ClassroomRepository) GetByID(ctx context.Context, id int64) (*models.Classroom, error) {
	query := `
		SELECT id, name, building, capacity, is_available
		FROM classrooms
		WHERE id = $1
	`

	var classroom models.Classroom
	err := r.db.QueryRow(ctx, query, id).Scan(
		&classroom.ID,
		&classroom.Name,
		&classroom.Building,
		&classroom.Capacity,
		&classroom.IsAvailable,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrClassroomNotFound
		}
		return nil, fmt.Errorf("error retrieving classroom: %w", err)
	}

	return &classroom, nil
}

// GetAll retrieves all classrooms. When availableOnly is set, rooms flagged
// unavailable are filtered out.
func (r *ClassroomRepository) GetAll(ctx context.Context, availableOnly bool) ([]*models.Classroom, error) {
	query := `
		SELECT id, name, building, capacity, is_available
		FROM classrooms
	`
	if availableOnly {
		query += ` WHERE is_available`
	}
	query += ` ORDER BY capacity DESC, name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classrooms []*models.Classroom
	for rows.Next() {
		var classroom models.Classroom
		if err := rows.Scan(
			&classroom.ID,
			&classroom.Name,
			&classroom.Building,
			&classroom.Capacity,
			&classroom.IsAvailable,
		); err != nil {
			return nil, err
		}
		classrooms = append(classrooms, &classroom)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return classrooms, nil
}

// Update updates an existing classroom
func (r *ClassroomRepository) Update(ctx context.Context, classroom *models.Classroom) error {
	query := `
		UPDATE classrooms
		SET name = $1, building = $2, capacity = $3, is_available = $4
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		classroom.Name, classroom.Building, classroom.Capacity, classroom.IsAvailable, classroom.ID)
	if err != nil {
		return fmt.Errorf("error updating classroom: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrClassroomNotFound
	}

	return nil
}
