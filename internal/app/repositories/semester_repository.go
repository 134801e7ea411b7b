package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aksoyb/schedly/internal/app/models"
)

// Semester error types
var (
	ErrSemesterNotFound = errors.New("semester not found")
)

// SemesterRepository handles database operations for semesters
type SemesterRepository struct {
	db *pgxpool.Pool
}

// NewSemesterRepository creates a new semester repository
func NewSemesterRepository(db *pgxpool.Pool) *SemesterRepository {
	return &SemesterRepository{
		db: db,
	}
}

// Create creates a new semester
func (r *SemesterRepository) Create(ctx context.Context, semester *models.Semester) error {
	query := `
		INSERT INTO semesters (name, year, start_date, end_date, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		semester.Name, semester.Year, semester.StartDate, semester.EndDate, semester.IsActive,
	).Scan(&semester.ID)
	if err != nil {
		return fmt.Errorf("error creating semester: %w", err)
	}

	return nil
}

// GetByID retrieves a semester by ID
func (r *SemesterRepository) GetByID(ctx context.Context, id int64) (*models.Semester, error) {
	query := `
		SELECT id, name, year, start_date, end_date, is_active
		FROM semesters
		WHERE id = $1
	`

	var semester models.Semester
	err := r.db.QueryRow(ctx, query, id).Scan(
		&semester.ID,
		&semester.Name,
		&semester.Year,
		&semester.StartDate,
		&semester.EndDate,
		&semester.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSemesterNotFound
		}
		return nil, fmt.Errorf("error retrieving semester: %w", err)
	}

	return &semester, nil
}

// GetAll retrieves all semesters, most recent first
func (r *SemesterRepository) GetAll(ctx context.Context) ([]*models.Semester, error) {
	query := `
		SELECT id, name, year, start_date, end_date, is_active
		FROM semesters
		ORDER BY year DESC, start_date DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var semesters []*models.Semester
	for rows.Next() {
		var semester models.Semester
		if err := rows.Scan(
			&semester.ID,
			&semester.Name,
			&semester.Year,
			&semester.StartDate,
			&semester.EndDate,
			&semester.IsActive,
		); err != nil {
			return nil, err
		}
		semesters = append(semesters, &semester)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return semesters, nil
}

// Activate marks one semester active and clears the flag on every other
// semester in a single transaction.
func (r *SemesterRepository) Activate(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `UPDATE semesters SET is_active = FALSE WHERE is_active`); err != nil {
		return fmt.Errorf("error clearing active semesters: %w", err)
	}

	cmdTag, err := tx.Exec(ctx, `UPDATE semesters SET is_active = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error activating semester: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrSemesterNotFound
	}

	return tx.Commit(ctx)
}

// Update updates an existing semester
func (r *SemesterRepository) Update(ctx context.Context, semester *models.Semester) error {
	query := `
		UPDATE semesters
		SET name = $1, year = $2, start_date = $3, end_date = $4
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		semester.Name, semester.Year, semester.StartDate, semester.EndDate, semester.ID)
	if err != nil {
		return fmt.Errorf("error updating semester: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrSemesterNotFound
	}

	return nil
}
