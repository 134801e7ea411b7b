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

// Section error types
var (
	ErrSectionNotFound = errors.New("section not found")

	// ErrDuplicateSectionNumber maps the unique index on
	// (semester_id, course_id, section_number).
	ErrDuplicateSectionNumber = errors.New("section number already used for this course and semester")

	ErrSectionHasSchedules = errors.New("section has active schedules and cannot be deleted")
)

// sectionNumberConstraint is the unique index backing section numbering.
const sectionNumberConstraint = "sections_semester_course_number_key"

// SectionRepository handles database operations for course sections
type SectionRepository struct {
	db *pgxpool.Pool
}

// NewSectionRepository creates a new section repository
func NewSectionRepository(db *pgxpool.Pool) *SectionRepository {
	return &SectionRepository{
		db: db,
	}
}

// Create creates a new section. A concurrent insert with the same number is
// caught by the unique index and surfaced as ErrDuplicateSectionNumber.
func (r *SectionRepository) Create(ctx context.Context, section *models.Section) error {
	query := `
		INSERT INTO sections (semester_id, course_id, doctor_id, section_number, type, capacity)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		section.SemesterID, section.CourseID, section.DoctorID,
		section.SectionNumber, section.Type, section.Capacity,
	).Scan(&section.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, sectionNumberConstraint) {
			return ErrDuplicateSectionNumber
		}
		return fmt.Errorf("error creating section: %w", err)
	}

	return nil
}

// GetByID retrieves a section by ID
func (r *SectionRepository) GetByID(ctx context.Context, id int64) (*models.Section, error) {
	query := `
		SELECT id, semester_id, course_id, doctor_id, section_number, type, capacity
		FROM sections
		WHERE id = $1
	`

	var section models.Section
	err := r.db.QueryRow(ctx, query, id).Scan(
		&section.ID,
		&section.SemesterID,
		&section.CourseID,
		&section.DoctorID,
		&section.SectionNumber,
		&section.Type,
		&section.Capacity,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSectionNotFound
		}
		return nil, fmt.Errorf("error retrieving section: %w", err)
	}

	return &section, nil
}

// GetBySemester retrieves all sections in a semester, ordered by course code
// then section number so downstream processing is deterministic.
func (r *SectionRepository) GetBySemester(ctx context.Context, semesterID int64) ([]*models.Section, error) {
	query := `
		SELECT s.id, s.semester_id, s.course_id, s.doctor_id, s.section_number, s.type, s.capacity,
		       c.code, c.name
		FROM sections s
		JOIN courses c ON c.id = s.course_id
		WHERE s.semester_id = $1
		ORDER BY c.code, s.section_number
	`

	return r.querySections(ctx, query, semesterID)
}

// GetNumbersForCourse returns the section numbers already taken for a
// (semester, course) pair.
func (r *SectionRepository) GetNumbersForCourse(ctx context.Context, semesterID, courseID int64) ([]string, error) {
	query := `
		SELECT section_number
		FROM sections
		WHERE semester_id = $1 AND course_id = $2
		ORDER BY section_number
	`

	rows, err := r.db.Query(ctx, query, semesterID, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var numbers []string
	for rows.Next() {
		var number string
		if err := rows.Scan(&number); err != nil {
			return nil, err
		}
		numbers = append(numbers, number)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return numbers, nil
}

// GetUnscheduled retrieves the sections of a semester that have no active
// (non-cancelled) schedule yet, ordered by course code then section number.
func (r *SectionRepository) GetUnscheduled(ctx context.Context, semesterID int64) ([]*models.Section, error) {
	query := `
		SELECT s.id, s.semester_id, s.course_id, s.doctor_id, s.section_number, s.type, s.capacity,
		       c.code, c.name
		FROM sections s
		JOIN courses c ON c.id = s.course_id
		WHERE s.semester_id = $1
		  AND NOT EXISTS (
			SELECT 1 FROM schedules sch
			WHERE sch.section_id = s.id AND sch.status != 'CANCELLED'
		  )
		ORDER BY c.code, s.section_number
	`

	return r.querySections(ctx, query, semesterID)
}

// Update updates an existing section
func (r *SectionRepository) Update(ctx context.Context, section *models.Section) error {
	query := `
		UPDATE sections
		SET doctor_id = $1, type = $2, capacity = $3
		WHERE id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query,
		section.DoctorID, section.Type, section.Capacity, section.ID)
	if err != nil {
		return fmt.Errorf("error updating section: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrSectionNotFound
	}

	return nil
}

// Delete deletes a section by ID
func (r *SectionRepository) Delete(ctx context.Context, id int64) error {
	var hasSchedules bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM schedules WHERE section_id = $1 AND status != 'CANCELLED')`,
		id).Scan(&hasSchedules)
	if err != nil {
		return fmt.Errorf("error checking section schedules: %w", err)
	}
	if hasSchedules {
		return ErrSectionHasSchedules
	}

	cmdTag, err := r.db.Exec(ctx, `DELETE FROM sections WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting section: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrSectionNotFound
	}

	return nil
}

// querySections runs a section list query and scans the result set. The
// queries join courses so every section carries its course relation; the
// generator reports unassigned sections by course code.
func (r *SectionRepository) querySections(ctx context.Context, query string, args ...interface{}) ([]*models.Section, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sections []*models.Section
	for rows.Next() {
		var section models.Section
		var course models.Course
		if err := rows.Scan(
			&section.ID,
			&section.SemesterID,
			&section.CourseID,
			&section.DoctorID,
			&section.SectionNumber,
			&section.Type,
			&section.Capacity,
			&course.Code,
			&course.Name,
		); err != nil {
			return nil, err
		}
		course.ID = section.CourseID
		section.Course = &course
		sections = append(sections, &section)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sections, nil
}
