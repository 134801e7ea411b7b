package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aksoyb/schedly/internal/app/models"
)

// TimeSlot error types
var (
	ErrTimeSlotNotFound = errors.New("time slot not found")
)

// TimeSlotRepository handles database operations for weekly time windows
type TimeSlotRepository struct {
	db *pgxpool.Pool
}

// NewTimeSlotRepository creates a new time slot repository
func NewTimeSlotRepository(db *pgxpool.Pool) *TimeSlotRepository {
	return &TimeSlotRepository{
		db: db,
	}
}

// Create creates a new time slot
func (r *TimeSlotRepository) Create(ctx context.Context, slot *models.TimeSlot) error {
	query := `
		INSERT INTO time_slots (semester_id, day, start_time, end_time, label)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		slot.SemesterID, slot.Day, slot.StartTime, slot.EndTime, slot.Label,
	).Scan(&slot.ID)
	if err != nil {
		return fmt.Errorf("error creating time slot: %w", err)
	}

	return nil
}

// GetByID retrieves a time slot by ID
func (r *TimeSlotRepository) GetByID(ctx context.Context, id int64) (*models.TimeSlot, error) {
	query := `
		SELECT id, semester_id, day, start_time, end_time, label
		FROM time_slots
		WHERE id = $1
	`

	var slot models.TimeSlot
	err := r.db.QueryRow(ctx, query, id).Scan(
		&slot.ID,
		&slot.SemesterID,
		&slot.Day,
		&slot.StartTime,
		&slot.EndTime,
		&slot.Label,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTimeSlotNotFound
		}
		return nil, fmt.Errorf("error retrieving time slot: %w", err)
	}

	return &slot, nil
}

// GetBySemester retrieves all time slots for a semester
func (r *TimeSlotRepository) GetBySemester(ctx context.Context, semesterID int64) ([]*models.TimeSlot, error) {
	query := `
		SELECT id, semester_id, day, start_time, end_time, label
		FROM time_slots
		WHERE semester_id = $1
		ORDER BY day, start_time
	`

	rows, err := r.db.Query(ctx, query, semesterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slots []*models.TimeSlot
	for rows.Next() {
		var slot models.TimeSlot
		if err := rows.Scan(
			&slot.ID,
			&slot.SemesterID,
			&slot.Day,
			&slot.StartTime,
			&slot.EndTime,
			&slot.Label,
		); err != nil {
			return nil, err
		}
		slots = append(slots, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return slots, nil
}

// Delete deletes a time slot by ID
func (r *TimeSlotRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM time_slots WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting time slot: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrTimeSlotNotFound
	}

	return nil
}
