package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aksoyb/schedly/internal/app/models"
)

// Schedule error types
var (
	ErrScheduleNotFound = errors.New("schedule not found")
)

// ScheduleRepository handles database operations for schedules and their
// meeting slots
type ScheduleRepository struct {
	db *pgxpool.Pool
}

// NewScheduleRepository creates a new schedule repository
func NewScheduleRepository(db *pgxpool.Pool) *ScheduleRepository {
	return &ScheduleRepository{
		db: db,
	}
}

// Create inserts a schedule together with its slots in one transaction.
func (r *ScheduleRepository) Create(ctx context.Context, schedule *models.Schedule) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO schedules (semester_id, section_id, course_id, doctor_id, classroom_id, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err = tx.QueryRow(ctx, query,
		schedule.SemesterID, schedule.SectionID, schedule.CourseID,
		schedule.DoctorID, schedule.ClassroomID, schedule.Status, schedule.Notes,
	).Scan(&schedule.ID, &schedule.CreatedAt, &schedule.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating schedule: %w", err)
	}

	for i := range schedule.Slots {
		slot := &schedule.Slots[i]
		slot.ScheduleID = schedule.ID
		err = tx.QueryRow(ctx, `
			INSERT INTO schedule_slots (schedule_id, day, start_time, end_time, type)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			slot.ScheduleID, slot.Day, slot.StartTime, slot.EndTime, slot.Type,
		).Scan(&slot.ID)
		if err != nil {
			return fmt.Errorf("error creating schedule slot: %w", err)
		}
	}

	return tx.Commit(ctx)
}

// GetByID retrieves a schedule with its slots
func (r *ScheduleRepository) GetByID(ctx context.Context, id int64) (*models.Schedule, error) {
	query := `
		SELECT id, semester_id, section_id, course_id, doctor_id, classroom_id,
		       status, notes, created_at, updated_at
		FROM schedules
		WHERE id = $1
	`

	var schedule models.Schedule
	err := r.db.QueryRow(ctx, query, id).Scan(
		&schedule.ID,
		&schedule.SemesterID,
		&schedule.SectionID,
		&schedule.CourseID,
		&schedule.DoctorID,
		&schedule.ClassroomID,
		&schedule.Status,
		&schedule.Notes,
		&schedule.CreatedAt,
		&schedule.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrScheduleNotFound
		}
		return nil, fmt.Errorf("error retrieving schedule: %w", err)
	}

	if err := r.attachSlots(ctx, []*models.Schedule{&schedule}); err != nil {
		return nil, err
	}

	return &schedule, nil
}

// GetBySemester retrieves all schedules of a semester with their slots.
// Cancelled schedules are included; callers filter by status as needed.
func (r *ScheduleRepository) GetBySemester(ctx context.Context, semesterID int64) ([]*models.Schedule, error) {
	query := `
		SELECT id, semester_id, section_id, course_id, doctor_id, classroom_id,
		       status, notes, created_at, updated_at
		FROM schedules
		WHERE semester_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, semesterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schedules []*models.Schedule
	for rows.Next() {
		var schedule models.Schedule
		if err := rows.Scan(
			&schedule.ID,
			&schedule.SemesterID,
			&schedule.SectionID,
			&schedule.CourseID,
			&schedule.DoctorID,
			&schedule.ClassroomID,
			&schedule.Status,
			&schedule.Notes,
			&schedule.CreatedAt,
			&schedule.UpdatedAt,
		); err != nil {
			return nil, err
		}
		schedules = append(schedules, &schedule)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachSlots(ctx, schedules); err != nil {
		return nil, err
	}

	return schedules, nil
}

// Update rewrites a schedule's assignment and replaces its slots in one
// transaction.
func (r *ScheduleRepository) Update(ctx context.Context, schedule *models.Schedule) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE schedules
		SET doctor_id = $1, classroom_id = $2, status = $3, notes = $4, updated_at = NOW()
		WHERE id = $5
	`

	cmdTag, err := tx.Exec(ctx, query,
		schedule.DoctorID, schedule.ClassroomID, schedule.Status, schedule.Notes, schedule.ID)
	if err != nil {
		return fmt.Errorf("error updating schedule: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrScheduleNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM schedule_slots WHERE schedule_id = $1`, schedule.ID); err != nil {
		return fmt.Errorf("error clearing schedule slots: %w", err)
	}

	for i := range schedule.Slots {
		slot := &schedule.Slots[i]
		slot.ScheduleID = schedule.ID
		err = tx.QueryRow(ctx, `
			INSERT INTO schedule_slots (schedule_id, day, start_time, end_time, type)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			slot.ScheduleID, slot.Day, slot.StartTime, slot.EndTime, slot.Type,
		).Scan(&slot.ID)
		if err != nil {
			return fmt.Errorf("error creating schedule slot: %w", err)
		}
	}

	return tx.Commit(ctx)
}

// UpdateStatus transitions a single schedule to a new lifecycle status.
func (r *ScheduleRepository) UpdateStatus(ctx context.Context, id int64, status models.ScheduleStatus) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE schedules SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("error updating schedule status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrScheduleNotFound
	}

	return nil
}

// attachSlots loads the slots for a set of schedules in one query.
func (r *ScheduleRepository) attachSlots(ctx context.Context, schedules []*models.Schedule) error {
	if len(schedules) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(schedules))
	byID := make(map[int64]*models.Schedule, len(schedules))
	for _, schedule := range schedules {
		ids = append(ids, schedule.ID)
		byID[schedule.ID] = schedule
		schedule.Slots = []models.ScheduleSlot{}
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, schedule_id, day, start_time, end_time, type
		FROM schedule_slots
		WHERE schedule_id = ANY($1)
		ORDER BY schedule_id, day, start_time`, ids)
	if err != nil {
		return fmt.Errorf("error retrieving schedule slots: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var slot models.ScheduleSlot
		if err := rows.Scan(&slot.ID, &slot.ScheduleID, &slot.Day, &slot.StartTime, &slot.EndTime, &slot.Type); err != nil {
			return err
		}
		if schedule, ok := byID[slot.ScheduleID]; ok {
			schedule.Slots = append(schedule.Slots, slot)
		}
	}

	return rows.Err()
}
