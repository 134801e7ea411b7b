package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aksoyb/schedly/internal/pkg/logger"
)

// weekly windows created for a fresh semester
var defaultWindows = []struct {
	start string
	end   string
}{
	{"09:00", "11:00"},
	{"11:00", "13:00"},
	{"14:00", "16:00"},
	{"16:00", "18:00"},
}

var defaultDays = []string{"Monday", "Tuesday", "Wednesday", "Thursday"}

// CreateDefaultData seeds a first semester with a standard slot grid when
// the database is empty, so a fresh install can schedule immediately.
func CreateDefaultData(ctx context.Context, db *pgxpool.Pool) error {
	var count int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM semesters`).Scan(&count); err != nil {
		return fmt.Errorf("error counting semesters: %w", err)
	}
	if count > 0 {
		logger.Debug().Msg("Semesters already present, skipping seed")
		return nil
	}

	now := time.Now()
	name := "Fall"
	start := time.Date(now.Year(), time.September, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(now.Year(), time.December, 20, 0, 0, 0, 0, time.UTC)
	if now.Month() < time.June {
		name = "Spring"
		start = time.Date(now.Year(), time.February, 1, 0, 0, 0, 0, time.UTC)
		end = time.Date(now.Year(), time.May, 30, 0, 0, 0, 0, time.UTC)
	}

	var semesterID int64
	err := db.QueryRow(ctx, `
		INSERT INTO semesters (name, year, start_date, end_date, is_active)
		VALUES ($1, $2, $3, $4, TRUE)
		RETURNING id`,
		name, now.Year(), start, end,
	).Scan(&semesterID)
	if err != nil {
		return fmt.Errorf("error seeding semester: %w", err)
	}

	for _, day := range defaultDays {
		for _, window := range defaultWindows {
			_, err := db.Exec(ctx, `
				INSERT INTO time_slots (semester_id, day, start_time, end_time)
				VALUES ($1, $2, $3, $4)`,
				semesterID, day, window.start, window.end)
			if err != nil {
				return fmt.Errorf("error seeding time slots: %w", err)
			}
		}
	}

	logger.Info().
		Int64("semesterId", semesterID).
		Str("name", fmt.Sprintf("%s %d", name, now.Year())).
		Msg("Seeded default semester and time slot grid")

	return nil
}
