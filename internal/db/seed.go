package db

import (
	"database/sql"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/fitsight/fitsight-backend/internal/domain"
)

// Seed replaces a user's workouts and health rows with 40 days of synthetic
// data. Demo tooling only; it is the one place that deletes in bulk.
func Seed(database *sql.DB, userID int64) error {
	var count int
	err := database.QueryRow(`SELECT COUNT(*) FROM users WHERE id = ?`, userID).Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to look up user %d: %w", userID, err)
	}
	if count == 0 {
		return fmt.Errorf("user %d not found", userID)
	}

	tx, err := database.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM workouts WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("failed to clear workouts: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM health_data WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("failed to clear health data: %w", err)
	}

	now := time.Now().UTC()
	baseDate := now.AddDate(0, 0, -40)

	for i := 0; i < 40; i++ {
		currentDate := baseDate.AddDate(0, 0, i)

		totalSleep := 24000 + rand.Intn(8001)
		if _, err := tx.Exec(
			`INSERT INTO health_data (user_id, date, in_bed_seconds, asleep_seconds, deep_seconds,
				core_seconds, rem_seconds, awake_seconds, avg_sleep_bpm, temperature_delta, steps,
				activity_minutes, resting_hr, weight_history, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			userID, currentDate.Format(domain.DateLayout),
			totalSleep+2000, totalSleep,
			int(float64(totalSleep)*0.15), int(float64(totalSleep)*0.60), int(float64(totalSleep)*0.20),
			2000,
			float64(55+rand.Intn(11)),
			float64(rand.Intn(100)-50)/100.0,
			3000+rand.Intn(9001),
			20+rand.Intn(81),
			domain.JSONMap{"avg": float64(58 + rand.Intn(9))},
			domain.JSONMap{"weight": 80.0 - float64(i)*0.1},
			now, now,
		); err != nil {
			return fmt.Errorf("failed to seed health data: %w", err)
		}

		if rand.Float64() <= 0.4 {
			continue
		}

		workoutStart := time.Date(currentDate.Year(), currentDate.Month(), currentDate.Day(), 18, 0, 0, 0, time.UTC)
		workoutEnd := workoutStart.Add(45 * time.Minute)
		distance := 0.0
		if i%2 == 0 {
			distance = 5.2
		}
		types := []string{"Running", "Strength", "HIIT"}

		if _, err := tx.Exec(
			`INSERT INTO workouts (workout_id, user_id, type, bpm, hrv, source, start_time,
				end_time, calories_burned, distance, steps, notes, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			int64(100000+rand.Intn(900000)), userID, types[rand.Intn(len(types))],
			sampleSeries(130, 30, 10), sampleSeries(35, 20, 10),
			"Apple Watch", workoutStart, workoutEnd,
			float64(300+rand.Intn(301)), distance,
			4000+rand.Intn(3001), "Seed data", now,
		); err != nil {
			return fmt.Errorf("failed to seed workout: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed data: %w", err)
	}

	log.Printf("seeded 40 days of data for user %d", userID)
	return nil
}

func sampleSeries(base, spread, n int) domain.FloatSeries {
	series := make(domain.FloatSeries, n)
	for i := range series {
		series[i] = float64(base + rand.Intn(spread+1))
	}
	return series
}
