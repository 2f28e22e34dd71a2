package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/fitsight/fitsight-backend/internal/domain"
)

type WorkoutRepository struct {
	db *sql.DB
}

func NewWorkoutRepository(db *sql.DB) *WorkoutRepository {
	return &WorkoutRepository{db: db}
}

const workoutColumns = `id, workout_id, user_id, type, bpm, hrv, source, start_time,
	end_time, calories_burned, distance, steps, notes, created_at`

func (r *WorkoutRepository) Create(w *domain.Workout) (int64, error) {
	w.CreatedAt = time.Now().UTC()

	result, err := r.db.Exec(
		`INSERT INTO workouts (workout_id, user_id, type, bpm, hrv, source, start_time,
			end_time, calories_burned, distance, steps, notes, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		w.WorkoutID, w.UserID, w.Type, w.BPM, w.HRV, w.Source, w.StartTime,
		w.EndTime, w.CaloriesBurned, w.Distance, w.Steps, w.Notes, w.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create workout: %w", err)
	}
	return result.LastInsertId()
}

func (r *WorkoutRepository) GetByUserID(userID int64) ([]domain.Workout, error) {
	return r.queryWorkouts(
		`SELECT `+workoutColumns+` FROM workouts WHERE user_id = ?`, userID)
}

// GetRecentByUserID returns up to limit workouts ordered by descending start
// time. A non-positive limit yields an empty result without touching the
// database.
func (r *WorkoutRepository) GetRecentByUserID(userID int64, limit int) ([]domain.Workout, error) {
	if limit <= 0 {
		return []domain.Workout{}, nil
	}
	return r.queryWorkouts(
		`SELECT `+workoutColumns+` FROM workouts WHERE user_id = ?
		 ORDER BY start_time DESC LIMIT ?`, userID, limit)
}

// GetRecentWithBaseline joins the user's profile snapshot with their recent
// workouts. A missing user leaves the baseline fields nil and falls back to a
// generic goal; workouts are still returned.
func (r *WorkoutRepository) GetRecentWithBaseline(userID int64, limit int) (*domain.WorkoutBundle, error) {
	workouts, err := r.GetRecentByUserID(userID, limit)
	if err != nil {
		return nil, err
	}

	bundle := &domain.WorkoutBundle{
		UserGoal: "General Fitness",
		Workouts: workouts,
	}

	var (
		age            int
		weight, height float64
		gender         domain.Gender
		goal           string
	)
	err = r.db.QueryRow(
		`SELECT age, weight, height, gender, goal FROM users WHERE id = ?`, userID,
	).Scan(&age, &weight, &height, &gender, &goal)
	if err == sql.ErrNoRows {
		return bundle, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user baseline: %w", err)
	}

	bundle.UserGoal = goal
	bundle.UserAge = &age
	bundle.UserWeight = &weight
	bundle.UserHeight = &height
	bundle.UserGender = &gender
	return bundle, nil
}

// GetLastIntensity computes max and mean heart rate over the most recent
// workout's samples. Returns (nil, nil) when the user has no workouts; a
// workout without samples yields nil intensity fields, not an error.
func (r *WorkoutRepository) GetLastIntensity(userID int64) (*domain.WorkoutIntensity, error) {
	var (
		bpm       domain.FloatSeries
		createdAt time.Time
	)
	err := r.db.QueryRow(
		`SELECT bpm, created_at FROM workouts WHERE user_id = ?
		 ORDER BY start_time DESC LIMIT 1`, userID,
	).Scan(&bpm, &createdAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last workout: %w", err)
	}

	intensity := &domain.WorkoutIntensity{Date: createdAt}
	if max, ok := bpm.Max(); ok {
		intensity.MaxBPM = &max
	}
	if mean, ok := bpm.Mean(); ok {
		intensity.AvgBPM = &mean
	}
	return intensity, nil
}

// GetRecoveryGap reports fractional hours from now back to the most recent
// workout's end, plus the gap to the workout before it (by strictly earlier
// end time). Returns (nil, nil) when the user has no workouts.
func (r *WorkoutRepository) GetRecoveryGap(userID int64, now time.Time) (*domain.RecoveryGap, error) {
	var (
		lastEnd  time.Time
		lastType string
	)
	err := r.db.QueryRow(
		`SELECT end_time, type FROM workouts WHERE user_id = ?
		 ORDER BY end_time DESC LIMIT 1`, userID,
	).Scan(&lastEnd, &lastType)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last workout: %w", err)
	}

	gap := &domain.RecoveryGap{
		LastWorkoutDate:  lastEnd,
		RecoveryGapHours: now.Sub(lastEnd).Seconds() / 3600.0,
		WorkoutType:      lastType,
	}

	var prevEnd time.Time
	err = r.db.QueryRow(
		`SELECT end_time FROM workouts WHERE user_id = ? AND end_time < ?
		 ORDER BY end_time DESC LIMIT 1`, userID, lastEnd,
	).Scan(&prevEnd)
	if err == sql.ErrNoRows {
		return gap, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get previous workout: %w", err)
	}

	since := lastEnd.Sub(prevEnd).Seconds() / 3600.0
	gap.TimeSincePreviousWorkoutHours = &since
	return gap, nil
}

func (r *WorkoutRepository) queryWorkouts(query string, args ...interface{}) ([]domain.Workout, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}
	defer rows.Close()

	var workouts []domain.Workout
	for rows.Next() {
		var w domain.Workout
		if err := rows.Scan(
			&w.ID, &w.WorkoutID, &w.UserID, &w.Type, &w.BPM, &w.HRV, &w.Source,
			&w.StartTime, &w.EndTime, &w.CaloriesBurned, &w.Distance, &w.Steps,
			&w.Notes, &w.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan workout: %w", err)
		}
		workouts = append(workouts, w)
	}
	return workouts, rows.Err()
}
