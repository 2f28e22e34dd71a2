package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/fitsight/fitsight-backend/internal/domain"
)

type HealthRepository struct {
	db *sql.DB
}

func NewHealthRepository(db *sql.DB) *HealthRepository {
	return &HealthRepository{db: db}
}

const healthColumns = `id, user_id, date, in_bed_seconds, asleep_seconds, deep_seconds,
	core_seconds, rem_seconds, awake_seconds, avg_sleep_bpm, temperature_delta, steps,
	activity_minutes, resting_hr, weight_history, created_at, updated_at`

func (r *HealthRepository) Create(h *domain.HealthData) (int64, error) {
	now := time.Now().UTC()
	h.CreatedAt = now
	h.UpdatedAt = now

	result, err := r.db.Exec(
		`INSERT INTO health_data (user_id, date, in_bed_seconds, asleep_seconds, deep_seconds,
			core_seconds, rem_seconds, awake_seconds, avg_sleep_bpm, temperature_delta, steps,
			activity_minutes, resting_hr, weight_history, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		h.UserID, h.Date, h.InBedSeconds, h.AsleepSeconds, h.DeepSeconds,
		h.CoreSeconds, h.RemSeconds, h.AwakeSeconds, h.AvgSleepBPM, h.TemperatureDelta,
		h.Steps, h.ActivityMinutes, h.RestingHR, h.WeightHistory, h.CreatedAt, h.UpdatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create health data: %w", err)
	}
	return result.LastInsertId()
}

func (r *HealthRepository) GetByUserID(userID int64) ([]domain.HealthData, error) {
	return r.queryHealthData(
		`SELECT `+healthColumns+` FROM health_data WHERE user_id = ?`, userID)
}

// GetRecentByUserID returns up to limit rows ordered by descending date.
// A non-positive limit yields an empty result.
func (r *HealthRepository) GetRecentByUserID(userID int64, limit int) ([]domain.HealthData, error) {
	if limit <= 0 {
		return []domain.HealthData{}, nil
	}
	return r.queryHealthData(
		`SELECT `+healthColumns+` FROM health_data WHERE user_id = ?
		 ORDER BY date DESC LIMIT ?`, userID, limit)
}

// GetRecentWithBaseline joins the user's profile snapshot with their recent
// health rows. A missing user leaves the baseline fields nil.
func (r *HealthRepository) GetRecentWithBaseline(userID int64, limit int) (*domain.HealthBundle, error) {
	healthData, err := r.GetRecentByUserID(userID, limit)
	if err != nil {
		return nil, err
	}

	bundle := &domain.HealthBundle{HealthData: healthData}

	var (
		age            int
		weight, height float64
		gender         domain.Gender
	)
	err = r.db.QueryRow(
		`SELECT age, weight, height, gender FROM users WHERE id = ?`, userID,
	).Scan(&age, &weight, &height, &gender)
	if err == sql.ErrNoRows {
		return bundle, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user baseline: %w", err)
	}

	bundle.UserAge = &age
	bundle.UserWeight = &weight
	bundle.UserHeight = &height
	bundle.UserGender = &gender
	return bundle, nil
}

// GetSleepQuality projects only the sleep-stage durations for the most
// recent days.
func (r *HealthRepository) GetSleepQuality(userID int64, limit int) ([]domain.SleepQualityRow, error) {
	if limit <= 0 {
		return []domain.SleepQualityRow{}, nil
	}
	rows, err := r.db.Query(
		`SELECT date, asleep_seconds, deep_seconds, core_seconds, rem_seconds
		 FROM health_data WHERE user_id = ? ORDER BY date DESC LIMIT ?`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sleep quality data: %w", err)
	}
	defer rows.Close()

	var result []domain.SleepQualityRow
	for rows.Next() {
		var s domain.SleepQualityRow
		if err := rows.Scan(&s.Date, &s.AsleepSeconds, &s.DeepSeconds, &s.CoreSeconds, &s.RemSeconds); err != nil {
			return nil, fmt.Errorf("failed to scan sleep quality row: %w", err)
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

// GetActivitySteps projects daily steps and activity minutes for the most
// recent days.
func (r *HealthRepository) GetActivitySteps(userID int64, limit int) ([]domain.ActivityRow, error) {
	if limit <= 0 {
		return []domain.ActivityRow{}, nil
	}
	rows, err := r.db.Query(
		`SELECT date, steps, activity_minutes
		 FROM health_data WHERE user_id = ? ORDER BY date DESC LIMIT ?`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity data: %w", err)
	}
	defer rows.Close()

	var result []domain.ActivityRow
	for rows.Next() {
		var a domain.ActivityRow
		if err := rows.Scan(&a.Date, &a.Steps, &a.ActivityMinutes); err != nil {
			return nil, fmt.Errorf("failed to scan activity row: %w", err)
		}
		result = append(result, a)
	}
	return result, rows.Err()
}

// GetRestingTrend correlates the health row dated exactly ref's day with the
// HRV of the workout whose start date is closest to it, considering only
// workouts starting on or before the following day. When two workouts are
// equidistant the chronologically later one wins. Returns (nil, nil) when
// either side is missing.
func (r *HealthRepository) GetRestingTrend(userID int64, ref time.Time) (*domain.RestingTrend, error) {
	refDay := dayOf(ref)
	refDate := refDay.Format(domain.DateLayout)

	trend := &domain.RestingTrend{}
	err := r.db.QueryRow(
		`SELECT date, resting_hr, avg_sleep_bpm FROM health_data
		 WHERE user_id = ? AND date = ?`, userID, refDate,
	).Scan(&trend.Date, &trend.RestingHR, &trend.AvgSleepBPM)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get health data: %w", err)
	}

	// Candidates may start at any point up to the end of the following day.
	cutoff := refDay.Add(48 * time.Hour)
	rows, err := r.db.Query(
		`SELECT start_time, hrv FROM workouts
		 WHERE user_id = ? AND start_time < ? ORDER BY start_time DESC`, userID, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}
	defer rows.Close()

	var (
		bestHRV  domain.FloatSeries
		bestDist = -1
	)
	for rows.Next() {
		var (
			start time.Time
			hrv   domain.FloatSeries
		)
		if err := rows.Scan(&start, &hrv); err != nil {
			return nil, fmt.Errorf("failed to scan workout: %w", err)
		}
		// Rows arrive newest first, so ties keep the later workout.
		if dist := dayDistance(start, refDay); bestDist < 0 || dist < bestDist {
			bestDist = dist
			bestHRV = hrv
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if bestDist < 0 {
		return nil, nil
	}

	trend.HRV = bestHRV
	return trend, nil
}

func (r *HealthRepository) queryHealthData(query string, args ...interface{}) ([]domain.HealthData, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list health data: %w", err)
	}
	defer rows.Close()

	var result []domain.HealthData
	for rows.Next() {
		var h domain.HealthData
		if err := rows.Scan(
			&h.ID, &h.UserID, &h.Date, &h.InBedSeconds, &h.AsleepSeconds, &h.DeepSeconds,
			&h.CoreSeconds, &h.RemSeconds, &h.AwakeSeconds, &h.AvgSleepBPM, &h.TemperatureDelta,
			&h.Steps, &h.ActivityMinutes, &h.RestingHR, &h.WeightHistory, &h.CreatedAt, &h.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan health data: %w", err)
		}
		result = append(result, h)
	}
	return result, rows.Err()
}

func dayOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dayDistance(a, b time.Time) int {
	d := int(dayOf(a).Sub(dayOf(b)).Hours() / 24)
	if d < 0 {
		return -d
	}
	return d
}
