package domain

import (
	"errors"
	"time"
)

type Workout struct {
	ID             int64       `json:"id"`
	WorkoutID      int64       `json:"workout_id"`
	UserID         int64       `json:"user_id"`
	Type           string      `json:"type"`
	BPM            FloatSeries `json:"bpm"`
	HRV            FloatSeries `json:"hrv"`
	Source         string      `json:"source"`
	StartTime      time.Time   `json:"start_time"`
	EndTime        time.Time   `json:"end_time"`
	CaloriesBurned float64     `json:"calories_burned"`
	Distance       float64     `json:"distance"`
	Steps          int         `json:"steps"`
	Notes          string      `json:"notes"`
	CreatedAt      time.Time   `json:"created_at"`
}

type CreateWorkoutRequest struct {
	WorkoutID      int64       `json:"workout_id"`
	Type           string      `json:"type"`
	BPM            FloatSeries `json:"bpm"`
	HRV            FloatSeries `json:"hrv"`
	Source         string      `json:"source"`
	StartTime      time.Time   `json:"start_time"`
	EndTime        time.Time   `json:"end_time"`
	CaloriesBurned float64     `json:"calories_burned"`
	Distance       float64     `json:"distance"`
	Steps          int         `json:"steps"`
	Notes          string      `json:"notes"`
}

func (r *CreateWorkoutRequest) Validate() error {
	if r.WorkoutID < 0 {
		return errors.New("workout_id must be non-negative")
	}
	if r.Type == "" || len(r.Type) > 100 {
		return errors.New("type is required and must be at most 100 characters")
	}
	if r.StartTime.IsZero() || r.EndTime.IsZero() {
		return errors.New("start_time and end_time are required")
	}
	if r.EndTime.Before(r.StartTime) {
		return errors.New("end_time must not be before start_time")
	}
	if r.CaloriesBurned < 0 {
		return errors.New("calories_burned must be non-negative")
	}
	if r.Distance < 0 {
		return errors.New("distance must be non-negative")
	}
	if r.Steps < 0 {
		return errors.New("steps must be non-negative")
	}
	return nil
}
