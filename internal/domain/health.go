package domain

import (
	"errors"
	"time"
)

// DateLayout is the storage format of HealthData.Date, one row per user per day.
const DateLayout = "2006-01-02"

type HealthData struct {
	ID               int64     `json:"id"`
	UserID           int64     `json:"user_id"`
	Date             string    `json:"date"`
	InBedSeconds     int       `json:"in_bed_seconds"`
	AsleepSeconds    int       `json:"asleep_seconds"`
	DeepSeconds      int       `json:"deep_seconds"`
	CoreSeconds      int       `json:"core_seconds"`
	RemSeconds       int       `json:"rem_seconds"`
	AwakeSeconds     int       `json:"awake_seconds"`
	AvgSleepBPM      float64   `json:"avg_sleep_bpm"`
	TemperatureDelta float64   `json:"temperature_delta"`
	Steps            int       `json:"steps"`
	ActivityMinutes  int       `json:"activity_minutes"`
	RestingHR        JSONMap   `json:"resting_hr"`
	WeightHistory    JSONMap   `json:"weight_history"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type CreateHealthDataRequest struct {
	Date             string  `json:"date"`
	InBedSeconds     int     `json:"in_bed_seconds"`
	AsleepSeconds    int     `json:"asleep_seconds"`
	DeepSeconds      int     `json:"deep_seconds"`
	CoreSeconds      int     `json:"core_seconds"`
	RemSeconds       int     `json:"rem_seconds"`
	AwakeSeconds     int     `json:"awake_seconds"`
	AvgSleepBPM      float64 `json:"avg_sleep_bpm"`
	TemperatureDelta float64 `json:"temperature_delta"`
	Steps            int     `json:"steps"`
	ActivityMinutes  int     `json:"activity_minutes"`
	RestingHR        JSONMap `json:"resting_hr"`
	WeightHistory    JSONMap `json:"weight_history"`
}

func (r *CreateHealthDataRequest) Validate() error {
	if _, err := time.Parse(DateLayout, r.Date); err != nil {
		return errors.New("date must be in YYYY-MM-DD format")
	}
	for _, f := range []struct {
		name  string
		value int
	}{
		{"in_bed_seconds", r.InBedSeconds},
		{"asleep_seconds", r.AsleepSeconds},
		{"deep_seconds", r.DeepSeconds},
		{"core_seconds", r.CoreSeconds},
		{"rem_seconds", r.RemSeconds},
		{"awake_seconds", r.AwakeSeconds},
		{"steps", r.Steps},
		{"activity_minutes", r.ActivityMinutes},
	} {
		if f.value < 0 {
			return errors.New(f.name + " must be non-negative")
		}
	}
	if r.AvgSleepBPM < 0 {
		return errors.New("avg_sleep_bpm must be non-negative")
	}
	return nil
}
