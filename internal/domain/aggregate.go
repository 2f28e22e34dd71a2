package domain

import "time"

// WorkoutBundle joins a user's profile baseline with their recent workouts.
// Baseline fields are nil when the user row is missing; the workouts are
// returned regardless.
type WorkoutBundle struct {
	UserGoal   string    `json:"user_goal"`
	UserAge    *int      `json:"user_age"`
	UserWeight *float64  `json:"user_weight"`
	UserHeight *float64  `json:"user_height"`
	UserGender *Gender   `json:"user_gender"`
	Workouts   []Workout `json:"workouts"`
}

// HealthBundle is the health-data counterpart of WorkoutBundle.
type HealthBundle struct {
	UserAge    *int         `json:"user_age"`
	UserWeight *float64     `json:"user_weight"`
	UserHeight *float64     `json:"user_height"`
	UserGender *Gender      `json:"user_gender"`
	HealthData []HealthData `json:"user_health_data"`
}

// SleepQualityRow is a projection over the sleep-stage durations only.
type SleepQualityRow struct {
	Date          string `json:"date"`
	AsleepSeconds int    `json:"asleep_seconds"`
	DeepSeconds   int    `json:"deep_seconds"`
	CoreSeconds   int    `json:"core_seconds"`
	RemSeconds    int    `json:"rem_seconds"`
}

// ActivityRow is a projection over daily steps and activity minutes.
type ActivityRow struct {
	Date            string `json:"date"`
	Steps           int    `json:"steps"`
	ActivityMinutes int    `json:"activity_minutes"`
}

// WorkoutIntensity summarizes the heart-rate samples of the most recent
// workout. MaxBPM/AvgBPM are nil when the workout carries no samples.
type WorkoutIntensity struct {
	Date   time.Time `json:"date"`
	MaxBPM *float64  `json:"max_bpm"`
	AvgBPM *float64  `json:"avg_bpm"`
}

// RecoveryGap reports elapsed hours since the most recent workout ended and
// the gap to the one before it.
type RecoveryGap struct {
	LastWorkoutDate               time.Time `json:"last_workout_date"`
	RecoveryGapHours              float64   `json:"recovery_gap_hours"`
	TimeSincePreviousWorkoutHours *float64  `json:"time_since_previous_workout_hours"`
	WorkoutType                   string    `json:"workout_type"`
}

// RestingTrend correlates a day's resting heart rate and sleep BPM with the
// HRV samples of the workout nearest to that day.
type RestingTrend struct {
	Date        string      `json:"date"`
	RestingHR   JSONMap     `json:"resting_hr"`
	AvgSleepBPM float64     `json:"avg_sleep_bpm"`
	HRV         FloatSeries `json:"hrv"`
}
