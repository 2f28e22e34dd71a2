package repository

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/fitsight/fitsight-backend/internal/domain"
)

// Repository tests run against an in-file sqlite database; the queries stay
// within the SQL subset both engines share.
const testSchema = `
CREATE TABLE users (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	username       TEXT NOT NULL UNIQUE,
	email          TEXT NOT NULL UNIQUE,
	password       TEXT NOT NULL,
	age            INTEGER NOT NULL,
	weight         REAL NOT NULL,
	height         REAL NOT NULL,
	gender         TEXT NOT NULL,
	activity_level TEXT,
	goal_progress  INTEGER,
	experience     TEXT,
	goal           TEXT NOT NULL,
	deadline       DATETIME,
	gadget         TEXT,
	created_at     DATETIME NOT NULL,
	updated_at     DATETIME NOT NULL
);

CREATE TABLE workouts (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	workout_id      INTEGER NOT NULL,
	user_id         INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	type            TEXT NOT NULL,
	bpm             TEXT NOT NULL,
	hrv             TEXT NOT NULL,
	source          TEXT,
	start_time      DATETIME NOT NULL,
	end_time        DATETIME NOT NULL,
	calories_burned REAL,
	distance        REAL,
	steps           INTEGER,
	notes           TEXT,
	created_at      DATETIME NOT NULL
);

CREATE TABLE health_data (
	id                INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id           INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	date              TEXT NOT NULL,
	in_bed_seconds    INTEGER,
	asleep_seconds    INTEGER,
	deep_seconds      INTEGER,
	core_seconds      INTEGER,
	rem_seconds       INTEGER,
	awake_seconds     INTEGER,
	avg_sleep_bpm     REAL,
	temperature_delta REAL,
	steps             INTEGER,
	activity_minutes  INTEGER,
	resting_hr        TEXT,
	weight_history    TEXT,
	created_at        DATETIME NOT NULL,
	updated_at        DATETIME NOT NULL,
	UNIQUE (user_id, date)
);
`

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}
	if _, err := db.Exec(testSchema); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func createTestUser(t *testing.T, db *sql.DB, username, email string) int64 {
	t.Helper()
	repo := NewUserRepository(db)
	id, err := repo.Create(&domain.User{
		Username:      username,
		Email:         email,
		Password:      "hashed-password",
		Age:           30,
		Weight:        80,
		Height:        180,
		Gender:        domain.GenderMale,
		ActivityLevel: "moderate",
		GoalProgress:  40,
		Experience:    domain.ExperienceIntermediate,
		Goal:          "Build Muscle",
		Gadget:        "Apple Watch",
	})
	if err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return id
}

func addWorkout(t *testing.T, db *sql.DB, userID int64, start, end time.Time, bpm domain.FloatSeries) int64 {
	t.Helper()
	repo := NewWorkoutRepository(db)
	id, err := repo.Create(&domain.Workout{
		WorkoutID: 123456,
		UserID:    userID,
		Type:      "Running",
		BPM:       bpm,
		HRV:       domain.FloatSeries{40, 45, 42},
		Source:    "Apple Watch",
		StartTime: start,
		EndTime:   end,
	})
	if err != nil {
		t.Fatalf("failed to create test workout: %v", err)
	}
	return id
}

func addHealthRow(t *testing.T, db *sql.DB, userID int64, date string, steps int) int64 {
	t.Helper()
	repo := NewHealthRepository(db)
	id, err := repo.Create(&domain.HealthData{
		UserID:          userID,
		Date:            date,
		InBedSeconds:    30000,
		AsleepSeconds:   28000,
		DeepSeconds:     4200,
		CoreSeconds:     16800,
		RemSeconds:      5600,
		AwakeSeconds:    2000,
		AvgSleepBPM:     58,
		Steps:           steps,
		ActivityMinutes: 45,
		RestingHR:       domain.JSONMap{"avg": 61},
		WeightHistory:   domain.JSONMap{"weight": 80},
	})
	if err != nil {
		t.Fatalf("failed to create test health row: %v", err)
	}
	return id
}

func countRows(t *testing.T, db *sql.DB, table string, userID int64) int {
	t.Helper()
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM "+table+" WHERE user_id = ?", userID).Scan(&count); err != nil {
		t.Fatalf("failed to count rows in %s: %v", table, err)
	}
	return count
}
