package db

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
)

type migration struct {
	version string
	sql     string
}

var migrations = []migration{
	{
		version: "000_create_users",
		sql: `
			CREATE TABLE IF NOT EXISTS users (
				id             BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
				username       VARCHAR(30) NOT NULL UNIQUE,
				email          VARCHAR(255) NOT NULL UNIQUE,
				password       VARCHAR(255) NOT NULL,
				age            INT NOT NULL,
				weight         DOUBLE NOT NULL,
				height         DOUBLE NOT NULL,
				gender         VARCHAR(10) NOT NULL,
				activity_level VARCHAR(20),
				goal_progress  INT,
				experience     VARCHAR(20),
				goal           VARCHAR(30) NOT NULL,
				deadline       DATETIME,
				gadget         VARCHAR(100),
				created_at     DATETIME NOT NULL,
				updated_at     DATETIME NOT NULL
			)`,
	},
	{
		version: "001_create_workouts",
		sql: `
			CREATE TABLE IF NOT EXISTS workouts (
				id              BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
				workout_id      BIGINT NOT NULL,
				user_id         BIGINT UNSIGNED NOT NULL,
				type            VARCHAR(100) NOT NULL,
				bpm             JSON NOT NULL,
				hrv             JSON NOT NULL,
				source          VARCHAR(100),
				start_time      DATETIME NOT NULL,
				end_time        DATETIME NOT NULL,
				calories_burned DOUBLE,
				distance        DOUBLE,
				steps           INT,
				notes           TEXT,
				created_at      DATETIME NOT NULL,
				INDEX idx_workouts_user_id (user_id),
				INDEX idx_workouts_workout_id (workout_id),
				FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
			)`,
	},
	{
		version: "002_create_health_data",
		sql: `
			CREATE TABLE IF NOT EXISTS health_data (
				id                BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
				user_id           BIGINT UNSIGNED NOT NULL,
				date              VARCHAR(10) NOT NULL,
				in_bed_seconds    INT,
				asleep_seconds    INT,
				deep_seconds      INT,
				core_seconds      INT,
				rem_seconds       INT,
				awake_seconds     INT,
				avg_sleep_bpm     DOUBLE,
				temperature_delta DOUBLE,
				steps             INT,
				activity_minutes  INT,
				resting_hr        JSON,
				weight_history    JSON,
				created_at        DATETIME NOT NULL,
				updated_at        DATETIME NOT NULL,
				UNIQUE KEY uq_health_user_date (user_id, date),
				FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
			)`,
	},
}

func RunMigrations(db *sql.DB) error {
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    VARCHAR(255) PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		return fmt.Errorf("failed to create schema_migrations table: %w", err)
	}

	for _, m := range migrations {
		applied, err := isMigrationApplied(db, m.version)
		if err != nil {
			return err
		}
		if applied {
			continue
		}

		if err := executeMigration(db, m); err != nil {
			return err
		}

		log.Printf("applied migration: %s", m.version)
	}

	return nil
}

func isMigrationApplied(db *sql.DB, version string) (bool, error) {
	var count int
	err := db.QueryRow(
		"SELECT COUNT(*) FROM schema_migrations WHERE version = ?",
		version,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check migration %s: %w", version, err)
	}
	return count > 0, nil
}

func executeMigration(db *sql.DB, m migration) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction for %s: %w", m.version, err)
	}

	for _, stmt := range strings.Split(m.sql, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := tx.Exec(stmt); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to execute migration %s: %w", m.version, err)
		}
	}

	if _, err := tx.Exec(
		"INSERT INTO schema_migrations (version) VALUES (?)",
		m.version,
	); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to record migration %s: %w", m.version, err)
	}

	return tx.Commit()
}
