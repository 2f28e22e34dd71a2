package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/fitsight/fitsight-backend/internal/domain"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, username, email, password, age, weight, height, gender,
	activity_level, goal_progress, experience, goal, deadline, gadget, created_at, updated_at`

func (r *UserRepository) Create(u *domain.User) (int64, error) {
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now

	result, err := r.db.Exec(
		`INSERT INTO users (username, email, password, age, weight, height, gender,
			activity_level, goal_progress, experience, goal, deadline, gadget, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.Username, u.Email, u.Password, u.Age, u.Weight, u.Height, u.Gender,
		u.ActivityLevel, u.GoalProgress, u.Experience, u.Goal, u.Deadline, u.Gadget,
		u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create user: %w", err)
	}
	return result.LastInsertId()
}

func (r *UserRepository) GetByID(id int64) (*domain.User, error) {
	row := r.db.QueryRow(`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *UserRepository) GetByUsername(username string) (*domain.User, error) {
	row := r.db.QueryRow(`SELECT `+userColumns+` FROM users WHERE username = ?`, username)
	return scanUser(row)
}

func (r *UserRepository) ExistsByEmail(email string) (bool, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM users WHERE email = ?`, email).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return count > 0, nil
}

func (r *UserRepository) GetAll() ([]domain.User, error) {
	rows, err := r.db.Query(`SELECT ` + userColumns + ` FROM users ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUserFrom(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

// Delete removes a user; workouts and health rows cascade at the schema level.
// Used by seed tooling and tests only, the API surface is append-only.
func (r *UserRepository) Delete(id int64) error {
	_, err := r.db.Exec(`DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(row *sql.Row) (*domain.User, error) {
	u, err := scanUserFrom(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func scanUserFrom(s rowScanner) (*domain.User, error) {
	var u domain.User
	err := s.Scan(
		&u.ID, &u.Username, &u.Email, &u.Password, &u.Age, &u.Weight, &u.Height, &u.Gender,
		&u.ActivityLevel, &u.GoalProgress, &u.Experience, &u.Goal, &u.Deadline, &u.Gadget,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	return &u, nil
}
