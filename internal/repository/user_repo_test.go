package repository

import (
	"testing"
	"time"

	"github.com/fitsight/fitsight-backend/internal/domain"
)

func TestCreateAndGetUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	id := createTestUser(t, db, "alice", "alice@example.com")

	user, err := repo.GetByID(id)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if user == nil {
		t.Fatal("expected user, got nil")
	}
	if user.Username != "alice" || user.Email != "alice@example.com" {
		t.Errorf("unexpected user: %+v", user)
	}
	if user.Goal != "Build Muscle" || user.Age != 30 {
		t.Errorf("unexpected profile fields: %+v", user)
	}

	byName, err := repo.GetByUsername("alice")
	if err != nil {
		t.Fatalf("GetByUsername failed: %v", err)
	}
	if byName == nil || byName.ID != id {
		t.Errorf("GetByUsername mismatch: %+v", byName)
	}
}

func TestGetMissingUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	user, err := repo.GetByID(999)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if user != nil {
		t.Errorf("expected nil for missing user, got %+v", user)
	}

	user, err = repo.GetByUsername("nobody")
	if err != nil {
		t.Fatalf("GetByUsername failed: %v", err)
	}
	if user != nil {
		t.Errorf("expected nil for missing username, got %+v", user)
	}
}

func TestExistsByEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	createTestUser(t, db, "alice", "alice@example.com")

	exists, err := repo.ExistsByEmail("alice@example.com")
	if err != nil {
		t.Fatalf("ExistsByEmail failed: %v", err)
	}
	if !exists {
		t.Error("expected email to exist")
	}

	exists, err = repo.ExistsByEmail("bob@example.com")
	if err != nil {
		t.Fatalf("ExistsByEmail failed: %v", err)
	}
	if exists {
		t.Error("expected email to not exist")
	}
}

func TestDuplicateUsernameRejected(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	createTestUser(t, db, "alice", "alice@example.com")

	_, err := repo.Create(&domain.User{
		Username:   "alice",
		Email:      "alice2@example.com",
		Password:   "hashed-password",
		Age:        30,
		Weight:     80,
		Height:     180,
		Gender:     domain.GenderMale,
		Experience: domain.ExperienceIntermediate,
		Goal:       "Build Muscle",
	})
	if err == nil {
		t.Error("expected unique constraint violation")
	}
}

func TestGetAllUsers(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	createTestUser(t, db, "alice", "alice@example.com")
	createTestUser(t, db, "bob", "bob@example.com")

	users, err := repo.GetAll()
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[0].Username != "alice" || users[1].Username != "bob" {
		t.Errorf("unexpected ordering: %s, %s", users[0].Username, users[1].Username)
	}
}

func TestCascadeDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	userID := createTestUser(t, db, "alice", "alice@example.com")
	start := time.Date(2026, 8, 29, 18, 0, 0, 0, time.UTC)
	addWorkout(t, db, userID, start, start.Add(45*time.Minute), nil)
	addHealthRow(t, db, userID, "2026-08-29", 8000)

	if err := repo.Delete(userID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if n := countRows(t, db, "workouts", userID); n != 0 {
		t.Errorf("expected workouts to cascade, %d left", n)
	}
	if n := countRows(t, db, "health_data", userID); n != 0 {
		t.Errorf("expected health rows to cascade, %d left", n)
	}
}
