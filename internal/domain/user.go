package domain

import (
	"errors"
	"strings"
	"time"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type Experience string

const (
	ExperienceBeginner     Experience = "beginner"
	ExperienceIntermediate Experience = "intermediate"
	ExperienceAdvanced     Experience = "advanced"
)

type User struct {
	ID            int64      `json:"id"`
	Username      string     `json:"username"`
	Email         string     `json:"email"`
	Password      string     `json:"-"`
	Age           int        `json:"age"`
	Weight        float64    `json:"weight"`
	Height        float64    `json:"height"`
	Gender        Gender     `json:"gender"`
	ActivityLevel string     `json:"activity_level"`
	GoalProgress  int        `json:"goal_progress"`
	Experience    Experience `json:"experience"`
	Goal          string     `json:"goal"`
	Deadline      *time.Time `json:"deadline"`
	Gadget        string     `json:"gadget"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type CreateUserRequest struct {
	Username      string     `json:"username"`
	Email         string     `json:"email"`
	Password      string     `json:"password"`
	Age           int        `json:"age"`
	Weight        float64    `json:"weight"`
	Height        float64    `json:"height"`
	Gender        Gender     `json:"gender"`
	ActivityLevel string     `json:"activity_level"`
	GoalProgress  int        `json:"goal_progress"`
	Experience    Experience `json:"experience"`
	Goal          string     `json:"goal"`
	Deadline      *time.Time `json:"deadline"`
	Gadget        string     `json:"gadget"`
}

func (r *CreateUserRequest) Validate() error {
	if l := len(r.Username); l < 3 || l > 30 {
		return errors.New("username must be between 3 and 30 characters")
	}
	if !validEmail(r.Email) {
		return errors.New("invalid email format")
	}
	if len(r.Password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	if r.Age < 18 {
		return errors.New("age must be at least 18")
	}
	if r.Weight <= 20 {
		return errors.New("weight must be greater than 20")
	}
	if r.Height <= 50 {
		return errors.New("height must be greater than 50")
	}
	if r.Gender != GenderMale && r.Gender != GenderFemale {
		return errors.New("gender must be male or female")
	}
	if r.GoalProgress < 0 || r.GoalProgress > 100 {
		return errors.New("goal_progress must be between 0 and 100")
	}
	switch r.Experience {
	case ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced:
	default:
		return errors.New("experience must be beginner, intermediate or advanced")
	}
	if r.Goal == "" {
		return errors.New("goal is required")
	}
	return nil
}

func validEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 {
		return false
	}
	return strings.Contains(email[at:], ".")
}
