package handler

import (
	"context"
	"time"

	"github.com/fitsight/fitsight-backend/internal/analysis"
	"github.com/fitsight/fitsight-backend/internal/domain"
)

// Store interfaces decouple handlers from the MySQL repositories; the
// repository types satisfy them directly.

type UserStore interface {
	Create(u *domain.User) (int64, error)
	GetByID(id int64) (*domain.User, error)
	GetByUsername(username string) (*domain.User, error)
	ExistsByEmail(email string) (bool, error)
	GetAll() ([]domain.User, error)
}

type WorkoutStore interface {
	Create(w *domain.Workout) (int64, error)
	GetByUserID(userID int64) ([]domain.Workout, error)
	GetRecentByUserID(userID int64, limit int) ([]domain.Workout, error)
	GetRecentWithBaseline(userID int64, limit int) (*domain.WorkoutBundle, error)
	GetLastIntensity(userID int64) (*domain.WorkoutIntensity, error)
	GetRecoveryGap(userID int64, now time.Time) (*domain.RecoveryGap, error)
}

type HealthStore interface {
	Create(h *domain.HealthData) (int64, error)
	GetByUserID(userID int64) ([]domain.HealthData, error)
	GetRecentByUserID(userID int64, limit int) ([]domain.HealthData, error)
	GetRecentWithBaseline(userID int64, limit int) (*domain.HealthBundle, error)
	GetSleepQuality(userID int64, limit int) ([]domain.SleepQualityRow, error)
	GetActivitySteps(userID int64, limit int) ([]domain.ActivityRow, error)
	GetRestingTrend(userID int64, ref time.Time) (*domain.RestingTrend, error)
}

type Analyzer interface {
	AnalyzeWorkouts(ctx context.Context, bundle *domain.WorkoutBundle) (*analysis.WorkoutAnalysis, error)
	AnalyzeHealth(ctx context.Context, bundle *domain.HealthBundle) (*analysis.HealthAnalysis, error)
}
