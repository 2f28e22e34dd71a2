package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fitsight/fitsight-backend/internal/analysis"
	"github.com/fitsight/fitsight-backend/internal/domain"
	"github.com/fitsight/fitsight-backend/internal/middleware"
)

type fakeUserStore struct {
	byUsername map[string]*domain.User
	byID       map[int64]*domain.User
	emails     map[string]bool
	all        []domain.User
	createErr  error
	created    *domain.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		byUsername: map[string]*domain.User{},
		byID:       map[int64]*domain.User{},
		emails:     map[string]bool{},
	}
}

func (f *fakeUserStore) Create(u *domain.User) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.created = u
	return 1, nil
}

func (f *fakeUserStore) GetByID(id int64) (*domain.User, error)   { return f.byID[id], nil }
func (f *fakeUserStore) GetByUsername(u string) (*domain.User, error) {
	return f.byUsername[u], nil
}
func (f *fakeUserStore) ExistsByEmail(e string) (bool, error) { return f.emails[e], nil }
func (f *fakeUserStore) GetAll() ([]domain.User, error)       { return f.all, nil }

type fakeWorkoutStore struct {
	workouts  []domain.Workout
	bundle    *domain.WorkoutBundle
	intensity *domain.WorkoutIntensity
	gap       *domain.RecoveryGap
	err       error
	gotLimit  int
}

func (f *fakeWorkoutStore) Create(w *domain.Workout) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return 1, nil
}

func (f *fakeWorkoutStore) GetByUserID(userID int64) ([]domain.Workout, error) {
	return f.workouts, f.err
}

func (f *fakeWorkoutStore) GetRecentByUserID(userID int64, limit int) ([]domain.Workout, error) {
	f.gotLimit = limit
	return f.workouts, f.err
}

func (f *fakeWorkoutStore) GetRecentWithBaseline(userID int64, limit int) (*domain.WorkoutBundle, error) {
	f.gotLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	if f.bundle != nil {
		return f.bundle, nil
	}
	return &domain.WorkoutBundle{UserGoal: "General Fitness", Workouts: f.workouts}, nil
}

func (f *fakeWorkoutStore) GetLastIntensity(userID int64) (*domain.WorkoutIntensity, error) {
	return f.intensity, f.err
}

func (f *fakeWorkoutStore) GetRecoveryGap(userID int64, now time.Time) (*domain.RecoveryGap, error) {
	return f.gap, f.err
}

type fakeHealthStore struct {
	rows     []domain.HealthData
	bundle   *domain.HealthBundle
	sleep    []domain.SleepQualityRow
	activity []domain.ActivityRow
	trend    *domain.RestingTrend
	err      error
}

func (f *fakeHealthStore) Create(h *domain.HealthData) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return 1, nil
}

func (f *fakeHealthStore) GetByUserID(userID int64) ([]domain.HealthData, error) {
	return f.rows, f.err
}

func (f *fakeHealthStore) GetRecentByUserID(userID int64, limit int) ([]domain.HealthData, error) {
	return f.rows, f.err
}

func (f *fakeHealthStore) GetRecentWithBaseline(userID int64, limit int) (*domain.HealthBundle, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.bundle != nil {
		return f.bundle, nil
	}
	return &domain.HealthBundle{HealthData: f.rows}, nil
}

func (f *fakeHealthStore) GetSleepQuality(userID int64, limit int) ([]domain.SleepQualityRow, error) {
	return f.sleep, f.err
}

func (f *fakeHealthStore) GetActivitySteps(userID int64, limit int) ([]domain.ActivityRow, error) {
	return f.activity, f.err
}

func (f *fakeHealthStore) GetRestingTrend(userID int64, ref time.Time) (*domain.RestingTrend, error) {
	return f.trend, f.err
}

type fakeAnalyzer struct {
	workoutResult *analysis.WorkoutAnalysis
	healthResult  *analysis.HealthAnalysis
	err           error
}

func (f *fakeAnalyzer) AnalyzeWorkouts(ctx context.Context, bundle *domain.WorkoutBundle) (*analysis.WorkoutAnalysis, error) {
	return f.workoutResult, f.err
}

func (f *fakeAnalyzer) AnalyzeHealth(ctx context.Context, bundle *domain.HealthBundle) (*analysis.HealthAnalysis, error) {
	return f.healthResult, f.err
}

// staticVerifier always authenticates as the given user id.
type staticVerifier int64

func (v staticVerifier) VerifyAccessToken(string) (int64, error) { return int64(v), nil }

// serveAuthed runs a handler behind the auth middleware as user id 7.
func serveAuthed(t *testing.T, h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	req.Header.Set("Authorization", "Bearer test-token")
	rr := httptest.NewRecorder()
	middleware.Auth(staticVerifier(7))(h).ServeHTTP(rr, req)
	return rr
}
