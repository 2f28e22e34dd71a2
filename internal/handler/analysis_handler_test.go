package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fitsight/fitsight-backend/internal/analysis"
	"github.com/fitsight/fitsight-backend/internal/domain"
)

func TestAnalyzeWorkoutsSuccess(t *testing.T) {
	workouts := &fakeWorkoutStore{workouts: []domain.Workout{{Type: "Running"}}}
	analyzer := &fakeAnalyzer{workoutResult: &analysis.WorkoutAnalysis{
		Recommendation: "ease off tomorrow",
		IntensityScore: 7,
	}}
	h := NewAnalysisHandler(workouts, &fakeHealthStore{}, analyzer)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze/workouts", nil)
	rr := serveAuthed(t, h.AnalyzeWorkouts, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body)
	}
	if !strings.Contains(rr.Body.String(), "ease off tomorrow") {
		t.Errorf("unexpected body: %s", rr.Body)
	}
}

func TestAnalyzeWorkoutsNoData(t *testing.T) {
	h := NewAnalysisHandler(&fakeWorkoutStore{}, &fakeHealthStore{}, &fakeAnalyzer{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze/workouts", nil)
	rr := serveAuthed(t, h.AnalyzeWorkouts, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("expected 404 without workouts, got %d", rr.Code)
	}
}

func TestAnalyzeWorkoutsQuotaExhausted(t *testing.T) {
	workouts := &fakeWorkoutStore{workouts: []domain.Workout{{Type: "Running"}}}
	analyzer := &fakeAnalyzer{err: &analysis.GatewayError{
		Kind:    analysis.FailureQuotaExhausted,
		Message: "analysis quota exhausted, retry later",
	}}
	h := NewAnalysisHandler(workouts, &fakeHealthStore{}, analyzer)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze/workouts", nil)
	rr := serveAuthed(t, h.AnalyzeWorkouts, req)

	if rr.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), string(analysis.FailureQuotaExhausted)) {
		t.Errorf("expected failure kind in body, got %s", rr.Body)
	}
}

func TestAnalyzeHealthSuccess(t *testing.T) {
	health := &fakeHealthStore{rows: []domain.HealthData{{Date: "2026-08-29"}}}
	analyzer := &fakeAnalyzer{healthResult: &analysis.HealthAnalysis{
		SleepQualityScore:    8,
		SleepRecommendations: "keep the current schedule",
	}}
	h := NewAnalysisHandler(&fakeWorkoutStore{}, health, analyzer)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze/health", nil)
	rr := serveAuthed(t, h.AnalyzeHealth, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body)
	}
	if !strings.Contains(rr.Body.String(), "keep the current schedule") {
		t.Errorf("unexpected body: %s", rr.Body)
	}
}

func TestAnalyzeHealthNoData(t *testing.T) {
	h := NewAnalysisHandler(&fakeWorkoutStore{}, &fakeHealthStore{}, &fakeAnalyzer{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze/health", nil)
	rr := serveAuthed(t, h.AnalyzeHealth, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("expected 404 without health data, got %d", rr.Code)
	}
}

func TestAnalyzeHealthUnavailable(t *testing.T) {
	health := &fakeHealthStore{rows: []domain.HealthData{{Date: "2026-08-29"}}}
	analyzer := &fakeAnalyzer{err: &analysis.GatewayError{
		Kind:    analysis.FailureUnavailable,
		Message: "the analysis service timed out",
	}}
	h := NewAnalysisHandler(&fakeWorkoutStore{}, health, analyzer)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze/health", nil)
	rr := serveAuthed(t, h.AnalyzeHealth, req)

	if rr.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), string(analysis.FailureUnavailable)) {
		t.Errorf("expected failure kind in body, got %s", rr.Body)
	}
}
