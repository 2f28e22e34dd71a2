package handler

import (
	"errors"
	"net/http"

	"github.com/fitsight/fitsight-backend/internal/analysis"
)

// analysisWindow is how many recent rows are bundled for the model.
const analysisWindow = 4

type AnalysisHandler struct {
	workouts WorkoutStore
	health   HealthStore
	analyzer Analyzer
}

func NewAnalysisHandler(workouts WorkoutStore, health HealthStore, analyzer Analyzer) *AnalysisHandler {
	return &AnalysisHandler{workouts: workouts, health: health, analyzer: analyzer}
}

func (h *AnalysisHandler) AnalyzeWorkouts(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	bundle, err := h.workouts.GetRecentWithBaseline(userID, analysisWindow)
	if err != nil {
		writeStoreError(w, r, err, "failed to load workouts")
		return
	}
	if len(bundle.Workouts) == 0 {
		writeError(w, http.StatusNotFound, "no workouts found for this user")
		return
	}

	result, err := h.analyzer.AnalyzeWorkouts(r.Context(), bundle)
	if err != nil {
		writeGatewayError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *AnalysisHandler) AnalyzeHealth(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	bundle, err := h.health.GetRecentWithBaseline(userID, analysisWindow)
	if err != nil {
		writeStoreError(w, r, err, "failed to load health data")
		return
	}
	if len(bundle.HealthData) == 0 {
		writeError(w, http.StatusNotFound, "no health data found for this user")
		return
	}

	result, err := h.analyzer.AnalyzeHealth(r.Context(), bundle)
	if err != nil {
		writeGatewayError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// writeGatewayError maps upstream analysis failures to 502 so clients can
// tell "the AI service failed" apart from their own bad input.
func writeGatewayError(w http.ResponseWriter, err error) {
	var gerr *analysis.GatewayError
	if errors.As(err, &gerr) {
		writeJSON(w, http.StatusBadGateway, map[string]string{
			"error": gerr.Message,
			"kind":  string(gerr.Kind),
		})
		return
	}
	writeError(w, http.StatusBadGateway, "analysis failed")
}
