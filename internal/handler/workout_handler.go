package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/fitsight/fitsight-backend/internal/domain"
)

const defaultRecentLimit = 14

type WorkoutHandler struct {
	workouts WorkoutStore
}

func NewWorkoutHandler(workouts WorkoutStore) *WorkoutHandler {
	return &WorkoutHandler{workouts: workouts}
}

func (h *WorkoutHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req domain.CreateWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	workout := domain.Workout{
		WorkoutID:      req.WorkoutID,
		UserID:         userID,
		Type:           req.Type,
		BPM:            req.BPM,
		HRV:            req.HRV,
		Source:         req.Source,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		CaloriesBurned: req.CaloriesBurned,
		Distance:       req.Distance,
		Steps:          req.Steps,
		Notes:          req.Notes,
	}

	id, err := h.workouts.Create(&workout)
	if err != nil {
		writeStoreError(w, r, err, "failed to create workout")
		return
	}

	workout.ID = id
	writeJSON(w, http.StatusCreated, workout)
}

func (h *WorkoutHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	workouts, err := h.workouts.GetByUserID(userID)
	if err != nil {
		writeStoreError(w, r, err, "failed to list workouts")
		return
	}
	if workouts == nil {
		workouts = []domain.Workout{}
	}
	writeJSON(w, http.StatusOK, workouts)
}

func (h *WorkoutHandler) Recent(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	limit, ok := parseLimit(w, r)
	if !ok {
		return
	}

	bundle, err := h.workouts.GetRecentWithBaseline(userID, limit)
	if err != nil {
		writeStoreError(w, r, err, "failed to list recent workouts")
		return
	}
	writeJSON(w, http.StatusOK, bundle)
}

func (h *WorkoutHandler) LastIntensity(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	intensity, err := h.workouts.GetLastIntensity(userID)
	if err != nil {
		writeStoreError(w, r, err, "failed to get workout intensity")
		return
	}
	// No workouts is a valid empty result, not an error.
	writeJSON(w, http.StatusOK, intensity)
}

func (h *WorkoutHandler) RecoveryGap(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	gap, err := h.workouts.GetRecoveryGap(userID, time.Now().UTC())
	if err != nil {
		writeStoreError(w, r, err, "failed to get recovery gap")
		return
	}
	writeJSON(w, http.StatusOK, gap)
}

func parseLimit(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return defaultRecentLimit, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid limit")
		return 0, false
	}
	return limit, true
}
