package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/fitsight/fitsight-backend/internal/domain"
)

type HealthHandler struct {
	health HealthStore
}

func NewHealthHandler(health HealthStore) *HealthHandler {
	return &HealthHandler{health: health}
}

func (h *HealthHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req domain.CreateHealthDataRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	healthData := domain.HealthData{
		UserID:           userID,
		Date:             req.Date,
		InBedSeconds:     req.InBedSeconds,
		AsleepSeconds:    req.AsleepSeconds,
		DeepSeconds:      req.DeepSeconds,
		CoreSeconds:      req.CoreSeconds,
		RemSeconds:       req.RemSeconds,
		AwakeSeconds:     req.AwakeSeconds,
		AvgSleepBPM:      req.AvgSleepBPM,
		TemperatureDelta: req.TemperatureDelta,
		Steps:            req.Steps,
		ActivityMinutes:  req.ActivityMinutes,
		RestingHR:        req.RestingHR,
		WeightHistory:    req.WeightHistory,
	}

	id, err := h.health.Create(&healthData)
	if err != nil {
		writeStoreError(w, r, err, "failed to create health data")
		return
	}

	healthData.ID = id
	writeJSON(w, http.StatusCreated, healthData)
}

func (h *HealthHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	healthData, err := h.health.GetByUserID(userID)
	if err != nil {
		writeStoreError(w, r, err, "failed to list health data")
		return
	}
	if healthData == nil {
		healthData = []domain.HealthData{}
	}
	writeJSON(w, http.StatusOK, healthData)
}

func (h *HealthHandler) Recent(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	limit, ok := parseLimit(w, r)
	if !ok {
		return
	}

	bundle, err := h.health.GetRecentWithBaseline(userID, limit)
	if err != nil {
		writeStoreError(w, r, err, "failed to list recent health data")
		return
	}
	writeJSON(w, http.StatusOK, bundle)
}

func (h *HealthHandler) SleepQuality(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	limit, ok := parseLimit(w, r)
	if !ok {
		return
	}

	rows, err := h.health.GetSleepQuality(userID, limit)
	if err != nil {
		writeStoreError(w, r, err, "failed to get sleep quality data")
		return
	}
	if rows == nil {
		rows = []domain.SleepQualityRow{}
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *HealthHandler) RestingTrend(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	// The reference day is always system "yesterday".
	yesterday := time.Now().UTC().AddDate(0, 0, -1)
	trend, err := h.health.GetRestingTrend(userID, yesterday)
	if err != nil {
		writeStoreError(w, r, err, "failed to get resting trend")
		return
	}
	writeJSON(w, http.StatusOK, trend)
}

func (h *HealthHandler) ActivitySteps(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	limit, ok := parseLimit(w, r)
	if !ok {
		return
	}

	rows, err := h.health.GetActivitySteps(userID, limit)
	if err != nil {
		writeStoreError(w, r, err, "failed to get activity data")
		return
	}
	if rows == nil {
		rows = []domain.ActivityRow{}
	}
	writeJSON(w, http.StatusOK, rows)
}
