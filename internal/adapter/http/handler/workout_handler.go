package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/iho/accountability/internal/adapter/http/dto"
	"github.com/iho/accountability/internal/domain"
)

// WorkoutService defines the behavior needed by WorkoutHandler.
type WorkoutService interface {
	Log(ctx context.Context, kind domain.WorkoutKind, durationMinutes int, source domain.WorkoutSource, calories *int) (*domain.WorkoutLog, error)
	ForToday(ctx context.Context) ([]*domain.WorkoutLog, error)
	ForWeek(ctx context.Context, weekStart *time.Time) ([]*domain.WorkoutLog, error)
	WeeklyEarnings(ctx context.Context, weekStart *time.Time) (domain.WeeklyEarnings, error)
	BaselineCompliance(ctx context.Context, weekStart *time.Time) (domain.BaselineCompliance, error)
	Stats(ctx context.Context, windowDays int) (domain.WorkoutStats, error)
}

// WorkoutHandler handles workout HTTP requests.
type WorkoutHandler struct {
	workoutUC WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutUC WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutUC: workoutUC}
}

// Log records a workout session.
func (h *WorkoutHandler) Log(w http.ResponseWriter, r *http.Request) {
	var req dto.LogWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	workout, err := h.workoutUC.Log(r.Context(),
		domain.WorkoutKind(req.Kind), req.DurationMinutes, domain.WorkoutSource(req.Source), req.Calories)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, dto.WorkoutFromDomain(workout))
}

// Today lists today's sessions.
func (h *WorkoutHandler) Today(w http.ResponseWriter, r *http.Request) {
	workouts, err := h.workoutUC.ForToday(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, dto.WorkoutsFromDomain(workouts))
}

// Week lists the current week's sessions, or the week given by
// ?week_start=YYYY-MM-DD.
func (h *WorkoutHandler) Week(w http.ResponseWriter, r *http.Request) {
	weekStart, err := parseDateQuery(r, "week_start")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid week_start")
		return
	}

	workouts, err := h.workoutUC.ForWeek(r.Context(), weekStart)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, dto.WorkoutsFromDomain(workouts))
}

// Earnings returns the week's earnings breakdown.
func (h *WorkoutHandler) Earnings(w http.ResponseWriter, r *http.Request) {
	weekStart, err := parseDateQuery(r, "week_start")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid week_start")
		return
	}

	earnings, err := h.workoutUC.WeeklyEarnings(r.Context(), weekStart)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, dto.WeeklyEarningsFromDomain(earnings))
}

// Baseline returns weekly yoga baseline progress.
func (h *WorkoutHandler) Baseline(w http.ResponseWriter, r *http.Request) {
	weekStart, err := parseDateQuery(r, "week_start")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid week_start")
		return
	}

	compliance, err := h.workoutUC.BaselineCompliance(r.Context(), weekStart)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, dto.BaselineComplianceFromDomain(compliance))
}

// Stats returns workout aggregates over a trailing window.
func (h *WorkoutHandler) Stats(w http.ResponseWriter, r *http.Request) {
	days := parseIntQuery(r, "days", 30)
	stats, err := h.workoutUC.Stats(r.Context(), days)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, dto.WorkoutStatsFromDomain(stats))
}
