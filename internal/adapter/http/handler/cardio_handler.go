package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/accountability/internal/adapter/http/dto"
	"github.com/iho/accountability/internal/domain"
)

// CardioService defines the behavior needed by CardioHandler.
type CardioService interface {
	Assign(ctx context.Context, kind domain.CardioKind, minutes int, reason string) (*domain.CardioAssignment, error)
	Complete(ctx context.Context, id string) error
	MarkMissed(ctx context.Context, id string) error
	Pending(ctx context.Context) ([]*domain.CardioAssignment, error)
	Overdue(ctx context.Context) ([]*domain.CardioAssignment, error)
	Stats(ctx context.Context, windowDays int) (domain.CardioStats, error)
}

// CardioHandler handles cardio assignment HTTP requests.
type CardioHandler struct {
	cardioUC CardioService
}

// NewCardioHandler creates a new CardioHandler.
func NewCardioHandler(cardioUC CardioService) *CardioHandler {
	return &CardioHandler{cardioUC: cardioUC}
}

// Assign creates a new cardio assignment.
func (h *CardioHandler) Assign(w http.ResponseWriter, r *http.Request) {
	var req dto.AssignCardioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	assignment, err := h.cardioUC.Assign(r.Context(), domain.CardioKind(req.Kind), req.Minutes, req.Reason)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, dto.CardioFromDomain(assignment))
}

// Complete marks an assignment completed.
func (h *CardioHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.cardioUC.Complete(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]string{"id": id, "status": string(domain.CardioCompleted)})
}

// MarkMissed marks an assignment missed.
func (h *CardioHandler) MarkMissed(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.cardioUC.MarkMissed(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]string{"id": id, "status": string(domain.CardioMissed)})
}

// Pending lists pending assignments.
func (h *CardioHandler) Pending(w http.ResponseWriter, r *http.Request) {
	assignments, err := h.cardioUC.Pending(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, dto.CardiosFromDomain(assignments))
}

// Overdue lists assignments due for conversion to debt.
func (h *CardioHandler) Overdue(w http.ResponseWriter, r *http.Request) {
	assignments, err := h.cardioUC.Overdue(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, dto.CardiosFromDomain(assignments))
}

// Stats returns assignment aggregates over a trailing window.
func (h *CardioHandler) Stats(w http.ResponseWriter, r *http.Request) {
	days := parseIntQuery(r, "days", 30)
	stats, err := h.cardioUC.Stats(r.Context(), days)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, dto.CardioStatsFromDomain(stats))
}
