package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/iho/accountability/internal/adapter/http/dto"
	"github.com/iho/accountability/internal/domain"
	"github.com/iho/accountability/internal/usecase"
)

// BonusService defines the behavior needed by BonusHandler.
type BonusService interface {
	Award(ctx context.Context, bonusType string, amount decimal.Decimal, weekOf *time.Time, description string) (*domain.Bonus, error)
	MarkPaid(ctx context.Context, id string) error
	Pending(ctx context.Context, weekOf *time.Time) ([]*domain.Bonus, error)
	TotalPending(ctx context.Context) (*usecase.PendingTotal, error)
	Stats(ctx context.Context, windowDays int) (domain.BonusStats, error)
}

// BonusHandler handles bonus HTTP requests.
type BonusHandler struct {
	bonusUC BonusService
}

// NewBonusHandler creates a new BonusHandler.
func NewBonusHandler(bonusUC BonusService) *BonusHandler {
	return &BonusHandler{bonusUC: bonusUC}
}

// Add awards a new bonus.
func (h *BonusHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req dto.AddBonusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	weekOf, err := parseOptionalDate(req.WeekOf)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid week_of")
		return
	}

	bonus, err := h.bonusUC.Award(r.Context(), req.Type, req.Amount, weekOf, req.Description)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, dto.BonusFromDomain(bonus))
}

// Pay marks a bonus paid.
func (h *BonusHandler) Pay(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.bonusUC.MarkPaid(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]string{"id": id, "status": string(domain.BonusPaid)})
}

// Pending lists pending bonuses, optionally filtered by ?week_of.
func (h *BonusHandler) Pending(w http.ResponseWriter, r *http.Request) {
	weekOf, err := parseDateQuery(r, "week_of")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid week_of")
		return
	}

	bonuses, err := h.bonusUC.Pending(r.Context(), weekOf)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, dto.BonusesFromDomain(bonuses))
}

// Total sums all pending bonuses.
func (h *BonusHandler) Total(w http.ResponseWriter, r *http.Request) {
	total, err := h.bonusUC.TotalPending(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, dto.PendingTotalFromUseCase(total))
}

// Stats returns bonus aggregates over a trailing window.
func (h *BonusHandler) Stats(w http.ResponseWriter, r *http.Request) {
	days := parseIntQuery(r, "days", 30)
	stats, err := h.bonusUC.Stats(r.Context(), days)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, dto.BonusStatsFromDomain(stats))
}
