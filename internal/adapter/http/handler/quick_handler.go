package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/accountability/internal/adapter/http/dto"
	"github.com/iho/accountability/internal/domain"
	"github.com/iho/accountability/internal/usecase"
)

// QuickBonusService exposes the preset awards used by quick actions.
type QuickBonusService interface {
	AwardPerfectWeek(ctx context.Context, weekOf *time.Time) (*domain.Bonus, error)
	AwardGoodBoy(ctx context.Context, amount decimal.Decimal, reason string) (*domain.Bonus, error)
}

// QuickHandler handles one-tap shortcut actions.
type QuickHandler struct {
	cardioUC CardioService
	bonusUC  QuickBonusService
}

// NewQuickHandler creates a new QuickHandler.
func NewQuickHandler(cardioUC CardioService, bonusUC QuickBonusService) *QuickHandler {
	return &QuickHandler{cardioUC: cardioUC, bonusUC: bonusUC}
}

// PerfectWeekBonus awards the perfect-week bonus, defaulting to the
// current week. The body is optional.
func (h *QuickHandler) PerfectWeekBonus(w http.ResponseWriter, r *http.Request) {
	var req dto.PerfectWeekBonusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	weekOf, err := parseOptionalDate(req.WeekOf)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid week_of")
		return
	}

	bonus, err := h.bonusUC.AwardPerfectWeek(r.Context(), weekOf)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, dto.BonusFromDomain(bonus))
}

// GoodBoyBonus awards a discretionary bonus at a caller-chosen amount.
func (h *QuickHandler) GoodBoyBonus(w http.ResponseWriter, r *http.Request) {
	var req dto.GoodBoyBonusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	bonus, err := h.bonusUC.AwardGoodBoy(r.Context(), req.Amount, req.Reason)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, dto.BonusFromDomain(bonus))
}

// MissedCheckin assigns the standard treadmill penalty for a missed
// check-in.
func (h *QuickHandler) MissedCheckin(w http.ResponseWriter, r *http.Request) {
	assignment, err := h.cardioUC.Assign(r.Context(), domain.CardioTreadmill, usecase.MissedCheckinCardioMinutes, "Missed check-in")
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, dto.CardioFromDomain(assignment))
}
