package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/iho/accountability/internal/adapter/http/dto"
	"github.com/iho/accountability/internal/domain"
)

// BalanceService defines the behavior needed by BalanceHandler.
type BalanceService interface {
	Update(ctx context.Context, accountA, accountB, checking decimal.Decimal) (*domain.BalanceSnapshot, error)
	Latest(ctx context.Context) (*domain.BalanceSnapshot, error)
	History(ctx context.Context, windowDays int) ([]*domain.BalanceSnapshot, error)
	AvailableTransfers(ctx context.Context, workout, bonus, uber decimal.Decimal) (domain.TransferCalculation, error)
	RefillNeeded(ctx context.Context) (domain.RefillStatus, error)
	AccountAUsage(ctx context.Context, windowDays int) (domain.AccountAUsage, error)
}

// BalanceHandler handles balance snapshot HTTP requests.
type BalanceHandler struct {
	balanceUC BalanceService
}

// NewBalanceHandler creates a new BalanceHandler.
func NewBalanceHandler(balanceUC BalanceService) *BalanceHandler {
	return &BalanceHandler{balanceUC: balanceUC}
}

// Update appends a new balance snapshot dated today.
func (h *BalanceHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateBalanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	snapshot, err := h.balanceUC.Update(r.Context(), req.AccountA, req.AccountB, req.Checking)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, dto.BalanceFromDomain(snapshot))
}

// Latest returns the most recent snapshot, or null data when none exist.
func (h *BalanceHandler) Latest(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.balanceUC.Latest(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if snapshot == nil {
		writeSuccess(w, http.StatusOK, nil)
		return
	}
	writeSuccess(w, http.StatusOK, dto.BalanceFromDomain(snapshot))
}

// History returns snapshots in the trailing window, newest first.
func (h *BalanceHandler) History(w http.ResponseWriter, r *http.Request) {
	days := parseIntQuery(r, "days", 30)
	snapshots, err := h.balanceUC.History(r.Context(), days)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	result := make([]*dto.BalanceResponse, len(snapshots))
	for i, s := range snapshots {
		result[i] = dto.BalanceFromDomain(s)
	}
	writeSuccess(w, http.StatusOK, result)
}

// Transfers calculates the transfer ceiling from earned income passed
// as ?workout_earnings, ?bonus_earnings, and ?uber_earnings.
func (h *BalanceHandler) Transfers(w http.ResponseWriter, r *http.Request) {
	workout := parseDecimalQuery(r, "workout_earnings")
	bonus := parseDecimalQuery(r, "bonus_earnings")
	uber := parseDecimalQuery(r, "uber_earnings")

	calc, err := h.balanceUC.AvailableTransfers(r.Context(), workout, bonus, uber)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, dto.TransferCalculationFromDomain(calc))
}

// Refill checks the Account A refill threshold.
func (h *BalanceHandler) Refill(w http.ResponseWriter, r *http.Request) {
	status, err := h.balanceUC.RefillNeeded(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, dto.RefillStatusFromDomain(status))
}

// Usage derives the Account A burn rate over a trailing window.
func (h *BalanceHandler) Usage(w http.ResponseWriter, r *http.Request) {
	days := parseIntQuery(r, "days", 30)
	usage, err := h.balanceUC.AccountAUsage(r.Context(), days)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, dto.AccountAUsageFromDomain(usage))
}
