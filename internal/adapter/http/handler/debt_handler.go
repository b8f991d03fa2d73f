package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/iho/accountability/internal/adapter/http/dto"
	"github.com/iho/accountability/internal/domain"
	"github.com/iho/accountability/internal/usecase"
)

// DebtService defines the behavior needed by DebtHandler.
type DebtService interface {
	Create(ctx context.Context, amount decimal.Decimal, reason string) (*domain.Debt, error)
	PayOff(ctx context.Context, id string, payment decimal.Decimal) (*usecase.PaymentResult, error)
	Active(ctx context.Context) ([]*domain.Debt, error)
	Total(ctx context.Context) (*usecase.TotalDebt, error)
	ApplyDailyInterest(ctx context.Context) ([]usecase.InterestAccrual, error)
	Stats(ctx context.Context, windowDays int) (domain.DebtStats, error)
}

// DebtHandler handles debt HTTP requests.
type DebtHandler struct {
	debtUC DebtService
}

// NewDebtHandler creates a new DebtHandler.
func NewDebtHandler(debtUC DebtService) *DebtHandler {
	return &DebtHandler{debtUC: debtUC}
}

// Create assigns a new debt.
func (h *DebtHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDebtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	debt, err := h.debtUC.Create(r.Context(), req.Amount, req.Reason)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, dto.DebtFromDomain(debt))
}

// Pay applies a payment to a debt.
func (h *DebtHandler) Pay(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.PayDebtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.debtUC.PayOff(r.Context(), id, req.Amount)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, dto.PaymentResultFromUseCase(result))
}

// Active lists active debts, oldest first.
func (h *DebtHandler) Active(w http.ResponseWriter, r *http.Request) {
	debts, err := h.debtUC.Active(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, dto.DebtsFromDomain(debts))
}

// Total returns the outstanding debt position.
func (h *DebtHandler) Total(w http.ResponseWriter, r *http.Request) {
	total, err := h.debtUC.Total(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, dto.TotalDebtFromUseCase(total))
}

// ApplyInterest manually triggers a daily interest accrual.
func (h *DebtHandler) ApplyInterest(w http.ResponseWriter, r *http.Request) {
	accruals, err := h.debtUC.ApplyDailyInterest(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, dto.AccrualsFromUseCase(accruals))
}

// Stats returns debt aggregates over a trailing window.
func (h *DebtHandler) Stats(w http.ResponseWriter, r *http.Request) {
	days := parseIntQuery(r, "days", 30)
	stats, err := h.debtUC.Stats(r.Context(), days)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, dto.DebtStatsFromDomain(stats))
}
