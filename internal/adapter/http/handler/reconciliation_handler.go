package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/iho/accountability/internal/adapter/http/dto"
	"github.com/iho/accountability/internal/usecase"
)

// ReconciliationService defines the behavior needed by
// ReconciliationHandler.
type ReconciliationService interface {
	RunNightly(ctx context.Context, uberEarnings decimal.Decimal) (*usecase.RunResult, error)
	ProcessUberEarnings(ctx context.Context, amount decimal.Decimal) (*usecase.UberEarningsResult, error)
}

// ReconciliationHandler handles reconciliation HTTP requests.
type ReconciliationHandler struct {
	reconciliationUC ReconciliationService
}

// NewReconciliationHandler creates a new ReconciliationHandler.
func NewReconciliationHandler(reconciliationUC ReconciliationService) *ReconciliationHandler {
	return &ReconciliationHandler{reconciliationUC: reconciliationUC}
}

// Run triggers a full nightly run. The body is optional; an empty body
// runs with zero Uber earnings.
func (h *ReconciliationHandler) Run(w http.ResponseWriter, r *http.Request) {
	var req dto.RunReconciliationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.reconciliationUC.RunNightly(r.Context(), req.UberEarnings)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, dto.ReconciliationFromUseCase(result))
}

// Uber routes reported Uber income toward debt or an earnings unlock.
func (h *ReconciliationHandler) Uber(w http.ResponseWriter, r *http.Request) {
	var req dto.UberEarningsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.reconciliationUC.ProcessUberEarnings(r.Context(), req.Amount)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, dto.UberEarningsFromUseCase(result))
}
