package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/accountability/internal/adapter/http/dto"
	"github.com/iho/accountability/internal/domain"
	"github.com/iho/accountability/internal/usecase"
)

type reconciliationServiceStub struct {
	runNightlyFn func(ctx context.Context, uberEarnings decimal.Decimal) (*usecase.RunResult, error)
	uberFn       func(ctx context.Context, amount decimal.Decimal) (*usecase.UberEarningsResult, error)
}

func (s *reconciliationServiceStub) RunNightly(ctx context.Context, uberEarnings decimal.Decimal) (*usecase.RunResult, error) {
	return s.runNightlyFn(ctx, uberEarnings)
}

func (s *reconciliationServiceStub) ProcessUberEarnings(ctx context.Context, amount decimal.Decimal) (*usecase.UberEarningsResult, error) {
	return s.uberFn(ctx, amount)
}

func testRunResult() *usecase.RunResult {
	return &usecase.RunResult{
		RunID:     "run-1",
		Timestamp: time.Date(2025, 6, 4, 23, 59, 0, 0, time.UTC),
		CardioSweep: &usecase.CardioSweepResult{
			OverdueCount: 1,
			DebtsCreated: []*domain.Debt{testDebt()},
			MarkedMissed: []string{"cardio-1"},
		},
		InterestApplied: []usecase.InterestAccrual{{
			DebtID:          "debt-1",
			OldAmount:       decimal.NewFromInt(50),
			NewAmount:       decimal.NewFromInt(65),
			InterestCharged: decimal.NewFromInt(15),
		}},
		WorkoutEarnings: &usecase.DailyEarnings{
			LiftingEarnings: decimal.NewFromInt(10),
			TotalEarnings:   decimal.NewFromInt(10),
		},
		BonusCheck: &usecase.WeeklyBonusResult{
			TotalBonuses: decimal.Zero,
		},
		TransferApproval: &usecase.TransferApproval{
			HasDebt:    true,
			DebtAmount: decimal.NewFromInt(65),
		},
		Summary: "**Nightly Reconciliation Summary**",
	}
}

func TestReconciliationHandler_Run_EmptyBody(t *testing.T) {
	var captured decimal.Decimal
	handler := NewReconciliationHandler(&reconciliationServiceStub{
		runNightlyFn: func(ctx context.Context, uberEarnings decimal.Decimal) (*usecase.RunResult, error) {
			captured = uberEarnings
			return testRunResult(), nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/reconciliation/run", nil)
	rec := httptest.NewRecorder()

	handler.Run(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !captured.IsZero() {
		t.Fatalf("expected zero uber earnings for empty body, got %s", captured)
	}

	var resp struct {
		Data dto.ReconciliationResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data.RunID != "run-1" || resp.Data.CardioSweep.OverdueCount != 1 {
		t.Fatalf("unexpected payload: %+v", resp.Data)
	}
	if len(resp.Data.InterestApplied) != 1 || resp.Data.InterestApplied[0].NewAmount.StringFixed(2) != "65.00" {
		t.Fatalf("unexpected interest payload: %+v", resp.Data.InterestApplied)
	}
}

func TestReconciliationHandler_Run_WithUberEarnings(t *testing.T) {
	var captured decimal.Decimal
	handler := NewReconciliationHandler(&reconciliationServiceStub{
		runNightlyFn: func(ctx context.Context, uberEarnings decimal.Decimal) (*usecase.RunResult, error) {
			captured = uberEarnings
			return testRunResult(), nil
		},
	})

	body, _ := json.Marshal(dto.RunReconciliationRequest{UberEarnings: decimal.NewFromInt(40)})
	req := httptest.NewRequest(http.MethodPost, "/reconciliation/run", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Run(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if captured.StringFixed(2) != "40.00" {
		t.Fatalf("expected uber earnings 40.00, got %s", captured)
	}
}

func TestReconciliationHandler_Run_StoreUnavailable(t *testing.T) {
	handler := NewReconciliationHandler(&reconciliationServiceStub{
		runNightlyFn: func(ctx context.Context, uberEarnings decimal.Decimal) (*usecase.RunResult, error) {
			return nil, domain.ErrStoreUnavailable
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/reconciliation/run", nil)
	rec := httptest.NewRecorder()

	handler.Run(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
}

func TestReconciliationHandler_Uber(t *testing.T) {
	handler := NewReconciliationHandler(&reconciliationServiceStub{
		uberFn: func(ctx context.Context, amount decimal.Decimal) (*usecase.UberEarningsResult, error) {
			return &usecase.UberEarningsResult{
				Action:        usecase.UberActionDebtPayment,
				AmountApplied: amount,
				RemainingDebt: decimal.NewFromInt(25),
			}, nil
		},
	})

	body, _ := json.Marshal(dto.UberEarningsRequest{Amount: decimal.NewFromInt(40)})
	req := httptest.NewRequest(http.MethodPost, "/reconciliation/uber-earnings", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Uber(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Data dto.UberEarningsResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data.Action != "debt_payment" || resp.Data.RemainingDebt.StringFixed(2) != "25.00" {
		t.Fatalf("unexpected payload: %+v", resp.Data)
	}
}

func TestReconciliationHandler_Uber_InvalidAmount(t *testing.T) {
	handler := NewReconciliationHandler(&reconciliationServiceStub{
		uberFn: func(ctx context.Context, amount decimal.Decimal) (*usecase.UberEarningsResult, error) {
			return nil, domain.ErrInvalidAmount
		},
	})

	body, _ := json.Marshal(dto.UberEarningsRequest{Amount: decimal.NewFromInt(-10)})
	req := httptest.NewRequest(http.MethodPost, "/reconciliation/uber-earnings", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Uber(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
