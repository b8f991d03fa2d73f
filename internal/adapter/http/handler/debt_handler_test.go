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

type debtServiceStub struct {
	createFn        func(ctx context.Context, amount decimal.Decimal, reason string) (*domain.Debt, error)
	payOffFn        func(ctx context.Context, id string, payment decimal.Decimal) (*usecase.PaymentResult, error)
	activeFn        func(ctx context.Context) ([]*domain.Debt, error)
	totalFn         func(ctx context.Context) (*usecase.TotalDebt, error)
	applyInterestFn func(ctx context.Context) ([]usecase.InterestAccrual, error)
	statsFn         func(ctx context.Context, windowDays int) (domain.DebtStats, error)
}

func (s *debtServiceStub) Create(ctx context.Context, amount decimal.Decimal, reason string) (*domain.Debt, error) {
	return s.createFn(ctx, amount, reason)
}

func (s *debtServiceStub) PayOff(ctx context.Context, id string, payment decimal.Decimal) (*usecase.PaymentResult, error) {
	return s.payOffFn(ctx, id, payment)
}

func (s *debtServiceStub) Active(ctx context.Context) ([]*domain.Debt, error) {
	return s.activeFn(ctx)
}

func (s *debtServiceStub) Total(ctx context.Context) (*usecase.TotalDebt, error) {
	return s.totalFn(ctx)
}

func (s *debtServiceStub) ApplyDailyInterest(ctx context.Context) ([]usecase.InterestAccrual, error) {
	return s.applyInterestFn(ctx)
}

func (s *debtServiceStub) Stats(ctx context.Context, windowDays int) (domain.DebtStats, error) {
	return s.statsFn(ctx, windowDays)
}

func testDebt() *domain.Debt {
	return &domain.Debt{
		ID:                "debt-1",
		Name:              "$50.00 - Missed cardio: treadmill",
		OriginalAmount:    decimal.NewFromInt(50),
		CurrentAmount:     decimal.NewFromInt(65),
		DailyInterestRate: decimal.NewFromFloat(0.3),
		DateAssigned:      time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
		Status:            domain.DebtActive,
	}
}

func TestDebtHandler_Create_Success(t *testing.T) {
	var captured decimal.Decimal
	handler := NewDebtHandler(&debtServiceStub{
		createFn: func(ctx context.Context, amount decimal.Decimal, reason string) (*domain.Debt, error) {
			captured = amount
			return testDebt(), nil
		},
	})

	body, _ := json.Marshal(dto.CreateDebtRequest{Amount: decimal.NewFromInt(50), Reason: "Missed cardio: treadmill"})
	req := httptest.NewRequest(http.MethodPost, "/debt/create", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if !captured.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("expected amount 50, got %s", captured)
	}
}

func TestDebtHandler_Create_InvalidAmount(t *testing.T) {
	handler := NewDebtHandler(&debtServiceStub{
		createFn: func(ctx context.Context, amount decimal.Decimal, reason string) (*domain.Debt, error) {
			return nil, domain.ErrInvalidAmount
		},
	})

	body, _ := json.Marshal(dto.CreateDebtRequest{Amount: decimal.NewFromInt(-5)})
	req := httptest.NewRequest(http.MethodPost, "/debt/create", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestDebtHandler_Pay(t *testing.T) {
	handler := NewDebtHandler(&debtServiceStub{
		payOffFn: func(ctx context.Context, id string, payment decimal.Decimal) (*usecase.PaymentResult, error) {
			if id != "debt-1" {
				t.Fatalf("expected id debt-1, got %s", id)
			}
			return &usecase.PaymentResult{
				DebtID:          id,
				PaymentAmount:   payment,
				RemainingAmount: decimal.NewFromInt(25),
			}, nil
		},
	})

	body, _ := json.Marshal(dto.PayDebtRequest{Amount: decimal.NewFromInt(40)})
	req := httptest.NewRequest(http.MethodPost, "/debt/debt-1/pay", bytes.NewReader(body))
	req = setChiURLParam(req, "id", "debt-1")
	rec := httptest.NewRecorder()

	handler.Pay(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data dto.PaymentResultResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data.RemainingAmount.StringFixed(2) != "25.00" || resp.Data.FullyPaid {
		t.Fatalf("unexpected payload: %+v", resp.Data)
	}
}

func TestDebtHandler_Pay_NotFound(t *testing.T) {
	handler := NewDebtHandler(&debtServiceStub{
		payOffFn: func(ctx context.Context, id string, payment decimal.Decimal) (*usecase.PaymentResult, error) {
			return nil, domain.ErrDebtNotFound
		},
	})

	body, _ := json.Marshal(dto.PayDebtRequest{Amount: decimal.NewFromInt(40)})
	req := httptest.NewRequest(http.MethodPost, "/debt/nope/pay", bytes.NewReader(body))
	req = setChiURLParam(req, "id", "nope")
	rec := httptest.NewRecorder()

	handler.Pay(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestDebtHandler_Total(t *testing.T) {
	handler := NewDebtHandler(&debtServiceStub{
		totalFn: func(ctx context.Context) (*usecase.TotalDebt, error) {
			return &usecase.TotalDebt{
				Total: decimal.NewFromInt(65),
				Count: 1,
				Debts: []*domain.Debt{testDebt()},
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/debt/total", nil)
	rec := httptest.NewRecorder()

	handler.Total(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Data dto.TotalDebtResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data.TotalDebt.StringFixed(2) != "65.00" || resp.Data.DebtCount != 1 {
		t.Fatalf("unexpected payload: %+v", resp.Data)
	}
}

func TestDebtHandler_ApplyInterest(t *testing.T) {
	handler := NewDebtHandler(&debtServiceStub{
		applyInterestFn: func(ctx context.Context) ([]usecase.InterestAccrual, error) {
			return []usecase.InterestAccrual{{
				DebtID:          "debt-1",
				OldAmount:       decimal.NewFromInt(50),
				NewAmount:       decimal.NewFromInt(65),
				InterestCharged: decimal.NewFromInt(15),
			}}, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/debt/interest/apply", nil)
	rec := httptest.NewRecorder()

	handler.ApplyInterest(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Data []dto.InterestAccrualResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Data) != 1 || resp.Data[0].InterestCharged.StringFixed(2) != "15.00" {
		t.Fatalf("unexpected payload: %+v", resp.Data)
	}
}
