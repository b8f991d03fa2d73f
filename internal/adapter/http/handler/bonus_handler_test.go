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

type bonusServiceStub struct {
	awardFn        func(ctx context.Context, bonusType string, amount decimal.Decimal, weekOf *time.Time, description string) (*domain.Bonus, error)
	markPaidFn     func(ctx context.Context, id string) error
	pendingFn      func(ctx context.Context, weekOf *time.Time) ([]*domain.Bonus, error)
	totalPendingFn func(ctx context.Context) (*usecase.PendingTotal, error)
	statsFn        func(ctx context.Context, windowDays int) (domain.BonusStats, error)
}

func (s *bonusServiceStub) Award(ctx context.Context, bonusType string, amount decimal.Decimal, weekOf *time.Time, description string) (*domain.Bonus, error) {
	return s.awardFn(ctx, bonusType, amount, weekOf, description)
}

func (s *bonusServiceStub) MarkPaid(ctx context.Context, id string) error {
	return s.markPaidFn(ctx, id)
}

func (s *bonusServiceStub) Pending(ctx context.Context, weekOf *time.Time) ([]*domain.Bonus, error) {
	return s.pendingFn(ctx, weekOf)
}

func (s *bonusServiceStub) TotalPending(ctx context.Context) (*usecase.PendingTotal, error) {
	return s.totalPendingFn(ctx)
}

func (s *bonusServiceStub) Stats(ctx context.Context, windowDays int) (domain.BonusStats, error) {
	return s.statsFn(ctx, windowDays)
}

func testBonus() *domain.Bonus {
	return &domain.Bonus{
		ID:     "bonus-1",
		Name:   "Reading - $25.00 (Week of 2025-06-01)",
		Type:   domain.BonusReading,
		Amount: decimal.NewFromInt(25),
		WeekOf: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Status: domain.BonusPending,
	}
}

func TestBonusHandler_Add_Success(t *testing.T) {
	var capturedWeek *time.Time
	handler := NewBonusHandler(&bonusServiceStub{
		awardFn: func(ctx context.Context, bonusType string, amount decimal.Decimal, weekOf *time.Time, description string) (*domain.Bonus, error) {
			capturedWeek = weekOf
			return testBonus(), nil
		},
	})

	body, _ := json.Marshal(dto.AddBonusRequest{
		Type:   domain.BonusReading,
		Amount: decimal.NewFromInt(25),
		WeekOf: "2025-06-01",
	})
	req := httptest.NewRequest(http.MethodPost, "/bonus/add", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Add(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if capturedWeek == nil || domain.FormatDate(*capturedWeek) != "2025-06-01" {
		t.Fatalf("expected week 2025-06-01, got %v", capturedWeek)
	}
}

func TestBonusHandler_Add_BadWeek(t *testing.T) {
	handler := NewBonusHandler(&bonusServiceStub{
		awardFn: func(ctx context.Context, bonusType string, amount decimal.Decimal, weekOf *time.Time, description string) (*domain.Bonus, error) {
			t.Fatal("Award should not be called for malformed week_of")
			return nil, nil
		},
	})

	body, _ := json.Marshal(dto.AddBonusRequest{Type: domain.BonusReading, Amount: decimal.NewFromInt(25), WeekOf: "last sunday"})
	req := httptest.NewRequest(http.MethodPost, "/bonus/add", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Add(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestBonusHandler_Pay(t *testing.T) {
	handler := NewBonusHandler(&bonusServiceStub{
		markPaidFn: func(ctx context.Context, id string) error {
			if id != "bonus-1" {
				t.Fatalf("expected id bonus-1, got %s", id)
			}
			return nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/bonus/bonus-1/pay", nil)
	req = setChiURLParam(req, "id", "bonus-1")
	rec := httptest.NewRecorder()

	handler.Pay(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestBonusHandler_Pending_WeekFilter(t *testing.T) {
	handler := NewBonusHandler(&bonusServiceStub{
		pendingFn: func(ctx context.Context, weekOf *time.Time) ([]*domain.Bonus, error) {
			if weekOf == nil || domain.FormatDate(*weekOf) != "2025-06-01" {
				t.Fatalf("expected week filter 2025-06-01, got %v", weekOf)
			}
			return []*domain.Bonus{testBonus()}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/bonus/pending?week_of=2025-06-01", nil)
	rec := httptest.NewRecorder()

	handler.Pending(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestBonusHandler_Total(t *testing.T) {
	handler := NewBonusHandler(&bonusServiceStub{
		totalPendingFn: func(ctx context.Context) (*usecase.PendingTotal, error) {
			return &usecase.PendingTotal{
				Total:   decimal.NewFromInt(75),
				Count:   2,
				Bonuses: []*domain.Bonus{testBonus()},
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/bonus/total", nil)
	rec := httptest.NewRecorder()

	handler.Total(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Data dto.PendingTotalResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data.TotalPending.StringFixed(2) != "75.00" || resp.Data.BonusCount != 2 {
		t.Fatalf("unexpected payload: %+v", resp.Data)
	}
}
